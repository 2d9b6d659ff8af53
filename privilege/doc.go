// Package privilege implements the privilege token model: a compact
// string grammar for privilege grants, and the evaluation rules that
// answer authorization queries against a principal's token collection.
//
// A grant is scoped to a domain (account-wide or project-specific), a
// business area, and an access level with a fixed total order
// (read < write < execute < delete). Grants serialize to colon-delimited
// tokens:
//
//	account:<area>:<level>
//	project:<contextId>:<area>:<level>
//
// Evaluation is a pure linear scan: a query is satisfied iff some token
// in the collection matches the domain, area (and context, for project
// queries) exactly and holds at least the requested level. "Not granted"
// is a normal false, never an error; only malformed token data errors.
//
// Usage:
//
//	tok, err := privilege.Encode(privilege.Record{
//	    Domain: privilege.DomainAccount,
//	    Area:   "analytics",
//	    Level:  privilege.Execute,
//	})
//
//	ok, err := privilege.HasAccountPrivilege(tokens, "analytics", privilege.Write)
package privilege

// Package authz answers authorization queries for principals.
//
// It defines a Checker interface over the two query shapes (account and
// project), plus two implementations: Service, which fetches a
// principal's privilege records from a store.RecordSource and evaluates
// the encoded token collection per call, and StaticChecker, an in-memory
// map of principal to tokens for tests and fixed-policy setups.
//
// Usage:
//
//	svc := authz.NewService(recordSource)
//	ok, err := svc.HasAccountPrivilege(ctx, "user-1", "analytics", privilege.Write)
//
// "Not granted" is a normal false. Errors surface only for defective
// privilege data (an unencodable record, a malformed token) or a failing
// record source.
package authz

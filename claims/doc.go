// Package claims carries a principal's privilege token collection inside
// a signed JWT, so services can evaluate authorization queries without a
// round-trip to the privilege store.
//
// The collection travels as a "privileges" claim holding the canonical
// token strings. Verification checks the signature, expiry, and issuer;
// the recovered collection evaluates under exactly the same rules as one
// built from the store.
//
// Usage:
//
//	svc, err := claims.NewService(&claims.Config{Secret: secret, Issuer: "iam"})
//	signed, err := svc.Issue("user-1", tokens)
//
//	gc, err := svc.Verify(signed)
//	ok, err := gc.HasAccountPrivilege("analytics", privilege.Write)
package claims

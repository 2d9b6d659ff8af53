package authz

import (
	"context"

	"github.com/skillsenselab/grantkit/privilege"
)

// Checker is the core authorization interface. Both checks resolve to
// exactly one of granted (true) or not granted (false).
type Checker interface {
	// HasAccountPrivilege reports whether the principal holds at least
	// min on the account-domain area.
	HasAccountPrivilege(ctx context.Context, principalID, area string, min privilege.AccessLevel) (bool, error)

	// HasProjectPrivilege reports whether the principal holds at least
	// min on the project-domain area within the given context.
	HasProjectPrivilege(ctx context.Context, principalID, contextID, area string, min privilege.AccessLevel) (bool, error)
}

// StaticChecker is a simple in-memory Checker backed by a map of
// principal → token collection. Useful for tests and fixed policies.
type StaticChecker struct {
	collections map[string][]privilege.Token
}

// NewStaticChecker creates a Checker from a static map of principal → tokens.
//
// Example:
//
//	checker := authz.NewStaticChecker(map[string][]privilege.Token{
//	    "admin": {"account:user_management:delete", "account:analytics:execute"},
//	})
func NewStaticChecker(collections map[string][]privilege.Token) *StaticChecker {
	return &StaticChecker{collections: collections}
}

// HasAccountPrivilege implements Checker.
func (c *StaticChecker) HasAccountPrivilege(_ context.Context, principalID, area string, min privilege.AccessLevel) (bool, error) {
	return privilege.HasAccountPrivilege(c.collections[principalID], area, min)
}

// HasProjectPrivilege implements Checker.
func (c *StaticChecker) HasProjectPrivilege(_ context.Context, principalID, contextID, area string, min privilege.AccessLevel) (bool, error) {
	return privilege.HasProjectPrivilege(c.collections[principalID], contextID, area, min)
}

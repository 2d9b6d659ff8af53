package privilege

import (
	"github.com/skillsenselab/grantkit/errors"
)

// Domain is the top-level privilege category. It determines the token
// shape: account grants are account-wide, project grants carry a context
// identifier narrowing them to one project.
type Domain string

const (
	DomainAccount Domain = "account"
	DomainProject Domain = "project"
)

// Valid reports whether the domain is one of {account, project}.
func (d Domain) Valid() bool {
	return d == DomainAccount || d == DomainProject
}

// ParseDomain converts a raw string into a Domain, rejecting values
// outside {account, project}.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.Valid() {
		return "", errors.UnknownDomain(s)
	}
	return d, nil
}

package privilege

import (
	"strings"

	"github.com/skillsenselab/grantkit/errors"
)

// Record is the structured form of one privilege grant, as returned by
// the external privilege store. Records are read-only input to this
// package: they are encoded into tokens, never persisted or mutated.
//
// Context must be non-empty iff Domain is DomainProject. Tokens do not
// carry the principal; a token collection is always scoped to one
// principal by construction.
type Record struct {
	PrincipalID string      `json:"principal_id,omitempty" validate:"omitempty,nodelim"`
	Domain      Domain      `json:"domain" validate:"required"`
	Area        string      `json:"area" validate:"required,nodelim"`
	Level       AccessLevel `json:"level" validate:"required"`
	Context     string      `json:"context,omitempty" validate:"nodelim"`
}

// Validate checks the record against the grammar invariants: known
// domain and level, non-empty delimiter-free area, and context present
// iff the domain is project.
func (r Record) Validate() error {
	if !r.Domain.Valid() {
		return errors.UnknownDomain(string(r.Domain))
	}
	if !r.Level.Valid() {
		return errors.UnknownLevel(string(r.Level))
	}
	if r.Area == "" {
		return errors.MissingField("area")
	}
	if strings.Contains(r.Area, Delimiter) {
		return errors.InvalidArea("area", r.Area)
	}
	if strings.Contains(r.Context, Delimiter) {
		return errors.InvalidArea("context", r.Context)
	}
	if r.Domain == DomainProject && r.Context == "" {
		return errors.MissingContext(r.PrincipalID, r.Area)
	}
	return nil
}

package privilege

import (
	stderrors "errors"
)

// AccountQuery asks whether a collection grants at least MinLevel on an
// account-domain area.
type AccountQuery struct {
	Area     string      `json:"area" validate:"required,nodelim"`
	MinLevel AccessLevel `json:"min_level" validate:"required"`
}

// ProjectQuery asks whether a collection grants at least MinLevel on a
// project-domain area within one specific project.
type ProjectQuery struct {
	ContextID string      `json:"context_id" validate:"required,nodelim"`
	Area      string      `json:"area" validate:"required,nodelim"`
	MinLevel  AccessLevel `json:"min_level" validate:"required"`
}

// Query is an authorization question answerable against a token
// collection. Every query resolves to exactly one of granted (true) or
// not granted (false); there is no partial result.
type Query interface {
	Evaluate(tokens []Token) (bool, error)
}

// Evaluate implements Query.
func (q AccountQuery) Evaluate(tokens []Token) (bool, error) {
	return HasAccountPrivilege(tokens, q.Area, q.MinLevel)
}

// Evaluate implements Query.
func (q ProjectQuery) Evaluate(tokens []Token) (bool, error) {
	return HasProjectPrivilege(tokens, q.ContextID, q.Area, q.MinLevel)
}

// HasAccountPrivilege reports whether the collection grants at least min
// on the account-domain area. The scan short-circuits on the first
// satisfying token. Project-shaped tokens are not candidates and are
// skipped silently; a token claiming the account domain but violating
// its grammar propagates an error. Absence of a match is a normal false.
func HasAccountPrivilege(tokens []Token, area string, min AccessLevel) (bool, error) {
	for _, t := range tokens {
		rec, err := DecodeAccount(t)
		if err != nil {
			if stderrors.Is(err, ErrWrongDomain) {
				continue
			}
			return false, err
		}
		if rec.Area == area && rec.Level.Satisfies(min) {
			return true, nil
		}
	}
	return false, nil
}

// HasProjectPrivilege reports whether the collection grants at least min
// on the project-domain area within the given context. Both area and
// context must match exactly. Account-shaped tokens are skipped
// silently.
func HasProjectPrivilege(tokens []Token, contextID, area string, min AccessLevel) (bool, error) {
	for _, t := range tokens {
		rec, err := DecodeProject(t)
		if err != nil {
			if stderrors.Is(err, ErrWrongDomain) {
				continue
			}
			return false, err
		}
		if rec.Context == contextID && rec.Area == area && rec.Level.Satisfies(min) {
			return true, nil
		}
	}
	return false, nil
}

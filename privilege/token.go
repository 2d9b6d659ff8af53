package privilege

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/skillsenselab/grantkit/errors"
)

// Token is the canonical string encoding of one privilege grant.
type Token string

// Delimiter separates token fields. Field values must never contain it;
// Encode rejects values that would make the token ambiguous.
const Delimiter = ":"

// Field counts per domain grammar.
const (
	accountFieldCount = 3
	projectFieldCount = 4
)

// ErrWrongDomain reports a token whose domain tag is a different, valid
// domain than the grammar it was decoded under. Evaluators treat such
// tokens as non-candidates rather than defects.
var ErrWrongDomain = stderrors.New("privilege: token belongs to a different domain")

// Encode builds the canonical token for a record.
//
// A project record without a context fails with a MISSING_CONTEXT error:
// it is invalid by construction and must never silently degrade to an
// account-shaped token. An account record's context, if any, is ignored.
func Encode(r Record) (Token, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	switch r.Domain {
	case DomainProject:
		return Token(string(DomainProject) + Delimiter + r.Context + Delimiter + r.Area + Delimiter + string(r.Level)), nil
	default:
		return Token(string(DomainAccount) + Delimiter + r.Area + Delimiter + string(r.Level)), nil
	}
}

// EncodeRecords encodes a principal's records into a token collection,
// preserving order. Any record that fails to encode aborts the whole
// collection: a defective record is a data-integrity problem upstream,
// not something to skip.
func EncodeRecords(records []Record) ([]Token, error) {
	tokens := make([]Token, 0, len(records))
	for _, r := range records {
		tok, err := Encode(r)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// DecodeAccount parses a token under the account grammar
// (account:<area>:<level>).
//
// A token tagged with another valid domain returns ErrWrongDomain. A
// token claiming the account domain with the wrong field count, an empty
// field, or an unknown level is malformed. The decoded record has no
// principal; collections are per-principal by construction.
func DecodeAccount(t Token) (Record, error) {
	parts := strings.Split(string(t), Delimiter)
	switch Domain(parts[0]) {
	case DomainAccount:
	case DomainProject:
		return Record{}, ErrWrongDomain
	default:
		return Record{}, errors.UnknownDomain(parts[0]).WithDetail("token", string(t))
	}
	if len(parts) != accountFieldCount {
		return Record{}, errors.MalformedToken(string(t),
			fmt.Sprintf("expected %d fields, got %d", accountFieldCount, len(parts)))
	}
	area := parts[1]
	if area == "" {
		return Record{}, errors.MalformedToken(string(t), "empty area field")
	}
	level, err := ParseLevel(parts[2])
	if err != nil {
		return Record{}, err
	}
	return Record{Domain: DomainAccount, Area: area, Level: level}, nil
}

// DecodeProject parses a token under the project grammar
// (project:<contextId>:<area>:<level>). Error behavior mirrors
// DecodeAccount.
func DecodeProject(t Token) (Record, error) {
	parts := strings.Split(string(t), Delimiter)
	switch Domain(parts[0]) {
	case DomainProject:
	case DomainAccount:
		return Record{}, ErrWrongDomain
	default:
		return Record{}, errors.UnknownDomain(parts[0]).WithDetail("token", string(t))
	}
	if len(parts) != projectFieldCount {
		return Record{}, errors.MalformedToken(string(t),
			fmt.Sprintf("expected %d fields, got %d", projectFieldCount, len(parts)))
	}
	context, area := parts[1], parts[2]
	if context == "" {
		return Record{}, errors.MalformedToken(string(t), "empty context field")
	}
	if area == "" {
		return Record{}, errors.MalformedToken(string(t), "empty area field")
	}
	level, err := ParseLevel(parts[3])
	if err != nil {
		return Record{}, err
	}
	return Record{Domain: DomainProject, Context: context, Area: area, Level: level}, nil
}

// Decode parses a token under the grammar for the given domain.
func Decode(t Token, d Domain) (Record, error) {
	switch d {
	case DomainAccount:
		return DecodeAccount(t)
	case DomainProject:
		return DecodeProject(t)
	default:
		return Record{}, errors.UnknownDomain(string(d))
	}
}

package privilege

import (
	"github.com/skillsenselab/grantkit/errors"
)

// AccessLevel is an ordered permission tier.
type AccessLevel string

const (
	Read    AccessLevel = "read"
	Write   AccessLevel = "write"
	Execute AccessLevel = "execute"
	Delete  AccessLevel = "delete"
)

// levelRank is the total order over access levels. The order is not
// alphabetic; every comparison goes through this table.
var levelRank = map[AccessLevel]int{
	Read:    1,
	Write:   2,
	Execute: 3,
	Delete:  4,
}

// Levels returns all known access levels in ascending rank order.
func Levels() []AccessLevel {
	return []AccessLevel{Read, Write, Execute, Delete}
}

// Valid reports whether the level belongs to the known vocabulary.
func (l AccessLevel) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

// Rank returns the level's position in the total order, or 0 for an
// unknown level.
func (l AccessLevel) Rank() int {
	return levelRank[l]
}

// Satisfies reports whether a held level meets a requested minimum:
// held >= min under the rank table. Unknown levels never satisfy and are
// never satisfied.
func (l AccessLevel) Satisfies(min AccessLevel) bool {
	held, ok := levelRank[l]
	if !ok {
		return false
	}
	want, ok := levelRank[min]
	if !ok {
		return false
	}
	return held >= want
}

// ParseLevel converts a raw string into an AccessLevel, rejecting values
// outside the vocabulary.
func ParseLevel(s string) (AccessLevel, error) {
	l := AccessLevel(s)
	if !l.Valid() {
		return "", errors.UnknownLevel(s)
	}
	return l, nil
}

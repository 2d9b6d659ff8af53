package store

import (
	"context"

	"github.com/skillsenselab/grantkit/privilege"
)

// RecordSource is the input boundary to the privilege core. Records it
// returns are read-only to callers; the core only transforms them into
// tokens.
//
// Implementations must return an independent snapshot per call so that
// concurrent evaluations never observe in-place mutation. Callers see
// updated privileges by re-fetching, not by mutating a returned slice.
type RecordSource interface {
	GetPrivilegeRecords(ctx context.Context, principalID string) ([]privilege.Record, error)
}

// RecordSourceFunc is an adapter to use ordinary functions as a RecordSource.
type RecordSourceFunc func(ctx context.Context, principalID string) ([]privilege.Record, error)

// GetPrivilegeRecords implements RecordSource.
func (f RecordSourceFunc) GetPrivilegeRecords(ctx context.Context, principalID string) ([]privilege.Record, error) {
	return f(ctx, principalID)
}

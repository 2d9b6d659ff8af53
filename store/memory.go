package store

import (
	"context"
	"sync"

	"github.com/skillsenselab/grantkit/privilege"
)

// MemoryStore is a mutex-guarded, in-memory RecordSource keyed by
// principal. Reads return copies, so a collection built from one call is
// a stable snapshot even while grants change underneath.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]privilege.Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]privilege.Record),
	}
}

// NewMemoryStoreWith creates a store seeded with the given records.
// Invalid records are rejected, so a seeded store never serves rows the
// codec would refuse to encode.
func NewMemoryStoreWith(records []privilege.Record) (*MemoryStore, error) {
	s := NewMemoryStore()
	for _, r := range records {
		if err := s.Grant(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// GetPrivilegeRecords implements RecordSource. An unknown principal
// yields an empty slice, not an error: holding no privileges is a normal
// state.
func (s *MemoryStore) GetPrivilegeRecords(_ context.Context, principalID string) ([]privilege.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.records[principalID]
	out := make([]privilege.Record, len(rows))
	copy(out, rows)
	return out, nil
}

// Grant adds a record after validating it against the grammar
// invariants. Duplicates are legal; evaluation is idempotent under
// duplication.
func (s *MemoryStore) Grant(r privilege.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.PrincipalID] = append(s.records[r.PrincipalID], r)
	return nil
}

// Revoke removes every stored record equal to r. It reports how many
// rows were removed.
func (s *MemoryStore) Revoke(r privilege.Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.records[r.PrincipalID]
	kept := rows[:0]
	removed := 0
	for _, row := range rows {
		if row == r {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	if len(kept) == 0 {
		delete(s.records, r.PrincipalID)
	} else {
		s.records[r.PrincipalID] = kept
	}
	return removed
}

// Principals returns the IDs of all principals holding at least one record.
func (s *MemoryStore) Principals() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	return ids
}

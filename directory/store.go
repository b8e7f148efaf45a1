package directory

import (
	"slices"
	"sync"

	"github.com/ortelius/userdir-backend/model"
)

// Store is the single source of truth for the session's records. It is
// populated once and read-only afterwards.
type Store struct {
	mu        sync.RWMutex
	records   []model.UserRecord
	populated bool
}

// NewStore returns an empty, unpopulated store
func NewStore() *Store {
	return &Store{}
}

// Populate stores the normalized, sorted records. Only the first call succeeds.
func (s *Store) Populate(records []model.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.populated {
		return ErrAlreadyPopulated
	}

	s.records = slices.Clone(records)
	s.populated = true
	return nil
}

// All returns a copy of every record in directory order
func (s *Store) All() []model.UserRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Loaded reports whether Populate has been called
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.populated
}

// Len returns the number of stored records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Filter applies the search filter to the stored records
func (s *Store) Filter(query string) ([]model.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.populated {
		return nil, ErrNotLoaded
	}
	return Filter(s.records, query), nil
}

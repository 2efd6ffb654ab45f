package roster

import (
	"sync"

	"github.com/five82/studentsearch/internal/student"
)

// Store holds the session's student records, most recent first.
type Store struct {
	mu      sync.RWMutex
	records []student.Record
	version uint64
}

// New returns a store seeded with the given records in the given order.
func New(seed ...student.Record) *Store {
	return &Store{records: cloneRecords(seed)}
}

// Add prepends r so it shows up at the top of the list.
func (s *Store) Add(r student.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]student.Record, 0, len(s.records)+1)
	next = append(next, r)
	next = append(next, s.records...)
	s.records = next
	s.version++
}

// All returns a copy of every record in store order.
func (s *Store) All() []student.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records)
}

// Len reports how many records are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Version increments on every Add. Readers compare it to decide whether
// cached results are stale.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func cloneRecords(records []student.Record) []student.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]student.Record, len(records))
	copy(dup, records)
	return dup
}

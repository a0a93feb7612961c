package store

import (
	"sync"
	"time"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/domain/table"
)

// SnapshotStore guards the merged upstream snapshot. One writer (the refresh
// loop) merges deltas under the write lock; readers take cheap clones.
type SnapshotStore struct {
	mu   sync.RWMutex
	snap *feed.Snapshot
	now  func() time.Time
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		snap: feed.NewSnapshot(),
		now:  time.Now,
	}
}

// Apply merges a refresh delta into the stored snapshot.
func (s *SnapshotStore) Apply(delta feed.Delta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Apply(delta, s.now())
}

// Snapshot returns a clone that stays consistent while refreshes continue.
func (s *SnapshotStore) Snapshot() *feed.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Status reports which snapshot fields are populated.
func (s *SnapshotStore) Status() feed.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Status()
}

// TableStore publishes the latest computed league table.
type TableStore struct {
	mu        sync.RWMutex
	current   *table.LeagueTable
	updatedAt time.Time
	now       func() time.Time
}

func NewTableStore() *TableStore {
	return &TableStore{now: time.Now}
}

// Publish replaces the current table.
func (s *TableStore) Publish(t table.LeagueTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &t
	s.updatedAt = s.now()
}

// Current returns the latest published table, or false before the first
// computation succeeds.
func (s *TableStore) Current() (table.LeagueTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return table.LeagueTable{}, false
	}
	return *s.current, true
}

// UpdatedAt reports when the current table was published.
func (s *TableStore) UpdatedAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt, s.current != nil
}

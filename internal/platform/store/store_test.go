package store

import (
	"sync"
	"testing"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/domain/table"
)

func TestSnapshotStoreApplyAndClone(t *testing.T) {
	t.Parallel()

	s := NewSnapshotStore()
	s.Apply(feed.Delta{Game: &feed.Game{CurrentEvent: 4}})

	snap := s.Snapshot()
	if snap.Gameweek() != 4 {
		t.Fatalf("expected gameweek 4, got %d", snap.Gameweek())
	}

	s.Apply(feed.Delta{Game: &feed.Game{CurrentEvent: 5}})
	if snap.Gameweek() != 4 {
		t.Fatalf("clone must not observe later merges, got gameweek %d", snap.Gameweek())
	}
	if s.Snapshot().Gameweek() != 5 {
		t.Fatal("store must serve the merged gameweek")
	}
}

func TestSnapshotStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewSnapshotStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Apply(feed.Delta{Game: &feed.Game{CurrentEvent: i}})
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
			_ = s.Status()
		}()
	}
	wg.Wait()

	if s.Snapshot().Game == nil {
		t.Fatal("expected a game after concurrent writes")
	}
}

func TestTableStorePublish(t *testing.T) {
	t.Parallel()

	s := NewTableStore()
	if _, ok := s.Current(); ok {
		t.Fatal("empty store must not serve a table")
	}
	if _, ok := s.UpdatedAt(); ok {
		t.Fatal("empty store must not report a publish time")
	}

	s.Publish(table.LeagueTable{Name: "office league", Code: 12})

	current, ok := s.Current()
	if !ok {
		t.Fatal("expected a published table")
	}
	if current.Name != "office league" || current.Code != 12 {
		t.Fatalf("unexpected table: %+v", current)
	}
	if _, ok := s.UpdatedAt(); !ok {
		t.Fatal("expected a publish time")
	}
}

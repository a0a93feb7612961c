package feed

import (
	"testing"
	"time"
)

func TestSnapshotApplyReplacesPresentFields(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot()
	now := time.Now()

	snap.Apply(Delta{
		Game:    &Game{CurrentEvent: 7},
		Details: &LeagueDetails{League: LeagueInfo{ID: 11, Name: "office league"}},
	}, now)

	if snap.Game == nil || snap.Game.CurrentEvent != 7 {
		t.Fatalf("expected game to be stored, got %+v", snap.Game)
	}
	if snap.Details == nil || snap.Details.League.ID != 11 {
		t.Fatalf("expected details to be stored, got %+v", snap.Details)
	}
	if !snap.UpdatedAt.Equal(now) {
		t.Fatalf("expected UpdatedAt %v, got %v", now, snap.UpdatedAt)
	}
}

func TestSnapshotApplyKeepsAbsentFields(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot()
	snap.Apply(Delta{
		Game: &Game{CurrentEvent: 7},
		Live: &Live{Elements: map[string]LiveElement{"1": {}}},
	}, time.Now())

	// A later cycle where live and game both failed must not clear them.
	snap.Apply(Delta{
		Details: &LeagueDetails{League: LeagueInfo{ID: 11}},
	}, time.Now())

	if snap.Game == nil || snap.Game.CurrentEvent != 7 {
		t.Fatalf("game was lost on partial update: %+v", snap.Game)
	}
	if snap.Live == nil {
		t.Fatal("live was lost on partial update")
	}
}

func TestSnapshotApplyMergesTeamMapsPerKey(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot()
	snap.Apply(Delta{
		TeamGameweeks: map[int]*TeamGameweek{
			101: {Picks: []Pick{{Element: 1, Position: 1}}},
			102: {Picks: []Pick{{Element: 2, Position: 1}}},
		},
	}, time.Now())

	snap.Apply(Delta{
		TeamGameweeks: map[int]*TeamGameweek{
			102: {Picks: []Pick{{Element: 3, Position: 1}}},
			103: nil, // failed fetch for this team
		},
	}, time.Now())

	if len(snap.TeamGameweeks) != 2 {
		t.Fatalf("expected 2 team gameweeks, got %d", len(snap.TeamGameweeks))
	}
	if snap.TeamGameweeks[101].Picks[0].Element != 1 {
		t.Fatalf("team 101 was overwritten: %+v", snap.TeamGameweeks[101])
	}
	if snap.TeamGameweeks[102].Picks[0].Element != 3 {
		t.Fatalf("team 102 was not replaced: %+v", snap.TeamGameweeks[102])
	}
	if _, ok := snap.TeamGameweeks[103]; ok {
		t.Fatal("nil team entry must not be stored")
	}
}

func TestSnapshotApplyEmptyDeltaKeepsTimestamp(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot()
	first := time.Now().Add(-time.Minute)
	snap.Apply(Delta{Game: &Game{CurrentEvent: 3}}, first)

	snap.Apply(Delta{}, time.Now())

	if !snap.UpdatedAt.Equal(first) {
		t.Fatalf("empty delta must not bump UpdatedAt, got %v", snap.UpdatedAt)
	}
}

func TestSnapshotCloneIsolatesMaps(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot()
	snap.Apply(Delta{
		TeamSummaries: map[int]*TeamSummary{
			101: {Entry: TeamEntry{Name: "Old Name"}},
		},
	}, time.Now())

	clone := snap.Clone()
	snap.Apply(Delta{
		TeamSummaries: map[int]*TeamSummary{
			101: {Entry: TeamEntry{Name: "New Name"}},
		},
	}, time.Now())

	if clone.TeamSummaries[101].Entry.Name != "Old Name" {
		t.Fatalf("clone observed a later merge: %+v", clone.TeamSummaries[101])
	}
}

func TestSnapshotReady(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot()
	if snap.Ready() {
		t.Fatal("blank snapshot must not be ready")
	}

	snap.Apply(Delta{
		Game:    &Game{CurrentEvent: 1},
		Details: &LeagueDetails{},
		Static:  &StaticInfo{},
		Live:    &Live{},
	}, time.Now())

	if !snap.Ready() {
		t.Fatal("snapshot with all core resources must be ready")
	}
}

package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/domain/table"
)

func bpsFixture(id int, home, away []feed.FixtureStatValue) feed.LiveFixture {
	return feed.LiveFixture{
		ID:      id,
		Started: true,
		Stats:   []feed.LiveFixtureStat{{Stat: "bps", Home: home, Away: away}},
	}
}

func projectionView(explain []feed.ExplainEntry, minutes int, fixtures ...feed.LiveFixture) *snapshotView {
	snap := feed.NewSnapshot()
	snap.Live = &feed.Live{
		Elements: map[string]feed.LiveElement{
			"7": {Explain: explain, Stats: feed.LiveStats{Minutes: minutes}},
		},
		Fixtures: fixtures,
	}
	return newSnapshotView(snap)
}

func TestEstimateBonusPointsTieSharing(t *testing.T) {
	t.Parallel()

	// BPS pool 42, 42, 35, 35, 20: both leaders take the top tier and both
	// players tied with the third sorted value take the bottom one.
	fixture := bpsFixture(100,
		[]feed.FixtureStatValue{{Element: 3, Value: 35}, {Element: 4, Value: 35}, {Element: 5, Value: 20}},
		[]feed.FixtureStatValue{{Element: 1, Value: 42}, {Element: 2, Value: 42}},
	)

	tests := []struct {
		name     string
		playerID int
		want     int
	}{
		{name: "first tied leader", playerID: 1, want: 3},
		{name: "second tied leader", playerID: 2, want: 3},
		{name: "tied with third sorted value", playerID: 3, want: 1},
		{name: "also tied with third sorted value", playerID: 4, want: 1},
		{name: "below third place", playerID: 5, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := estimateBonusPoints(fixture, tc.playerID, 90); got != tc.want {
				t.Fatalf("estimateBonusPoints(player %d) = %d, want %d", tc.playerID, got, tc.want)
			}
		})
	}
}

func TestEstimateBonusPointsEdgeCases(t *testing.T) {
	t.Parallel()

	pool := bpsFixture(100,
		[]feed.FixtureStatValue{{Element: 3, Value: 35}, {Element: 5, Value: 20}},
		[]feed.FixtureStatValue{{Element: 1, Value: 42}, {Element: 2, Value: 40}},
	)

	tests := []struct {
		name     string
		fixture  feed.LiveFixture
		playerID int
		minutes  int
		want     int
	}{
		{
			name: "no bps stat recorded",
			fixture: feed.LiveFixture{ID: 100, Stats: []feed.LiveFixtureStat{
				{Stat: "goals_scored", Home: []feed.FixtureStatValue{{Element: 1, Value: 1}}},
			}},
			playerID: 1,
			minutes:  90,
		},
		{
			name: "fewer than three entries",
			fixture: bpsFixture(100,
				[]feed.FixtureStatValue{{Element: 1, Value: 42}},
				[]feed.FixtureStatValue{{Element: 2, Value: 35}},
			),
			playerID: 1,
			minutes:  90,
		},
		{name: "player absent from bps pool", fixture: pool, playerID: 9, minutes: 90},
		{name: "below third place with under fifteen minutes", fixture: pool, playerID: 5, minutes: 5},
		{name: "below third place with full minutes", fixture: pool, playerID: 5, minutes: 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := estimateBonusPoints(tc.fixture, tc.playerID, tc.minutes); got != tc.want {
				t.Fatalf("estimateBonusPoints() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPlayerProjectedPointsAddsBonusEstimate(t *testing.T) {
	t.Parallel()

	explain := []feed.ExplainEntry{{
		Fixture: 100,
		Points: []feed.PointsBreakdown{
			{Name: "Minutes played", Points: 2, Value: 90, Stat: "minutes"},
			{Name: "Goals scored", Points: 4, Value: 1, Stat: "goals_scored"},
		},
	}}
	fixture := bpsFixture(100,
		[]feed.FixtureStatValue{{Element: 7, Value: 40}},
		[]feed.FixtureStatValue{{Element: 8, Value: 30}, {Element: 9, Value: 25}},
	)
	view := projectionView(explain, 90, fixture)

	got, err := playerProjectedPoints(view, 7)
	if err != nil {
		t.Fatalf("project player points: %v", err)
	}
	if got != 9 {
		t.Fatalf("playerProjectedPoints() = %d, want 9 (6 scored + 3 estimated bonus)", got)
	}
}

func TestPlayerProjectedPointsSkipsAppliedBonus(t *testing.T) {
	t.Parallel()

	explain := []feed.ExplainEntry{{
		Fixture: 100,
		Points: []feed.PointsBreakdown{
			{Name: "Minutes played", Points: 2, Value: 90, Stat: "minutes"},
			{Name: "Bonus", Points: 3, Value: 3, Stat: "bonus"},
		},
	}}
	fixture := bpsFixture(100,
		[]feed.FixtureStatValue{{Element: 7, Value: 40}},
		[]feed.FixtureStatValue{{Element: 8, Value: 30}, {Element: 9, Value: 25}},
	)
	view := projectionView(explain, 90, fixture)

	got, err := playerProjectedPoints(view, 7)
	if err != nil {
		t.Fatalf("project player points: %v", err)
	}
	if got != 5 {
		t.Fatalf("playerProjectedPoints() = %d, want 5 with no extra estimate", got)
	}
}

func TestPlayerProjectedPointsWithoutFixtureStats(t *testing.T) {
	t.Parallel()

	// The live feed can list the explain breakdown before the fixture itself
	// appears; the projection then carries only the scored points.
	explain := []feed.ExplainEntry{{
		Fixture: 100,
		Points: []feed.PointsBreakdown{
			{Name: "Minutes played", Points: 1, Value: 30, Stat: "minutes"},
		},
	}}
	view := projectionView(explain, 30)

	got, err := playerProjectedPoints(view, 7)
	if err != nil {
		t.Fatalf("project player points: %v", err)
	}
	if got != 1 {
		t.Fatalf("playerProjectedPoints() = %d, want 1", got)
	}
}

func TestPlayerProjectedPointsUnknownPlayer(t *testing.T) {
	t.Parallel()

	view := projectionView(nil, 0)

	if _, err := playerProjectedPoints(view, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("playerProjectedPoints(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestProjectionExplanations(t *testing.T) {
	t.Parallel()

	players := []table.Player{
		{DisplayName: "Haaland", Points: 5, ProjectedPoints: 8, HasPlayed: true, PlayStatus: table.Playing()},
		{DisplayName: "Gordon", Points: 4, ProjectedPoints: 4, HasPlayed: true, PlayStatus: table.SubbedIn(11)},
		{DisplayName: "Pope", Points: 2, ProjectedPoints: 2, HasPlayed: true, PlayStatus: table.Benched()},
		{DisplayName: "Saliba", Points: 0, ProjectedPoints: 0, HasPlayed: true, PlayStatus: table.Playing()},
		{DisplayName: "Isak", Points: 3, ProjectedPoints: 6, HasPlayed: false, PlayStatus: table.Playing()},
		{DisplayName: "Raya", Points: 6, ProjectedPoints: 6, HasPlayed: true, PlayStatus: table.Playing()},
	}

	got := projectionExplanations(players)
	if len(got) != 2 {
		t.Fatalf("projectionExplanations() returned %d notes, want 2: %+v", len(got), got)
	}

	bonus := got[0]
	if bonus.Name != "Haaland" || bonus.BonusPoints == nil || *bonus.BonusPoints != 3 || bonus.SubbedPoints != nil {
		t.Fatalf("unexpected pending-bonus note: %+v", bonus)
	}

	subbed := got[1]
	if subbed.Name != "Gordon" || subbed.SubbedPoints == nil || *subbed.SubbedPoints != 4 || subbed.BonusPoints != nil {
		t.Fatalf("unexpected substitution note: %+v", subbed)
	}
}

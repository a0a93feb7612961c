package usecase

import (
	"fmt"
	"strconv"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/domain/table"
)

const shirtURLBase = "https://draft.premierleague.com/img/shirts/standard/"

// snapshotView wraps a snapshot clone with id-keyed indexes so per-player
// property lookups during a table computation are O(1).
type snapshotView struct {
	snap     *feed.Snapshot
	elements map[int]feed.StaticElement
	teams    map[int]feed.StaticTeam
	live     map[int]feed.LiveElement
	fixtures map[int]feed.LiveFixture
}

func newSnapshotView(snap *feed.Snapshot) *snapshotView {
	view := &snapshotView{
		snap:     snap,
		elements: make(map[int]feed.StaticElement),
		teams:    make(map[int]feed.StaticTeam),
		live:     make(map[int]feed.LiveElement),
		fixtures: make(map[int]feed.LiveFixture),
	}

	if snap.Static != nil {
		for _, element := range snap.Static.Elements {
			view.elements[element.ID] = element
		}
		for _, team := range snap.Static.Teams {
			view.teams[team.ID] = team
		}
	}
	if snap.Live != nil {
		for _, fixture := range snap.Live.Fixtures {
			view.fixtures[fixture.ID] = fixture
		}
		for key, element := range snap.Live.Elements {
			if id, err := strconv.Atoi(key); err == nil && id > 0 {
				view.live[id] = element
			}
		}
	}

	return view
}

func (v *snapshotView) element(playerID int) (feed.StaticElement, error) {
	element, ok := v.elements[playerID]
	if !ok {
		return feed.StaticElement{}, fmt.Errorf("%w: player %d missing from static info", ErrNotFound, playerID)
	}
	return element, nil
}

func (v *snapshotView) liveElement(playerID int) (feed.LiveElement, error) {
	element, ok := v.live[playerID]
	if !ok {
		return feed.LiveElement{}, fmt.Errorf("%w: player %d missing from live feed", ErrNotFound, playerID)
	}
	return element, nil
}

func (v *snapshotView) playerTeam(playerID int) (table.Team, error) {
	element, err := v.element(playerID)
	if err != nil {
		return table.Team{}, err
	}
	team, ok := v.teams[element.Team]
	if !ok {
		return table.Team{}, fmt.Errorf("%w: team %d missing for player %d", ErrNotFound, element.Team, playerID)
	}
	return table.Team{
		ID:         team.ID,
		Code:       team.Code,
		Name:       team.Name,
		ShortName:  team.ShortName,
		ShirtURL:   fmt.Sprintf("%sshirt_%d-36.png", shirtURLBase, team.Code),
		GKShirtURL: fmt.Sprintf("%sshirt_%d_1-36.png", shirtURLBase, team.Code),
	}, nil
}

// playerFixtures resolves the fixtures the player is involved in this
// gameweek, taken from the explain breakdown of the live feed.
func (v *snapshotView) playerFixtures(playerID int) ([]feed.LiveFixture, error) {
	element, err := v.liveElement(playerID)
	if err != nil {
		return nil, err
	}

	fixtures := make([]feed.LiveFixture, 0, len(element.Explain))
	for _, entry := range element.Explain {
		if fixture, ok := v.fixtures[entry.Fixture]; ok {
			fixtures = append(fixtures, fixture)
		}
	}
	return fixtures, nil
}

func (v *snapshotView) playerHasPlayed(playerID int) bool {
	element, err := v.liveElement(playerID)
	if err != nil {
		return false
	}
	return element.Stats.Minutes > 0
}

func (v *snapshotView) playerFixturesFinished(playerID int) bool {
	fixtures, err := v.playerFixtures(playerID)
	if err != nil {
		return false
	}
	for _, fixture := range fixtures {
		if !fixture.Finished {
			return false
		}
	}
	return true
}

func (v *snapshotView) playerHasUpcomingFixtures(playerID int) bool {
	fixtures, err := v.playerFixtures(playerID)
	if err != nil {
		return false
	}
	for _, fixture := range fixtures {
		if !fixture.Started {
			return true
		}
	}
	return false
}

func (v *snapshotView) teamSummaryEntry(teamID int) (feed.TeamEntry, bool) {
	summary, ok := v.snap.TeamSummaries[teamID]
	if !ok || summary == nil {
		return feed.TeamEntry{}, false
	}
	return summary.Entry, true
}

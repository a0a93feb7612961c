package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	sonic "github.com/bytedance/sonic"
)

// Live mirrors the upstream /event/{gw}/live document. Elements is keyed by
// the player id as a decimal string, which is how the provider serializes it.
type Live struct {
	Elements map[string]LiveElement `json:"elements"`
	Fixtures []LiveFixture          `json:"fixtures"`
}

type LiveElement struct {
	Explain []ExplainEntry `json:"explain"`
	Stats   LiveStats      `json:"stats"`
}

// ExplainEntry is serialized upstream as a two element heterogeneous array:
// the point breakdown list on one index and the fixture id on the other.
type ExplainEntry struct {
	Points  []PointsBreakdown
	Fixture int
}

func (e *ExplainEntry) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := sonic.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("explain entry is not an array: %w", err)
	}

	for _, part := range parts {
		trimmed := bytes.TrimSpace(part)
		if len(trimmed) == 0 {
			continue
		}
		if trimmed[0] == '[' {
			if err := sonic.Unmarshal(trimmed, &e.Points); err != nil {
				return fmt.Errorf("decode explain point sources: %w", err)
			}
			continue
		}
		if err := sonic.Unmarshal(trimmed, &e.Fixture); err != nil {
			return fmt.Errorf("decode explain fixture id: %w", err)
		}
	}

	return nil
}

func (e ExplainEntry) MarshalJSON() ([]byte, error) {
	return sonic.Marshal([]any{e.Points, e.Fixture})
}

type PointsBreakdown struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Value  int    `json:"value"`
	Stat   string `json:"stat"`
}

type LiveStats struct {
	Minutes       int  `json:"minutes"`
	GoalsScored   int  `json:"goals_scored"`
	Assists       int  `json:"assists"`
	CleanSheets   int  `json:"clean_sheets"`
	GoalsConceded int  `json:"goals_conceded"`
	OwnGoals      int  `json:"own_goals"`
	Saves         int  `json:"saves"`
	YellowCards   int  `json:"yellow_cards"`
	RedCards      int  `json:"red_cards"`
	Bonus         int  `json:"bonus"`
	BPS           int  `json:"bps"`
	TotalPoints   int  `json:"total_points"`
	InDreamteam   bool `json:"in_dreamteam"`
}

type LiveFixture struct {
	ID                  int               `json:"id"`
	Event               int               `json:"event"`
	Started             bool              `json:"started"`
	Finished            bool              `json:"finished"`
	FinishedProvisional bool              `json:"finished_provisional"`
	Minutes             int               `json:"minutes"`
	KickoffTime         string            `json:"kickoff_time"`
	TeamA               int               `json:"team_a"`
	TeamH               int               `json:"team_h"`
	TeamAScore          *int              `json:"team_a_score"`
	TeamHScore          *int              `json:"team_h_score"`
	Stats               []LiveFixtureStat `json:"stats"`
}

type LiveFixtureStat struct {
	Stat string             `json:"s"`
	Home []FixtureStatValue `json:"h"`
	Away []FixtureStatValue `json:"a"`
}

type FixtureStatValue struct {
	Element int `json:"element"`
	Value   int `json:"value"`
}

// Element looks up a player's live entry by numeric id.
func (l *Live) Element(playerID int) (LiveElement, bool) {
	element, ok := l.Elements[strconv.Itoa(playerID)]
	return element, ok
}

// Fixture looks up a live fixture by id.
func (l *Live) Fixture(fixtureID int) (LiveFixture, bool) {
	for _, fixture := range l.Fixtures {
		if fixture.ID == fixtureID {
			return fixture, true
		}
	}
	return LiveFixture{}, false
}

package feed

import "time"

// Snapshot is the merged view of every upstream resource the service has
// managed to fetch so far. Fields are nil until their first successful fetch
// and are only ever replaced wholesale, never mutated in place, so readers
// holding a Clone can use the referenced documents without synchronization.
type Snapshot struct {
	Game          *Game
	Details       *LeagueDetails
	Static        *StaticInfo
	Live          *Live
	TeamGameweeks map[int]*TeamGameweek
	TeamSummaries map[int]*TeamSummary
	UpdatedAt     time.Time
}

// Delta carries the results of one refresh cycle. A nil field means the
// fetch failed or was skipped this cycle and the existing value must be kept.
type Delta struct {
	Game          *Game
	Details       *LeagueDetails
	Static        *StaticInfo
	Live          *Live
	TeamGameweeks map[int]*TeamGameweek
	TeamSummaries map[int]*TeamSummary
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		TeamGameweeks: make(map[int]*TeamGameweek),
		TeamSummaries: make(map[int]*TeamSummary),
	}
}

// Empty reports whether the delta carries nothing to merge.
func (d Delta) Empty() bool {
	return d.Game == nil &&
		d.Details == nil &&
		d.Static == nil &&
		d.Live == nil &&
		len(d.TeamGameweeks) == 0 &&
		len(d.TeamSummaries) == 0
}

// Apply merges a refresh delta into the snapshot. Present fields replace the
// stored value, absent fields keep it, and the per-team maps merge key by
// key. Nothing is ever deleted, so the snapshot only grows more complete.
func (s *Snapshot) Apply(d Delta, now time.Time) {
	if d.Game != nil {
		s.Game = d.Game
	}
	if d.Details != nil {
		s.Details = d.Details
	}
	if d.Static != nil {
		s.Static = d.Static
	}
	if d.Live != nil {
		s.Live = d.Live
	}

	for teamID, gw := range d.TeamGameweeks {
		if gw == nil {
			continue
		}
		if s.TeamGameweeks == nil {
			s.TeamGameweeks = make(map[int]*TeamGameweek)
		}
		s.TeamGameweeks[teamID] = gw
	}
	for teamID, summary := range d.TeamSummaries {
		if summary == nil {
			continue
		}
		if s.TeamSummaries == nil {
			s.TeamSummaries = make(map[int]*TeamSummary)
		}
		s.TeamSummaries[teamID] = summary
	}

	if !d.Empty() {
		s.UpdatedAt = now
	}
}

// Clone copies the snapshot shell and its maps. The referenced documents are
// shared: merges replace pointers instead of mutating, so a clone stays
// consistent while the original keeps advancing.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return NewSnapshot()
	}

	out := &Snapshot{
		Game:          s.Game,
		Details:       s.Details,
		Static:        s.Static,
		Live:          s.Live,
		TeamGameweeks: make(map[int]*TeamGameweek, len(s.TeamGameweeks)),
		TeamSummaries: make(map[int]*TeamSummary, len(s.TeamSummaries)),
		UpdatedAt:     s.UpdatedAt,
	}
	for teamID, gw := range s.TeamGameweeks {
		out.TeamGameweeks[teamID] = gw
	}
	for teamID, summary := range s.TeamSummaries {
		out.TeamSummaries[teamID] = summary
	}

	return out
}

// Ready reports whether every resource a table computation needs is present.
func (s *Snapshot) Ready() bool {
	return s != nil &&
		s.Game != nil &&
		s.Details != nil &&
		s.Static != nil &&
		s.Live != nil
}

// Gameweek reports the current gameweek, or zero before the first
// successful /game fetch.
func (s *Snapshot) Gameweek() int {
	if s == nil || s.Game == nil {
		return 0
	}
	return s.Game.CurrentEvent
}

// Status summarizes which parts of the snapshot are populated.
type Status struct {
	HasGame          bool      `json:"has_game"`
	HasDetails       bool      `json:"has_details"`
	HasStatic        bool      `json:"has_static"`
	HasLive          bool      `json:"has_live"`
	TeamGameweeks    int       `json:"team_gameweeks"`
	TeamSummaries    int       `json:"team_summaries"`
	CurrentGameweek  int       `json:"current_gameweek"`
	LastRefreshedAt  time.Time `json:"last_refreshed_at"`
	Ready            bool      `json:"ready"`
}

func (s *Snapshot) Status() Status {
	if s == nil {
		return Status{}
	}
	return Status{
		HasGame:          s.Game != nil,
		HasDetails:       s.Details != nil,
		HasStatic:        s.Static != nil,
		HasLive:          s.Live != nil,
		TeamGameweeks:    len(s.TeamGameweeks),
		TeamSummaries:    len(s.TeamSummaries),
		CurrentGameweek:  s.Gameweek(),
		LastRefreshedAt:  s.UpdatedAt,
		Ready:            s.Ready(),
	}
}

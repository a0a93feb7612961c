package feed

// LeagueDetails mirrors the upstream /league/{id}/details document.
type LeagueDetails struct {
	League        LeagueInfo    `json:"league"`
	LeagueEntries []LeagueEntry `json:"league_entries"`
	Standings     []Standing    `json:"standings"`
	Matches       []H2HMatch    `json:"matches"`
}

type LeagueInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Scoring     string `json:"scoring"`
	DraftStatus string `json:"draft_status"`
	StartEvent  int    `json:"start_event"`
	StopEvent   int    `json:"stop_event"`
	Trades      string `json:"trades"`
}

// LeagueEntry carries two distinct identifiers: ID is the league-entry id
// referenced by standings and head-to-head matches, EntryID is the team id
// that keys roster and summary endpoints.
type LeagueEntry struct {
	ID              int    `json:"id"`
	EntryID         int    `json:"entry_id"`
	EntryName       string `json:"entry_name"`
	PlayerFirstName string `json:"player_first_name"`
	PlayerLastName  string `json:"player_last_name"`
	ShortName       string `json:"short_name"`
	WaiverPick      int    `json:"waiver_pick"`
}

type Standing struct {
	LeagueEntry   int `json:"league_entry"`
	Rank          int `json:"rank"`
	LastRank      int `json:"last_rank"`
	RankSort      int `json:"rank_sort"`
	Total         int `json:"total"`
	EventTotal    int `json:"event_total"`
	MatchesWon    int `json:"matches_won"`
	MatchesDrawn  int `json:"matches_drawn"`
	MatchesLost   int `json:"matches_lost"`
	PointsFor     int `json:"points_for"`
	PointsAgainst int `json:"points_against"`
}

type H2HMatch struct {
	Event              int  `json:"event"`
	LeagueEntry1       int  `json:"league_entry_1"`
	LeagueEntry1Points int  `json:"league_entry_1_points"`
	LeagueEntry2       int  `json:"league_entry_2"`
	LeagueEntry2Points int  `json:"league_entry_2_points"`
	Started            bool `json:"started"`
	Finished           bool `json:"finished"`
}

// EntryByTeamID resolves the league entry whose EntryID matches the given
// team id.
func (d *LeagueDetails) EntryByTeamID(teamID int) (LeagueEntry, bool) {
	for _, entry := range d.LeagueEntries {
		if entry.EntryID == teamID {
			return entry, true
		}
	}
	return LeagueEntry{}, false
}

// StandingByLeagueEntry resolves the standings row for a league-entry id.
func (d *LeagueDetails) StandingByLeagueEntry(leagueEntryID int) (Standing, bool) {
	for _, row := range d.Standings {
		if row.LeagueEntry == leagueEntryID {
			return row, true
		}
	}
	return Standing{}, false
}

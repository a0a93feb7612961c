package table

// LeagueTable is the derived document served to clients. Entries are sorted
// by total points, highest first. Matches is only populated for head-to-head
// leagues and indexes the full season schedule by gameweek.
type LeagueTable struct {
	Code    int                `json:"code"`
	Name    string             `json:"name"`
	Scoring Scoring            `json:"scoring"`
	Entries []Entry            `json:"entries"`
	Matches map[int][]H2HMatch `json:"matches,omitempty"`
}

// Entry is one fantasy team's row in the table.
type Entry struct {
	TeamCode                   int                          `json:"team_code"`
	TeamName                   string                       `json:"team_name"`
	OwnerName                  string                       `json:"owner_name"`
	TotalPoints                int                          `json:"total_points"`
	TotalProjectedPoints       int                          `json:"total_projected_points"`
	GwPoints                   int                          `json:"gw_points"`
	GwProjectedPoints          int                          `json:"gw_projected_points"`
	ProjectedPointsExplanation []ProjectedPointsExplanation `json:"projected_points_explanation"`
	Players                    []Player                     `json:"players"`
	H2H                        *H2HInfo                     `json:"h2h_info,omitempty"`
}

// Player is one of the 15 roster slots of an entry, fully resolved against
// the static and live feeds.
type Player struct {
	ID                  int           `json:"id"`
	FullName            string        `json:"full_name"`
	DisplayName         string        `json:"display_name"`
	Team                Team          `json:"team"`
	Position            Position      `json:"team_pos"`
	Points              int           `json:"points"`
	BPS                 int           `json:"bps"`
	ProjectedPoints     int           `json:"projected_points"`
	PointSources        []PointSource `json:"point_sources"`
	OnField             bool          `json:"on_field"`
	PickNumber          int           `json:"pick_number"`
	HasPlayed           bool          `json:"has_played"`
	FixturesFinished    bool          `json:"fixtures_finished"`
	HasUpcomingFixtures bool          `json:"has_upcoming_fixtures"`
	News                string        `json:"news"`
	Status              string        `json:"status"`
	PlayStatus          PlayStatus    `json:"play_status"`
}

// Team is the real club a player belongs to.
type Team struct {
	ID         int    `json:"id"`
	Code       int    `json:"code"`
	Name       string `json:"name"`
	ShortName  string `json:"short_name"`
	ShirtURL   string `json:"shirt_url"`
	GKShirtURL string `json:"gk_shirt_url"`
}

// PointSource is one scoring line from the live explain breakdown.
type PointSource struct {
	Name        string `json:"name"`
	Amount      int    `json:"amount"`
	PointsTotal int    `json:"points_total"`
	Stat        string `json:"stat"`
	Fixture     int    `json:"fixture"`
}

// H2HInfo is an entry's head-to-head record plus its current opponent,
// identified by league-entry id.
type H2HInfo struct {
	Points          int `json:"points"`
	MatchesPlayed   int `json:"matches_played"`
	MatchesWon      int `json:"matches_won"`
	MatchesDrawn    int `json:"matches_drawn"`
	MatchesLost     int `json:"matches_lost"`
	CurrentOpponent int `json:"current_opponent"`
}

// H2HMatch is one scheduled head-to-head pairing. Both sides are
// league-entry ids.
type H2HMatch struct {
	Gw           int  `json:"gw"`
	LeagueEntry1 int  `json:"league_entry_1"`
	Entry1Points int  `json:"league_entry_1_points"`
	LeagueEntry2 int  `json:"league_entry_2"`
	Entry2Points int  `json:"league_entry_2_points"`
	Started      bool `json:"started"`
	Finished     bool `json:"finished"`
}

// ProjectedPointsExplanation explains why a player's projection differs
// from the points already on the board.
type ProjectedPointsExplanation struct {
	Name         string `json:"name"`
	BonusPoints  *int   `json:"bonus_points,omitempty"`
	SubbedPoints *int   `json:"subbed_points,omitempty"`
}

package feed

// TeamGameweek mirrors the upstream /entry/{team}/event/{gw} document: the
// 15 roster picks in slot order plus substitutions the provider has already
// applied for the gameweek.
type TeamGameweek struct {
	Picks []Pick         `json:"picks"`
	Subs  []Substitution `json:"subs"`
}

// Pick is a roster slot. Position is the slot number: 1-11 starters in
// formation order, 12-15 the ordered bench.
type Pick struct {
	Element       int  `json:"element"`
	Position      int  `json:"position"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
	Multiplier    int  `json:"multiplier"`
}

type Substitution struct {
	ElementIn  int `json:"element_in"`
	ElementOut int `json:"element_out"`
	Event      int `json:"event"`
}

// SubbedIn reports whether the provider substituted the player into the
// starting eleven this gameweek.
func (t *TeamGameweek) SubbedIn(playerID int) bool {
	for _, sub := range t.Subs {
		if sub.ElementIn == playerID {
			return true
		}
	}
	return false
}

// SubbedOut reports whether the provider substituted the player off this
// gameweek.
func (t *TeamGameweek) SubbedOut(playerID int) bool {
	for _, sub := range t.Subs {
		if sub.ElementOut == playerID {
			return true
		}
	}
	return false
}

// TeamSummary mirrors the upstream /entry/{team}/public document.
type TeamSummary struct {
	Entry TeamEntry `json:"entry"`
}

type TeamEntry struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	PlayerFirstName string `json:"player_first_name"`
	PlayerLastName  string `json:"player_last_name"`
	OverallPoints   int    `json:"overall_points"`
	EventPoints     int    `json:"event_points"`
}

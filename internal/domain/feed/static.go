package feed

// StaticInfo mirrors the slow-moving parts of the upstream /bootstrap-static
// document: player metadata, real teams and the season calendar.
type StaticInfo struct {
	Elements []StaticElement `json:"elements"`
	Teams    []StaticTeam    `json:"teams"`
	Events   StaticEvents    `json:"events"`
}

type StaticElement struct {
	ID          int    `json:"id"`
	WebName     string `json:"web_name"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	ElementType int    `json:"element_type"`
	Team        int    `json:"team"`
	News        string `json:"news"`
	Status      string `json:"status"`
}

type StaticTeam struct {
	ID        int    `json:"id"`
	Code      int    `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type StaticEvents struct {
	Current int         `json:"current"`
	Next    int         `json:"next"`
	Data    []EventInfo `json:"data"`
}

type EventInfo struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Finished bool   `json:"finished"`
}

const defaultSeasonLength = 38

// SeasonLength reports the number of gameweeks in the season calendar.
func (s *StaticInfo) SeasonLength() int {
	if s == nil || len(s.Events.Data) == 0 {
		return defaultSeasonLength
	}
	return len(s.Events.Data)
}

// ElementByID resolves a player's static metadata by id.
func (s *StaticInfo) ElementByID(playerID int) (StaticElement, bool) {
	for _, element := range s.Elements {
		if element.ID == playerID {
			return element, true
		}
	}
	return StaticElement{}, false
}

// TeamByID resolves a real team by id.
func (s *StaticInfo) TeamByID(teamID int) (StaticTeam, bool) {
	for _, team := range s.Teams {
		if team.ID == teamID {
			return team, true
		}
	}
	return StaticTeam{}, false
}

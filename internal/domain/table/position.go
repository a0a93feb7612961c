package table

// Position slot numbers as used by the provider's element_type field.
const (
	PositionGoalkeeper = 1
	PositionDefender   = 2
	PositionMidfielder = 3
	PositionForward    = 4
)

// Position is a player's field position.
type Position struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

func PositionFromNumber(n int) Position {
	switch n {
	case PositionGoalkeeper:
		return Position{Number: n, Name: "Goalkeeper"}
	case PositionDefender:
		return Position{Number: n, Name: "Defender"}
	case PositionMidfielder:
		return Position{Number: n, Name: "Midfielder"}
	case PositionForward:
		return Position{Number: n, Name: "Forward"}
	default:
		return Position{Number: n, Name: "Unknown"}
	}
}

// MinimumOnField is the least number of players of this position a legal
// eleven must field. Goalkeepers are handled by a dedicated swap rule and
// report zero here.
func (p Position) MinimumOnField() int {
	switch p.Number {
	case PositionDefender:
		return 3
	case PositionMidfielder:
		return 2
	case PositionForward:
		return 1
	default:
		return 0
	}
}

package table

// Scoring is the league scoring mode.
type Scoring string

const (
	ScoringClassic    Scoring = "classic"
	ScoringHeadToHead Scoring = "h2h"
)

// ScoringFromFeed maps the provider's single-letter scoring code.
func ScoringFromFeed(v string) Scoring {
	if v == "h" {
		return ScoringHeadToHead
	}
	return ScoringClassic
}

package usecase

import (
	"sort"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/domain/table"
)

const (
	bonusMinEntries = 3
	bonusMinMinutes = 15
	statBonus       = "bonus"
	statBPS         = "bps"
)

// playerPointSources flattens the explain breakdown of every fixture the
// player is involved in this gameweek.
func playerPointSources(view *snapshotView, playerID int) ([]table.PointSource, error) {
	element, err := view.liveElement(playerID)
	if err != nil {
		return nil, err
	}

	sources := make([]table.PointSource, 0, 8)
	for _, entry := range element.Explain {
		for _, point := range entry.Points {
			sources = append(sources, table.PointSource{
				Name:        point.Name,
				Amount:      point.Value,
				PointsTotal: point.Points,
				Stat:        point.Stat,
				Fixture:     entry.Fixture,
			})
		}
	}
	return sources, nil
}

// playerProjectedPoints sums the live point sources per fixture and, when the
// provider has not yet applied the bonus stat, adds an estimate derived from
// the fixture's BPS standings.
func playerProjectedPoints(view *snapshotView, playerID int) (int, error) {
	element, err := view.liveElement(playerID)
	if err != nil {
		return 0, err
	}

	points := 0
	for _, entry := range element.Explain {
		bonusApplied := false
		for _, point := range entry.Points {
			points += point.Points
			if point.Stat == statBonus {
				bonusApplied = true
			}
		}
		if bonusApplied {
			continue
		}
		if fixture, ok := view.fixtures[entry.Fixture]; ok {
			points += estimateBonusPoints(fixture, playerID, element.Stats.Minutes)
		}
	}

	return points, nil
}

// estimateBonusPoints predicts the 3/2/1 bonus award from the fixture's BPS
// stat. Ties share the tier: every player equal to the highest, second or
// third sorted BPS value earns that tier's bonus.
func estimateBonusPoints(fixture feed.LiveFixture, playerID, playerMinutes int) int {
	for _, stat := range fixture.Stats {
		if stat.Stat != statBPS {
			continue
		}

		entries := make([]feed.FixtureStatValue, 0, len(stat.Home)+len(stat.Away))
		entries = append(entries, stat.Away...)
		entries = append(entries, stat.Home...)
		if len(entries) < bonusMinEntries {
			return 0
		}

		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Value > entries[j].Value })

		playerBPS := 0
		for _, entry := range entries {
			if entry.Element == playerID {
				playerBPS = entry.Value
				break
			}
		}
		if playerBPS == 0 {
			return 0
		}
		if playerBPS < entries[2].Value && playerMinutes < bonusMinMinutes {
			return 0
		}

		switch playerBPS {
		case entries[0].Value:
			return 3
		case entries[1].Value:
			return 2
		case entries[2].Value:
			return 1
		default:
			return 0
		}
	}

	return 0
}

// teamProjectedPoints sums projections over the players expected to count.
func teamProjectedPoints(players []table.Player) int {
	total := 0
	for _, player := range players {
		if player.PlayStatus.Counted() {
			total += player.ProjectedPoints
		}
	}
	return total
}

// projectionExplanations lists, for every counted player already on the
// pitch with points, why the projection differs from the board: a pending
// bonus estimate or points arriving through a predicted substitution.
func projectionExplanations(players []table.Player) []table.ProjectedPointsExplanation {
	explanations := make([]table.ProjectedPointsExplanation, 0, 4)
	for _, player := range players {
		if !player.PlayStatus.Counted() {
			continue
		}
		if !player.HasPlayed || player.Points <= 0 {
			continue
		}

		var bonus *int
		if diff := player.ProjectedPoints - player.Points; diff != 0 {
			d := diff
			bonus = &d
		}

		var subbed *int
		if player.PlayStatus.State == table.PlayStateSubbedIn {
			p := player.Points
			subbed = &p
		}

		if bonus != nil || subbed != nil {
			explanations = append(explanations, table.ProjectedPointsExplanation{
				Name:         player.DisplayName,
				BonusPoints:  bonus,
				SubbedPoints: subbed,
			})
		}
	}
	return explanations
}

package usecase

import (
	"sort"

	"github.com/riskibarqy/fpl-proxy/internal/domain/table"
)

const outfieldOnField = 10

type substitution struct {
	in  int
	out int
}

// resolvePlayStatus predicts how the provider will settle the eleven once
// the gameweek completes. Players are processed in pick order; the passes
// run in sequence: starters and bench get their initial state, stranded
// goalkeepers swap with the backup keeper, bench players cover formation
// minimums, then fill the eleven, and whatever is still undecided counts as
// playing.
func resolvePlayStatus(players []table.Player) {
	sort.SliceStable(players, func(i, j int) bool { return players[i].PickNumber < players[j].PickNumber })

	for i := range players {
		player := &players[i]
		if player.OnField && (player.HasPlayed || !player.FixturesFinished) {
			player.PlayStatus = table.Playing()
		}
		if !player.OnField {
			player.PlayStatus = table.Benched()
		}
	}

	var subs []substitution
	for i := range players {
		player := players[i]
		if !player.OnField || player.HasPlayed || !player.FixturesFinished {
			continue
		}

		if player.Position.Number == table.PositionGoalkeeper {
			if sub, ok := goalkeeperSwap(players, player); ok {
				subs = append(subs, sub)
			}
			continue
		}

		for j := range players {
			bench := players[j]
			if !benchCandidate(bench) || partOf(subs, bench.ID) {
				continue
			}

			if countPlayingSamePosition(players, subs, bench.Position.Number) < bench.Position.MinimumOnField() {
				subs = append(subs, substitution{in: bench.ID, out: player.ID})
				break
			}

			if countPlayingOutfield(players, subs) < outfieldOnField {
				subs = append(subs, substitution{in: bench.ID, out: player.ID})
				break
			}
		}
	}

	for _, sub := range subs {
		for i := range players {
			switch players[i].ID {
			case sub.in:
				players[i].PlayStatus = table.SubbedIn(sub.out)
			case sub.out:
				players[i].PlayStatus = table.SubbedOff(sub.in)
			}
		}
	}

	for i := range players {
		if players[i].PlayStatus.State == table.PlayStateUnknown {
			players[i].PlayStatus = table.Playing()
		}
	}
}

// goalkeeperSwap finds the backup keeper for a starting keeper whose
// fixtures finished without minutes. There is exactly one other goalkeeper
// in a legal squad.
func goalkeeperSwap(players []table.Player, keeper table.Player) (substitution, bool) {
	for _, other := range players {
		if other.Position.Number != table.PositionGoalkeeper || other.ID == keeper.ID {
			continue
		}
		if other.HasPlayed || other.HasUpcomingFixtures {
			return substitution{in: other.ID, out: keeper.ID}, true
		}
		return substitution{}, false
	}
	return substitution{}, false
}

// benchCandidate reports whether a bench player can still contribute this
// gameweek.
func benchCandidate(player table.Player) bool {
	return player.PickNumber >= 12 &&
		!player.OnField &&
		player.Position.Number != table.PositionGoalkeeper &&
		(player.HasPlayed || !player.FixturesFinished)
}

func partOf(subs []substitution, playerID int) bool {
	for _, sub := range subs {
		if sub.in == playerID || sub.out == playerID {
			return true
		}
	}
	return false
}

// countPlayingSamePosition counts confirmed starters of a position plus
// bench players already promoted into it.
func countPlayingSamePosition(players []table.Player, subs []substitution, position int) int {
	count := 0
	for _, player := range players {
		if player.Position.Number != position {
			continue
		}
		if player.PlayStatus.State == table.PlayStatePlaying || subbedIn(subs, player.ID) {
			count++
		}
	}
	return count
}

// countPlayingOutfield counts all confirmed outfield starters plus promoted
// bench players, goalkeepers excluded.
func countPlayingOutfield(players []table.Player, subs []substitution) int {
	count := 0
	for _, player := range players {
		if player.Position.Number == table.PositionGoalkeeper {
			continue
		}
		if player.PlayStatus.State == table.PlayStatePlaying || subbedIn(subs, player.ID) {
			count++
		}
	}
	return count
}

func subbedIn(subs []substitution, playerID int) bool {
	for _, sub := range subs {
		if sub.in == playerID {
			return true
		}
	}
	return false
}

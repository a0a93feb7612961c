package usecase

import (
	"context"
	"sort"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/domain/table"
	"github.com/riskibarqy/fpl-proxy/internal/platform/logging"
	"github.com/riskibarqy/fpl-proxy/internal/platform/store"
)

const (
	placeholderTeamName  = "<Team Name Unknown>"
	placeholderOwnerName = "<Team Owner Unknown>"
)

// TableService turns the current snapshot into a league table on a fixed
// interval and publishes each result to the table store.
type TableService struct {
	snapshots *store.SnapshotStore
	tables    *store.TableStore
	logger    *logging.Logger
	interval  time.Duration
}

func NewTableService(snapshots *store.SnapshotStore, tables *store.TableStore, logger *logging.Logger, interval time.Duration) *TableService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TableService{
		snapshots: snapshots,
		tables:    tables,
		logger:    logger,
		interval:  interval,
	}
}

// Run recomputes the table until the context is cancelled. A panic inside
// one cycle is logged and the loop keeps going; the previously published
// table stays available.
func (s *TableService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.computeCycle(ctx)
		}
	}
}

func (s *TableService) computeCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "table computation panicked", "panic", r)
		}
	}()

	if err := s.ComputeOnce(ctx); err != nil {
		if crerr.Is(err, ErrNotReady) {
			s.logger.DebugContext(ctx, "snapshot not ready for table computation")
			return
		}
		s.logger.ErrorContext(ctx, "table computation failed", "error", err)
	}
}

// ComputeOnce builds a table from the current snapshot and publishes it.
func (s *TableService) ComputeOnce(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "TableService.ComputeOnce")
	defer span.End()

	snap := s.snapshots.Snapshot()
	leagueTable, err := s.Compute(ctx, snap)
	if err != nil {
		return err
	}

	s.tables.Publish(*leagueTable)
	s.logger.InfoContext(ctx, "published league table",
		"league", leagueTable.Code,
		"entries", len(leagueTable.Entries),
		"gameweek", snap.Gameweek(),
	)
	return nil
}

// Compute builds a league table from a snapshot without publishing it.
func (s *TableService) Compute(ctx context.Context, snap *feed.Snapshot) (*table.LeagueTable, error) {
	if snap == nil || !snap.Ready() {
		return nil, crerr.Wrap(ErrNotReady, "snapshot incomplete")
	}

	view := newSnapshotView(snap)
	scoring := table.ScoringFromFeed(snap.Details.League.Scoring)

	entries := make([]table.Entry, 0, len(snap.Details.LeagueEntries))
	for _, leagueEntry := range snap.Details.LeagueEntries {
		entries = append(entries, s.computeEntry(ctx, view, leagueEntry))
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].TotalPoints > entries[j].TotalPoints })

	return &table.LeagueTable{
		Code:    snap.Details.League.ID,
		Name:    snap.Details.League.Name,
		Scoring: scoring,
		Entries: entries,
		Matches: computeLeagueMatches(snap, scoring),
	}, nil
}

func (s *TableService) computeEntry(ctx context.Context, view *snapshotView, leagueEntry feed.LeagueEntry) table.Entry {
	teamID := leagueEntry.EntryID
	players := s.extractPlayers(ctx, view, teamID)

	gwPoints := 0
	for _, player := range players {
		if player.OnField {
			gwPoints += player.Points
		}
	}
	gwProjected := teamProjectedPoints(players)

	teamName := placeholderTeamName
	ownerName := placeholderOwnerName
	totalBefore := 0
	if summary, ok := view.teamSummaryEntry(teamID); ok {
		teamName = summary.Name
		ownerName = summary.PlayerFirstName + " " + summary.PlayerLastName
		totalBefore = summary.OverallPoints - summary.EventPoints
	} else {
		s.logger.WarnContext(ctx, "team summary missing", "team", teamID)
	}

	return table.Entry{
		TeamCode:                   teamID,
		TeamName:                   teamName,
		OwnerName:                  ownerName,
		TotalPoints:                totalBefore + gwPoints,
		TotalProjectedPoints:       totalBefore + gwProjected,
		GwPoints:                   gwPoints,
		GwProjectedPoints:          gwProjected,
		ProjectedPointsExplanation: projectionExplanations(players),
		Players:                    players,
		H2H:                        computeH2HInfo(view.snap, leagueEntry),
	}
}

// extractPlayers resolves every roster slot of the team against the static
// and live feeds. A player missing from either feed is logged and skipped
// so one bad element never sinks the whole table.
func (s *TableService) extractPlayers(ctx context.Context, view *snapshotView, teamID int) []table.Player {
	gameweek, ok := view.snap.TeamGameweeks[teamID]
	if !ok || gameweek == nil {
		s.logger.WarnContext(ctx, "team gameweek missing", "team", teamID)
		return nil
	}

	players := make([]table.Player, 0, len(gameweek.Picks))
	for _, pick := range gameweek.Picks {
		player, err := buildPlayer(view, gameweek, pick)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping unresolvable player",
				"team", teamID,
				"player", pick.Element,
				"error", err,
			)
			continue
		}
		players = append(players, player)
	}

	resolvePlayStatus(players)
	return players
}

func buildPlayer(view *snapshotView, gameweek *feed.TeamGameweek, pick feed.Pick) (table.Player, error) {
	element, err := view.element(pick.Element)
	if err != nil {
		return table.Player{}, err
	}
	liveElement, err := view.liveElement(pick.Element)
	if err != nil {
		return table.Player{}, err
	}
	team, err := view.playerTeam(pick.Element)
	if err != nil {
		return table.Player{}, err
	}
	pointSources, err := playerPointSources(view, pick.Element)
	if err != nil {
		return table.Player{}, err
	}
	projected, err := playerProjectedPoints(view, pick.Element)
	if err != nil {
		return table.Player{}, err
	}

	onField := (pick.Position <= 11 && !gameweek.SubbedOut(pick.Element)) || gameweek.SubbedIn(pick.Element)

	return table.Player{
		ID:                  pick.Element,
		FullName:            element.FirstName + " " + element.SecondName,
		DisplayName:         element.WebName,
		Team:                team,
		Position:            table.PositionFromNumber(element.ElementType),
		Points:              liveElement.Stats.TotalPoints,
		BPS:                 liveElement.Stats.BPS,
		ProjectedPoints:     projected,
		PointSources:        pointSources,
		OnField:             onField,
		PickNumber:          pick.Position,
		HasPlayed:           view.playerHasPlayed(pick.Element),
		FixturesFinished:    view.playerFixturesFinished(pick.Element),
		HasUpcomingFixtures: view.playerHasUpcomingFixtures(pick.Element),
		News:                element.News,
		Status:              element.Status,
		PlayStatus:          table.UnknownPlay(),
	}, nil
}

// computeH2HInfo looks the entry up in the standings by its league-entry id.
// Classic leagues carry no standings rows, so the result is nil there.
func computeH2HInfo(snap *feed.Snapshot, leagueEntry feed.LeagueEntry) *table.H2HInfo {
	standing, ok := snap.Details.StandingByLeagueEntry(leagueEntry.ID)
	if !ok {
		return nil
	}

	return &table.H2HInfo{
		Points:          standing.Total,
		MatchesPlayed:   standing.MatchesWon + standing.MatchesDrawn + standing.MatchesLost,
		MatchesWon:      standing.MatchesWon,
		MatchesDrawn:    standing.MatchesDrawn,
		MatchesLost:     standing.MatchesLost,
		CurrentOpponent: currentH2HOpponent(snap, leagueEntry.ID),
	}
}

// currentH2HOpponent finds the other side of the entry's pairing in the
// current gameweek, zero when no pairing exists.
func currentH2HOpponent(snap *feed.Snapshot, leagueEntryID int) int {
	gameweek := snap.Gameweek()
	for _, match := range snap.Details.Matches {
		if match.Event != gameweek {
			continue
		}
		switch leagueEntryID {
		case match.LeagueEntry1:
			return match.LeagueEntry2
		case match.LeagueEntry2:
			return match.LeagueEntry1
		}
	}
	return 0
}

// computeLeagueMatches indexes the full head-to-head schedule by gameweek.
// Classic leagues get nil so the field marshals away entirely.
func computeLeagueMatches(snap *feed.Snapshot, scoring table.Scoring) map[int][]table.H2HMatch {
	if scoring != table.ScoringHeadToHead {
		return nil
	}

	seasonLength := snap.Static.SeasonLength()
	matches := make(map[int][]table.H2HMatch, seasonLength)
	for gw := 1; gw <= seasonLength; gw++ {
		gwMatches := make([]table.H2HMatch, 0, len(snap.Details.LeagueEntries)/2)
		for _, match := range snap.Details.Matches {
			if match.Event != gw {
				continue
			}
			gwMatches = append(gwMatches, table.H2HMatch{
				Gw:           match.Event,
				LeagueEntry1: match.LeagueEntry1,
				Entry1Points: match.LeagueEntry1Points,
				LeagueEntry2: match.LeagueEntry2,
				Entry2Points: match.LeagueEntry2Points,
				Started:      match.Started,
				Finished:     match.Finished,
			})
		}
		matches[gw] = gwMatches
	}
	return matches
}

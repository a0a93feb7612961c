package usecase

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/infrastructure/upstream"
	"github.com/riskibarqy/fpl-proxy/internal/platform/logging"
	"github.com/riskibarqy/fpl-proxy/internal/platform/resilience"
	"github.com/riskibarqy/fpl-proxy/internal/platform/store"
)

// RefreshConfig tunes the refresh loop.
type RefreshConfig struct {
	LeagueID             int
	Interval             time.Duration
	StaticInterval       time.Duration
	TeamFetchWorkers     int
	StartupRetryAttempts int
	StartupRetryDelay    time.Duration
}

// RefreshService polls the upstream endpoints and merges every cycle's
// results into the snapshot store. Fetch failures inside a cycle are logged
// and skipped; the snapshot keeps the last good value for that resource.
type RefreshService struct {
	client    upstream.Client
	snapshots *store.SnapshotStore
	logger    *logging.Logger
	cfg       RefreshConfig

	// lastStatic is only touched from Bootstrap and the Run loop, which
	// never overlap.
	lastStatic time.Time
}

func NewRefreshService(client upstream.Client, snapshots *store.SnapshotStore, logger *logging.Logger, cfg RefreshConfig) *RefreshService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.TeamFetchWorkers < 1 {
		cfg.TeamFetchWorkers = 1
	}
	return &RefreshService{
		client:    client,
		snapshots: snapshots,
		logger:    logger,
		cfg:       cfg,
	}
}

// Bootstrap blocks until one full refresh has produced a snapshot complete
// enough to compute a table from, retrying whole cycles with a linear
// backoff. The process should not serve traffic before this succeeds.
func (s *RefreshService) Bootstrap(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "RefreshService.Bootstrap")
	defer span.End()

	err := resilience.Retry(ctx, s.cfg.StartupRetryAttempts, s.cfg.StartupRetryDelay, func(ctx context.Context) error {
		s.refreshOnce(ctx)
		if !s.snapshots.Snapshot().Ready() {
			return crerr.Wrap(ErrNotReady, "initial snapshot incomplete")
		}
		return nil
	})
	if err != nil {
		return crerr.Wrap(err, "bootstrap refresh")
	}

	s.logger.InfoContext(ctx, "initial snapshot complete", "league", s.cfg.LeagueID)
	return nil
}

// Run refreshes the snapshot until the context is cancelled.
func (s *RefreshService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshCycle(ctx)
		}
	}
}

func (s *RefreshService) refreshCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "refresh cycle panicked", "panic", r)
		}
	}()
	s.refreshOnce(ctx)
}

// refreshOnce runs one poll of every upstream resource. The /game document
// goes first because it scopes the live and roster fetches to a gameweek;
// when it fails the cycle falls back to the gameweek already in the
// snapshot.
func (s *RefreshService) refreshOnce(ctx context.Context) {
	ctx, span := startUsecaseSpan(ctx, "RefreshService.refreshOnce")
	defer span.End()

	var delta feed.Delta

	gameweek := s.snapshots.Snapshot().Gameweek()
	game, err := s.client.Game(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "game fetch failed", "error", err)
	} else {
		delta.Game = game
		gameweek = game.CurrentEvent
	}

	if gameweek == 0 {
		s.logger.WarnContext(ctx, "current gameweek unknown, skipping cycle")
		s.apply(ctx, delta)
		return
	}

	var mu sync.Mutex
	var wg conc.WaitGroup
	wg.Go(func() {
		details, err := s.client.LeagueDetails(ctx, s.cfg.LeagueID)
		if err != nil {
			s.logger.WarnContext(ctx, "league details fetch failed", "league", s.cfg.LeagueID, "error", err)
			return
		}
		mu.Lock()
		delta.Details = details
		mu.Unlock()
	})
	wg.Go(func() {
		if time.Since(s.lastStatic) < s.cfg.StaticInterval {
			return
		}
		static, err := s.client.BootstrapStatic(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "bootstrap static fetch failed", "error", err)
			return
		}
		s.lastStatic = time.Now()
		mu.Lock()
		delta.Static = static
		mu.Unlock()
	})
	wg.Go(func() {
		live, err := s.client.Live(ctx, gameweek)
		if err != nil {
			s.logger.WarnContext(ctx, "live fetch failed", "gameweek", gameweek, "error", err)
			return
		}
		mu.Lock()
		delta.Live = live
		mu.Unlock()
	})
	wg.Wait()

	teamGameweeks, teamSummaries := s.fetchTeams(ctx, s.teamIDs(delta.Details), gameweek)
	delta.TeamGameweeks = teamGameweeks
	delta.TeamSummaries = teamSummaries

	s.apply(ctx, delta)
}

// teamIDs lists the team ids to poll, preferring the details document
// fetched this cycle over the one already in the snapshot.
func (s *RefreshService) teamIDs(fresh *feed.LeagueDetails) []int {
	details := fresh
	if details == nil {
		details = s.snapshots.Snapshot().Details
	}
	if details == nil {
		return nil
	}

	ids := make([]int, 0, len(details.LeagueEntries))
	for _, entry := range details.LeagueEntries {
		ids = append(ids, entry.EntryID)
	}
	return ids
}

// fetchTeams pulls roster and summary for every team through a bounded
// worker pool. Teams that fail are left out of the delta so the snapshot
// keeps their previous state.
func (s *RefreshService) fetchTeams(ctx context.Context, teamIDs []int, gameweek int) (map[int]*feed.TeamGameweek, map[int]*feed.TeamSummary) {
	if len(teamIDs) == 0 {
		return nil, nil
	}

	gameweeks := make(map[int]*feed.TeamGameweek, len(teamIDs))
	summaries := make(map[int]*feed.TeamSummary, len(teamIDs))

	pool, err := ants.NewPool(s.cfg.TeamFetchWorkers)
	if err != nil {
		s.logger.ErrorContext(ctx, "create team fetch pool failed", "error", err)
		return nil, nil
	}
	defer pool.Release()

	var mu sync.Mutex
	var workers sync.WaitGroup
	for _, teamID := range teamIDs {
		teamID := teamID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			roster, err := s.client.TeamGameweek(ctx, teamID, gameweek)
			if err != nil {
				s.logger.WarnContext(ctx, "team gameweek fetch failed", "team", teamID, "gameweek", gameweek, "error", err)
			}
			summary, err := s.client.TeamSummary(ctx, teamID)
			if err != nil {
				s.logger.WarnContext(ctx, "team summary fetch failed", "team", teamID, "error", err)
			}

			mu.Lock()
			if roster != nil {
				gameweeks[teamID] = roster
			}
			if summary != nil {
				summaries[teamID] = summary
			}
			mu.Unlock()
		}); err != nil {
			workers.Done()
			s.logger.ErrorContext(ctx, "submit team fetch failed", "team", teamID, "error", err)
		}
	}
	workers.Wait()

	return gameweeks, summaries
}

func (s *RefreshService) apply(ctx context.Context, delta feed.Delta) {
	if delta.Empty() {
		s.logger.WarnContext(ctx, "refresh cycle produced no data")
		return
	}
	s.snapshots.Apply(delta)
	status := s.snapshots.Status()
	s.logger.DebugContext(ctx, "snapshot refreshed",
		"gameweek", status.CurrentGameweek,
		"team_gameweeks", status.TeamGameweeks,
		"team_summaries", status.TeamSummaries,
		"ready", status.Ready,
	)
}

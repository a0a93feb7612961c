package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/domain/table"
	"github.com/riskibarqy/fpl-proxy/internal/platform/logging"
	"github.com/riskibarqy/fpl-proxy/internal/platform/store"
)

// PlayerInfo is the standalone player lookup result, resolved from the
// static feed plus live points when the gameweek has data for the player.
type PlayerInfo struct {
	ID          int            `json:"id"`
	FullName    string         `json:"full_name"`
	DisplayName string         `json:"display_name"`
	Team        table.Team     `json:"team"`
	Position    table.Position `json:"team_pos"`
	Points      int            `json:"points"`
	News        string         `json:"news,omitempty"`
	Status      string         `json:"status,omitempty"`
}

// SnapshotService answers read queries against the current snapshot.
type SnapshotService struct {
	snapshots *store.SnapshotStore
	logger    *logging.Logger
}

func NewSnapshotService(snapshots *store.SnapshotStore, logger *logging.Logger) *SnapshotService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SnapshotService{snapshots: snapshots, logger: logger}
}

// Status reports which upstream resources the snapshot holds.
func (s *SnapshotService) Status(ctx context.Context) feed.Status {
	_, span := startUsecaseSpan(ctx, "SnapshotService.Status")
	defer span.End()

	return s.snapshots.Status()
}

// Player resolves one player by id.
func (s *SnapshotService) Player(ctx context.Context, playerID int) (*PlayerInfo, error) {
	_, span := startUsecaseSpan(ctx, "SnapshotService.Player")
	defer span.End()

	if playerID <= 0 {
		return nil, crerr.Wrapf(ErrInvalidInput, "player id %d", playerID)
	}

	snap := s.snapshots.Snapshot()
	if snap.Static == nil {
		return nil, crerr.Wrap(ErrNotReady, "static info not fetched yet")
	}

	view := newSnapshotView(snap)
	element, err := view.element(playerID)
	if err != nil {
		return nil, err
	}

	team, err := view.playerTeam(playerID)
	if err != nil {
		s.logger.WarnContext(ctx, "player team unresolved", "player", playerID, "error", err)
	}

	points := 0
	if liveElement, err := view.liveElement(playerID); err == nil {
		points = liveElement.Stats.TotalPoints
	}

	return &PlayerInfo{
		ID:          element.ID,
		FullName:    element.FirstName + " " + element.SecondName,
		DisplayName: element.WebName,
		Team:        team,
		Position:    table.PositionFromNumber(element.ElementType),
		Points:      points,
		News:        element.News,
		Status:      element.Status,
	}, nil
}

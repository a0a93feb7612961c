// Package upstream fetches the draft fantasy provider's API documents, either
// from the live service or from a local capture directory.
package upstream

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
)

// Error taxonomy for fetches. Transport failures are retryable, decode
// failures and missing resources are not.
var (
	ErrTransport = crerr.New("upstream transport failure")
	ErrDecode    = crerr.New("upstream payload decode failure")
	ErrNotFound  = crerr.New("upstream resource not found")
)

// Client fetches the provider documents a refresh cycle needs.
type Client interface {
	Game(ctx context.Context) (*feed.Game, error)
	LeagueDetails(ctx context.Context, leagueID int) (*feed.LeagueDetails, error)
	BootstrapStatic(ctx context.Context) (*feed.StaticInfo, error)
	Live(ctx context.Context, gameweek int) (*feed.Live, error)
	TeamGameweek(ctx context.Context, teamID, gameweek int) (*feed.TeamGameweek, error)
	TeamSummary(ctx context.Context, teamID int) (*feed.TeamSummary, error)
}

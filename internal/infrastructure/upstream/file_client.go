package upstream

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
)

// FileClient serves provider documents from a local capture directory laid
// out like the API itself: <dir>/game, <dir>/league/<id>/details,
// <dir>/event/<gw>/live and so on. A ".json" suffix on any file is accepted.
// Useful for development and for replaying a recorded gameweek.
type FileClient struct {
	baseDir string
}

func NewFileClient(baseDir string) *FileClient {
	return &FileClient{baseDir: strings.TrimRight(baseDir, string(os.PathSeparator))}
}

func (c *FileClient) Game(ctx context.Context) (*feed.Game, error) {
	out := &feed.Game{}
	if err := c.readJSON(ctx, "game", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FileClient) LeagueDetails(ctx context.Context, leagueID int) (*feed.LeagueDetails, error) {
	out := &feed.LeagueDetails{}
	if err := c.readJSON(ctx, fmt.Sprintf("league/%d/details", leagueID), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FileClient) BootstrapStatic(ctx context.Context) (*feed.StaticInfo, error) {
	out := &feed.StaticInfo{}
	if err := c.readJSON(ctx, "bootstrap-static", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FileClient) Live(ctx context.Context, gameweek int) (*feed.Live, error) {
	out := &feed.Live{}
	if err := c.readJSON(ctx, fmt.Sprintf("event/%d/live", gameweek), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FileClient) TeamGameweek(ctx context.Context, teamID, gameweek int) (*feed.TeamGameweek, error) {
	out := &feed.TeamGameweek{}
	if err := c.readJSON(ctx, fmt.Sprintf("entry/%d/event/%d", teamID, gameweek), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FileClient) TeamSummary(ctx context.Context, teamID int) (*feed.TeamSummary, error) {
	out := &feed.TeamSummary{}
	if err := c.readJSON(ctx, fmt.Sprintf("entry/%d/public", teamID), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FileClient) readJSON(ctx context.Context, relPath string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(c.baseDir, filepath.FromSlash(relPath))
	raw, err := os.ReadFile(path)
	if err != nil {
		raw, err = os.ReadFile(path + ".json")
	}
	if err != nil {
		if crerr.Is(err, fs.ErrNotExist) {
			return crerr.Wrapf(ErrNotFound, "no capture for %s", relPath)
		}
		return crerr.Wrapf(ErrTransport, "read capture %s: %v", relPath, err)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(ErrDecode, "decode capture %s: %v", relPath, err)
	}

	return nil
}

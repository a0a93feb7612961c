package upstream

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	crerr "github.com/cockroachdb/errors"
)

func writeCapture(t *testing.T, dir, relPath, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write capture: %v", err)
	}
}

func TestFileClientReadsCaptureTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCapture(t, dir, "game", `{"current_event": 21}`)
	writeCapture(t, dir, "league/7/details", `{"league": {"id": 7, "name": "basement", "scoring": "h"}}`)
	writeCapture(t, dir, "entry/101/event/21", `{"picks": [{"element": 5, "position": 1}]}`)

	client := NewFileClient(dir)
	ctx := context.Background()

	game, err := client.Game(ctx)
	if err != nil {
		t.Fatalf("read game: %v", err)
	}
	if game.CurrentEvent != 21 {
		t.Fatalf("unexpected game: %+v", game)
	}

	details, err := client.LeagueDetails(ctx, 7)
	if err != nil {
		t.Fatalf("read details: %v", err)
	}
	if details.League.Name != "basement" || details.League.Scoring != "h" {
		t.Fatalf("unexpected details: %+v", details.League)
	}

	gw, err := client.TeamGameweek(ctx, 101, 21)
	if err != nil {
		t.Fatalf("read team gameweek: %v", err)
	}
	if len(gw.Picks) != 1 || gw.Picks[0].Element != 5 {
		t.Fatalf("unexpected picks: %+v", gw.Picks)
	}
}

func TestFileClientAcceptsJSONSuffix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCapture(t, dir, "game.json", `{"current_event": 2}`)

	game, err := NewFileClient(dir).Game(context.Background())
	if err != nil {
		t.Fatalf("read game: %v", err)
	}
	if game.CurrentEvent != 2 {
		t.Fatalf("unexpected game: %+v", game)
	}
}

func TestFileClientMissingCapture(t *testing.T) {
	t.Parallel()

	client := NewFileClient(t.TempDir())
	_, err := client.BootstrapStatic(context.Background())
	if !crerr.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileClientDecodeError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCapture(t, dir, "game", `{"current_event": `)

	_, err := NewFileClient(dir).Game(context.Background())
	if !crerr.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

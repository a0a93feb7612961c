package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/domain/table"
	"github.com/riskibarqy/fpl-proxy/internal/platform/logging"
	"github.com/riskibarqy/fpl-proxy/internal/platform/store"
	"github.com/riskibarqy/fpl-proxy/internal/usecase"
)

func newTestRouter(t *testing.T) (http.Handler, *store.SnapshotStore, *store.TableStore) {
	t.Helper()

	snapshots := store.NewSnapshotStore()
	tables := store.NewTableStore()
	handler := NewHandler(tables, usecase.NewSnapshotService(snapshots, logging.NewNop()), logging.NewNop())
	return NewRouter(handler, logging.NewNop(), []string{"*"}), snapshots, tables
}

func staticDelta() feed.Delta {
	return feed.Delta{
		Game: &feed.Game{CurrentEvent: 3},
		Static: &feed.StaticInfo{
			Elements: []feed.StaticElement{
				{ID: 7, WebName: "Haaland", FirstName: "Erling", SecondName: "Haaland", ElementType: 4, Team: 1},
			},
			Teams: []feed.StaticTeam{
				{ID: 1, Code: 43, Name: "Man City", ShortName: "MCI"},
			},
		},
	}
}

func TestHealthz(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetTableBeforeFirstCompute(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/table", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 before the first table is published", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected error envelope, got %v", body)
	}
}

func TestGetTableServesBareTable(t *testing.T) {
	router, _, tables := newTestRouter(t)
	tables.Publish(table.LeagueTable{
		Code:    321,
		Name:    "Test League",
		Scoring: table.ScoringHeadToHead,
		Entries: []table.Entry{{TeamCode: 201, TeamName: "Alpha FC", TotalPoints: 50}},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/table", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// The table is the whole body, not wrapped in the envelope.
	var got table.LeagueTable
	if err := sonic.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal table: %v", err)
	}
	if got.Code != 321 || len(got.Entries) != 1 || got.Entries[0].TeamName != "Alpha FC" {
		t.Fatalf("table = %+v", got)
	}

	var raw map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal raw body: %v", err)
	}
	if _, ok := raw["apiVersion"]; ok {
		t.Fatal("table response must not carry the envelope")
	}
}

func TestGetPlayer(t *testing.T) {
	router, snapshots, _ := newTestRouter(t)
	snapshots.Apply(staticDelta())

	req := httptest.NewRequest(http.MethodGet, "/v1/players/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data usecase.PlayerInfo `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Data.DisplayName != "Haaland" || body.Data.Team.ShortName != "MCI" {
		t.Fatalf("player = %+v", body.Data)
	}
}

func TestGetPlayerErrors(t *testing.T) {
	router, snapshots, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/players/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status before static fetch = %d, want 503", rec.Code)
	}

	snapshots.Apply(staticDelta())

	req = httptest.NewRequest(http.MethodGet, "/v1/players/notanumber", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status for bad id = %d, want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/players/999", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status for unknown id = %d, want 404", rec.Code)
	}
}

func TestGetSnapshotStatus(t *testing.T) {
	router, snapshots, _ := newTestRouter(t)
	snapshots.Apply(staticDelta())

	req := httptest.NewRequest(http.MethodGet, "/v1/snapshot/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data feed.Status `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if !body.Data.HasStatic || body.Data.CurrentGameweek != 3 || body.Data.Ready {
		t.Fatalf("status = %+v", body.Data)
	}
}

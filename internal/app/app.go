package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-proxy/internal/config"
	"github.com/riskibarqy/fpl-proxy/internal/infrastructure/upstream"
	"github.com/riskibarqy/fpl-proxy/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-proxy/internal/platform/logging"
	"github.com/riskibarqy/fpl-proxy/internal/platform/resilience"
	"github.com/riskibarqy/fpl-proxy/internal/platform/store"
	"github.com/riskibarqy/fpl-proxy/internal/usecase"
)

// App wires the upstream client, stores, background services and the HTTP
// server together.
type App struct {
	Server *http.Server

	cfg     config.Config
	logger  *logging.Logger
	refresh *usecase.RefreshService
	tables  *usecase.TableService
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	client, err := newUpstreamClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	snapshots := store.NewSnapshotStore()
	tables := store.NewTableStore()

	refresh := usecase.NewRefreshService(client, snapshots, logger.Named("refresh"), usecase.RefreshConfig{
		LeagueID:             cfg.LeagueID,
		Interval:             cfg.RefreshInterval,
		StaticInterval:       cfg.StaticRefreshInterval,
		TeamFetchWorkers:     cfg.TeamFetchWorkers,
		StartupRetryAttempts: cfg.StartupRetryAttempts,
		StartupRetryDelay:    cfg.StartupRetryDelay,
	})
	tableService := usecase.NewTableService(snapshots, tables, logger.Named("table"), cfg.ComputeInterval)
	snapshotService := usecase.NewSnapshotService(snapshots, logger.Named("snapshot"))

	handler := httpapi.NewHandler(tables, snapshotService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:  server,
		cfg:     cfg,
		logger:  logger,
		refresh: refresh,
		tables:  tableService,
	}, nil
}

// Start fetches the initial snapshot, computes the first table and launches
// the background loops. It returns once the service is ready to answer
// /v1/table.
func (a *App) Start(ctx context.Context) error {
	if err := a.refresh.Bootstrap(ctx); err != nil {
		return err
	}
	if err := a.tables.ComputeOnce(ctx); err != nil {
		a.logger.WarnContext(ctx, "initial table computation failed", "error", err)
	}

	go a.refresh.Run(ctx)
	go a.tables.Run(ctx)
	return nil
}

func newUpstreamClient(cfg config.Config, logger *logging.Logger) (upstream.Client, error) {
	switch cfg.UpstreamMode {
	case config.UpstreamModeFixtures:
		return upstream.NewFileClient(cfg.UpstreamFixturesDir), nil
	case config.UpstreamModeLive:
		return upstream.NewHTTPClient(upstream.HTTPClientConfig{
			BaseURL:    cfg.UpstreamBaseURL,
			Timeout:    cfg.UpstreamTimeout,
			MaxRetries: cfg.UpstreamMaxRetries,
			Logger:     logger.Named("upstream"),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.UpstreamCircuitEnabled,
				FailureThreshold: cfg.UpstreamCircuitFailureCount,
				OpenTimeout:      cfg.UpstreamCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.UpstreamCircuitHalfOpenMaxReq,
			},
		}), nil
	default:
		return nil, fmt.Errorf("unknown upstream mode %q", cfg.UpstreamMode)
	}
}

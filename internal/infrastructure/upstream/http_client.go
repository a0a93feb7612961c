package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-proxy/internal/domain/feed"
	"github.com/riskibarqy/fpl-proxy/internal/platform/logging"
	"github.com/riskibarqy/fpl-proxy/internal/platform/resilience"
)

const (
	defaultBaseURL      = "https://draft.premierleague.com/api"
	maxResponseBytes    = 10 << 20
	defaultFetchTimeout = 10 * time.Second
)

type HTTPClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// HTTPClient fetches documents from the live provider API. Concurrent fetches
// of the same path are deduplicated and repeated transport failures open the
// circuit breaker.
type HTTPClient struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	// Callers may share the supplied http.Client, so defaults are applied
	// to a copy, never the original.
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.HTTPClient != nil {
		clientCopy := *cfg.HTTPClient
		httpClient = &clientCopy
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultFetchTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &HTTPClient{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *HTTPClient) Game(ctx context.Context) (*feed.Game, error) {
	out := &feed.Game{}
	if err := c.getJSON(ctx, "/game", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) LeagueDetails(ctx context.Context, leagueID int) (*feed.LeagueDetails, error) {
	out := &feed.LeagueDetails{}
	if err := c.getJSON(ctx, fmt.Sprintf("/league/%d/details", leagueID), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) BootstrapStatic(ctx context.Context) (*feed.StaticInfo, error) {
	out := &feed.StaticInfo{}
	if err := c.getJSON(ctx, "/bootstrap-static", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Live(ctx context.Context, gameweek int) (*feed.Live, error) {
	out := &feed.Live{}
	if err := c.getJSON(ctx, fmt.Sprintf("/event/%d/live", gameweek), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) TeamGameweek(ctx context.Context, teamID, gameweek int) (*feed.TeamGameweek, error) {
	out := &feed.TeamGameweek{}
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/event/%d", teamID, gameweek), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) TeamSummary(ctx context.Context, teamID int) (*feed.TeamSummary, error) {
	out := &feed.TeamSummary{}
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/public", teamID), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "upstream circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return crerr.Wrapf(ErrTransport, "circuit open for %s", path)
		}
	}

	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, c.baseURL+path)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, ErrTransport) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return crerr.Wrapf(ErrDecode, "unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(ErrDecode, "decode %s: %v", path, err)
	}

	return nil
}

func (c *HTTPClient) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, crerr.Wrapf(ErrTransport, "build request: %v", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(ErrTransport, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(ErrTransport, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, crerr.Wrapf(ErrNotFound, "provider status=404 url=%s", fullURL)
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(ErrTransport, "provider status=%d", resp.StatusCode)
			default:
				return nil, crerr.Wrapf(ErrTransport, "provider status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.Wrap(ErrTransport, "provider request failed")
	}
	c.logger.WarnContext(ctx, "upstream request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	return status >= 500
}

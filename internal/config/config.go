package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fpl-proxy/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	// UpstreamModeLive polls the provider's draft API over HTTP.
	UpstreamModeLive = "live"
	// UpstreamModeFixtures reads captured response files from disk instead,
	// for local development and tests.
	UpstreamModeFixtures = "fixtures"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string        `validate:"required,oneof=dev stage prod"`
	ServiceName        string        `validate:"required"`
	ServiceVersion     string
	HTTPAddr           string        `validate:"required"`
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration `validate:"gt=0"`
	WriteTimeout       time.Duration `validate:"gt=0"`

	LeagueID int `validate:"required,gt=0"`

	UpstreamMode                  string        `validate:"required,oneof=live fixtures"`
	UpstreamBaseURL               string
	UpstreamFixturesDir           string        `validate:"required_if=UpstreamMode fixtures"`
	UpstreamTimeout               time.Duration `validate:"gt=0"`
	UpstreamMaxRetries            int           `validate:"gte=0"`
	UpstreamCircuitEnabled        bool
	UpstreamCircuitFailureCount   int           `validate:"gt=0"`
	UpstreamCircuitOpenTimeout    time.Duration `validate:"gt=0"`
	UpstreamCircuitHalfOpenMaxReq int           `validate:"gt=0"`

	RefreshInterval       time.Duration `validate:"gt=0"`
	StaticRefreshInterval time.Duration `validate:"gt=0"`
	ComputeInterval       time.Duration `validate:"gt=0"`
	StartupRetryAttempts  int           `validate:"gt=0"`
	StartupRetryDelay     time.Duration `validate:"gt=0"`
	TeamFetchWorkers      int           `validate:"gt=0"`

	PprofEnabled bool
	PprofAddr    string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	UptraceEnabled bool
	UptraceDSN     string

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	leagueID, err := getEnvAsInt("LEAGUE_ID", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_ID: %w", err)
	}
	if leagueID <= 0 {
		return Config{}, fmt.Errorf("LEAGUE_ID is required and must be > 0")
	}

	upstreamMode := strings.ToLower(strings.TrimSpace(getEnv("UPSTREAM_MODE", UpstreamModeLive)))
	switch upstreamMode {
	case UpstreamModeLive, UpstreamModeFixtures:
	default:
		return Config{}, fmt.Errorf("invalid UPSTREAM_MODE %q: valid values are %s, %s", upstreamMode, UpstreamModeLive, UpstreamModeFixtures)
	}

	fixturesDir := strings.TrimSpace(getEnv("UPSTREAM_FIXTURES_DIR", ""))
	if upstreamMode == UpstreamModeFixtures && fixturesDir == "" {
		return Config{}, fmt.Errorf("UPSTREAM_FIXTURES_DIR is required when UPSTREAM_MODE=%s", UpstreamModeFixtures)
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_TIMEOUT: %w", err)
	}
	upstreamMaxRetries, err := getEnvAsInt("UPSTREAM_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_MAX_RETRIES: %w", err)
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("UPSTREAM_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("UPSTREAM_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("UPSTREAM_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPSTREAM_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	refreshInterval, err := time.ParseDuration(getEnv("REFRESH_INTERVAL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REFRESH_INTERVAL: %w", err)
	}
	staticRefreshInterval, err := time.ParseDuration(getEnv("STATIC_REFRESH_INTERVAL", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATIC_REFRESH_INTERVAL: %w", err)
	}
	computeInterval, err := time.ParseDuration(getEnv("COMPUTE_INTERVAL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse COMPUTE_INTERVAL: %w", err)
	}

	startupRetryAttempts, err := getEnvAsInt("STARTUP_RETRY_ATTEMPTS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse STARTUP_RETRY_ATTEMPTS: %w", err)
	}
	startupRetryDelay, err := time.ParseDuration(getEnv("STARTUP_RETRY_DELAY", "2s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STARTUP_RETRY_DELAY: %w", err)
	}
	teamFetchWorkers, err := getEnvAsInt("TEAM_FETCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAM_FETCH_WORKERS: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	serviceName := getEnv("SERVICE_NAME", "fpl-proxy")

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        serviceName,
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,

		LeagueID: leagueID,

		UpstreamMode:                  upstreamMode,
		UpstreamBaseURL:               strings.TrimSpace(getEnv("UPSTREAM_BASE_URL", "")),
		UpstreamFixturesDir:           fixturesDir,
		UpstreamTimeout:               upstreamTimeout,
		UpstreamMaxRetries:            upstreamMaxRetries,
		UpstreamCircuitEnabled:        circuitEnabled,
		UpstreamCircuitFailureCount:   circuitFailureCount,
		UpstreamCircuitOpenTimeout:    circuitOpenTimeout,
		UpstreamCircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,

		RefreshInterval:       refreshInterval,
		StaticRefreshInterval: staticRefreshInterval,
		ComputeInterval:       computeInterval,
		StartupRetryAttempts:  startupRetryAttempts,
		StartupRetryDelay:     startupRetryDelay,
		TeamFetchWorkers:      teamFetchWorkers,

		PprofEnabled: pprofEnabled,
		PprofAddr:    getEnv("PPROF_ADDR", ":6060"),

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAppName:           getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:         getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:     getEnv("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword: getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:        pyroscopeUploadRate,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

func validate(cfg Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return fmt.Errorf("invalid config: field %s failed %q", first.Field(), first.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string

	LeagueCacheTTL time.Duration

	ESPNBaseURL               string
	ESPNTimeout               time.Duration
	ESPNMaxRetries            int
	ESPNCircuitEnabled        bool
	ESPNCircuitFailureCount   int
	ESPNCircuitOpenTimeout    time.Duration
	ESPNCircuitHalfOpenMaxReq int

	SearchBatchSize  int
	SearchPoolCap    int
	SearchResultCap  int
	SearchThreshold  int
	ActivityPageSize int

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("LEAGUE_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_CACHE_TTL: %w", err)
	}
	if cacheTTL < 0 {
		return Config{}, fmt.Errorf("LEAGUE_CACHE_TTL must be >= 0")
	}

	espnTimeout, err := time.ParseDuration(getEnv("ESPN_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_TIMEOUT: %w", err)
	}
	if espnTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_TIMEOUT must be > 0")
	}
	espnMaxRetries, err := getEnvAsInt("ESPN_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_MAX_RETRIES: %w", err)
	}
	if espnMaxRetries < 0 {
		return Config{}, fmt.Errorf("ESPN_MAX_RETRIES must be >= 0")
	}

	espnCircuitEnabled, err := strconv.ParseBool(getEnv("ESPN_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_ENABLED: %w", err)
	}
	espnCircuitFailureCount, err := getEnvAsInt("ESPN_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	espnCircuitOpenTimeout, err := time.ParseDuration(getEnv("ESPN_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	espnCircuitHalfOpenMaxReq, err := getEnvAsInt("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	searchBatchSize, err := getEnvAsInt("SEARCH_BATCH_SIZE", 200)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEARCH_BATCH_SIZE: %w", err)
	}
	if searchBatchSize <= 0 {
		return Config{}, fmt.Errorf("SEARCH_BATCH_SIZE must be > 0")
	}
	searchPoolCap, err := getEnvAsInt("SEARCH_POOL_CAP", 1000)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEARCH_POOL_CAP: %w", err)
	}
	if searchPoolCap <= 0 {
		return Config{}, fmt.Errorf("SEARCH_POOL_CAP must be > 0")
	}
	searchResultCap, err := getEnvAsInt("SEARCH_RESULT_CAP", 50)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEARCH_RESULT_CAP: %w", err)
	}
	if searchResultCap <= 0 {
		return Config{}, fmt.Errorf("SEARCH_RESULT_CAP must be > 0")
	}
	searchThreshold, err := getEnvAsInt("SEARCH_SCORE_THRESHOLD", 80)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEARCH_SCORE_THRESHOLD: %w", err)
	}
	if searchThreshold <= 0 || searchThreshold > 100 {
		return Config{}, fmt.Errorf("SEARCH_SCORE_THRESHOLD must be in 1..100")
	}
	activityPageSize, err := getEnvAsInt("ACTIVITY_PAGE_SIZE", 25)
	if err != nil {
		return Config{}, fmt.Errorf("parse ACTIVITY_PAGE_SIZE: %w", err)
	}
	if activityPageSize <= 0 {
		return Config{}, fmt.Errorf("ACTIVITY_PAGE_SIZE must be > 0")
	}

	return Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "flaim-app"),
		ServiceVersion:     getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),

		LeagueCacheTTL: cacheTTL,

		ESPNBaseURL:               strings.TrimSpace(getEnv("ESPN_BASE_URL", "")),
		ESPNTimeout:               espnTimeout,
		ESPNMaxRetries:            espnMaxRetries,
		ESPNCircuitEnabled:        espnCircuitEnabled,
		ESPNCircuitFailureCount:   espnCircuitFailureCount,
		ESPNCircuitOpenTimeout:    espnCircuitOpenTimeout,
		ESPNCircuitHalfOpenMaxReq: espnCircuitHalfOpenMaxReq,

		SearchBatchSize:  searchBatchSize,
		SearchPoolCap:    searchPoolCap,
		SearchResultCap:  searchResultCap,
		SearchThreshold:  searchThreshold,
		ActivityPageSize: activityPageSize,

		LogLevel: logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}, nil
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

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
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

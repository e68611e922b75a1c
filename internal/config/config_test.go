package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want dev", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.LeagueCacheTTL != 5*time.Minute {
		t.Fatalf("LeagueCacheTTL = %v", cfg.LeagueCacheTTL)
	}
	if cfg.ESPNTimeout != 20*time.Second || cfg.ESPNMaxRetries != 2 {
		t.Fatalf("unexpected ESPN defaults: %v / %d", cfg.ESPNTimeout, cfg.ESPNMaxRetries)
	}
	if cfg.SearchBatchSize != 200 || cfg.SearchPoolCap != 1000 || cfg.SearchResultCap != 50 || cfg.SearchThreshold != 80 {
		t.Fatalf("unexpected search defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("LEAGUE_CACHE_TTL", "90s")
	t.Setenv("SEARCH_SCORE_THRESHOLD", "65")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppEnv != EnvProd || cfg.HTTPAddr != ":9999" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LeagueCacheTTL != 90*time.Second {
		t.Fatalf("LeagueCacheTTL = %v", cfg.LeagueCacheTTL)
	}
	if cfg.SearchThreshold != 65 {
		t.Fatalf("SearchThreshold = %d", cfg.SearchThreshold)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct{ key, value string }{
		{"APP_ENV", "production"},
		{"ESPN_TIMEOUT", "never"},
		{"ESPN_MAX_RETRIES", "-1"},
		{"SEARCH_SCORE_THRESHOLD", "0"},
		{"SEARCH_SCORE_THRESHOLD", "101"},
		{"SEARCH_BATCH_SIZE", "0"},
		{"ACTIVITY_PAGE_SIZE", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

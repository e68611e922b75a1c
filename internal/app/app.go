package app

import (
	"fmt"
	"net/http"

	"github.com/jdguggs10/flaim-app/external/espn"
	"github.com/jdguggs10/flaim-app/internal/config"
	"github.com/jdguggs10/flaim-app/internal/infrastructure/memory"
	"github.com/jdguggs10/flaim-app/internal/interfaces/httpapi"
	"github.com/jdguggs10/flaim-app/internal/platform/cache"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
	"github.com/jdguggs10/flaim-app/internal/platform/resilience"
	"github.com/jdguggs10/flaim-app/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	gateway := espn.NewClient(espn.ClientConfig{
		BaseURL:    cfg.ESPNBaseURL,
		Timeout:    cfg.ESPNTimeout,
		MaxRetries: cfg.ESPNMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ESPNCircuitEnabled,
			FailureThreshold: cfg.ESPNCircuitFailureCount,
			OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
		},
	})

	sessionSvc := usecase.NewSessionService(memory.NewSessionStore(), logger)
	leagueSvc := usecase.NewLeagueService(gateway, sessionSvc, cache.NewStore(cfg.LeagueCacheTTL), logger)
	playerSvc := usecase.NewPlayerService(gateway, leagueSvc, logger)
	searchSvc := usecase.NewSearchService(gateway, leagueSvc, usecase.SearchOptions{
		IncludeRostered:   true,
		IncludeFreeAgents: true,
		ScoreThreshold:    cfg.SearchThreshold,
		ResultCap:         cfg.SearchResultCap,
		BatchSize:         cfg.SearchBatchSize,
		PoolCap:           cfg.SearchPoolCap,
	}, logger)
	activitySvc := usecase.NewActivityService(gateway, leagueSvc, cfg.ActivityPageSize, logger)
	draftSvc := usecase.NewDraftService(leagueSvc)

	handler := httpapi.NewHandler(
		sessionSvc,
		leagueSvc,
		playerSvc,
		searchSvc,
		activitySvc,
		draftSvc,
		logger,
	)
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

	return server, nil
}

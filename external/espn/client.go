// Package espn is the adapter around the ESPN fantasy read API. It owns
// endpoint selection, retries, the history-endpoint fallback for older
// seasons, and translation into domain types.
package espn

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/jdguggs10/flaim-app/internal/domain/activity"
	"github.com/jdguggs10/flaim-app/internal/domain/player"
	"github.com/jdguggs10/flaim-app/internal/domain/session"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
	"github.com/jdguggs10/flaim-app/internal/platform/resilience"
	"github.com/jdguggs10/flaim-app/internal/usecase"
)

const (
	defaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/flb"

	fantasyFilterHeader = "X-Fantasy-Filter"
)

var errESPNTransient = crerr.New("espn transient failure")

var leagueViews = []string{"mTeam", "mRoster", "mSettings", "mStandings", "mDraftDetail"}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchLeague loads a full season snapshot. Seasons the current-season
// endpoint rejects with 401 are retried against the league history
// endpoint before the error is surfaced.
func (c *Client) FetchLeague(ctx context.Context, leagueID int64, year int, creds session.Credentials) (usecase.LeagueSnapshot, error) {
	if leagueID <= 0 {
		return usecase.LeagueSnapshot{}, fmt.Errorf("%w: league id must be greater than zero", usecase.ErrInvalidInput)
	}

	query := url.Values{}
	for _, view := range leagueViews {
		query.Add("view", view)
	}

	path := fmt.Sprintf("/seasons/%d/segments/0/leagues/%d", year, leagueID)
	var resp leagueResponse
	err := c.doJSON(ctx, path, query, nil, creds, &resp)
	if err != nil && stderrors.Is(err, usecase.ErrUpstreamAccess) {
		c.logger.WarnContext(ctx, "current-season league endpoint denied, trying history endpoint",
			"league_id", leagueID, "year", year)

		historyQuery := url.Values{}
		historyQuery.Set("seasonId", fmt.Sprintf("%d", year))
		for _, view := range leagueViews {
			historyQuery.Add("view", view)
		}

		var history []leagueResponse
		historyErr := c.doJSON(ctx, fmt.Sprintf("/leagueHistory/%d", leagueID), historyQuery, nil, creds, &history)
		if historyErr != nil {
			return usecase.LeagueSnapshot{}, fmt.Errorf("fetch league %d year %d: %w", leagueID, year, err)
		}
		if len(history) == 0 {
			return usecase.LeagueSnapshot{}, fmt.Errorf("%w: no history payload for league %d year %d", usecase.ErrNotFound, leagueID, year)
		}
		resp = history[0]
		err = nil
	}
	if err != nil {
		return usecase.LeagueSnapshot{}, fmt.Errorf("fetch league %d year %d: %w", leagueID, year, err)
	}

	lg := mapLeague(resp, leagueID, year)
	return usecase.LeagueSnapshot{
		League: lg,
		Picks:  mapPicks(resp.DraftDetail, lg, rosterPlayerNames(lg)),
	}, nil
}

// FetchPlayers pulls one page of the player pool.
func (c *Client) FetchPlayers(ctx context.Context, leagueID int64, year int, creds session.Credentials, filter usecase.PlayerPageFilter) ([]player.Player, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if len(filter.Statuses) == 0 {
		filter.Statuses = []string{"FREEAGENT", "WAIVERS"}
	}

	headerValue, err := buildPlayerFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("build player filter: %w", err)
	}

	query := url.Values{}
	query.Set("view", "kona_player_info")

	path := fmt.Sprintf("/seasons/%d/segments/0/leagues/%d", year, leagueID)
	var resp playersResponse
	headers := map[string]string{fantasyFilterHeader: headerValue}
	if err := c.doJSON(ctx, path, query, headers, creds, &resp); err != nil {
		return nil, fmt.Errorf("fetch players league %d offset %d: %w", leagueID, filter.Offset, err)
	}

	return mapFreeAgents(resp), nil
}

// FetchActivity pulls the transaction communication feed and resolves
// teams and player names against the given league snapshot.
func (c *Client) FetchActivity(ctx context.Context, lg usecase.LeagueSnapshot, creds session.Credentials, size int) ([]activity.RawActivity, error) {
	if lg.League == nil {
		return nil, fmt.Errorf("%w: league snapshot is required", usecase.ErrInvalidInput)
	}
	if size <= 0 {
		size = 25
	}

	headerValue, err := buildActivityFilter(size)
	if err != nil {
		return nil, fmt.Errorf("build activity filter: %w", err)
	}

	query := url.Values{}
	query.Set("view", "kona_league_communication")

	path := fmt.Sprintf("/seasons/%d/segments/0/leagues/%d/communication/", lg.League.Year, lg.League.ID)
	var resp communicationResponse
	headers := map[string]string{fantasyFilterHeader: headerValue}
	if err := c.doJSON(ctx, path, query, headers, creds, &resp); err != nil {
		return nil, fmt.Errorf("fetch activity league %d: %w", lg.League.ID, err)
	}

	return mapTopics(resp, lg.League, rosterPlayerNames(lg.League)), nil
}

func buildPlayerFilter(filter usecase.PlayerPageFilter) (string, error) {
	players := map[string]any{
		"filterStatus":  map[string]any{"value": filter.Statuses},
		"limit":         filter.Limit,
		"offset":        filter.Offset,
		"sortPercOwned": map[string]any{"sortPriority": 1, "sortAsc": false},
	}
	if len(filter.SlotIDs) > 0 {
		players["filterSlotIds"] = map[string]any{"value": filter.SlotIDs}
	}
	return sonic.MarshalString(map[string]any{"players": players})
}

func buildActivityFilter(size int) (string, error) {
	topics := map[string]any{
		"filterType":                  map[string]any{"value": []string{"ACTIVITY_TRANSACTIONS"}},
		"limit":                       size,
		"limitPerMessageSet":          map[string]any{"value": 25},
		"offset":                      0,
		"sortMessageDate":             map[string]any{"sortPriority": 1, "sortAsc": false},
		"sortFor":                     map[string]any{"sortPriority": 2, "sortAsc": false},
		"filterIncludeMessageTypeIds": map[string]any{"value": activityMessageTypeIDs},
	}
	return sonic.MarshalString(map[string]any{"topics": topics})
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, headers map[string]string, creds session.Credentials, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: fantasy data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := fullURL + "|" + creds.Fingerprint()
	for _, h := range headers {
		key += "|" + h
	}

	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL, headers, creds)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errESPNTransient) {
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
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string, headers map[string]string, creds session.Credentials) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		for name, value := range headers {
			req.Header.Set(name, value)
		}
		if !creds.IsZero() {
			req.AddCookie(&http.Cookie{Name: "espn_s2", Value: creds.ESPNS2})
			req.AddCookie(&http.Cookie{Name: "SWID", Value: creds.SWID})
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errESPNTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errESPNTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
				return nil, fmt.Errorf("%w: provider status=%d", usecase.ErrUpstreamAccess, resp.StatusCode)
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: provider status=404 body=%s", usecase.ErrNotFound, abbreviateBody(raw))
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errESPNTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
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
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

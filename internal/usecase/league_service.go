package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jdguggs10/flaim-app/internal/domain/league"
	"github.com/jdguggs10/flaim-app/internal/domain/session"
	"github.com/jdguggs10/flaim-app/internal/platform/cache"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

// ResolveYear picks the season to target when the caller leaves it at
// zero. Major-league seasons start in late March, so January and
// February still belong to the previous season.
func ResolveYear(year int, now time.Time) int {
	if year > 0 {
		return year
	}
	resolved := now.Year()
	if now.Month() < time.March {
		resolved--
	}
	return resolved
}

// LeagueService fetches and memoizes league snapshots. Snapshots are
// cached per league, season, and credential fingerprint so private and
// anonymous views of the same league never mix.
type LeagueService struct {
	gateway  VendorGateway
	sessions *SessionService
	cache    *cache.Store
	logger   *logging.Logger
	now      func() time.Time
}

func NewLeagueService(gateway VendorGateway, sessions *SessionService, store *cache.Store, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LeagueService{
		gateway:  gateway,
		sessions: sessions,
		cache:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// Snapshot returns the league with rosters and draft picks for the
// requested season, loading from the vendor at most once per cache TTL.
func (s *LeagueService) Snapshot(ctx context.Context, leagueID int64, year int, sessionID string) (LeagueSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Snapshot")
	defer span.End()

	if leagueID <= 0 {
		return LeagueSnapshot{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	year = ResolveYear(year, s.now())

	creds, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		return LeagueSnapshot{}, err
	}

	key := fmt.Sprintf("league:%d:%d:%s", leagueID, year, creds.Fingerprint())
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		s.logger.DebugContext(ctx, "loading league snapshot", "league_id", leagueID, "year", year)
		return s.gateway.FetchLeague(ctx, leagueID, year, creds)
	})
	if err != nil {
		return LeagueSnapshot{}, err
	}

	snap, ok := value.(LeagueSnapshot)
	if !ok || snap.League == nil {
		return LeagueSnapshot{}, fmt.Errorf("league %d: cached snapshot is invalid", leagueID)
	}
	return snap, nil
}

// Invalidate drops every cached snapshot. Used when a session logs in
// or out so stale anonymous data does not shadow a private view.
func (s *LeagueService) Invalidate(ctx context.Context) {
	s.cache.Clear(ctx)
}

func (s *LeagueService) Info(ctx context.Context, leagueID int64, year int, sessionID string) (*league.League, error) {
	snap, err := s.Snapshot(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}
	return snap.League, nil
}

// Standings returns the league's teams ordered by current standing.
// Teams without a reported standing sort last.
func (s *LeagueService) Standings(ctx context.Context, leagueID int64, year int, sessionID string) ([]league.Team, error) {
	snap, err := s.Snapshot(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}

	teams := make([]league.Team, len(snap.League.Teams))
	copy(teams, snap.League.Teams)
	sort.SliceStable(teams, func(i, j int) bool {
		return standingRank(teams[i]) < standingRank(teams[j])
	})
	return teams, nil
}

func (s *LeagueService) TeamRoster(ctx context.Context, leagueID int64, year int, teamID int64, sessionID string) (*league.Team, error) {
	snap, err := s.Snapshot(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}

	team, err := snap.League.TeamByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return team, nil
}

func (s *LeagueService) resolveCredentials(ctx context.Context, sessionID string) (session.Credentials, error) {
	return s.sessions.Resolve(ctx, sessionID)
}

// standingRank treats a missing standing as worst so unreported teams
// sink to the bottom of the table.
func standingRank(t league.Team) int {
	if t.Standing <= 0 {
		return int(^uint(0) >> 1)
	}
	return t.Standing
}

package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/jdguggs10/flaim-app/internal/domain/activity"
	"github.com/jdguggs10/flaim-app/internal/domain/league"
	"github.com/jdguggs10/flaim-app/internal/domain/player"
	"github.com/jdguggs10/flaim-app/internal/domain/session"
	"github.com/jdguggs10/flaim-app/internal/infrastructure/memory"
	"github.com/jdguggs10/flaim-app/internal/platform/cache"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

type stubGateway struct {
	mu sync.Mutex

	snapshot LeagueSnapshot
	pool     []player.Player
	raws     []activity.RawActivity

	leagueErr  error
	playersErr func(filter PlayerPageFilter) error

	leagueCalls   int
	playerFilters []PlayerPageFilter
	activitySizes []int
}

func (g *stubGateway) FetchLeague(_ context.Context, _ int64, _ int, _ session.Credentials) (LeagueSnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.leagueCalls++
	if g.leagueErr != nil {
		return LeagueSnapshot{}, g.leagueErr
	}
	return g.snapshot, nil
}

func (g *stubGateway) FetchPlayers(_ context.Context, _ int64, _ int, _ session.Credentials, filter PlayerPageFilter) ([]player.Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.playerFilters = append(g.playerFilters, filter)
	if g.playersErr != nil {
		if err := g.playersErr(filter); err != nil {
			return nil, err
		}
	}

	if filter.Offset >= len(g.pool) {
		return nil, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(g.pool) {
		end = len(g.pool)
	}
	page := make([]player.Player, end-filter.Offset)
	copy(page, g.pool[filter.Offset:end])
	return page, nil
}

func (g *stubGateway) FetchActivity(_ context.Context, _ LeagueSnapshot, _ session.Credentials, size int) ([]activity.RawActivity, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.activitySizes = append(g.activitySizes, size)
	if size > len(g.raws) {
		size = len(g.raws)
	}
	out := make([]activity.RawActivity, size)
	copy(out, g.raws[:size])
	return out, nil
}

func testLeagueSnapshot() LeagueSnapshot {
	return LeagueSnapshot{
		League: &league.League{
			ID:   1234,
			Year: 2025,
			Name: "Test League",
			Teams: []league.Team{
				{
					ID: 1, Name: "Alpha Sluggers", Standing: 2,
					Roster: []league.RosterEntry{
						{Player: player.Player{ID: 11, Name: "Mike Trout", ProTeam: "LAA", Positions: []string{"OF"}}},
						{Player: player.Player{ID: 12, Name: "Shohei Ohtani", ProTeam: "LAD", Positions: []string{"DH", "SP"}}},
					},
				},
				{
					ID: 2, Name: "Beta Bashers", Standing: 1,
					Roster: []league.RosterEntry{
						{Player: player.Player{ID: 21, Name: "Juan Soto", ProTeam: "NYM", Positions: []string{"OF"}}},
					},
				},
			},
		},
	}
}

func newTestLeagueService(gw *stubGateway, ttl time.Duration) (*LeagueService, *SessionService) {
	sessions := NewSessionService(memory.NewSessionStore(), logging.NewNop())
	return NewLeagueService(gw, sessions, cache.NewStore(ttl), logging.NewNop()), sessions
}

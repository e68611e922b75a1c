package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jdguggs10/flaim-app/internal/domain/player"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

func newTestPlayerService(gw *stubGateway) *PlayerService {
	leagues, _ := newTestLeagueService(gw, time.Minute)
	return NewPlayerService(gw, leagues, logging.NewNop())
}

func faQuery(limit int) FreeAgentQuery {
	return FreeAgentQuery{PositionID: -1, Limit: limit}
}

func TestFreeAgentsPlain(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), pool: poolOf(30)}
	svc := newTestPlayerService(gw)

	agents, err := svc.FreeAgents(context.Background(), 1234, 2025, "", faQuery(10))
	if err != nil {
		t.Fatalf("free agents: %v", err)
	}
	if len(agents) != 10 {
		t.Fatalf("expected 10 agents, got %d", len(agents))
	}
	if got := gw.playerFilters[0].Limit; got != 10 {
		t.Fatalf("expected page size 10, got %d", got)
	}
	if gw.playerFilters[0].SlotIDs != nil {
		t.Fatalf("unexpected slot filter %v", gw.playerFilters[0].SlotIDs)
	}
}

func TestFreeAgentsDefaultLimit(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), pool: poolOf(80)}
	svc := newTestPlayerService(gw)

	agents, err := svc.FreeAgents(context.Background(), 1234, 2025, "", faQuery(0))
	if err != nil {
		t.Fatalf("free agents: %v", err)
	}
	if len(agents) != 50 {
		t.Fatalf("expected the default of 50 agents, got %d", len(agents))
	}
	if got := gw.playerFilters[0].Limit; got != 50 {
		t.Fatalf("expected page size 50, got %d", got)
	}
}

func TestFreeAgentsPageSizeCapped(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), pool: poolOf(200)}
	svc := newTestPlayerService(gw)

	agents, err := svc.FreeAgents(context.Background(), 1234, 2025, "", faQuery(150))
	if err != nil {
		t.Fatalf("free agents: %v", err)
	}
	if got := gw.playerFilters[0].Limit; got != 100 {
		t.Fatalf("expected page size capped at 100, got %d", got)
	}
	if len(agents) != 100 {
		t.Fatalf("expected 100 agents from one page, got %d", len(agents))
	}
}

func TestFreeAgentsSlotFilterFromPositionName(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), pool: poolOf(5)}
	svc := newTestPlayerService(gw)

	query := FreeAgentQuery{Position: "SS", PositionID: -1, Limit: 5}
	if _, err := svc.FreeAgents(context.Background(), 1234, 2025, "", query); err != nil {
		t.Fatalf("free agents: %v", err)
	}
	if got := gw.playerFilters[0].SlotIDs; len(got) != 1 || got[0] != 4 {
		t.Fatalf("expected slot filter [4] for SS, got %v", got)
	}
}

func TestFreeAgentsExplicitSlotIDWins(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{snapshot: testLeagueSnapshot(), pool: poolOf(5)}
	svc := newTestPlayerService(gw)

	query := FreeAgentQuery{Position: "SS", PositionID: 10, Limit: 5}
	if _, err := svc.FreeAgents(context.Background(), 1234, 2025, "", query); err != nil {
		t.Fatalf("free agents: %v", err)
	}
	if got := gw.playerFilters[0].SlotIDs; len(got) != 1 || got[0] != 10 {
		t.Fatalf("expected slot filter [10], got %v", got)
	}
}

func TestFreeAgentsFallbackAfterSlotFilterError(t *testing.T) {
	t.Parallel()

	pool := []player.Player{
		{ID: 1, Name: "Sam Starter", Positions: []string{"SP", "UTIL"}},
		{ID: 2, Name: "Harry Hitter", Positions: []string{"1B"}},
		{ID: 3, Name: "Randy Reliever", Positions: []string{"RP"}},
		{ID: 4, Name: "Second Starter", Positions: []string{"SP"}},
	}
	gw := &stubGateway{
		snapshot: testLeagueSnapshot(),
		pool:     pool,
		playersErr: func(filter PlayerPageFilter) error {
			if len(filter.SlotIDs) > 0 {
				return errors.New("filter rejected")
			}
			return nil
		},
	}
	svc := newTestPlayerService(gw)

	query := FreeAgentQuery{Position: "SP", PositionID: -1, Limit: 10}
	agents, err := svc.FreeAgents(context.Background(), 1234, 2025, "", query)
	if err != nil {
		t.Fatalf("free agents: %v", err)
	}
	if len(gw.playerFilters) != 2 {
		t.Fatalf("expected filtered call plus unfiltered retry, got %d calls", len(gw.playerFilters))
	}
	// The retry is unfiltered, so the position narrows client-side.
	if len(agents) != 2 {
		t.Fatalf("expected 2 starting pitchers, got %d: %+v", len(agents), agents)
	}
	for _, a := range agents {
		if !hasPosition(a, "SP") {
			t.Fatalf("non-SP agent slipped through: %+v", a)
		}
	}
}

func TestFreeAgentsClientSideFilterForUnknownPositionName(t *testing.T) {
	t.Parallel()

	pool := []player.Player{
		{ID: 1, Name: "Bench Bat", Positions: []string{"Position_42"}},
		{ID: 2, Name: "Harry Hitter", Positions: []string{"1B"}},
	}
	gw := &stubGateway{snapshot: testLeagueSnapshot(), pool: pool}
	svc := newTestPlayerService(gw)

	query := FreeAgentQuery{Position: "Position_42", PositionID: -1, Limit: 10}
	agents, err := svc.FreeAgents(context.Background(), 1234, 2025, "", query)
	if err != nil {
		t.Fatalf("free agents: %v", err)
	}
	if gw.playerFilters[0].SlotIDs != nil {
		t.Fatalf("unknown position should not produce a slot filter, got %v", gw.playerFilters[0].SlotIDs)
	}
	if len(agents) != 1 || agents[0].Name != "Bench Bat" {
		t.Fatalf("unexpected agents %+v", agents)
	}
}

func TestFreeAgentsRejectsInvalidLeague(t *testing.T) {
	t.Parallel()

	svc := newTestPlayerService(&stubGateway{snapshot: testLeagueSnapshot()})
	if _, err := svc.FreeAgents(context.Background(), 0, 2025, "", faQuery(5)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

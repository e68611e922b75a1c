package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jdguggs10/flaim-app/internal/domain/meta"
	"github.com/jdguggs10/flaim-app/internal/domain/player"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

const (
	defaultFreeAgentLimit = 50
	maxFreeAgentPage      = 100
)

// FreeAgentQuery narrows a free-agent listing. Position may be a slot
// name ("SP", "OF") or left empty; PositionID takes precedence when
// non-negative.
type FreeAgentQuery struct {
	Position   string
	PositionID int
	Limit      int
}

// PlayerService lists unrostered players from the vendor pool.
type PlayerService struct {
	gateway VendorGateway
	leagues *LeagueService
	logger  *logging.Logger
}

func NewPlayerService(gateway VendorGateway, leagues *LeagueService, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PlayerService{gateway: gateway, leagues: leagues, logger: logger}
}

// FreeAgents returns up to query.Limit free agents, optionally
// narrowed to one lineup slot. When the vendor rejects the slot filter
// the listing is retried unfiltered and narrowed client-side instead.
func (s *PlayerService) FreeAgents(ctx context.Context, leagueID int64, year int, sessionID string, query FreeAgentQuery) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.FreeAgents")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	if query.Limit <= 0 {
		query.Limit = defaultFreeAgentLimit
	}
	size := query.Limit
	if size > maxFreeAgentPage {
		size = maxFreeAgentPage
	}

	slotID, slotKnown := resolveSlotID(query)
	filterByName := query.Position != "" && !slotKnown

	snap, err := s.leagues.Snapshot(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}
	creds, err := s.leagues.resolveCredentials(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	filter := PlayerPageFilter{Limit: size}
	if slotKnown {
		filter.SlotIDs = []int{slotID}
	}

	agents, err := s.gateway.FetchPlayers(ctx, leagueID, snap.League.Year, creds, filter)
	if err != nil && slotKnown {
		s.logger.WarnContext(ctx, "slot-filtered free agent fetch failed, retrying unfiltered",
			"league_id", leagueID, "slot_id", slotID, "error", err.Error())
		filterByName = query.Position != ""
		agents, err = s.gateway.FetchPlayers(ctx, leagueID, snap.League.Year, creds, PlayerPageFilter{Limit: size})
	}
	if err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, query.Limit)
	for _, p := range agents {
		if filterByName && !hasPosition(p, query.Position) {
			continue
		}
		out = append(out, p)
		if len(out) >= query.Limit {
			break
		}
	}
	return out, nil
}

// resolveSlotID maps the query to a lineup slot id, preferring the
// explicit id over a name lookup.
func resolveSlotID(query FreeAgentQuery) (int, bool) {
	if query.PositionID >= 0 {
		return query.PositionID, true
	}
	if query.Position == "" {
		return 0, false
	}
	want := strings.ToUpper(strings.TrimSpace(query.Position))
	positions := meta.Positions()
	ids := make([]int, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if positions[id] == want {
			return id, true
		}
	}
	return 0, false
}

func hasPosition(p player.Player, position string) bool {
	want := strings.ToUpper(strings.TrimSpace(position))
	for _, pos := range p.Positions {
		if strings.ToUpper(pos) == want {
			return true
		}
	}
	return false
}

package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/jdguggs10/flaim-app/internal/domain/draft"
)

// DraftService exposes the league's draft results once the snapshot
// reports a completed draft.
type DraftService struct {
	leagues *LeagueService
}

func NewDraftService(leagues *LeagueService) *DraftService {
	return &DraftService{leagues: leagues}
}

// Results returns every pick in overall draft order. Picks missing an
// overall number sort last.
func (s *DraftService) Results(ctx context.Context, leagueID int64, year int, sessionID string) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Results")
	defer span.End()

	picks, err := s.picks(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return overallRank(picks[i]) < overallRank(picks[j])
	})
	return picks, nil
}

// ByRound returns one round's picks ordered by pick-in-round.
func (s *DraftService) ByRound(ctx context.Context, leagueID int64, year, round int, sessionID string) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ByRound")
	defer span.End()

	if round <= 0 {
		return nil, fmt.Errorf("%w: round must be positive", ErrInvalidInput)
	}
	picks, err := s.picks(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}

	var out []draft.Pick
	for _, p := range picks {
		if p.RoundNum == round {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RoundPick < out[j].RoundPick
	})
	return out, nil
}

// ByTeam returns one team's picks in overall draft order.
func (s *DraftService) ByTeam(ctx context.Context, leagueID int64, year int, teamID int64, sessionID string) ([]draft.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ByTeam")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	picks, err := s.picks(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}

	var out []draft.Pick
	for _, p := range picks {
		if p.Team != nil && p.Team.ID == teamID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return overallRank(out[i]) < overallRank(out[j])
	})
	return out, nil
}

func (s *DraftService) picks(ctx context.Context, leagueID int64, year int, sessionID string) ([]draft.Pick, error) {
	snap, err := s.leagues.Snapshot(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]draft.Pick, len(snap.Picks))
	copy(out, snap.Picks)
	return out, nil
}

func overallRank(p draft.Pick) int {
	if p.OverallPick <= 0 {
		return int(^uint(0) >> 1)
	}
	return p.OverallPick
}

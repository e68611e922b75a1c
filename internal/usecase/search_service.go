package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jdguggs10/flaim-app/internal/domain/player"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

const (
	defaultSearchBatchSize = 200
	defaultSearchPoolCap   = 1000
	defaultSearchResultCap = 50
)

// SearchOptions tunes a player search. Zero values fall back to the
// service defaults.
type SearchOptions struct {
	IncludeRostered   bool
	IncludeFreeAgents bool
	ScoreThreshold    int
	ResultCap         int
	BatchSize         int
	PoolCap           int
}

func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		IncludeRostered:   true,
		IncludeFreeAgents: true,
		ScoreThreshold:    player.DefaultMatchThreshold,
		ResultCap:         defaultSearchResultCap,
		BatchSize:         defaultSearchBatchSize,
		PoolCap:           defaultSearchPoolCap,
	}
}

// SearchService resolves free-text player names against a league's
// rosters and the vendor free-agent pool.
type SearchService struct {
	gateway  VendorGateway
	leagues  *LeagueService
	defaults SearchOptions
	logger   *logging.Logger
}

// NewSearchService builds a search service. Zero fields in defaults
// fall back to the package constants, so callers only set the knobs
// they configure.
func NewSearchService(gateway VendorGateway, leagues *LeagueService, defaults SearchOptions, logger *logging.Logger) *SearchService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if defaults.ScoreThreshold <= 0 {
		defaults.ScoreThreshold = player.DefaultMatchThreshold
	}
	if defaults.ResultCap <= 0 {
		defaults.ResultCap = defaultSearchResultCap
	}
	if defaults.BatchSize <= 0 {
		defaults.BatchSize = defaultSearchBatchSize
	}
	if defaults.PoolCap <= 0 {
		defaults.PoolCap = defaultSearchPoolCap
	}
	return &SearchService{gateway: gateway, leagues: leagues, defaults: defaults, logger: logger}
}

// Search returns ranked matches for the term, rostered players first by
// construction (they always score 100) and free agents by fuzzy score.
func (s *SearchService) Search(ctx context.Context, leagueID int64, year int, sessionID, searchTerm string, opts SearchOptions) ([]player.MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SearchService.Search")
	defer span.End()

	searchTerm = strings.TrimSpace(searchTerm)
	if searchTerm == "" {
		return nil, nil
	}
	if opts.ScoreThreshold <= 0 {
		opts.ScoreThreshold = s.defaults.ScoreThreshold
	}
	if opts.ResultCap <= 0 {
		opts.ResultCap = s.defaults.ResultCap
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = s.defaults.BatchSize
	}
	if opts.PoolCap <= 0 {
		opts.PoolCap = s.defaults.PoolCap
	}

	snap, err := s.leagues.Snapshot(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}

	var matches []player.MatchResult
	if opts.IncludeRostered {
		matches = append(matches, s.scanRosters(snap, searchTerm)...)
	}

	if opts.IncludeFreeAgents && len(matches) < opts.ResultCap {
		creds, err := s.leagues.resolveCredentials(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		fetch := func(ctx context.Context, offset, limit int) ([]player.Player, error) {
			return s.gateway.FetchPlayers(ctx, leagueID, snap.League.Year, creds, PlayerPageFilter{
				Statuses: []string{"FREEAGENT", "WAIVERS"},
				Limit:    limit,
				Offset:   offset,
			})
		}
		forEachPlayer(ctx, s.logger, fetch, opts.BatchSize, opts.PoolCap, func(p player.Player) bool {
			if ok, score := player.Match(searchTerm, p.Name, opts.ScoreThreshold); ok {
				matches = append(matches, player.MatchResult{
					Player: p,
					Score:  score,
					Status: player.StatusFreeAgent,
				})
			}
			return len(matches) < opts.ResultCap
		})
	}

	matches = dedupeMatches(matches)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return strings.ToLower(matches[i].Player.Name) < strings.ToLower(matches[j].Player.Name)
	})
	if len(matches) > opts.ResultCap {
		matches = matches[:opts.ResultCap]
	}
	return matches, nil
}

func (s *SearchService) scanRosters(snap LeagueSnapshot, searchTerm string) []player.MatchResult {
	term := strings.ToLower(searchTerm)
	var out []player.MatchResult
	for _, team := range snap.League.Teams {
		for _, entry := range team.Roster {
			if !strings.Contains(strings.ToLower(entry.Player.Name), term) {
				continue
			}
			out = append(out, player.MatchResult{
				Player:   entry.Player,
				Score:    100,
				Status:   player.StatusRostered,
				TeamID:   team.ID,
				TeamName: team.Name,
			})
		}
	}
	return out
}

// dedupeMatches keeps the best score per player id. Players without an
// id cannot be identified across sources and pass through untouched.
func dedupeMatches(matches []player.MatchResult) []player.MatchResult {
	if len(matches) < 2 {
		return matches
	}

	best := make(map[int64]int, len(matches))
	out := matches[:0]
	for _, m := range matches {
		if m.Player.ID == 0 {
			out = append(out, m)
			continue
		}
		if idx, ok := best[m.Player.ID]; ok {
			if m.Score > out[idx].Score {
				out[idx] = m
			}
			continue
		}
		best[m.Player.ID] = len(out)
		out = append(out, m)
	}
	return out
}

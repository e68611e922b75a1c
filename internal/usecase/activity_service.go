package usecase

import (
	"context"
	"fmt"

	"github.com/jdguggs10/flaim-app/internal/domain/activity"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

const (
	defaultActivityLimit = 25
	maxActivityFetch     = 100
)

// ActivityService fetches the league transaction feed, classifies it,
// and exposes filtered views over the classified records.
type ActivityService struct {
	gateway    VendorGateway
	leagues    *LeagueService
	classifier *activity.Classifier
	pageSize   int
	logger     *logging.Logger
}

// NewActivityService builds an activity service. pageSize is the limit
// applied when a caller does not ask for one; non-positive values fall
// back to the package default.
func NewActivityService(gateway VendorGateway, leagues *LeagueService, pageSize int, logger *logging.Logger) *ActivityService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if pageSize <= 0 {
		pageSize = defaultActivityLimit
	}
	if pageSize > maxActivityFetch {
		pageSize = maxActivityFetch
	}
	return &ActivityService{
		gateway:    gateway,
		leagues:    leagues,
		classifier: activity.NewClassifier(logger),
		pageSize:   pageSize,
		logger:     logger,
	}
}

// fetchClassified pulls up to fetchSize raw activities and classifies
// each one. Records come back newest first, matching the vendor order.
func (s *ActivityService) fetchClassified(ctx context.Context, leagueID int64, year int, sessionID string, fetchSize int) ([]activity.Record, error) {
	snap, err := s.leagues.Snapshot(ctx, leagueID, year, sessionID)
	if err != nil {
		return nil, err
	}
	creds, err := s.leagues.resolveCredentials(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if fetchSize <= 0 {
		fetchSize = s.pageSize
	}
	if fetchSize > maxActivityFetch {
		fetchSize = maxActivityFetch
	}

	raws, err := s.gateway.FetchActivity(ctx, snap, creds, fetchSize)
	if err != nil {
		return nil, err
	}

	records := make([]activity.Record, 0, len(raws))
	for _, raw := range raws {
		records = append(records, s.classifier.Classify(ctx, raw))
	}
	return records, nil
}

// Recent returns a page of the classified feed, optionally narrowed to
// one activity kind. Fetching overshoots the page so offsets deep into
// the feed still fill up after filtering.
func (s *ActivityService) Recent(ctx context.Context, leagueID int64, year int, sessionID string, limit, offset int, kind activity.Kind) ([]activity.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.Recent")
	defer span.End()

	if limit <= 0 {
		limit = s.pageSize
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.fetchClassified(ctx, leagueID, year, sessionID, limit+offset+50)
	if err != nil {
		return nil, err
	}

	records = activity.FilterByKind(records, kind)
	if offset >= len(records) {
		return nil, nil
	}
	records = records[offset:]
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *ActivityService) Waivers(ctx context.Context, leagueID int64, year int, sessionID string, limit int) ([]activity.Record, error) {
	return s.view(ctx, leagueID, year, sessionID, limit, "usecase.ActivityService.Waivers", activity.FilterWaivers)
}

func (s *ActivityService) Trades(ctx context.Context, leagueID int64, year int, sessionID string, limit int) ([]activity.Record, error) {
	return s.view(ctx, leagueID, year, sessionID, limit, "usecase.ActivityService.Trades", activity.FilterTrades)
}

func (s *ActivityService) AddDrops(ctx context.Context, leagueID int64, year int, sessionID string, limit int) ([]activity.Record, error) {
	return s.view(ctx, leagueID, year, sessionID, limit, "usecase.ActivityService.AddDrops", activity.FilterAddDrops)
}

func (s *ActivityService) Lineups(ctx context.Context, leagueID int64, year int, sessionID string, limit int) ([]activity.Record, error) {
	return s.view(ctx, leagueID, year, sessionID, limit, "usecase.ActivityService.Lineups", activity.FilterLineups)
}

func (s *ActivityService) Settings(ctx context.Context, leagueID int64, year int, sessionID string, limit int) ([]activity.Record, error) {
	return s.view(ctx, leagueID, year, sessionID, limit, "usecase.ActivityService.Settings", activity.FilterSettings)
}

func (s *ActivityService) Keepers(ctx context.Context, leagueID int64, year int, sessionID string, limit int) ([]activity.Record, error) {
	return s.view(ctx, leagueID, year, sessionID, limit, "usecase.ActivityService.Keepers", activity.FilterKeepers)
}

// view fetches twice the requested page so kind filtering still has
// enough records to fill it.
func (s *ActivityService) view(ctx context.Context, leagueID int64, year int, sessionID string, limit int, spanName string, filter func([]activity.Record) []activity.Record) ([]activity.Record, error) {
	ctx, span := startUsecaseSpan(ctx, spanName)
	defer span.End()

	if limit <= 0 {
		limit = s.pageSize
	}
	records, err := s.fetchClassified(ctx, leagueID, year, sessionID, limit*2)
	if err != nil {
		return nil, err
	}

	records = filter(records)
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// TeamTransactions returns recent activity involving one team. The
// fetch overshoots threefold because a single team owns only a slice
// of the league feed.
func (s *ActivityService) TeamTransactions(ctx context.Context, leagueID int64, year int, teamID int64, sessionID string, limit int) ([]activity.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.TeamTransactions")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.pageSize
	}

	records, err := s.fetchClassified(ctx, leagueID, year, sessionID, limit*3)
	if err != nil {
		return nil, err
	}

	records = activity.FilterByTeam(records, teamID)
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// PlayerHistory returns activity naming a player, scanning the deepest
// feed window the vendor serves in one call.
func (s *ActivityService) PlayerHistory(ctx context.Context, leagueID int64, year int, sessionID, playerName string, limit int) ([]activity.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.PlayerHistory")
	defer span.End()

	if playerName == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.pageSize
	}

	records, err := s.fetchClassified(ctx, leagueID, year, sessionID, maxActivityFetch)
	if err != nil {
		return nil, err
	}

	records = activity.FilterByPlayerName(records, playerName)
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

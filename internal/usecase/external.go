package usecase

import (
	"context"

	"github.com/jdguggs10/flaim-app/internal/domain/activity"
	"github.com/jdguggs10/flaim-app/internal/domain/draft"
	"github.com/jdguggs10/flaim-app/internal/domain/league"
	"github.com/jdguggs10/flaim-app/internal/domain/player"
	"github.com/jdguggs10/flaim-app/internal/domain/session"
)

// LeagueSnapshot is one decoded season view of a league as delivered by
// the vendor gateway: settings, teams with rosters, and draft results
// when available.
type LeagueSnapshot struct {
	League *league.League
	Picks  []draft.Pick
}

// PlayerPageFilter narrows one player pool page request.
type PlayerPageFilter struct {
	Statuses []string
	SlotIDs  []int
	Limit    int
	Offset   int
}

// VendorGateway is the remote fantasy data provider.
type VendorGateway interface {
	FetchLeague(ctx context.Context, leagueID int64, year int, creds session.Credentials) (LeagueSnapshot, error)
	FetchPlayers(ctx context.Context, leagueID int64, year int, creds session.Credentials, filter PlayerPageFilter) ([]player.Player, error)
	FetchActivity(ctx context.Context, snap LeagueSnapshot, creds session.Credentials, size int) ([]activity.RawActivity, error)
}

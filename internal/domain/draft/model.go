// Package draft models draft results for a league season.
package draft

import (
	"github.com/jdguggs10/flaim-app/internal/domain/league"
	"github.com/jdguggs10/flaim-app/internal/domain/player"
)

// Pick is one draft selection. Numeric fields default to zero when the
// vendor omits them so picks always sort deterministically.
type Pick struct {
	RoundNum     int
	RoundPick    int
	OverallPick  int
	Team         *league.TeamRef
	Player       *player.Player
	Keeper       bool
	AuctionPrice int
}

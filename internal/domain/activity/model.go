// Package activity normalizes the vendor transaction log into a closed
// activity taxonomy and provides the filtering views over it.
package activity

import "github.com/jdguggs10/flaim-app/internal/domain/league"

// Kind is the normalized activity taxonomy.
type Kind string

const (
	KindAdd              Kind = "ADD"
	KindDrop             Kind = "DROP"
	KindRosterMove       Kind = "ROSTER_MOVE"
	KindTradeAccepted    Kind = "TRADE_ACCEPTED"
	KindTradePending     Kind = "TRADE_PENDING"
	KindTradeDeclined    Kind = "TRADE_DECLINED"
	KindWaiverMoved      Kind = "WAIVER_MOVED"
	KindWaiverBudgetUsed Kind = "WAIVER_BUDGET_USED"
	KindInjuryList       Kind = "INJURY_LIST"
	KindLineupSet        Kind = "LINEUP_SET"
	KindDraftPick        Kind = "DRAFT_PICK"
	KindKeeperSelect     Kind = "KEEPER_SELECT"
	KindLeagueEdit       Kind = "LEAGUE_EDIT"
	KindTeamEdit         Kind = "TEAM_EDIT"
	KindUnknown          Kind = "UNKNOWN_ACTIVITY"

	// KindProcessingError marks a diagnostic record emitted when one
	// vendor activity could not be classified. The rest of the feed is
	// unaffected.
	KindProcessingError Kind = "PROCESSING_ERROR"
)

// Source says where an added player came from.
type Source string

const (
	SourceFreeAgent Source = "FREE_AGENT"
	SourceWaivers   Source = "WAIVERS"
)

// actionKindMap is the fixed vocabulary from vendor action strings to
// normalized kinds. The vendor vocabulary is open ended; strings not
// listed here are skipped by the classifier.
var actionKindMap = map[string]Kind{
	"FA ADDED":         KindAdd,
	"WAIVER ADDED":     KindAdd,
	"DROPPED":          KindDrop,
	"TRADED":           KindTradeAccepted,
	"WAIVER":           KindWaiverMoved,
	"DRAFT":            KindDraftPick,
	"KEEPER":           KindKeeperSelect,
	"MOVED TO IL":      KindInjuryList,
	"MOVED FROM IL":    KindInjuryList,
	"LINEUP SET":       KindLineupSet,
	"SETTINGS CHANGED": KindLeagueEdit,
	"TEAM SETTINGS":    KindTeamEdit,
	"CLAIMED":          KindWaiverMoved,
	"BID":              KindWaiverBudgetUsed,
}

// MapAction resolves a vendor action string against the fixed vocabulary.
func MapAction(action string) (Kind, bool) {
	kind, ok := actionKindMap[action]
	return kind, ok
}

// ActionTuple is one raw (team, action-string, player-name) triple from
// the vendor activity log. Team may be nil.
type ActionTuple struct {
	Team       *league.TeamRef
	Action     string
	PlayerName string
}

// RawActivity is one vendor activity object before classification.
type RawActivity struct {
	Date    int64
	Actions []ActionTuple
}

// PlayerRef names a player involved in an activity. The vendor log only
// carries names here, not ids.
type PlayerRef struct {
	Name string
}

// Record is the normalized output, derived fresh on every feed request.
// Kind is always set. PlayersOut stays empty for now: the vendor tuple
// does not say which side of a trade a player moved to, so all traded
// players land in PlayersIn with the associated team.
type Record struct {
	Kind          Kind
	Date          string
	RawTimestamp  int64
	Team          *league.TeamRef
	AddedPlayer   *PlayerRef
	DroppedPlayer *PlayerRef
	PlayersIn     []PlayerRef
	PlayersOut    []PlayerRef
	Source        Source
	Error         string
}

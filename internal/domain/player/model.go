// Package player holds the player pool model and the fuzzy name matcher
// used by free-agent search.
package player

// Status says which pool a matched player came from.
type Status string

const (
	StatusRostered  Status = "ROSTERED"
	StatusFreeAgent Status = "FREE_AGENT"
)

// Ownership carries league-wide ownership stats when the vendor supplies them.
type Ownership struct {
	PercentOwned  float64
	PercentChange float64
}

// Player is a candidate from the remote pool, rostered or unrostered.
// ID is zero when the vendor object carried no resolvable identity.
type Player struct {
	ID                int64
	Name              string
	ProTeam           string
	DefaultPositionID int
	EligibleSlots     []int
	Positions         []string
	InjuryStatus      string
	Injured           bool
	Ownership         *Ownership
}

// MatchResult pairs a candidate with its match confidence. For a given
// player id at most one result survives deduplication, keeping the
// highest score observed.
type MatchResult struct {
	Player   Player
	Score    int
	Status   Status
	TeamID   int64
	TeamName string
}

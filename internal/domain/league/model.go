// Package league models a season snapshot of an ESPN fantasy baseball
// league: settings, teams, rosters and standings.
package league

import (
	"fmt"

	"github.com/jdguggs10/flaim-app/internal/domain/player"
)

// TeamRef is the small team snapshot embedded in activity records.
type TeamRef struct {
	ID     int64
	Name   string
	Abbrev string
}

// RosterEntry is one slot on a team roster.
type RosterEntry struct {
	Player          player.Player
	LineupSlotID    int
	LineupSlot      string
	AcquisitionType string
}

// Team carries identity, record and roster for one franchise.
type Team struct {
	ID            int64
	Name          string
	Abbrev        string
	Owners        []string
	DivisionID    int
	DivisionName  string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	Standing      int
	FinalStanding int
	PlayoffSeed   int
	StreakType    string
	StreakLength  int
	WaiverRank    int
	Roster        []RosterEntry
}

func (t Team) Ref() TeamRef {
	return TeamRef{ID: t.ID, Name: t.Name, Abbrev: t.Abbrev}
}

// League is a memoized season snapshot. Derived fresh from the vendor
// per (league, year, credential) cache key, never persisted.
type League struct {
	ID                 int64
	Year               int
	Name               string
	CurrentWeek        int
	ScoringType        string
	IsPublic           bool
	TradeDeadline      int64
	PlayoffTeamCount   int
	RegularSeasonWeeks int
	Teams              []Team
}

// TeamByID resolves a 1-based vendor team id.
func (l *League) TeamByID(teamID int64) (*Team, error) {
	for i := range l.Teams {
		if l.Teams[i].ID == teamID {
			return &l.Teams[i], nil
		}
	}
	return nil, fmt.Errorf("team %d not found in league %d", teamID, l.ID)
}

func (l *League) TeamNames() []string {
	names := make([]string, 0, len(l.Teams))
	for _, t := range l.Teams {
		names = append(names, t.Name)
	}
	return names
}

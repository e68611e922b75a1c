package httpapi

import (
	"github.com/jdguggs10/flaim-app/internal/domain/activity"
	"github.com/jdguggs10/flaim-app/internal/domain/draft"
	"github.com/jdguggs10/flaim-app/internal/domain/league"
	"github.com/jdguggs10/flaim-app/internal/domain/player"
)

type teamRefDTO struct {
	ID   int64  `json:"team_id"`
	Name string `json:"team_name"`
}

type playerDTO struct {
	ID            int64    `json:"id,omitempty"`
	Name          string   `json:"name"`
	ProTeam       string   `json:"pro_team,omitempty"`
	Positions     []string `json:"positions,omitempty"`
	InjuryStatus  string   `json:"injury_status,omitempty"`
	Injured       bool     `json:"injured,omitempty"`
	PercentOwned  float64  `json:"percent_owned,omitempty"`
	PercentChange float64  `json:"percent_change,omitempty"`
}

type matchResultDTO struct {
	Player   playerDTO `json:"player"`
	Score    int       `json:"score"`
	Status   string    `json:"status"`
	TeamID   int64     `json:"team_id,omitempty"`
	TeamName string    `json:"team_name,omitempty"`
}

type namedPlayerDTO struct {
	Name string `json:"name"`
}

type activityDTO struct {
	Type          string           `json:"type"`
	Date          string           `json:"date,omitempty"`
	Timestamp     int64            `json:"timestamp,omitempty"`
	Team          *teamRefDTO      `json:"team,omitempty"`
	AddedPlayer   *namedPlayerDTO  `json:"added_player,omitempty"`
	DroppedPlayer *namedPlayerDTO  `json:"dropped_player,omitempty"`
	PlayersIn     []namedPlayerDTO `json:"players_in,omitempty"`
	PlayersOut    []namedPlayerDTO `json:"players_out,omitempty"`
	Source        string           `json:"source,omitempty"`
	Error         string           `json:"error,omitempty"`
}

type rosterEntryDTO struct {
	Player          playerDTO `json:"player"`
	LineupSlot      string    `json:"lineup_slot,omitempty"`
	AcquisitionType string    `json:"acquisition_type,omitempty"`
}

type teamDTO struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Abbrev        string           `json:"abbrev,omitempty"`
	Owners        []string         `json:"owners,omitempty"`
	DivisionName  string           `json:"division_name,omitempty"`
	Wins          int              `json:"wins"`
	Losses        int              `json:"losses"`
	Ties          int              `json:"ties"`
	PointsFor     float64          `json:"points_for"`
	PointsAgainst float64          `json:"points_against"`
	Standing      int              `json:"standing,omitempty"`
	FinalStanding int              `json:"final_standing,omitempty"`
	PlayoffSeed   int              `json:"playoff_seed,omitempty"`
	StreakType    string           `json:"streak_type,omitempty"`
	StreakLength  int              `json:"streak_length,omitempty"`
	WaiverRank    int              `json:"waiver_rank,omitempty"`
	Roster        []rosterEntryDTO `json:"roster,omitempty"`
}

type leagueDTO struct {
	ID                 int64    `json:"id"`
	Year               int      `json:"year"`
	Name               string   `json:"name"`
	CurrentWeek        int      `json:"current_week"`
	ScoringType        string   `json:"scoring_type"`
	IsPublic           bool     `json:"is_public"`
	TradeDeadline      int64    `json:"trade_deadline,omitempty"`
	PlayoffTeamCount   int      `json:"playoff_team_count,omitempty"`
	RegularSeasonWeeks int      `json:"regular_season_weeks,omitempty"`
	TeamCount          int      `json:"team_count"`
	Teams              []string `json:"teams"`
}

type pickDTO struct {
	Round        int         `json:"round"`
	RoundPick    int         `json:"round_pick"`
	OverallPick  int         `json:"overall_pick,omitempty"`
	Team         *teamRefDTO `json:"team,omitempty"`
	Player       *playerDTO  `json:"player,omitempty"`
	Keeper       bool        `json:"keeper,omitempty"`
	AuctionPrice int         `json:"auction_price,omitempty"`
}

func playerToDTO(p player.Player) playerDTO {
	dto := playerDTO{
		ID:           p.ID,
		Name:         p.Name,
		ProTeam:      p.ProTeam,
		Positions:    p.Positions,
		InjuryStatus: p.InjuryStatus,
		Injured:      p.Injured,
	}
	if p.Ownership != nil {
		dto.PercentOwned = p.Ownership.PercentOwned
		dto.PercentChange = p.Ownership.PercentChange
	}
	return dto
}

func matchResultToDTO(m player.MatchResult) matchResultDTO {
	return matchResultDTO{
		Player:   playerToDTO(m.Player),
		Score:    m.Score,
		Status:   string(m.Status),
		TeamID:   m.TeamID,
		TeamName: m.TeamName,
	}
}

func namedPlayers(refs []activity.PlayerRef) []namedPlayerDTO {
	if len(refs) == 0 {
		return nil
	}
	out := make([]namedPlayerDTO, 0, len(refs))
	for _, ref := range refs {
		out = append(out, namedPlayerDTO{Name: ref.Name})
	}
	return out
}

func activityToDTO(r activity.Record) activityDTO {
	dto := activityDTO{
		Type:       string(r.Kind),
		Date:       r.Date,
		Timestamp:  r.RawTimestamp,
		PlayersIn:  namedPlayers(r.PlayersIn),
		PlayersOut: namedPlayers(r.PlayersOut),
		Source:     string(r.Source),
		Error:      r.Error,
	}
	if r.Team != nil {
		dto.Team = &teamRefDTO{ID: r.Team.ID, Name: r.Team.Name}
	}
	if r.AddedPlayer != nil {
		dto.AddedPlayer = &namedPlayerDTO{Name: r.AddedPlayer.Name}
	}
	if r.DroppedPlayer != nil {
		dto.DroppedPlayer = &namedPlayerDTO{Name: r.DroppedPlayer.Name}
	}
	return dto
}

func activitiesToDTO(records []activity.Record) []activityDTO {
	out := make([]activityDTO, 0, len(records))
	for _, r := range records {
		out = append(out, activityToDTO(r))
	}
	return out
}

func rosterToDTO(entries []league.RosterEntry) []rosterEntryDTO {
	if len(entries) == 0 {
		return nil
	}
	out := make([]rosterEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, rosterEntryDTO{
			Player:          playerToDTO(e.Player),
			LineupSlot:      e.LineupSlot,
			AcquisitionType: e.AcquisitionType,
		})
	}
	return out
}

func teamToDTO(t league.Team, includeRoster bool) teamDTO {
	dto := teamDTO{
		ID:            t.ID,
		Name:          t.Name,
		Abbrev:        t.Abbrev,
		Owners:        t.Owners,
		DivisionName:  t.DivisionName,
		Wins:          t.Wins,
		Losses:        t.Losses,
		Ties:          t.Ties,
		PointsFor:     t.PointsFor,
		PointsAgainst: t.PointsAgainst,
		Standing:      t.Standing,
		FinalStanding: t.FinalStanding,
		PlayoffSeed:   t.PlayoffSeed,
		StreakType:    t.StreakType,
		StreakLength:  t.StreakLength,
		WaiverRank:    t.WaiverRank,
	}
	if includeRoster {
		dto.Roster = rosterToDTO(t.Roster)
	}
	return dto
}

func leagueToDTO(lg *league.League) leagueDTO {
	return leagueDTO{
		ID:                 lg.ID,
		Year:               lg.Year,
		Name:               lg.Name,
		CurrentWeek:        lg.CurrentWeek,
		ScoringType:        lg.ScoringType,
		IsPublic:           lg.IsPublic,
		TradeDeadline:      lg.TradeDeadline,
		PlayoffTeamCount:   lg.PlayoffTeamCount,
		RegularSeasonWeeks: lg.RegularSeasonWeeks,
		TeamCount:          len(lg.Teams),
		Teams:              lg.TeamNames(),
	}
}

func pickToDTO(p draft.Pick) pickDTO {
	dto := pickDTO{
		Round:        p.RoundNum,
		RoundPick:    p.RoundPick,
		OverallPick:  p.OverallPick,
		Keeper:       p.Keeper,
		AuctionPrice: p.AuctionPrice,
	}
	if p.Team != nil {
		dto.Team = &teamRefDTO{ID: p.Team.ID, Name: p.Team.Name}
	}
	if p.Player != nil {
		pd := playerToDTO(*p.Player)
		dto.Player = &pd
	}
	return dto
}

func picksToDTO(picks []draft.Pick) []pickDTO {
	out := make([]pickDTO, 0, len(picks))
	for _, p := range picks {
		out = append(out, pickToDTO(p))
	}
	return out
}

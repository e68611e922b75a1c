package espn

import (
	"fmt"
	"strings"

	"github.com/jdguggs10/flaim-app/internal/domain/activity"
	"github.com/jdguggs10/flaim-app/internal/domain/draft"
	"github.com/jdguggs10/flaim-app/internal/domain/league"
	"github.com/jdguggs10/flaim-app/internal/domain/meta"
	"github.com/jdguggs10/flaim-app/internal/domain/player"
)

// proTeamMap translates ESPN pro team ids to MLB abbreviations.
var proTeamMap = map[int]string{
	0: "FA", 1: "Bal", 2: "Bos", 3: "LAA", 4: "ChW", 5: "Cle",
	6: "Det", 7: "KC", 8: "Mil", 9: "Min", 10: "NYY", 11: "Oak",
	12: "Sea", 13: "Tex", 14: "Tor", 15: "Atl", 16: "ChC", 17: "Cin",
	18: "Hou", 19: "LAD", 20: "Was", 21: "NYM", 22: "Phi", 23: "Pit",
	24: "StL", 25: "SD", 26: "SF", 27: "Col", 28: "Mia", 29: "Ari",
	30: "TB",
}

// msgActionMap translates vendor message type codes from the activity
// feed into the action strings the classifier vocabulary understands.
var msgActionMap = map[int]string{
	178: "FA ADDED",
	180: "WAIVER ADDED",
	179: "DROPPED",
	181: "DROPPED",
	239: "DROPPED",
	244: "TRADED",
	186: "DRAFT",
}

// activityMessageTypeIDs is the transaction subset requested from the
// communication feed.
var activityMessageTypeIDs = []int{178, 180, 179, 239, 181, 244}

func proTeamName(id int) string {
	if name, ok := proTeamMap[id]; ok {
		return name
	}
	return "Unknown"
}

func mapLeague(resp leagueResponse, leagueID int64, year int) *league.League {
	out := &league.League{
		ID:   leagueID,
		Year: year,
		Name: fmt.Sprintf("League %d", leagueID),
	}
	if resp.SeasonID > 0 {
		out.Year = resp.SeasonID
	}
	if resp.Settings != nil {
		if resp.Settings.Name != "" {
			out.Name = resp.Settings.Name
		}
		out.IsPublic = resp.Settings.IsPublic
		if resp.Settings.ScoringSettings != nil {
			out.ScoringType = resp.Settings.ScoringSettings.ScoringType
		}
		if resp.Settings.TradeSettings != nil {
			out.TradeDeadline = resp.Settings.TradeSettings.DeadlineDate
		}
		if resp.Settings.ScheduleSettings != nil {
			out.RegularSeasonWeeks = resp.Settings.ScheduleSettings.MatchupPeriodCount
			out.PlayoffTeamCount = resp.Settings.ScheduleSettings.PlayoffTeamCount
		}
	}
	if out.ScoringType == "" {
		out.ScoringType = "UNKNOWN"
	}
	if resp.Status != nil {
		out.CurrentWeek = resp.Status.CurrentMatchupPeriod
	}
	if out.CurrentWeek < 1 {
		out.CurrentWeek = 1
	}

	ownerNames := make(map[string]string, len(resp.Members))
	for _, m := range resp.Members {
		ownerNames[m.ID] = m.DisplayName
	}

	out.Teams = make([]league.Team, 0, len(resp.Teams))
	for i, t := range resp.Teams {
		out.Teams = append(out.Teams, mapTeam(t, i, ownerNames))
	}
	return out
}

func mapTeam(t teamJSON, index int, ownerNames map[string]string) league.Team {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		name = strings.TrimSpace(t.Location + " " + t.Nickname)
	}
	if name == "" {
		name = fmt.Sprintf("Team %d", index+1)
	}

	team := league.Team{
		ID:            t.ID,
		Name:          name,
		Abbrev:        t.Abbrev,
		DivisionID:    t.DivisionID,
		PlayoffSeed:   t.PlayoffSeed,
		FinalStanding: t.RankFinal,
		Standing:      t.PlayoffSeed,
		WaiverRank:    t.WaiverRank,
	}

	for _, ownerID := range t.Owners {
		if display, ok := ownerNames[ownerID]; ok && display != "" {
			team.Owners = append(team.Owners, display)
		} else {
			team.Owners = append(team.Owners, ownerID)
		}
	}

	if t.Record != nil && t.Record.Overall != nil {
		o := t.Record.Overall
		team.Wins = o.Wins
		team.Losses = o.Losses
		team.Ties = o.Ties
		team.PointsFor = o.PointsFor
		team.PointsAgainst = o.PointsAgainst
		team.StreakType = o.StreakType
		team.StreakLength = o.StreakLength
	}

	if t.Roster != nil {
		team.Roster = make([]league.RosterEntry, 0, len(t.Roster.Entries))
		for _, e := range t.Roster.Entries {
			if e.PlayerPoolEntry == nil || e.PlayerPoolEntry.Player == nil {
				continue
			}
			team.Roster = append(team.Roster, league.RosterEntry{
				Player:          mapPlayer(*e.PlayerPoolEntry.Player),
				LineupSlotID:    e.LineupSlotID,
				LineupSlot:      meta.PositionName(e.LineupSlotID),
				AcquisitionType: e.AcquisitionType,
			})
		}
	}

	return team
}

func mapPlayer(p playerJSON) player.Player {
	out := player.Player{
		ID:                p.ID,
		Name:              p.FullName,
		ProTeam:           proTeamName(p.ProTeamID),
		DefaultPositionID: p.DefaultPositionID,
		EligibleSlots:     append([]int(nil), p.EligibleSlots...),
		InjuryStatus:      p.InjuryStatus,
		Injured:           p.Injured,
	}

	seen := make(map[string]struct{}, len(p.EligibleSlots))
	for _, slot := range p.EligibleSlots {
		name := meta.PositionName(slot)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out.Positions = append(out.Positions, name)
	}

	if p.Ownership != nil {
		out.Ownership = &player.Ownership{
			PercentOwned:  p.Ownership.PercentOwned,
			PercentChange: p.Ownership.PercentChange,
		}
	}

	return out
}

func mapFreeAgents(resp playersResponse) []player.Player {
	out := make([]player.Player, 0, len(resp.Players))
	for _, entry := range resp.Players {
		if entry.Player == nil {
			continue
		}
		out = append(out, mapPlayer(*entry.Player))
	}
	return out
}

func mapPicks(detail *draftDetailJSON, lg *league.League, playerNames map[int64]string) []draft.Pick {
	if detail == nil || !detail.Drafted {
		return nil
	}

	picks := make([]draft.Pick, 0, len(detail.Picks))
	for _, p := range detail.Picks {
		pick := draft.Pick{
			RoundNum:     p.RoundID,
			RoundPick:    p.RoundPickNumber,
			OverallPick:  p.OverallPickNumber,
			Keeper:       p.Keeper,
			AuctionPrice: p.BidAmount,
		}
		if team, err := lg.TeamByID(p.TeamID); err == nil {
			ref := team.Ref()
			pick.Team = &ref
		}
		if p.PlayerID != 0 {
			pl := player.Player{ID: p.PlayerID, Name: fmt.Sprintf("Player %d", p.PlayerID)}
			if name, ok := playerNames[p.PlayerID]; ok {
				pl.Name = name
			}
			pick.Player = &pl
		}
		picks = append(picks, pick)
	}
	return picks
}

// rosterPlayerNames indexes every rostered player by id so activity and
// draft mapping can resolve names without extra fetches.
func rosterPlayerNames(lg *league.League) map[int64]string {
	names := make(map[int64]string)
	if lg == nil {
		return names
	}
	for _, t := range lg.Teams {
		for _, e := range t.Roster {
			if e.Player.ID != 0 && e.Player.Name != "" {
				names[e.Player.ID] = e.Player.Name
			}
		}
	}
	return names
}

// mapTopics turns communication topics into raw activities with teams
// and player names resolved. Trades attribute the team from the message
// sender; pending drops use the claiming team; everything else uses the
// receiving team.
func mapTopics(resp communicationResponse, lg *league.League, playerNames map[int64]string) []activity.RawActivity {
	out := make([]activity.RawActivity, 0, len(resp.Topics))
	for _, topic := range resp.Topics {
		raw := activity.RawActivity{Date: topic.Date}
		for _, msg := range topic.Messages {
			var teamID int64
			switch msg.MessageTypeID {
			case 244:
				teamID = msg.From
			case 239:
				teamID = msg.For
			default:
				teamID = msg.To
			}

			var teamRef *league.TeamRef
			if lg != nil && teamID != 0 {
				if team, err := lg.TeamByID(teamID); err == nil {
					ref := team.Ref()
					teamRef = &ref
				}
			}

			action, ok := msgActionMap[msg.MessageTypeID]
			if !ok {
				action = fmt.Sprintf("UNKNOWN_%d", msg.MessageTypeID)
			}

			name, ok := playerNames[msg.TargetID]
			if !ok {
				name = fmt.Sprintf("Player %d", msg.TargetID)
			}

			raw.Actions = append(raw.Actions, activity.ActionTuple{
				Team:       teamRef,
				Action:     action,
				PlayerName: name,
			})
		}
		out = append(out, raw)
	}
	return out
}

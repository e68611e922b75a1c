package activity

import "strings"

var (
	waiverKinds  = kindSet(KindAdd, KindWaiverMoved, KindWaiverBudgetUsed)
	tradeKinds   = kindSet(KindTradeAccepted, KindTradePending, KindTradeDeclined)
	addDropKinds = kindSet(KindAdd, KindDrop, KindRosterMove)
	lineupKinds  = kindSet(KindLineupSet, KindRosterMove)
	settingKinds = kindSet(KindLeagueEdit, KindTeamEdit)
	keeperKinds  = kindSet(KindKeeperSelect)
)

func kindSet(kinds ...Kind) map[Kind]struct{} {
	set := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}

func filterByKinds(records []Record, kinds map[Kind]struct{}) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if _, ok := kinds[r.Kind]; ok {
			out = append(out, r)
		}
	}
	return out
}

// FilterByKind keeps records of exactly one kind. An empty kind keeps
// everything.
func FilterByKind(records []Record, kind Kind) []Record {
	if kind == "" {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// FilterWaivers keeps waiver-related records. Plain adds qualify only
// when their source points at the waiver wire.
func FilterWaivers(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if _, ok := waiverKinds[r.Kind]; !ok {
			continue
		}
		if r.Source == SourceWaivers || strings.Contains(strings.ToLower(string(r.Kind)), "waiver") {
			out = append(out, r)
		}
	}
	return out
}

func FilterTrades(records []Record) []Record {
	return filterByKinds(records, tradeKinds)
}

func FilterAddDrops(records []Record) []Record {
	return filterByKinds(records, addDropKinds)
}

func FilterLineups(records []Record) []Record {
	return filterByKinds(records, lineupKinds)
}

func FilterSettings(records []Record) []Record {
	return filterByKinds(records, settingKinds)
}

func FilterKeepers(records []Record) []Record {
	return filterByKinds(records, keeperKinds)
}

// FilterByTeam keeps records whose team snapshot matches the given id.
func FilterByTeam(records []Record, teamID int64) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Team != nil && r.Team.ID == teamID {
			out = append(out, r)
		}
	}
	return out
}

// FilterByPlayerName keeps records mentioning the player by substring.
// Added and dropped players are always checked; trade player lists are
// checked on trade records only.
func FilterByPlayerName(records []Record, playerName string) []Record {
	name := strings.ToLower(strings.TrimSpace(playerName))
	if name == "" {
		return nil
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if recordMentionsPlayer(r, name) {
			out = append(out, r)
		}
	}
	return out
}

func recordMentionsPlayer(r Record, lowerName string) bool {
	if r.AddedPlayer != nil && strings.Contains(strings.ToLower(r.AddedPlayer.Name), lowerName) {
		return true
	}
	if r.DroppedPlayer != nil && strings.Contains(strings.ToLower(r.DroppedPlayer.Name), lowerName) {
		return true
	}
	if r.Kind == KindTradeAccepted || r.Kind == KindTradePending {
		for _, p := range r.PlayersIn {
			if strings.Contains(strings.ToLower(p.Name), lowerName) {
				return true
			}
		}
		for _, p := range r.PlayersOut {
			if strings.Contains(strings.ToLower(p.Name), lowerName) {
				return true
			}
		}
	}
	return false
}

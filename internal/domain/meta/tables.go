// Package meta holds the static ESPN fantasy baseball code tables:
// lineup slot ids, stat ids and legacy activity message codes.
package meta

import "fmt"

// positionMap translates ESPN lineup slot ids to position abbreviations.
var positionMap = map[int]string{
	0:  "C",
	1:  "1B",
	2:  "2B",
	3:  "3B",
	4:  "SS",
	5:  "OF",
	6:  "OF",
	7:  "OF",
	8:  "DH",
	9:  "UTIL",
	10: "SP",
	11: "RP",
	12: "SP",
	13: "RP",
	14: "SP",
	15: "RP",
	16: "BN",
	17: "DL",
	18: "NA",
	19: "BN",
	20: "BN",
	21: "IL",
}

// statMap translates ESPN stat ids to stat abbreviations.
var statMap = map[int]string{
	// hitting
	0:  "AB",
	1:  "H",
	2:  "AVG",
	3:  "R",
	4:  "HR",
	5:  "RBI",
	6:  "SB",
	7:  "2B",
	8:  "3B",
	9:  "BB",
	10: "HBP",
	11: "TB",
	12: "OBP",
	13: "SLG",
	14: "OPS",
	15: "GO",
	16: "AO",
	17: "GO_AO",
	18: "HBP",
	19: "SF",
	20: "GIDP",
	21: "CS",

	// pitching
	40: "IP",
	41: "GS",
	42: "W",
	43: "L",
	44: "SV",
	45: "HLD",
	46: "K",
	47: "ERA",
	48: "WHIP",
	49: "K_9",
	50: "BB_9",
	51: "H_9",
	52: "HR_9",
	53: "BB",
	54: "H",
	55: "ER",
	56: "HR",
	57: "QS",
	58: "BS",
	59: "CG",
	60: "SHO",
	61: "SV_HLD",
	62: "IR",
	63: "IRS",

	// misc
	80: "G",
	81: "GS",
	82: "ELIG",
	83: "FPTS",

	// fielding
	90: "FPCT",
	91: "PO",
	92: "A",
	93: "E",
	94: "DP",
	95: "SB_ATT",
	96: "CS_ATT",
	97: "PB",
	98: "SB_PCT",
	99: "XBH",
}

// activityCodeMap translates friendly activity names to the legacy ESPN
// numeric message codes. The live activity feed carries string actions
// instead, so these codes are informational.
var activityCodeMap = map[string][]int{
	"ADD":                {180, 181, 182, 183, 184},
	"DROP":               {171, 172, 173, 174, 175},
	"TRADE_ACCEPTED":     {244},
	"TRADE_PENDING":      {239},
	"TRADE_DECLINED":     {243},
	"WAIVER_MOVED":       {180},
	"WAIVER_BUDGET_USED": {183},
	"ROSTER_MOVE":        {178},
	"LINEUP_SET":         {178},
	"DRAFT_PICK":         {224},
	"KEEPER_SELECT":      {226},
	"LEAGUE_EDIT":        {254},
	"TEAM_EDIT":          {253},
}

// PositionName resolves a lineup slot id, falling back to a stable
// synthetic name for ids ESPN adds later.
func PositionName(slotID int) string {
	if name, ok := positionMap[slotID]; ok {
		return name
	}
	return fmt.Sprintf("Position_%d", slotID)
}

func StatName(statID int) string {
	if name, ok := statMap[statID]; ok {
		return name
	}
	return fmt.Sprintf("stat_%d", statID)
}

func Positions() map[int]string {
	out := make(map[int]string, len(positionMap))
	for id, name := range positionMap {
		out[id] = name
	}
	return out
}

func Stats() map[int]string {
	out := make(map[int]string, len(statMap))
	for id, name := range statMap {
		out[id] = name
	}
	return out
}

func ActivityCodes() map[string][]int {
	out := make(map[string][]int, len(activityCodeMap))
	for name, codes := range activityCodeMap {
		out[name] = append([]int(nil), codes...)
	}
	return out
}

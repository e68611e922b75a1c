package espn

// Wire shapes for the ESPN fantasy v3 read API. Only the fields the
// mapper consumes are declared; everything else on the vendor payload
// is ignored during decode.

type leagueResponse struct {
	ID          int64            `json:"id"`
	SeasonID    int              `json:"seasonId"`
	Settings    *settingsJSON    `json:"settings"`
	Status      *statusJSON      `json:"status"`
	Teams       []teamJSON       `json:"teams"`
	Members     []memberJSON     `json:"members"`
	DraftDetail *draftDetailJSON `json:"draftDetail"`
}

type settingsJSON struct {
	Name             string                `json:"name"`
	IsPublic         bool                  `json:"isPublic"`
	ScoringSettings  *scoringSettingsJSON  `json:"scoringSettings"`
	TradeSettings    *tradeSettingsJSON    `json:"tradeSettings"`
	ScheduleSettings *scheduleSettingsJSON `json:"scheduleSettings"`
}

type scoringSettingsJSON struct {
	ScoringType string `json:"scoringType"`
}

type tradeSettingsJSON struct {
	DeadlineDate int64 `json:"deadlineDate"`
}

type scheduleSettingsJSON struct {
	MatchupPeriodCount int `json:"matchupPeriodCount"`
	PlayoffTeamCount   int `json:"playoffTeamCount"`
}

type statusJSON struct {
	CurrentMatchupPeriod int `json:"currentMatchupPeriod"`
	LatestScoringPeriod  int `json:"latestScoringPeriod"`
}

type memberJSON struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type teamJSON struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Location      string      `json:"location"`
	Nickname      string      `json:"nickname"`
	Abbrev        string      `json:"abbrev"`
	DivisionID    int         `json:"divisionId"`
	Owners        []string    `json:"owners"`
	PlayoffSeed   int         `json:"playoffSeed"`
	RankFinal     int         `json:"rankCalculatedFinal"`
	WaiverRank    int         `json:"waiverRank"`
	CurrentSeed   int         `json:"currentProjectedRank"`
	Record        *recordJSON `json:"record"`
	Roster        *rosterJSON `json:"roster"`
	DraftStanding int         `json:"draftDayProjectedRank"`
}

type recordJSON struct {
	Overall *overallRecordJSON `json:"overall"`
}

type overallRecordJSON struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
	StreakType    string  `json:"streakType"`
	StreakLength  int     `json:"streakLength"`
}

type rosterJSON struct {
	Entries []rosterEntryJSON `json:"entries"`
}

type rosterEntryJSON struct {
	LineupSlotID    int                  `json:"lineupSlotId"`
	AcquisitionType string               `json:"acquisitionType"`
	PlayerPoolEntry *playerPoolEntryJSON `json:"playerPoolEntry"`
}

type playerPoolEntryJSON struct {
	ID       int64       `json:"id"`
	OnTeamID int64       `json:"onTeamId"`
	Player   *playerJSON `json:"player"`
}

type playerJSON struct {
	ID                int64          `json:"id"`
	FullName          string         `json:"fullName"`
	DefaultPositionID int            `json:"defaultPositionId"`
	EligibleSlots     []int          `json:"eligibleSlots"`
	ProTeamID         int            `json:"proTeamId"`
	Injured           bool           `json:"injured"`
	InjuryStatus      string         `json:"injuryStatus"`
	Ownership         *ownershipJSON `json:"ownership"`
}

type ownershipJSON struct {
	PercentOwned  float64 `json:"percentOwned"`
	PercentChange float64 `json:"percentChange"`
}

type draftDetailJSON struct {
	Drafted bool       `json:"drafted"`
	Picks   []pickJSON `json:"picks"`
}

type pickJSON struct {
	RoundID           int   `json:"roundId"`
	RoundPickNumber   int   `json:"roundPickNumber"`
	OverallPickNumber int   `json:"overallPickNumber"`
	TeamID            int64 `json:"teamId"`
	PlayerID          int64 `json:"playerId"`
	Keeper            bool  `json:"keeper"`
	BidAmount         int   `json:"bidAmount"`
}

type playersResponse struct {
	Players []playerPoolEntryJSON `json:"players"`
}

type communicationResponse struct {
	Topics []topicJSON `json:"topics"`
}

type topicJSON struct {
	ID       string        `json:"id"`
	Date     int64         `json:"date"`
	Messages []messageJSON `json:"messages"`
}

type messageJSON struct {
	MessageTypeID int   `json:"messageTypeId"`
	TargetID      int64 `json:"targetId"`
	From          int64 `json:"from"`
	For           int64 `json:"for"`
	To            int64 `json:"to"`
}

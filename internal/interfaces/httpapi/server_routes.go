package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/logout", handler.Logout)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeagueInfo)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/roster", handler.GetTeamRoster)

	mux.HandleFunc("GET /v1/leagues/{leagueID}/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/free-agents", handler.ListFreeAgents)

	mux.HandleFunc("GET /v1/leagues/{leagueID}/activity", handler.ListActivity)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/activity/waivers", handler.ListWaiverActivity)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/activity/trades", handler.ListTradeActivity)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/activity/add-drops", handler.ListAddDropActivity)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/activity/lineups", handler.ListLineupActivity)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/activity/settings", handler.ListSettingsActivity)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/activity/keepers", handler.ListKeeperActivity)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/transactions/teams/{teamID}", handler.ListTeamTransactions)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players/{playerName}/transactions", handler.ListPlayerTransactions)

	mux.HandleFunc("GET /v1/leagues/{leagueID}/draft", handler.ListDraftResults)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/draft/rounds/{round}", handler.ListDraftRound)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/draft/teams/{teamID}", handler.ListDraftByTeam)
}

func registerMetaRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/meta/positions", handler.ListPositions)
	mux.HandleFunc("GET /v1/meta/stats", handler.ListStats)
	mux.HandleFunc("GET /v1/meta/activity-types", handler.ListActivityTypes)
}

package httpapi

import "net/http"

func (h *Handler) GetLeagueInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueInfo")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lg, err := h.leagueService.Info(ctx, leagueID, year, sessionID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "league info failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, leagueToDTO(lg))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.leagueService.Standings(ctx, leagueID, year, sessionID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t, false))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRoster")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.leagueService.TeamRoster(ctx, leagueID, year, teamID, sessionID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "team roster failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, teamToDTO(*team, true))
}

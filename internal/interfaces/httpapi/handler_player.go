package httpapi

import (
	"net/http"
	"strings"

	"github.com/jdguggs10/flaim-app/internal/usecase"
)

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	// Caps and the default threshold stay zero here so the configured
	// service defaults apply.
	var opts usecase.SearchOptions
	if opts.IncludeRostered, err = queryBool(r, "include_rostered", true); err != nil {
		writeError(ctx, w, err)
		return
	}
	if opts.IncludeFreeAgents, err = queryBool(r, "include_free_agents", true); err != nil {
		writeError(ctx, w, err)
		return
	}
	if opts.ScoreThreshold, err = queryInt(r, "threshold", 0); err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	term := strings.TrimSpace(r.URL.Query().Get("q"))
	results, err := h.searchService.Search(ctx, leagueID, year, sessionID(r), term, opts)
	if err != nil {
		h.logger.WarnContext(ctx, "player search failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchResultDTO, 0, len(results))
	for _, m := range results {
		items = append(items, matchResultToDTO(m))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListFreeAgents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFreeAgents")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := usecase.FreeAgentQuery{Position: strings.TrimSpace(r.URL.Query().Get("position"))}
	if query.PositionID, err = queryInt(r, "position_id", -1); err != nil {
		writeError(ctx, w, err)
		return
	}
	if query.Limit, err = queryInt(r, "limit", 0); err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	// week is accepted for tool-call compatibility but the vendor player
	// filter has no scoring-period dimension, so it cannot narrow the
	// listing.
	if _, err = queryInt(r, "week", 0); err != nil {
		writeError(ctx, w, err)
		return
	}

	agents, err := h.playerService.FreeAgents(ctx, leagueID, year, sessionID(r), query)
	if err != nil {
		h.logger.WarnContext(ctx, "free agent listing failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(agents))
	for _, p := range agents {
		items = append(items, playerToDTO(p))
	}
	writeJSON(ctx, w, http.StatusOK, items)
}

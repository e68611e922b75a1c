package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jdguggs10/flaim-app/internal/usecase"
)

func (h *Handler) ListDraftResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDraftResults")
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

	picks, err := h.draftService.Results(ctx, leagueID, year, sessionID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "draft results failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, picksToDTO(picks))
}

func (h *Handler) ListDraftRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDraftRound")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	round, err := strconv.Atoi(strings.TrimSpace(r.PathValue("round")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: round must be an integer", usecase.ErrInvalidInput))
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	picks, err := h.draftService.ByRound(ctx, leagueID, year, round, sessionID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "draft round failed", "league_id", leagueID, "round", round, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, picksToDTO(picks))
}

func (h *Handler) ListDraftByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDraftByTeam")
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

	picks, err := h.draftService.ByTeam(ctx, leagueID, year, teamID, sessionID(r))
	if err != nil {
		h.logger.WarnContext(ctx, "draft by team failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, picksToDTO(picks))
}

package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jdguggs10/flaim-app/internal/domain/activity"
)

func (h *Handler) ListActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActivity")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", 25)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	kind := activity.Kind(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("type"))))

	records, err := h.activityService.Recent(ctx, leagueID, year, sessionID(r), limit, offset, kind)
	if err != nil {
		h.logger.WarnContext(ctx, "activity listing failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, activitiesToDTO(records))
}

// activityView routes one of the fixed feed views through a service
// method sharing the (league, year, session, limit) shape.
func (h *Handler) activityView(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	fetch func(ctx context.Context, leagueID int64, year int, sessionID string, limit int) ([]activity.Record, error),
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", 25)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := fetch(ctx, leagueID, year, sessionID(r), limit)
	if err != nil {
		h.logger.WarnContext(ctx, "activity view failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, activitiesToDTO(records))
}

func (h *Handler) ListWaiverActivity(w http.ResponseWriter, r *http.Request) {
	h.activityView(w, r, "httpapi.Handler.ListWaiverActivity", h.activityService.Waivers)
}

func (h *Handler) ListTradeActivity(w http.ResponseWriter, r *http.Request) {
	h.activityView(w, r, "httpapi.Handler.ListTradeActivity", h.activityService.Trades)
}

func (h *Handler) ListAddDropActivity(w http.ResponseWriter, r *http.Request) {
	h.activityView(w, r, "httpapi.Handler.ListAddDropActivity", h.activityService.AddDrops)
}

func (h *Handler) ListLineupActivity(w http.ResponseWriter, r *http.Request) {
	h.activityView(w, r, "httpapi.Handler.ListLineupActivity", h.activityService.Lineups)
}

func (h *Handler) ListSettingsActivity(w http.ResponseWriter, r *http.Request) {
	h.activityView(w, r, "httpapi.Handler.ListSettingsActivity", h.activityService.Settings)
}

func (h *Handler) ListKeeperActivity(w http.ResponseWriter, r *http.Request) {
	h.activityView(w, r, "httpapi.Handler.ListKeeperActivity", h.activityService.Keepers)
}

func (h *Handler) ListTeamTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamTransactions")
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
	limit, err := queryInt(r, "limit", 25)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.activityService.TeamTransactions(ctx, leagueID, year, teamID, sessionID(r), limit)
	if err != nil {
		h.logger.WarnContext(ctx, "team transactions failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, activitiesToDTO(records))
}

func (h *Handler) ListPlayerTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerTransactions")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerName, err := url.PathUnescape(r.PathValue("playerName"))
	if err != nil {
		playerName = r.PathValue("playerName")
	}
	limit, err := queryInt(r, "limit", 25)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.activityService.PlayerHistory(ctx, leagueID, year, sessionID(r), strings.TrimSpace(playerName), limit)
	if err != nil {
		h.logger.WarnContext(ctx, "player transactions failed", "league_id", leagueID, "player", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, activitiesToDTO(records))
}

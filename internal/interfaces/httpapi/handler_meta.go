package httpapi

import (
	"net/http"

	"github.com/jdguggs10/flaim-app/internal/domain/meta"
)

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, meta.Positions())
}

func (h *Handler) ListStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStats")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, meta.Stats())
}

func (h *Handler) ListActivityTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActivityTypes")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, meta.ActivityCodes())
}

package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/jdguggs10/flaim-app/internal/usecase"
)

type loginRequest struct {
	ESPNS2 string `json:"espn_s2" validate:"required"`
	SWID   string `json:"swid" validate:"required"`
}

type loginResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type logoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON body", usecase.ErrInvalidInput))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sessionID, err := h.sessionService.Login(ctx, req.ESPNS2, req.SWID)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	// Cached anonymous views of private leagues must not outlive a login.
	h.leagueService.Invalidate(ctx)

	writeJSON(ctx, w, http.StatusOK, loginResponse{
		Status:    "success",
		Message:   "ESPN credentials stored for this session",
		SessionID: sessionID,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	if err := h.sessionService.Logout(ctx, sessionID(r)); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.leagueService.Invalidate(ctx)

	writeJSON(ctx, w, http.StatusOK, logoutResponse{
		Status:  "success",
		Message: "session cleared",
	})
}

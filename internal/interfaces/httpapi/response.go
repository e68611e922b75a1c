package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/jdguggs10/flaim-app/internal/usecase"
)

// privateLeagueHint is appended when the vendor refuses access, so a
// caller knows which cookies unlock the league.
const privateLeagueHint = "This appears to be a private league. Authenticate with your ESPN_S2 and SWID cookies and retry."

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"response encoding failed"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status, message := mapError(err)
	writeJSON(ctx, w, status, errorBody{Error: message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, usecase.ErrUpstreamAccess):
		return http.StatusUnauthorized, err.Error() + ". " + privateLeagueHint
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

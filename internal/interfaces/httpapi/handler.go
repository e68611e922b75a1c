package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jdguggs10/flaim-app/internal/platform/logging"
	"github.com/jdguggs10/flaim-app/internal/usecase"
)

type Handler struct {
	sessionService  *usecase.SessionService
	leagueService   *usecase.LeagueService
	playerService   *usecase.PlayerService
	searchService   *usecase.SearchService
	activityService *usecase.ActivityService
	draftService    *usecase.DraftService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	sessionService *usecase.SessionService,
	leagueService *usecase.LeagueService,
	playerService *usecase.PlayerService,
	searchService *usecase.SearchService,
	activityService *usecase.ActivityService,
	draftService *usecase.DraftService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		sessionService:  sessionService,
		leagueService:   leagueService,
		playerService:   playerService,
		searchService:   searchService,
		activityService: activityService,
		draftService:    draftService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// pathID parses a positive integer path segment.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, returning the
// fallback when the parameter is absent or blank.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

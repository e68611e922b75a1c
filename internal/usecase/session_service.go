package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jdguggs10/flaim-app/internal/domain/session"
	"github.com/jdguggs10/flaim-app/internal/platform/logging"
)

// SessionService stores ESPN cookies per session identifier. Requests
// without a known session run anonymously against public leagues.
type SessionService struct {
	store  session.Store
	logger *logging.Logger
}

func NewSessionService(store session.Store, logger *logging.Logger) *SessionService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SessionService{store: store, logger: logger}
}

func (s *SessionService) Login(ctx context.Context, espnS2, swid string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Login")
	defer span.End()

	espnS2 = strings.TrimSpace(espnS2)
	swid = strings.TrimSpace(swid)
	if espnS2 == "" || swid == "" {
		return "", fmt.Errorf("%w: espn_s2 and swid are both required", ErrInvalidInput)
	}

	sessionID := uuid.NewString()
	creds := session.Credentials{ESPNS2: espnS2, SWID: swid}
	if err := s.store.Save(ctx, sessionID, creds); err != nil {
		return "", fmt.Errorf("save credentials: %w", err)
	}

	s.logger.InfoContext(ctx, "session authenticated", "session_id", sessionID, "credential_fingerprint", creds.Fingerprint())
	return sessionID, nil
}

func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Logout")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}

// Resolve returns the stored credentials for a session, or anonymous
// credentials when the session is unknown or blank.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (session.Credentials, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return session.Credentials{}, nil
	}

	creds, ok, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return session.Credentials{}, fmt.Errorf("get credentials: %w", err)
	}
	if !ok {
		return session.Credentials{}, nil
	}
	return creds, nil
}

// Package session models per-session ESPN credentials.
package session

import (
	"context"
	"crypto/md5"
	"encoding/hex"
)

// Credentials are the two opaque ESPN cookies granting private-league
// access. Both empty means anonymous, public-league-only access.
type Credentials struct {
	ESPNS2 string
	SWID   string
}

func (c Credentials) IsZero() bool {
	return c.ESPNS2 == "" && c.SWID == ""
}

// Fingerprint derives a short stable hash for cache keying so raw
// cookie values never appear in cache keys or logs.
func (c Credentials) Fingerprint() string {
	if c.ESPNS2 == "" || c.SWID == "" {
		return "no_auth"
	}
	sum := md5.Sum([]byte(c.ESPNS2 + "_" + c.SWID))
	return hex.EncodeToString(sum[:])[:8]
}

// Store keeps credentials per session identifier.
type Store interface {
	Save(ctx context.Context, sessionID string, creds Credentials) error
	Get(ctx context.Context, sessionID string) (Credentials, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

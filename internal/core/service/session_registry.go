package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shs/account-service/internal/core/domain"
	"github.com/shs/account-service/internal/core/ports"
)

const (
	sessionTokenSize  = 32
	DefaultSessionTTL = 60 * 24 * time.Hour
)

// SessionRegistry issues, resolves and revokes opaque session tokens. All
// state lives in the SessionStore so every server instance sees the same sessions.
type SessionRegistry struct {
	store  ports.SessionStore
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionRegistry(store ports.SessionStore, ttl time.Duration, logger zerolog.Logger) *SessionRegistry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionRegistry{store: store, ttl: ttl, logger: logger}
}

// Issue creates a new session for accountID.
func (r *SessionRegistry) Issue(ctx context.Context, accountID string) (*domain.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	if err := r.store.Put(ctx, token, accountID, r.ttl); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &domain.Session{
		Token:     token,
		AccountID: accountID,
		ExpiresAt: time.Now().UTC().Add(r.ttl),
	}, nil
}

// Resolve returns the account id bound to token. Empty, malformed, unknown
// and expired tokens all fail with domain.ErrUnauthenticated.
func (r *SessionRegistry) Resolve(ctx context.Context, token string) (string, error) {
	if !wellFormedToken(token) {
		return "", domain.ErrUnauthenticated
	}
	return r.store.Get(ctx, token)
}

// Revoke deletes token. Unknown tokens are ignored.
func (r *SessionRegistry) Revoke(ctx context.Context, token string) error {
	if !wellFormedToken(token) {
		return nil
	}
	return r.store.Delete(ctx, token)
}

// RevokeAll deletes every session issued for accountID.
func (r *SessionRegistry) RevokeAll(ctx context.Context, accountID string) (int, error) {
	n, err := r.store.DeleteAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	r.logger.Debug().Str("account_id", accountID).Int("sessions", n).Msg("sessions revoked")
	return n, nil
}

func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func wellFormedToken(token string) bool {
	if token == "" {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	return err == nil && len(raw) == sessionTokenSize
}

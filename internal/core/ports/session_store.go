package ports

import (
	"context"
	"time"
)

// SessionStore is the shared TTL key-value store behind sessions.
// Get returns domain.ErrUnauthenticated when the token is unknown or expired.
type SessionStore interface {
	Put(ctx context.Context, token, accountID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	// Delete removes token; deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
	// DeleteAccount removes every token issued for accountID.
	DeleteAccount(ctx context.Context, accountID string) (int, error)
}

// SessionPurger asynchronously revokes every session of an account.
type SessionPurger interface {
	Enqueue(accountID string)
}

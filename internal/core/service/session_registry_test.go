package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shs/account-service/internal/core/domain"
)

func TestSessionRegistry_IssueResolveRevoke(t *testing.T) {
	store := newStubSessionStore()
	reg := NewSessionRegistry(store, time.Hour, zerolog.Nop())
	ctx := context.Background()

	session, err := reg.Issue(ctx, "acc-1")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "acc-1", session.AccountID)
	assert.Equal(t, time.Hour, store.ttls[session.Token])

	id, err := reg.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)

	require.NoError(t, reg.Revoke(ctx, session.Token))
	_, err = reg.Resolve(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	// Revoking twice is not an error.
	require.NoError(t, reg.Revoke(ctx, session.Token))
}

func TestSessionRegistry_TokensAreUnique(t *testing.T) {
	reg := NewSessionRegistry(newStubSessionStore(), time.Hour, zerolog.Nop())
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		s, err := reg.Issue(context.Background(), "acc-1")
		require.NoError(t, err)
		_, dup := seen[s.Token]
		require.False(t, dup, "duplicate token issued")
		seen[s.Token] = struct{}{}
	}
}

func TestSessionRegistry_RejectsMalformedTokens(t *testing.T) {
	reg := NewSessionRegistry(newStubSessionStore(), time.Hour, zerolog.Nop())
	for _, token := range []string{"", "garbage", "not a token at all", "c2hvcnQ", "!!!!"} {
		_, err := reg.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated, "token %q", token)
		assert.NoError(t, reg.Revoke(context.Background(), token))
	}
}

func TestSessionRegistry_UnknownWellFormedToken(t *testing.T) {
	reg := NewSessionRegistry(newStubSessionStore(), time.Hour, zerolog.Nop())
	token, err := newSessionToken()
	require.NoError(t, err)

	_, err = reg.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionRegistry_StoreFailurePropagates(t *testing.T) {
	store := newStubSessionStore()
	reg := NewSessionRegistry(store, time.Hour, zerolog.Nop())
	session, err := reg.Issue(context.Background(), "acc-1")
	require.NoError(t, err)

	boom := errors.New("connection refused")
	store.getErr = boom
	_, err = reg.Resolve(context.Background(), session.Token)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionRegistry_RevokeAll(t *testing.T) {
	store := newStubSessionStore()
	reg := NewSessionRegistry(store, time.Hour, zerolog.Nop())
	ctx := context.Background()

	a, _ := reg.Issue(ctx, "acc-1")
	b, _ := reg.Issue(ctx, "acc-1")
	other, _ := reg.Issue(ctx, "acc-2")

	n, err := reg.RevokeAll(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, token := range []string{a.Token, b.Token} {
		_, err := reg.Resolve(ctx, token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	}
	id, err := reg.Resolve(ctx, other.Token)
	require.NoError(t, err)
	assert.Equal(t, "acc-2", id)
}

func TestSessionRegistry_DefaultTTL(t *testing.T) {
	reg := NewSessionRegistry(newStubSessionStore(), 0, zerolog.Nop())
	assert.Equal(t, DefaultSessionTTL, reg.ttl)
}

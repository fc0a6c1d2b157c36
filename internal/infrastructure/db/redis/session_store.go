package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shs/account-service/internal/core/domain"
)

const keyPrefix = "shs:"

// SessionStore keeps sessions in Redis.
//
//	shs:session:<token>          → account id (TTL = session TTL)
//	shs:account-sessions:<id>    → set of tokens issued for the account
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Put(ctx context.Context, token, accountID string, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(token), accountID, ttl)
		pipe.SAdd(ctx, accountSessionsKey(accountID), token)
		pipe.Expire(ctx, accountSessionsKey(accountID), ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// Get returns the account id bound to token, or domain.ErrUnauthenticated
// when the key is missing or expired.
func (s *SessionStore) Get(ctx context.Context, token string) (string, error) {
	accountID, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	return accountID, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	accountID, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(token))
		pipe.SRem(ctx, accountSessionsKey(accountID), token)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteAccount removes every live session of accountID and reports how many
// were removed.
func (s *SessionStore) DeleteAccount(ctx context.Context, accountID string) (int, error) {
	tokens, err := s.client.SMembers(ctx, accountSessionsKey(accountID)).Result()
	if err != nil {
		return 0, fmt.Errorf("list account sessions: %w", err)
	}

	var removed int64
	if len(tokens) > 0 {
		keys := make([]string, 0, len(tokens))
		for _, t := range tokens {
			keys = append(keys, sessionKey(t))
		}
		removed, err = s.client.Del(ctx, keys...).Result()
		if err != nil {
			return 0, fmt.Errorf("delete account sessions: %w", err)
		}
	}

	if err := s.client.Del(ctx, accountSessionsKey(accountID)).Err(); err != nil {
		return 0, fmt.Errorf("delete account session index: %w", err)
	}
	return int(removed), nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("%ssession:%s", keyPrefix, token)
}

func accountSessionsKey(accountID string) string {
	return fmt.Sprintf("%saccount-sessions:%s", keyPrefix, accountID)
}

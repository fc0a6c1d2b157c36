package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shs/account-service/internal/core/domain"
	"github.com/shs/account-service/internal/core/ports"
)

// AuthService implements username login, session authentication and logout.
type AuthService struct {
	repo      ports.AccountRepository
	hasher    ports.PasswordHasher
	sessions  *SessionRegistry
	logger    zerolog.Logger
	dummyHash string
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, sessions *SessionRegistry, logger zerolog.Logger) (*AuthService, error) {
	// Compared against on unknown usernames so both failure paths cost one hash comparison.
	dummy, err := hasher.Hash("unknown-account-placeholder")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		sessions:  sessions,
		logger:    logger,
		dummyHash: dummy,
	}, nil
}

// Login verifies the credentials and returns a new session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := s.verifyPassword(ctx, username, password)
	if err != nil {
		return "", err
	}

	session, err := s.sessions.Issue(ctx, account.ID)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("account_id", account.ID).Str("type", string(account.Type)).Msg("account logged in")
	return session.Token, nil
}

// Authenticate resolves token to its account. A session whose account was
// deleted is treated as unknown.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	accountID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			if rerr := s.sessions.Revoke(ctx, token); rerr != nil {
				s.logger.Warn().Err(rerr).Str("account_id", accountID).Msg("revoke orphaned session failed")
			}
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return account, nil
}

// Logout revokes token. The token must still resolve.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	account, err := s.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("account logged out")
	return nil
}

func (s *AuthService) verifyPassword(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		_ = s.hasher.Compare(s.dummyHash, password)
		return nil, domain.ErrInvalidCredentials
	case err != nil:
		return nil, err
	}

	if s.hasher.Compare(account.PasswordHash, password) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}

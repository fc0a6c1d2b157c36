package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/shs/account-service/internal/core/authz"
	"github.com/shs/account-service/internal/core/domain"
	"github.com/shs/account-service/internal/core/ports"
)

// AccountService implements the account lifecycle. Each operation runs
// authorize → validate → execute and stops at the first failure.
type AccountService struct {
	repo     ports.AccountRepository
	hasher   ports.PasswordHasher
	purger   ports.SessionPurger
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAccountService builds an AccountService. purger may be nil, in which case
// sessions of deleted accounts simply stop resolving.
func NewAccountService(repo ports.AccountRepository, hasher ports.PasswordHasher, purger ports.SessionPurger, logger zerolog.Logger) *AccountService {
	return &AccountService{
		repo:     repo,
		hasher:   hasher,
		purger:   purger,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, caller *domain.Account, typ domain.AccountType, input ports.NewAccountInput) (*domain.Account, error) {
	if err := authorize(caller, authz.OpCreate, typ); err != nil {
		return nil, err
	}
	if !typ.IsManageable() {
		return nil, domain.ErrInvalidAccountType
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	created, err := s.create(ctx, typ, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("account_id", created.ID).
		Str("type", string(typ)).
		Str("created_by", caller.ID).
		Msg("account created")
	return created, nil
}

func (s *AccountService) GetAccount(ctx context.Context, caller *domain.Account, id string) (*domain.Account, error) {
	return s.target(ctx, caller, authz.OpGet, id)
}

// ListAccounts returns the admin and secritary accounts.
func (s *AccountService) ListAccounts(ctx context.Context, caller *domain.Account) ([]*domain.Account, error) {
	for _, typ := range domain.ManageableTypes {
		if err := authorize(caller, authz.OpList, typ); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, domain.ManageableTypes)
}

// UpdateAccount applies the supplied non-empty fields only. The password is
// rehashed. Every live session of the account is revoked afterwards.
func (s *AccountService) UpdateAccount(ctx context.Context, caller *domain.Account, id string, input ports.UpdateAccountInput) error {
	if _, err := s.target(ctx, caller, authz.OpUpdate, id); err != nil {
		return err
	}

	update := domain.AccountUpdate{
		Username:    nonEmpty(input.Username),
		DisplayName: nonEmpty(input.DisplayName),
	}
	if password := nonEmpty(input.Password); password != nil {
		hash, err := s.hasher.Hash(*password)
		if err != nil {
			return err
		}
		update.PasswordHash = &hash
	}
	if update.Empty() {
		return nil
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return err
	}
	if s.purger != nil {
		s.purger.Enqueue(id)
	}

	s.logger.Info().
		Str("account_id", id).
		Bool("username", update.Username != nil).
		Bool("display_name", update.DisplayName != nil).
		Bool("password", update.PasswordHash != nil).
		Str("updated_by", caller.ID).
		Msg("account updated")
	return nil
}

// DeleteAccount removes the account and schedules revocation of its sessions.
func (s *AccountService) DeleteAccount(ctx context.Context, caller *domain.Account, id string) error {
	if _, err := s.target(ctx, caller, authz.OpDelete, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.purger != nil {
		s.purger.Enqueue(id)
	}

	s.logger.Info().Str("account_id", id).Str("deleted_by", caller.ID).Msg("account deleted")
	return nil
}

// EnsureSuperAdmin creates the bootstrap superadmin unless an account with
// that username already exists.
func (s *AccountService) EnsureSuperAdmin(ctx context.Context, username, password, displayName string) error {
	if username == "" || password == "" {
		s.logger.Warn().Msg("superadmin credentials not configured, skipping bootstrap")
		return nil
	}
	if displayName == "" {
		displayName = "Super Admin"
	}

	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	created, err := s.create(ctx, domain.AccountTypeSuperAdmin, ports.NewAccountInput{
		Username:    username,
		Password:    password,
		DisplayName: displayName,
	})
	if errors.Is(err, domain.ErrAccountExists) {
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Info().Str("account_id", created.ID).Msg("superadmin account created")
	return nil
}

// target authorizes caller against the account id refers to. The coarse role
// check runs before the store is touched.
func (s *AccountService) target(ctx context.Context, caller *domain.Account, op authz.Operation, id string) (*domain.Account, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !authz.CanManageAccounts(caller.Type) {
		return nil, domain.ErrPermissionDenied
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Check(caller.Type, op, account.Type); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) create(ctx context.Context, typ domain.AccountType, input ports.NewAccountInput) (*domain.Account, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Account{
		Username:     input.Username,
		DisplayName:  input.DisplayName,
		PasswordHash: hash,
		Type:         typ,
		Permissions:  typ.Level(),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// nonEmpty drops a supplied empty string so the field is left unchanged.
func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func authorize(caller *domain.Account, op authz.Operation, target domain.AccountType) error {
	if caller == nil {
		return domain.ErrUnauthenticated
	}
	return authz.Check(caller.Type, op, target)
}

package handler

import (
	"context"

	"github.com/shs/account-service/internal/core/domain"
	"github.com/shs/account-service/internal/core/ports"
)

type stubAuthService struct {
	loginFn        func(ctx context.Context, username, password string) (string, error)
	authenticateFn func(ctx context.Context, token string) (*domain.Account, error)
	logoutFn       func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	return s.authenticateFn(ctx, token)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

type stubAccountService struct {
	createFn func(ctx context.Context, caller *domain.Account, typ domain.AccountType, input ports.NewAccountInput) (*domain.Account, error)
	getFn    func(ctx context.Context, caller *domain.Account, id string) (*domain.Account, error)
	listFn   func(ctx context.Context, caller *domain.Account) ([]*domain.Account, error)
	updateFn func(ctx context.Context, caller *domain.Account, id string, input ports.UpdateAccountInput) error
	deleteFn func(ctx context.Context, caller *domain.Account, id string) error
}

func (s *stubAccountService) CreateAccount(ctx context.Context, caller *domain.Account, typ domain.AccountType, input ports.NewAccountInput) (*domain.Account, error) {
	return s.createFn(ctx, caller, typ, input)
}

func (s *stubAccountService) GetAccount(ctx context.Context, caller *domain.Account, id string) (*domain.Account, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubAccountService) ListAccounts(ctx context.Context, caller *domain.Account) ([]*domain.Account, error) {
	return s.listFn(ctx, caller)
}

func (s *stubAccountService) UpdateAccount(ctx context.Context, caller *domain.Account, id string, input ports.UpdateAccountInput) error {
	return s.updateFn(ctx, caller, id, input)
}

func (s *stubAccountService) DeleteAccount(ctx context.Context, caller *domain.Account, id string) error {
	return s.deleteFn(ctx, caller, id)
}

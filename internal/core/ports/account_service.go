package ports

import (
	"context"

	"github.com/shs/account-service/internal/core/domain"
)

// NewAccountInput carries the fields of an account to create.
type NewAccountInput struct {
	Username    string `validate:"required"`
	Password    string `validate:"required"`
	DisplayName string `validate:"required"`
}

// UpdateAccountInput carries a partial update. Nil and empty fields are left
// unchanged.
type UpdateAccountInput struct {
	Username    *string
	Password    *string
	DisplayName *string
}

// AccountService is the account lifecycle surface. Every method takes the
// authenticated caller and enforces authorization before anything else.
type AccountService interface {
	CreateAccount(ctx context.Context, caller *domain.Account, typ domain.AccountType, input NewAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, caller *domain.Account, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context, caller *domain.Account) ([]*domain.Account, error)
	UpdateAccount(ctx context.Context, caller *domain.Account, id string, input UpdateAccountInput) error
	DeleteAccount(ctx context.Context, caller *domain.Account, id string) error
}

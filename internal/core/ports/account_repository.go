package ports

import (
	"context"

	"github.com/shs/account-service/internal/core/domain"
)

// AccountRepository is the credential store. Username uniqueness is enforced
// by the store itself: Create and Update return domain.ErrAccountExists on a
// collision.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// List returns accounts whose type is one of types, ordered by creation.
	List(ctx context.Context, types []domain.AccountType) ([]*domain.Account, error)
	Update(ctx context.Context, id string, update domain.AccountUpdate) error
	Delete(ctx context.Context, id string) error
}

// PasswordHasher is a one-way password hashing function.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

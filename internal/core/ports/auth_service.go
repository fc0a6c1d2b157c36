package ports

import (
	"context"

	"github.com/shs/account-service/internal/core/domain"
)

// AuthService covers login, session resolution and logout.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	// Authenticate resolves a raw token to the account that owns it.
	Authenticate(ctx context.Context, token string) (*domain.Account, error)
	Logout(ctx context.Context, token string) error
}

package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/shs/account-service/internal/core/domain"
	"github.com/shs/account-service/internal/core/ports"
)

// Context keys set by Session.
const (
	ContextKeyAccount      = "account"
	ContextKeySessionToken = "session_token"
)

// Session resolves the raw Authorization header to an account and injects it
// into the context. The header carries the token itself, without a scheme.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(echo.HeaderAuthorization)
			if token == "" {
				return domain.ErrUnauthenticated
			}

			account, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(ContextKeyAccount, account)
			c.Set(ContextKeySessionToken, token)

			return next(c)
		}
	}
}

// CurrentAccount returns the account injected by Session, or nil.
func CurrentAccount(c echo.Context) *domain.Account {
	account, _ := c.Get(ContextKeyAccount).(*domain.Account)
	return account
}

// CurrentSessionToken returns the token injected by Session.
func CurrentSessionToken(c echo.Context) string {
	token, _ := c.Get(ContextKeySessionToken).(string)
	return token
}

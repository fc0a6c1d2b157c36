package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/shs/account-service/internal/core/authz"
	"github.com/shs/account-service/internal/core/domain"
)

// RequireAccountManager rejects callers whose role cannot manage accounts at
// all. Finer, per-target checks are left to the account service. Must run
// after Session.
func RequireAccountManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := CurrentAccount(c)
			if account == nil {
				return domain.ErrUnauthenticated
			}
			if !authz.CanManageAccounts(account.Type) {
				return domain.ErrPermissionDenied
			}
			return next(c)
		}
	}
}

package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shs/account-service/internal/api/middleware"
	"github.com/shs/account-service/internal/core/domain"
)

// ctxCaller returns the account injected by the Session middleware. A missing
// account means the route was mounted without Session; reject with 401.
func ctxCaller(c echo.Context) (*domain.Account, error) {
	account := middleware.CurrentAccount(c)
	if account == nil {
		return nil, domain.ErrUnauthenticated
	}
	return account, nil
}

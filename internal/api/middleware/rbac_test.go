package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shs/account-service/internal/core/domain"
)

func runRequireAccountManager(t *testing.T, account *domain.Account) (bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if account != nil {
		c.Set(ContextKeyAccount, account)
	}

	called := false
	handler := RequireAccountManager()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	return called, handler(c)
}

func TestRequireAccountManager_Allows(t *testing.T) {
	for _, typ := range []domain.AccountType{domain.AccountTypeSuperAdmin, domain.AccountTypeAdmin} {
		called, err := runRequireAccountManager(t, &domain.Account{ID: "1", Type: typ})
		if err != nil {
			t.Fatalf("%s: handler error: %v", typ, err)
		}
		if !called {
			t.Fatalf("%s: next handler not called", typ)
		}
	}
}

func TestRequireAccountManager_Forbids(t *testing.T) {
	for _, typ := range []domain.AccountType{domain.AccountTypeSecritary, domain.AccountTypePatient} {
		called, err := runRequireAccountManager(t, &domain.Account{ID: "1", Type: typ})
		if !errors.Is(err, domain.ErrPermissionDenied) {
			t.Fatalf("%s: expected ErrPermissionDenied, got %v", typ, err)
		}
		if called {
			t.Fatalf("%s: should not reach next handler", typ)
		}
	}
}

func TestRequireAccountManager_NoAccount(t *testing.T) {
	called, err := runRequireAccountManager(t, nil)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if called {
		t.Fatalf("should not reach next handler")
	}
}

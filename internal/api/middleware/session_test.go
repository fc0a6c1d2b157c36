package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shs/account-service/internal/core/domain"
)

type stubAuthService struct {
	accounts map[string]*domain.Account
	err      error
	calls    int
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthService) Authenticate(_ context.Context, token string) (*domain.Account, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	account, ok := s.accounts[token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return account, nil
}

func (s *stubAuthService) Logout(context.Context, string) error {
	return errors.New("not implemented")
}

func TestSession_InjectsAccount(t *testing.T) {
	alice := &domain.Account{ID: "a1", Username: "alice", Type: domain.AccountTypeAdmin}
	auth := &stubAuthService{accounts: map[string]*domain.Account{"tok": alice}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me/auth", nil)
	req.Header.Set(echo.HeaderAuthorization, "tok")
	c := e.NewContext(req, httptest.NewRecorder())

	var got *domain.Account
	var gotToken string
	handler := Session(auth)(func(c echo.Context) error {
		got = CurrentAccount(c)
		gotToken = CurrentSessionToken(c)
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != alice {
		t.Fatalf("expected alice in context, got %+v", got)
	}
	if gotToken != "tok" {
		t.Fatalf("expected token in context, got %q", gotToken)
	}
}

func TestSession_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		header string
		calls  int
	}{
		{"missing header", "", 0},
		{"unknown token", "garbage", 1},
		{"bearer prefix", "Bearer tok", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &stubAuthService{accounts: map[string]*domain.Account{"tok": {ID: "a1"}}}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/me/auth", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Session(auth)(func(c echo.Context) error {
				t.Fatalf("should not reach next handler")
				return nil
			})

			if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
			if auth.calls != tc.calls {
				t.Fatalf("expected %d Authenticate calls, got %d", tc.calls, auth.calls)
			}
		})
	}
}

func TestSession_PropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("redis down")
	auth := &stubAuthService{err: storeErr}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me/auth", nil)
	req.Header.Set(echo.HeaderAuthorization, "tok")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Session(auth)(func(c echo.Context) error { return nil })
	if err := handler(c); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

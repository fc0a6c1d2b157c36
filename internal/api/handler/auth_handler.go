package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shs/account-service/internal/api/metrics"
	"github.com/shs/account-service/internal/api/middleware"
	"github.com/shs/account-service/internal/core/domain"
	"github.com/shs/account-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a username/password pair and opens a session.
//
// @Summary      Login with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login/username [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequestBody, err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{SessionToken: token})
}

// Me returns the account behind the current session.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     SessionToken
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  errorResponse
// @Router       /me/auth [get]
func (h *AuthHandler) Me(c echo.Context) error {
	account, err := ctxCaller(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Logout revokes the current session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     SessionToken
// @Success      200  {object}  emptyResponse
// @Failure      401  {object}  errorResponse
// @Router       /me/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.CurrentSessionToken(c)
	if token == "" {
		return domain.ErrUnauthenticated
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	metrics.SessionsRevokedTotal.WithLabelValues("logout").Inc()
	return c.JSON(http.StatusOK, emptyResponse{})
}

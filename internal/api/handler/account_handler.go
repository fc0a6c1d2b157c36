package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shs/account-service/internal/core/authz"
	"github.com/shs/account-service/internal/core/domain"
	"github.com/shs/account-service/internal/core/ports"
)

// AccountHandler handles HTTP requests for account management.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create handles POST /accounts/:type. Only admin and secritary accounts can
// be created; other types fail authorization or validation in the service.
//
// @Summary      Create an admin or secritary account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        type  path      string                true  "Account type"  Enums(admin, secritary)
// @Param        body  body      createAccountRequest  true  "New account"
// @Success      200   {object}  createAccountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /accounts/{type} [post]
func (h *AccountHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	typ := domain.AccountType(c.Param("type"))
	if err := authz.Check(caller.Type, authz.OpCreate, typ); err != nil {
		return err
	}

	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequestBody, err)
	}

	account, err := h.service.CreateAccount(c.Request().Context(), caller, typ, ports.NewAccountInput{
		Username:    req.NewAccount.Username,
		Password:    req.NewAccount.Password,
		DisplayName: req.NewAccount.DisplayName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createAccountResponse{ID: account.ID})
}

// Get handles GET /accounts/:id.
//
// @Summary      Get an account by id
// @Tags         accounts
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  accountResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	account, err := h.service.GetAccount(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, accountResponse{Data: account})
}

// List handles GET /accounts.
//
// @Summary      List admin and secritary accounts
// @Tags         accounts
// @Produce      json
// @Security     SessionToken
// @Success      200  {object}  accountListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	accounts, err := h.service.ListAccounts(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	if accounts == nil {
		accounts = []*domain.Account{}
	}

	return c.JSON(http.StatusOK, accountListResponse{Data: accounts})
}

// Update handles PUT /accounts/:id. Only the fields present in new_account
// are changed.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id    path      string                true  "Account id"
// @Param        body  body      updateAccountRequest  true  "Fields to change"
// @Success      200   {object}  emptyResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /accounts/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		// Authorization failures still win over a malformed body.
		if _, gerr := h.service.GetAccount(c.Request().Context(), caller, c.Param("id")); gerr != nil {
			return gerr
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequestBody, err)
	}

	err = h.service.UpdateAccount(c.Request().Context(), caller, c.Param("id"), ports.UpdateAccountInput{
		Username:    req.NewAccount.Username,
		Password:    req.NewAccount.Password,
		DisplayName: req.NewAccount.DisplayName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, emptyResponse{})
}

// Delete handles DELETE /accounts/:id.
//
// @Summary      Delete an account
// @Tags         accounts
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  emptyResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, emptyResponse{})
}

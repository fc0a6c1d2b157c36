package handler

import "github.com/shs/account-service/internal/core/domain"

// errorResponse documents the error envelope rendered by the HTTP error handler.
type errorResponse struct {
	ErrorID string `json:"error_id" example:"permission-denied"`
}

// emptyResponse is the body of successful calls that return nothing.
type emptyResponse struct{}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	SessionToken string `json:"session_token"`
}

// --- Accounts ---

type newAccountBody struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type createAccountRequest struct {
	NewAccount newAccountBody `json:"new_account"`
}

type createAccountResponse struct {
	ID string `json:"id"`
}

// updateAccountBody distinguishes an omitted field (nil) from an empty one.
type updateAccountBody struct {
	Username    *string `json:"username,omitempty"`
	Password    *string `json:"password,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
}

type updateAccountRequest struct {
	NewAccount updateAccountBody `json:"new_account"`
}

type accountResponse struct {
	Data *domain.Account `json:"data"`
}

type accountListResponse struct {
	Data []*domain.Account `json:"data"`
}

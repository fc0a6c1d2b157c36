package domain

import "errors"

// The text of each error is the stable error_id returned to clients.
var (
	ErrUnauthenticated    = errors.New("invalid-session-token")
	ErrInvalidCredentials = errors.New("invalid-login-credentials")
	ErrPermissionDenied   = errors.New("permission-denied")
	ErrAccountExists      = errors.New("account-exists")
	ErrAccountNotFound    = errors.New("account-not-found")
	ErrInvalidUsername    = errors.New("invalid-account-username")
	ErrInvalidPassword    = errors.New("invalid-account-password")
	ErrInvalidDisplayName = errors.New("invalid-account-display-name")
	ErrInvalidAccountType = errors.New("invalid-account-type")
	ErrInvalidRequestBody = errors.New("invalid-request-body")
)

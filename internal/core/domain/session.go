package domain

import "time"

// Session binds an opaque token to the account that logged in.
type Session struct {
	Token     string
	AccountID string
	ExpiresAt time.Time
}

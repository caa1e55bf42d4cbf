package domain

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email address already used")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Password reset errors
var (
	// ErrResetTokenInvalid covers unknown, already consumed and superseded
	// tokens alike; callers never learn which one it was.
	ErrResetTokenInvalid = errors.New("wrong or expired reset token")
)

// Session token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Catalog and contact errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCategory = errors.New("invalid product category")
	ErrImageRequired   = errors.New("product image is required")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrContactNotFound = errors.New("contact not found")
)

// Notification errors
var (
	ErrNotificationFailed = errors.New("notification delivery failed")
)

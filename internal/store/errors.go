package store

import "errors"

var (
	// ErrUnauthorized is returned by admin-gated operations when the current
	// session is missing or not an admin.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccountSuspended is returned by Login for banned accounts.
	ErrAccountSuspended = errors.New("this account has been suspended")

	// ErrNotFound is returned when a record ID does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput wraps input invariant violations (missing fields,
	// negative price or stock, malformed email).
	ErrInvalidInput = errors.New("invalid input")
)

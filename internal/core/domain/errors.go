package domain

import "errors"

// Sentinel errors shared across the core. The HTTP layer maps each to a
// status code; anything not listed here surfaces as a generic 500.
var (
	// ErrInvalidInput marks client data that fails validation (400).
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailTaken marks a registration against an already-used email (409).
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses never reveal whether an email is registered (401).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is internal to the data layer; the credential service
	// translates it before it ever reaches a client.
	ErrUserNotFound = errors.New("user not found")
)

package models

import "errors"

// Sentinel errors for the store and auth layers. Handlers map these to
// HTTP statuses with errors.Is.
var (
	// ErrDuplicateEmail is returned when registering an email that already
	// exists (exact, case-sensitive match).
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password; callers must never learn which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNonFiniteResult is returned when a calculation produced NaN or
	// Infinity. Such a record is never persisted.
	ErrNonFiniteResult = errors.New("non-finite emission value")

	// ErrNotFound is returned when a user or footprint record is absent.
	ErrNotFound = errors.New("record not found")
)

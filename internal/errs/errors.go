// Package errs contains sentinel errors shared across layers so handlers
// can map store and auth failures onto stable HTTP responses.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUser indicates a registration with an already-taken username.
	ErrDuplicateUser = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	// Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed, badly signed and expired tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation indicates a document failed persistence-time validation.
	ErrValidation = errors.New("validation failed")
)

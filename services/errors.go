package services

import "errors"

var (
	ErrNotFound = errors.New("not found")

	ErrValidation     = errors.New("validation error")
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login failures are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

package errors

import "errors"

var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNoUpdates          = errors.New("no updates provided")
	ErrForbidden          = errors.New("forbidden")
)

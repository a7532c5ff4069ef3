package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInactiveAccount    = errors.New("account is deactivated")
	ErrLocked             = errors.New("resource is locked")
	ErrAlreadyRegistered  = errors.New("already registered")
)

package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrAccountInactive        = errors.New("Your account is inactive. Please contact the administrator.")
	ErrInvalidSession         = errors.New("invalid or expired session")
	ErrNotFound               = errors.New("record not found")
)

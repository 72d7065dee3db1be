package model

import "errors"

var (
	// ErrProfileNotFound indicates that the requested profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidUserID indicates that the provided user ID is invalid (e.g., empty).
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrInvalidUsername indicates that the provided username is invalid (e.g., empty).
	ErrInvalidUsername = errors.New("invalid username")
)

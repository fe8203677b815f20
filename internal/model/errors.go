package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrInvalidAnswer   = errors.New("answer must not be empty")
)

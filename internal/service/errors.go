package service

import "errors"

var (
	// ErrInvalidUsername is returned by registration when the trimmed
	// username is shorter than 3 or longer than 50 characters.
	ErrInvalidUsername = errors.New("username must be 3-50 characters long")

	// ErrInvalidToken is returned when a presented bearer token matches no
	// known session.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a presented bearer token belongs to
	// a session whose expiry has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrValidationFailed is returned when a concept or word operation
	// receives an empty required field (owner, name, word text).
	ErrValidationFailed = errors.New("invalid data provided")

	// ErrTokenGenerationFailed is returned when a unique token could not be
	// produced within the bounded number of attempts.
	ErrTokenGenerationFailed = errors.New("token generation failed")
)

package session

import "errors"

// Session token errors
var (
	// ErrInvalidToken indicates the token is malformed, has a bad signature or
	// carries a profile that no longer validates
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken indicates the session has ended and its profile is gone
	ErrExpiredToken = errors.New("session token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("session token is missing")
)

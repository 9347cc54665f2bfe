package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when no seeded
	// username/password pair matches.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned by RefreshToken for a blank token.
	ErrInvalidToken = errors.New("invalid token")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

package service

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidOrExpiredToken = errors.New("token is expired or invalid")
	ErrTokenCreationFailed   = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// client-side errors
var (
	ErrSessionExpired    = errors.New("session expired")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrServerInternal    = errors.New("server internal error")
)

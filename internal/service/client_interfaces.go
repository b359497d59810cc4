package service

import (
	"context"

	"github.com/MKhiriev/go-user-admin/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService drives login and logout for the terminal client. The
// token itself lives in the client session.
type ClientAuthService interface {
	// Login authenticates against the server and stores the issued token.
	// Returns ErrInvalidCredentials when the server rejects the credentials
	// and ErrServerUnavailable when it cannot be reached.
	Login(ctx context.Context, username, password string) error

	// Logout drops the stored token.
	Logout()

	// Authenticated reports whether a token is stored.
	Authenticated() bool
}

// ClientUserService exposes the record operations to the terminal client.
// A 401/403 answer from the server clears the session and is reported as
// ErrSessionExpired.
type ClientUserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, id string, user models.User) (models.User, error)
	Delete(ctx context.Context, id string) (models.User, error)
}

// ClientAppInfoService reports the version of the server the client talks
// to.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-admin/internal/adapter"
	"github.com/MKhiriev/go-user-admin/internal/logger"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

// Login keeps invalid credentials and an unreachable server apart so the
// login screen can tell them apart.
func (a *clientAuthService) Login(ctx context.Context, username, password string) error {
	_, err := a.adapter.Login(ctx, username, password)
	if err == nil {
		a.logger.Info().Str("username", username).Msg("logged in")
		return nil
	}

	a.logger.Err(err).Str("username", username).Msg("login failed")
	if errors.Is(err, adapter.ErrUnauthorized) {
		return ErrInvalidCredentials
	}
	return mapAdapterError(err, nil)
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
	a.logger.Info().Msg("logged out")
}

func (a *clientAuthService) Authenticated() bool {
	return a.adapter.Token() != ""
}

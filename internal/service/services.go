package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/store"
)

type Services struct {
	TokenService   TokenService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokenService := NewTokenService(cfg.App, logger)

	return &Services{
		TokenService:   tokenService,
		UserService:    NewUserService(storages.UserStorage, tokenService, logger),
		AppInfoService: appInfoService,
	}, nil
}

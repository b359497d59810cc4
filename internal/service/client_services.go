package service

import (
	"github.com/MKhiriev/go-user-admin/internal/adapter"
	"github.com/MKhiriev/go-user-admin/internal/logger"
)

// ClientServices groups the services used by the terminal client.
type ClientServices struct {
	AuthService    ClientAuthService
	UserService    ClientUserService
	AppInfoService ClientAppInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, logger),
		UserService:    NewClientUserService(serverAdapter, logger),
		AppInfoService: NewClientAppInfoService(serverAdapter, logger),
	}
}

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-admin/internal/adapter"
	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/internal/session"
	"github.com/MKhiriev/go-user-admin/internal/tui"
	"github.com/MKhiriev/go-user-admin/models"
)

type App struct {
	session  *session.Session
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

// NewApp builds the client from cfg: a fresh session, the HTTP adapter bound
// to it, the client services and the terminal UI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	sess := session.New()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sess, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(serverAdapter, logger)

	ui, err := tui.New(services, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		session:  sess,
		services: services,
		ui:       ui,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client ui: %w", err)
	}

	a.session.Clear()
	a.logger.Info().Msg("client stopped")
	return nil
}

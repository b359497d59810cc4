// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds token and version settings used by the server.
type ServerApp struct {
	TokenSignKey  string
	TokenDuration time.Duration
	Version       string
}

// ServerConfig is the server-side view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage Storage
	Server  Server
}

// GetServerConfig builds and validates the server configuration from args
// and the process environment.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}

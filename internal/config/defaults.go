// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenDuration         = 24 * time.Hour
	defaultUsersFile             = "users.json"
	defaultServerAddress         = ":5000"
	defaultServerRequestTimeout  = 30 * time.Second
	defaultAllowedOrigin         = "http://localhost:3000"
	defaultAdapterAddress        = "http://localhost:5000"
	defaultAdapterRequestTimeout = 10 * time.Second
)

// defaultConfig returns the lowest-priority source. The token sign key has
// no default and must be supplied explicitly.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: defaultTokenDuration,
		},
		Storage: Storage{
			Files: Files{UsersFile: defaultUsersFile},
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerRequestTimeout,
			AllowedOrigins: []string{defaultAllowedOrigin},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterRequestTimeout,
		},
	}
}

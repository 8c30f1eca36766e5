// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DefaultRequestTimeout bounds inbound requests when no timeout is set.
const DefaultRequestTimeout = 30 * time.Second

// ServerStorage groups the server's storage settings.
type ServerStorage struct {
	// DB holds the PostgreSQL settings.
	DB DB
}

// ServerConfig is the sync server's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage ServerStorage
}

// GetServerConfig builds and validates the server-specific config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the server-relevant fields of cfg.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: ServerStorage{DB: cfg.Storage.DB},
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	return serverCfg
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if !cfg.Sync.ConflictPolicy.Valid() {
		return fmt.Errorf("%w: unknown conflict policy %q", ErrInvalidSyncConfigs, cfg.Sync.ConflictPolicy)
	}
	if cfg.Sync.BatchSize == 0 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.BatchSize > MaxSyncBatchSize {
		return fmt.Errorf("%w: batch size %d exceeds %d", ErrInvalidSyncConfigs, cfg.Sync.BatchSize, MaxSyncBatchSize)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-resolver/internal/config"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
)

// NewClientStorage initialises the client's [LocalStorage] from cfg:
//   - driver "memory" returns the map-backed store, persisted as JSON when
//     the DSN names a file;
//   - anything else opens SQLite at cfg.DB.DSN, creating the file if needed,
//     and runs the client migrations.
func NewClientStorage(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (LocalStorage, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating local storage...")

	if cfg.DB.Driver == config.DriverMemory {
		return NewMemoryStorage(cfg.DB.DSN)
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteStorage(db, logger), nil
}

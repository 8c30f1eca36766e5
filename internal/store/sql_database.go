package store

import (
	"database/sql"

	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/migrations"
)

// DB wraps a *sql.DB with the error classifier and logger shared by the
// repositories built on top of it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigrateClient applies the client SQLite schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// MigrateServer applies the server PostgreSQL schema.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

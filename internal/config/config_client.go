package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-resolver/models"
)

// Local store drivers accepted in [ClientDB.Driver].
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Client defaults applied to fields left unset by every source.
const (
	DefaultClientDSN      = "sync-client.db"
	DefaultAdapterTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultSyncBatchSize  = 500
	MaxSyncBatchSize      = 1000
	DefaultConflictPolicy = models.PolicyServerWins
	defaultClientVersion  = "N/A"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is reported in logs at startup.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the sync server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// Driver is [DriverSQLite] or [DriverMemory].
	Driver string
	// DSN is the SQLite file path, or the memory driver's snapshot file.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs a cycle.
	SyncInterval time.Duration
}

// ClientSync contains conflict-resolution settings.
type ClientSync struct {
	// ConflictPolicy selects the classifier policy.
	ConflictPolicy models.ConflictPolicy
	// VerifyEquality enables the resolver's equality re-check.
	VerifyEquality bool
	// BatchSize caps the number of updates fetched per request.
	BatchSize uint64
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the sync server address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Sync contains conflict-resolution settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg and fills in
// defaults for the ones left unset.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Driver: cfg.Storage.Local.Driver,
				DSN:    cfg.Storage.Local.DSN,
			},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Sync: ClientSync{
			ConflictPolicy: models.ConflictPolicy(cfg.Sync.ConflictPolicy),
			VerifyEquality: cfg.Sync.VerifyEquality,
			BatchSize:      cfg.Sync.BatchSize,
		},
	}

	clientCfg.setDefaults()
	return clientCfg
}

func (cfg *ClientConfig) setDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = defaultClientVersion
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverSQLite
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == DriverSQLite {
		cfg.Storage.DB.DSN = DefaultClientDSN
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Sync.ConflictPolicy == "" {
		cfg.Sync.ConflictPolicy = DefaultConflictPolicy
	}
	if cfg.Sync.BatchSize == 0 {
		cfg.Sync.BatchSize = DefaultSyncBatchSize
	}
}

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-resolver/internal/adapter"
	"github.com/MKhiriev/go-sync-resolver/internal/config"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/service"
	"github.com/MKhiriev/go-sync-resolver/internal/store"
	"github.com/MKhiriev/go-sync-resolver/internal/workers"
)

// App is the client process: a local store kept in sync with the server by a
// background worker.
type App struct {
	storage  store.LocalStorage
	services *service.ClientServices
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp opens the local store, connects the server adapter and wires the
// client services from cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services, err := service.NewClientServices(localStorage, serverAdapter, cfg.Sync, logger)
	if err != nil {
		localStorage.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return newApp(localStorage, services, cfg.Workers, logger), nil
}

func newApp(storage store.LocalStorage, services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *App {
	syncWorker := workers.NewSyncWorker(services.SyncJob, services.SyncService, cfg.SyncInterval, true, logger)

	return &App{
		storage:  storage,
		services: services,
		workers:  workers.NewWorkers(logger, syncWorker),
		logger:   logger,
	}
}

// Services exposes the wired client services.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run implements Client. It blocks until ctx is cancelled, then closes the
// local store.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	runErr := a.workers.Run(ctx)

	if err := a.storage.Close(); err != nil {
		a.logger.Error().Err(err).Msg("close local storage")
		if runErr == nil {
			runErr = fmt.Errorf("close local storage: %w", err)
		}
	}

	a.logger.Info().Msg("client stopped")
	return runErr
}

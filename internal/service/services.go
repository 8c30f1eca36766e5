package service

import (
	"fmt"

	"github.com/MKhiriev/go-sync-resolver/internal/config"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/store"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// Services groups the server-side services handed to the transport layer.
type Services struct {
	AppInfoService AppInfoService
	SyncService    SyncService
}

// NewServices wires the server services. SyncService is wrapped by request
// validation.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	syncSvc := NewSyncValidationService().Wrap(NewSyncService(storages.ServerEntryRepository, logger))

	return &Services{
		AppInfoService: appInfo,
		SyncService:    syncSvc,
	}, nil
}

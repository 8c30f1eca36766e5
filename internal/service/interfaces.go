package service

import (
	"context"

	"github.com/MKhiriev/go-sync-resolver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SyncServiceWrapper

// SyncService is the server side of the sync protocol.
type SyncService interface {
	// GetUpdates returns one page of entries whose version is above
	// query.Since, ordered by version.
	GetUpdates(ctx context.Context, query models.UpdatesQuery) ([]models.ServerUpdate, error)

	// GetEntry returns the current server state of one entry.
	GetEntry(ctx context.Context, id string) (models.ServerUpdate, error)

	// Commit applies every item under optimistic locking and reports a
	// per-item outcome. A version conflict is an outcome, not an error.
	Commit(ctx context.Context, req models.CommitRequest) ([]models.CommitResult, error)
}

// AppInfoService reports build and version information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// logging or validating.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService // returns a decorated SyncService applying additional behavior
}

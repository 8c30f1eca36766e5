package service

import (
	"fmt"

	"github.com/MKhiriev/go-sync-resolver/internal/adapter"
	"github.com/MKhiriev/go-sync-resolver/internal/config"
	"github.com/MKhiriev/go-sync-resolver/internal/conflict"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/store"
)

// ClientServices groups the client-side services driven by the sync worker.
type ClientServices struct {
	ConflictService ConflictService
	SyncService     ClientSyncService
	SyncJob         ClientSyncJob
}

// NewClientServices wires the client services. The classifier is selected by
// cfg.ConflictPolicy; an unknown policy is rejected with
// [ErrUnknownConflictPolicy].
func NewClientServices(localStore store.LocalStorage, serverAdapter adapter.ServerAdapter, cfg config.ClientSync, logger *logger.Logger) (*ClientServices, error) {
	classifier, err := NewConflictClassifier(cfg.ConflictPolicy)
	if err != nil {
		return nil, fmt.Errorf("conflict policy %q: %w", cfg.ConflictPolicy, err)
	}

	conflictSvc := NewConflictService(localStore, classifier, conflict.NewResolver(cfg.VerifyEquality, logger), logger)
	syncSvc := NewClientSyncService(localStore, serverAdapter, conflictSvc, cfg.BatchSize, logger)

	return &ClientServices{
		ConflictService: conflictSvc,
		SyncService:     syncSvc,
		SyncJob:         NewClientSyncJob(syncSvc, logger),
	}, nil
}

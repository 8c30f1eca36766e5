package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-resolver/internal/config"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/store"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// MaxUpdatesLimit caps the page size a client may request.
const MaxUpdatesLimit = config.MaxSyncBatchSize

// syncService is the concrete implementation of SyncService on top of the
// server entry repository. Every commit item is an independent
// compare-and-swap; a lost race is reported in the item's result.
type syncService struct {
	entries store.ServerEntryRepository

	logger *logger.Logger
}

// NewSyncService constructs a SyncService backed by entries.
func NewSyncService(entries store.ServerEntryRepository, logger *logger.Logger) SyncService {
	return &syncService{
		entries: entries,
		logger:  logger,
	}
}

// GetUpdates implements SyncService. Limits above [MaxUpdatesLimit] are
// clamped.
func (s *syncService) GetUpdates(ctx context.Context, query models.UpdatesQuery) ([]models.ServerUpdate, error) {
	limit := uint64(min(max(query.Limit, 1), MaxUpdatesLimit))
	return s.entries.GetUpdatesSince(ctx, query.Since, limit)
}

// GetEntry implements SyncService.
func (s *syncService) GetEntry(ctx context.Context, id string) (models.ServerUpdate, error) {
	return s.entries.GetEntry(ctx, id)
}

// Commit implements SyncService.
//
// Items are committed in request order. An item whose base version no longer
// matches yields a [models.CommitStatusConflict] result carrying the server's
// current state, or no state when the entry does not exist. Any other
// repository failure aborts the request; items committed before it stay
// committed, and a client retrying them receives a conflict against its own
// value, which the next resolution pass settles as equal.
func (s *syncService) Commit(ctx context.Context, req models.CommitRequest) ([]models.CommitResult, error) {
	log := logger.FromContextOr(ctx, s.logger)
	results := make([]models.CommitResult, 0, len(req.Items))

	for _, item := range req.Items {
		version, err := s.entries.Commit(ctx, item)
		if err == nil {
			results = append(results, models.CommitResult{
				ID:      item.ID,
				Status:  models.CommitStatusSuccess,
				Version: version,
			})
			continue
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return nil, fmt.Errorf("commit entry %s: %w", item.ID, err)
		}

		result := models.CommitResult{ID: item.ID, Status: models.CommitStatusConflict}
		current, err := s.entries.GetEntry(ctx, item.ID)
		switch {
		case err == nil:
			result.Current = &current
		case !errors.Is(err, store.ErrEntryNotFound):
			return nil, fmt.Errorf("load current state of %s: %w", item.ID, err)
		}

		log.Info().
			Str("func", "*syncService.Commit").
			Str("entry_id", item.ID).
			Int64("base_version", item.BaseVersion).
			Bool("exists", result.Current != nil).
			Msg("commit rejected by version conflict")
		results = append(results, result)
	}

	return results, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-resolver/internal/adapter"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/store"
	"github.com/MKhiriev/go-sync-resolver/internal/utils"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// clientSyncService drives the client half of the sync engine: local writes,
// receiving and applying server updates, and committing local changes.
// Conflicts are delegated to the ConflictService.
type clientSyncService struct {
	storage   store.LocalStorage
	adapter   adapter.ServerAdapter
	conflicts ConflictService
	ids       *utils.UUIDGenerator
	batchSize uint64
	now       func() time.Time

	logger *logger.Logger
}

// NewClientSyncService constructs a ClientSyncService. batchSize caps both
// the update pages requested and the number of items per commit request. It is
// clamped to [1, MaxUpdatesLimit] so that a page shorter than requested
// always means the feed is drained.
func NewClientSyncService(storage store.LocalStorage, serverAdapter adapter.ServerAdapter, conflicts ConflictService, batchSize uint64, logger *logger.Logger) ClientSyncService {
	batchSize = min(max(batchSize, 1), MaxUpdatesLimit)
	return &clientSyncService{
		storage:   storage,
		adapter:   serverAdapter,
		conflicts: conflicts,
		ids:       utils.NewUUIDGenerator(),
		batchSize: batchSize,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

// WriteLocal implements ClientSyncService.
func (s *clientSyncService) WriteLocal(ctx context.Context, id string, value []byte) (models.Entry, error) {
	if id == "" {
		id = s.ids.Generate()
	}

	var out models.Entry
	err := s.storage.Update(ctx, func(tx store.WriteTx) error {
		m, err := tx.GetOrCreateMutable(id)
		if err != nil {
			return err
		}
		m.PutLocalValue(value, s.now())
		out = m.Entry()
		return nil
	})
	if err != nil {
		return models.Entry{}, fmt.Errorf("write entry %s: %w", id, err)
	}

	return out, nil
}

// DeleteLocal implements ClientSyncService.
func (s *clientSyncService) DeleteLocal(ctx context.Context, id string) (models.Entry, error) {
	if id == "" {
		return models.Entry{}, ErrEmptyEntryID
	}

	var out models.Entry
	err := s.storage.Update(ctx, func(tx store.WriteTx) error {
		m, err := tx.GetMutable(id)
		if err != nil {
			return err
		}
		m.PutLocalDeleted(s.now())
		out = m.Entry()
		return nil
	})
	if err != nil {
		return models.Entry{}, fmt.Errorf("delete entry %s: %w", id, err)
	}

	return out, nil
}

// GetEntry implements ClientSyncService.
func (s *clientSyncService) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	if id == "" {
		return models.Entry{}, ErrEmptyEntryID
	}

	var out models.Entry
	err := s.storage.View(ctx, func(tx store.ReadTx) error {
		var err error
		out, err = tx.GetEntry(id)
		return err
	})
	return out, err
}

// ReceiveUpdates implements ClientSyncService.
//
// Pages are requested from the local high-water mark until the server returns
// a short page. Each page is recorded in one write transaction together with
// the advanced mark, so the mark only moves past updates that were stored.
func (s *clientSyncService) ReceiveUpdates(ctx context.Context) (int, error) {
	log := logger.FromContextOr(ctx, s.logger)

	var since int64
	err := s.storage.View(ctx, func(tx store.ReadTx) error {
		var err error
		since, err = tx.HighWaterMark()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("read high-water mark: %w", err)
	}

	received := 0
	for {
		resp, err := s.adapter.GetUpdates(ctx, since, s.batchSize)
		if err != nil {
			return received, fmt.Errorf("fetch updates since %d: %w", since, mapAdapterError(err))
		}

		next, recorded := since, 0
		err = s.storage.Update(ctx, func(tx store.WriteTx) error {
			next, recorded = since, 0
			for _, u := range resp.Updates {
				m, err := tx.GetOrCreateMutable(u.ID)
				if err != nil {
					return err
				}
				if m.PutServerUpdate(u) {
					recorded++
				}
				next = max(next, u.Version)
			}
			return tx.AdvanceHighWaterMark(next)
		})
		if err != nil {
			return received, fmt.Errorf("record updates since %d: %w", since, err)
		}
		received += recorded

		log.Debug().
			Str("func", "*clientSyncService.ReceiveUpdates").
			Int64("since", since).
			Int("page", len(resp.Updates)).
			Msg("updates page recorded")

		if uint64(len(resp.Updates)) < s.batchSize || next <= since {
			return received, nil
		}
		since = next
	}
}

// ApplyUpdates implements ClientSyncService.
func (s *clientSyncService) ApplyUpdates(ctx context.Context) (int, error) {
	applied := 0
	err := s.storage.Update(ctx, func(tx store.WriteTx) error {
		ids, err := tx.UnappliedIDs()
		if err != nil {
			return err
		}
		for _, id := range ids {
			m, err := tx.GetMutable(id)
			if err != nil {
				return err
			}
			if m.Entry().IsUnsynced {
				continue
			}
			m.ApplyServerValue()
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("apply updates: %w", err)
	}

	return applied, nil
}

// CommitChanges implements ClientSyncService.
//
// Local changes are snapshotted in a read transaction and sent in batches.
// An accepted item is rebased onto its new version; an edit made while the
// request was in flight keeps the entry unsynced. A rejected item takes the
// server state returned with the rejection, which turns it into a conflict
// for the next resolution pass; when the entry is gone from the server it is
// rebased so the next commit recreates it.
func (s *clientSyncService) CommitChanges(ctx context.Context) (int, int, error) {
	var items []models.CommitItem
	err := s.storage.View(ctx, func(tx store.ReadTx) error {
		ids, err := tx.UnsyncedIDs()
		if err != nil {
			return err
		}
		items = make([]models.CommitItem, 0, len(ids))
		for _, id := range ids {
			e, err := tx.GetEntry(id)
			if err != nil {
				return err
			}
			items = append(items, commitItemFromEntry(e))
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("collect local changes: %w", err)
	}

	committed, rejected := 0, 0
	for start := 0; start < len(items); start += int(s.batchSize) {
		end := min(start+int(s.batchSize), len(items))
		c, r, err := s.commitBatch(ctx, items[start:end])
		committed += c
		rejected += r
		if err != nil {
			return committed, rejected, err
		}
	}

	return committed, rejected, nil
}

func (s *clientSyncService) commitBatch(ctx context.Context, items []models.CommitItem) (int, int, error) {
	resp, err := s.adapter.Commit(ctx, models.CommitRequest{Items: items})
	if err != nil {
		return 0, 0, fmt.Errorf("commit %d items: %w", len(items), mapAdapterError(err))
	}

	byID := make(map[string]models.CommitItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	committed, rejected := 0, 0
	err = s.storage.Update(ctx, func(tx store.WriteTx) error {
		committed, rejected = 0, 0
		for _, r := range resp.Results {
			item, ok := byID[r.ID]
			if !ok {
				return fmt.Errorf("%w: unknown entry %q", ErrUnexpectedCommitReply, r.ID)
			}

			switch r.Status {
			case models.CommitStatusSuccess:
				m, err := tx.GetMutable(r.ID)
				if errors.Is(err, store.ErrEntryNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				m.MarkCommitted(item, r.Version)
				committed++
			case models.CommitStatusConflict:
				if err := s.recordRejection(ctx, tx, item, r.Current); err != nil {
					return err
				}
				rejected++
			default:
				return fmt.Errorf("%w: status %q for entry %q", ErrUnexpectedCommitReply, r.Status, r.ID)
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("record commit results: %w", err)
	}

	return committed, rejected, nil
}

// recordRejection stores what the server holds for a rejected item. The
// high-water mark is left alone: the feed still owes every other entry the
// updates below the rejected entry's current version.
func (s *clientSyncService) recordRejection(ctx context.Context, tx store.WriteTx, item models.CommitItem, current *models.ServerUpdate) error {
	log := logger.FromContextOr(ctx, s.logger)

	m, err := tx.GetMutable(item.ID)
	if errors.Is(err, store.ErrEntryNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	switch {
	case current != nil && m.PutServerUpdate(*current):
		log.Info().
			Str("func", "*clientSyncService.recordRejection").
			Str("entry_id", item.ID).
			Int64("base_version", item.BaseVersion).
			Int64("server_version", current.Version).
			Msg("commit rejected, server version recorded")
	case current == nil && m.Entry().BaseVersion != 0:
		m.PutBaseVersion(0)
		log.Info().
			Str("func", "*clientSyncService.recordRejection").
			Str("entry_id", item.ID).
			Int64("base_version", item.BaseVersion).
			Msg("commit rejected, entry missing on server, rebased to recreate it")
	default:
		log.Warn().
			Str("func", "*clientSyncService.recordRejection").
			Str("entry_id", item.ID).
			Int64("base_version", item.BaseVersion).
			Int64("server_version", m.Entry().ServerVersion).
			Msg("commit rejected without newer server state")
	}
	return nil
}

// RunCycle implements ClientSyncService. The cycle stops at the first failing
// step; the report holds the counts of the steps that completed.
func (s *clientSyncService) RunCycle(ctx context.Context) (models.CycleReport, error) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = s.ids.Generate()
		ctx = utils.WithTraceID(ctx, traceID)
	}
	log := &logger.Logger{Logger: logger.FromContextOr(ctx, s.logger).With().Str("trace_id", traceID).Logger()}
	ctx = log.WithContext(ctx)

	var report models.CycleReport
	var err error

	if report.Received, err = s.ReceiveUpdates(ctx); err != nil {
		return report, fmt.Errorf("receive step: %w", err)
	}
	if report.Resolve, err = s.conflicts.ResolveConflicts(ctx); err != nil {
		return report, fmt.Errorf("resolve step: %w", err)
	}
	if report.Applied, err = s.ApplyUpdates(ctx); err != nil {
		return report, fmt.Errorf("apply step: %w", err)
	}
	if report.Committed, report.Rejected, err = s.CommitChanges(ctx); err != nil {
		return report, fmt.Errorf("commit step: %w", err)
	}

	log.Info().
		Str("func", "*clientSyncService.RunCycle").
		Int("received", report.Received).
		Int("resolved", report.Resolve.Total()).
		Int("failed", len(report.Resolve.Failed)).
		Int("applied", report.Applied).
		Int("committed", report.Committed).
		Int("rejected", report.Rejected).
		Msg("sync cycle finished")

	return report, nil
}

func commitItemFromEntry(e models.Entry) models.CommitItem {
	return models.CommitItem{
		ID:          e.ID,
		Value:       e.LocalValue,
		Deleted:     e.IsDeleted,
		BaseVersion: e.BaseVersion,
		Mtime:       e.LocalMtime,
	}
}

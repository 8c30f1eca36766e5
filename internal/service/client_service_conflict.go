// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-resolver/internal/conflict"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/store"
	"github.com/MKhiriev/go-sync-resolver/models"
)

type conflictService struct {
	storage    store.LocalStorage
	classifier ConflictClassifier
	resolver   *conflict.Resolver

	logger *logger.Logger
}

// NewConflictService constructs a ConflictService resolving the entries of
// storage with the decisions of classifier.
func NewConflictService(storage store.LocalStorage, classifier ConflictClassifier, resolver *conflict.Resolver, logger *logger.Logger) ConflictService {
	return &conflictService{
		storage:    storage,
		classifier: classifier,
		resolver:   resolver,
		logger:     logger,
	}
}

// ResolveConflicts implements ConflictService.
//
// The conflicting IDs are listed once; each entry is then re-read inside its
// own write transaction, so an entry settled in between is skipped. A failed
// classification rolls back that entry's transaction only.
func (s *conflictService) ResolveConflicts(ctx context.Context) (models.ResolveReport, error) {
	log := logger.FromContextOr(ctx, s.logger)
	report := models.ResolveReport{Resolved: make(map[models.Resolution]int)}

	var ids []string
	err := s.storage.View(ctx, func(tx store.ReadTx) error {
		var err error
		ids, err = tx.ConflictingIDs()
		return err
	})
	if err != nil {
		return report, fmt.Errorf("list conflicting entries: %w", err)
	}

	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			return report, err
		}

		resolution, err := s.resolveOne(ctx, id)
		switch {
		case err == nil && resolution == models.ResolutionNone:
			report.Skipped++
		case err == nil:
			report.Resolved[resolution]++
		case errors.Is(err, store.ErrEntryNotFound):
			report.Skipped++
		case errors.Is(err, ErrClassificationFailed):
			log.Warn().Err(err).
				Str("func", "*conflictService.ResolveConflicts").
				Str("entry_id", id).
				Msg("entry left conflicting")
			report.Failed = append(report.Failed, id)
		default:
			return report, fmt.Errorf("resolve entry %s: %w", id, err)
		}
	}

	log.Debug().
		Str("func", "*conflictService.ResolveConflicts").
		Int("resolved", report.Total()).
		Int("failed", len(report.Failed)).
		Int("skipped", report.Skipped).
		Msg("conflict resolution pass finished")

	return report, nil
}

// resolveOne returns ResolutionNone when the entry was no longer conflicting.
func (s *conflictService) resolveOne(ctx context.Context, id string) (models.Resolution, error) {
	var applied models.Resolution

	err := s.storage.Update(ctx, func(tx store.WriteTx) error {
		m, err := tx.GetMutable(id)
		if err != nil {
			return err
		}

		e := m.Entry()
		if !e.IsConflicting {
			return nil
		}

		resolution, err := s.classifier.Classify(ctx, e)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrClassificationFailed, err)
		}
		if err = s.resolver.Apply(ctx, m, resolution); err != nil {
			return fmt.Errorf("%w: %w", ErrClassificationFailed, err)
		}

		applied = resolution
		return nil
	})

	return applied, err
}

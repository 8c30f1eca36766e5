// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// serverEntryRepository is the PostgreSQL-backed [ServerEntryRepository].
// Every successful commit draws a fresh version from a global sequence, so
// versions are unique across entries and strictly increasing.
type serverEntryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewServerEntryRepository constructs a [ServerEntryRepository] backed by the
// provided database connection and logger.
func NewServerEntryRepository(db *DB, logger *logger.Logger) ServerEntryRepository {
	logger.Debug().Msg("creating server entry repository")
	return &serverEntryRepository{
		db:     db,
		logger: logger,
	}
}

// GetUpdatesSince implements [ServerEntryRepository].
func (r *serverEntryRepository) GetUpdatesSince(ctx context.Context, since int64, limit uint64) ([]models.ServerUpdate, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildGetUpdatesSinceQuery(since, limit)
	if err != nil {
		log.Err(err).Str("func", "*serverEntryRepository.GetUpdatesSince").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*serverEntryRepository.GetUpdatesSince").
			Int64("since", since).
			Msg("failed to execute query for updates")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	updates := make([]models.ServerUpdate, 0)
	for rows.Next() {
		u, err := scanServerUpdate(rows)
		if err != nil {
			log.Err(err).Str("func", "*serverEntryRepository.GetUpdatesSince").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		updates = append(updates, u)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*serverEntryRepository.GetUpdatesSince").Msg("error occurred during rows iteration")
		return nil, r.wrap(ErrScanningRows, err)
	}

	return updates, nil
}

// GetEntry implements [ServerEntryRepository].
func (r *serverEntryRepository) GetEntry(ctx context.Context, id string) (models.ServerUpdate, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildGetServerEntryQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*serverEntryRepository.GetEntry").Msg("error building query")
		return models.ServerUpdate{}, err
	}

	u, err := scanServerUpdate(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServerUpdate{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "*serverEntryRepository.GetEntry").
			Str("entry_id", id).
			Msg("failed to get entry")
		return models.ServerUpdate{}, r.wrap(ErrScanningRow, err)
	}

	return u, nil
}

// Commit implements [ServerEntryRepository]. A zero BaseVersion asks for an
// insert; anything else is a compare-and-swap on the stored version. The
// statement runs in its own transaction under the version lock, so commits
// publish their versions in allocation order.
//
// Error handling:
//   - no row inserted or updated → [ErrVersionConflict].
//   - unique_violation (23505) on a racing insert → [ErrVersionConflict].
//   - retryable driver errors → wrapped [ErrTemporarilyUnavailable].
func (r *serverEntryRepository) Commit(ctx context.Context, item models.CommitItem) (int64, error) {
	log := logger.FromContextOr(ctx, r.logger)

	var (
		query string
		args  []any
		err   error
	)
	if item.BaseVersion == 0 {
		query, args, err = buildInsertServerEntryQuery(item)
	} else {
		query, args, err = buildUpdateServerEntryQuery(item)
	}
	if err != nil {
		log.Err(err).Str("func", "*serverEntryRepository.Commit").Msg("error building query")
		return 0, err
	}
	lockQuery, lockArgs, err := buildLockVersionsQuery()
	if err != nil {
		log.Err(err).Str("func", "*serverEntryRepository.Commit").Msg("error building lock query")
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*serverEntryRepository.Commit").
			Str("entry_id", item.ID).
			Msg("failed to begin transaction")
		return 0, r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, lockQuery, lockArgs...); err != nil {
		log.Err(err).
			Str("func", "*serverEntryRepository.Commit").
			Str("entry_id", item.ID).
			Msg("failed to take version lock")
		return 0, r.wrap(ErrExecutingStatement, err)
	}

	var version int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&version)
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.UniqueViolation:
		log.Debug().
			Str("func", "*serverEntryRepository.Commit").
			Str("entry_id", item.ID).
			Int64("base_version", item.BaseVersion).
			Msg("optimistic lock lost")
		return 0, fmt.Errorf("%w: %s", ErrVersionConflict, item.ID)
	default:
		log.Err(err).
			Str("func", "*serverEntryRepository.Commit").
			Str("entry_id", item.ID).
			Msg("failed to commit entry")
		return 0, r.wrap(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*serverEntryRepository.Commit").
			Str("entry_id", item.ID).
			Int64("version", version).
			Msg("failed to commit transaction")
		return 0, r.wrap(ErrCommitingTransaction, err)
	}

	return version, nil
}

// wrap attaches kind to err and additionally marks errors the classifier
// considers transient.
func (r *serverEntryRepository) wrap(kind, err error) error {
	if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrTemporarilyUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

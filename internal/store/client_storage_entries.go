// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// sqliteStorage is the SQLite-backed [LocalStorage]. Handles buffer their
// writes; Update flushes every dirty handle with an upsert inside the same
// database transaction right before committing it.
type sqliteStorage struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteStorage wraps an open SQLite connection. The schema must already
// be migrated.
func NewSQLiteStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &sqliteStorage{
		DB:     db,
		logger: logger,
	}
}

// View implements [LocalStorage].
func (s *sqliteStorage) View(ctx context.Context, fn func(tx ReadTx) error) error {
	log := logger.FromContextOr(ctx, s.logger)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.View").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	rtx := &sqliteTx{ctx: ctx, tx: tx, log: log}
	defer rtx.close()

	return fn(rtx)
}

// Update implements [LocalStorage].
func (s *sqliteStorage) Update(ctx context.Context, fn func(tx WriteTx) error) error {
	log := logger.FromContextOr(ctx, s.logger)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqliteStorage.Update").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	wtx := &sqliteTx{ctx: ctx, tx: tx, log: log, handles: make(handleSet)}
	defer wtx.close()

	if err = fn(wtx); err != nil {
		return err
	}

	for _, m := range wtx.handles.dirty() {
		if err = wtx.save(m.entry); err != nil {
			return err
		}
	}
	if wtx.mark.set {
		if err = wtx.saveHighWaterMark(wtx.mark.value); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqliteStorage.Update").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Close implements [LocalStorage].
func (s *sqliteStorage) Close() error {
	return s.DB.Close()
}

// sqliteTx serves both transaction kinds; a nil handle set means the
// transaction is read-only.
type sqliteTx struct {
	ctx     context.Context
	tx      *sql.Tx
	log     *logger.Logger
	handles handleSet
	mark    pendingMark
	closed  bool
}

func (t *sqliteTx) close() { t.closed = true }

func (t *sqliteTx) GetEntry(id string) (models.Entry, error) {
	if t.closed {
		return models.Entry{}, ErrTxClosed
	}
	if m, ok := t.handles[id]; ok {
		return m.Entry(), nil
	}
	return t.load(id)
}

func (t *sqliteTx) ConflictingIDs() ([]string, error) {
	if t.closed {
		return nil, ErrTxClosed
	}
	ids, err := t.selectIDs(whereConflicting)
	if err != nil {
		return nil, err
	}
	return t.handles.overlay(ids, isConflicting), nil
}

func (t *sqliteTx) UnsyncedIDs() ([]string, error) {
	if t.closed {
		return nil, ErrTxClosed
	}
	ids, err := t.selectIDs(wherePendingCommit)
	if err != nil {
		return nil, err
	}
	return t.handles.overlay(ids, isPendingCommit), nil
}

func (t *sqliteTx) UnappliedIDs() ([]string, error) {
	if t.closed {
		return nil, ErrTxClosed
	}
	ids, err := t.selectIDs(wherePendingApply)
	if err != nil {
		return nil, err
	}
	return t.handles.overlay(ids, isPendingApply), nil
}

func (t *sqliteTx) HighWaterMark() (int64, error) {
	if t.closed {
		return 0, ErrTxClosed
	}
	query, args, err := buildSelectHighWaterMarkQuery()
	if err != nil {
		return 0, err
	}

	var v int64
	err = t.tx.QueryRowContext(t.ctx, query, args...).Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		t.log.Err(err).
			Str("func", "sqliteTx.HighWaterMark").
			Msg("failed to query high-water mark")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return t.mark.over(v), nil
}

func (t *sqliteTx) AdvanceHighWaterMark(version int64) error {
	if t.closed {
		return ErrTxClosed
	}
	t.mark.advance(version)
	return nil
}

func (t *sqliteTx) GetMutable(id string) (*MutableEntry, error) {
	if t.closed {
		return nil, ErrTxClosed
	}
	if m, ok := t.handles[id]; ok {
		return m, nil
	}
	e, err := t.load(id)
	if err != nil {
		return nil, err
	}
	m := newMutableEntry(e, false)
	t.handles[id] = m
	return m, nil
}

func (t *sqliteTx) CreateMutable(id string) (*MutableEntry, error) {
	if t.closed {
		return nil, ErrTxClosed
	}
	if _, ok := t.handles[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryExists, id)
	}
	_, err := t.load(id)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrEntryExists, id)
	case !errors.Is(err, ErrEntryNotFound):
		return nil, err
	}
	m := newMutableEntry(models.Entry{ID: id}, true)
	t.handles[id] = m
	return m, nil
}

func (t *sqliteTx) GetOrCreateMutable(id string) (*MutableEntry, error) {
	m, err := t.GetMutable(id)
	if errors.Is(err, ErrEntryNotFound) {
		return t.CreateMutable(id)
	}
	return m, err
}

func (t *sqliteTx) load(id string) (models.Entry, error) {
	query, args, err := buildSelectEntryQuery(id)
	if err != nil {
		return models.Entry{}, err
	}

	e, err := scanEntry(t.tx.QueryRowContext(t.ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	if err != nil {
		t.log.Err(err).
			Str("func", "sqliteTx.load").
			Str("entry_id", id).
			Msg("failed to scan entry row")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return e, nil
}

func (t *sqliteTx) selectIDs(where sq.Sqlizer) ([]string, error) {
	query, args, err := buildSelectIDsQuery(where)
	if err != nil {
		return nil, err
	}

	rows, err := t.tx.QueryContext(t.ctx, query, args...)
	if err != nil {
		t.log.Err(err).
			Str("func", "sqliteTx.selectIDs").
			Msg("failed to execute query for entry ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			t.log.Err(err).
				Str("func", "sqliteTx.selectIDs").
				Msg("failed to scan entry id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		t.log.Err(err).
			Str("func", "sqliteTx.selectIDs").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (t *sqliteTx) save(e models.Entry) error {
	query, args, err := buildUpsertEntryQuery(e)
	if err != nil {
		return err
	}

	if _, err = t.tx.ExecContext(t.ctx, query, args...); err != nil {
		t.log.Err(err).
			Str("func", "sqliteTx.save").
			Str("entry_id", e.ID).
			Msg("failed to execute upsert for entry")
		return fmt.Errorf("%w: entry %s: %w", ErrExecutingStatement, e.ID, err)
	}
	return nil
}

func (t *sqliteTx) saveHighWaterMark(v int64) error {
	query, args, err := buildAdvanceHighWaterMarkQuery(v)
	if err != nil {
		return err
	}

	if _, err = t.tx.ExecContext(t.ctx, query, args...); err != nil {
		t.log.Err(err).
			Str("func", "sqliteTx.saveHighWaterMark").
			Int64("high_water_mark", v).
			Msg("failed to store high-water mark")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-resolver/models"
)

const (
	entriesTable   = "entries"
	syncStateTable = "sync_state"

	highWaterMarkKey = "high_water_mark"
)

// entryColumns is the column order shared by every SELECT and INSERT on the
// entries table; scanEntry depends on it.
var entryColumns = []string{
	"id",
	"local_value",
	"is_deleted",
	"local_mtime",
	"base_version",
	"server_value",
	"server_is_deleted",
	"server_mtime",
	"server_version",
	"is_unsynced",
	"is_unapplied_update",
	"is_conflicting",
}

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Predicates behind the ReadTx listing methods.
var (
	whereConflicting   = sq.Eq{"is_conflicting": true}
	wherePendingCommit = sq.Eq{"is_unsynced": true, "is_unapplied_update": false}
	wherePendingApply  = sq.Eq{"is_unsynced": false, "is_unapplied_update": true}
)

func buildSelectEntryQuery(id string) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectIDsQuery(where sq.Sqlizer) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select("id").
		From(entriesTable).
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectHighWaterMarkQuery() (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select("value").
		From(syncStateTable).
		Where(sq.Eq{"name": highWaterMarkKey}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildAdvanceHighWaterMarkQuery stores v unless a higher mark is already
// recorded.
func buildAdvanceHighWaterMarkQuery(v int64) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Insert(syncStateTable).
		Columns("name", "value").
		Values(highWaterMarkKey, v).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = MAX(value, excluded.value)").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertEntryQuery writes the full state of e, inserting the row on first
// contact and replacing every non-key column otherwise.
func buildUpsertEntryQuery(e models.Entry) (string, []any, error) {
	updates := make([]string, 0, len(entryColumns)-1)
	for _, col := range entryColumns[1:] {
		updates = append(updates, col+" = excluded."+col)
	}

	query, args, err := sqliteBuilder.
		Insert(entriesTable).
		Columns(entryColumns...).
		Values(
			e.ID,
			e.LocalValue,
			e.IsDeleted,
			toUnixNano(e.LocalMtime),
			e.BaseVersion,
			e.ServerValue,
			e.ServerIsDeleted,
			toUnixNano(e.ServerMtime),
			e.ServerVersion,
			e.IsUnsynced,
			e.IsUnappliedUpdate,
			e.IsConflicting,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var (
		e                       models.Entry
		localMtime, serverMtime int64
	)

	err := row.Scan(
		&e.ID,
		&e.LocalValue,
		&e.IsDeleted,
		&localMtime,
		&e.BaseVersion,
		&e.ServerValue,
		&e.ServerIsDeleted,
		&serverMtime,
		&e.ServerVersion,
		&e.IsUnsynced,
		&e.IsUnappliedUpdate,
		&e.IsConflicting,
	)
	if err != nil {
		return models.Entry{}, err
	}

	e.LocalMtime = fromUnixNano(localMtime)
	e.ServerMtime = fromUnixNano(serverMtime)
	return e, nil
}

// Times are stored as Unix nanoseconds; 0 stands for the zero time.
func toUnixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}

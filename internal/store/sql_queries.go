package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-resolver/models"
)

const serverEntriesTable = "server_entries"

// nextVersion draws from the global sequence, which makes every version a
// valid high-water mark for GetUpdatesSince.
var nextVersion = sq.Expr("nextval('server_entry_version_seq')")

// versionLockKey names the transaction-scoped advisory lock held from the
// moment a commit draws a version until that version is visible. Versions
// therefore become visible in the order they are drawn, and a reader that has
// seen version N will never later find a committed version below N.
const versionLockKey int64 = 0x73796e63

var serverEntryColumns = []string{"id", "value", "deleted", "version", "mtime"}

var postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildLockVersionsQuery() (string, []any, error) {
	query, args, err := postgresBuilder.
		Select().
		Column(sq.Expr("pg_advisory_xact_lock(?)", versionLockKey)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetUpdatesSinceQuery(since int64, limit uint64) (string, []any, error) {
	query, args, err := postgresBuilder.
		Select(serverEntryColumns...).
		From(serverEntriesTable).
		Where(sq.Gt{"version": since}).
		OrderBy("version").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetServerEntryQuery(id string) (string, []any, error) {
	query, args, err := postgresBuilder.
		Select(serverEntryColumns...).
		From(serverEntriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertServerEntryQuery creates an entry that the server has never
// seen. An existing row yields no result instead of an error.
func buildInsertServerEntryQuery(item models.CommitItem) (string, []any, error) {
	query, args, err := postgresBuilder.
		Insert(serverEntriesTable).
		Columns(serverEntryColumns...).
		Values(item.ID, valueOrNil(item), item.Deleted, nextVersion, item.Mtime).
		Suffix("ON CONFLICT (id) DO NOTHING RETURNING version").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateServerEntryQuery replaces the entry only while its version still
// equals the client's base version.
func buildUpdateServerEntryQuery(item models.CommitItem) (string, []any, error) {
	query, args, err := postgresBuilder.
		Update(serverEntriesTable).
		Set("value", valueOrNil(item)).
		Set("deleted", item.Deleted).
		Set("mtime", item.Mtime).
		Set("version", nextVersion).
		Where(sq.Eq{"id": item.ID, "version": item.BaseVersion}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func valueOrNil(item models.CommitItem) []byte {
	if item.Deleted {
		return nil
	}
	if item.Value == nil {
		return []byte{}
	}
	return item.Value
}

func scanServerUpdate(row rowScanner) (models.ServerUpdate, error) {
	var u models.ServerUpdate
	if err := row.Scan(&u.ID, &u.Value, &u.Deleted, &u.Version, &u.Mtime); err != nil {
		return models.ServerUpdate{}, err
	}
	u.Mtime = u.Mtime.UTC()
	return u, nil
}

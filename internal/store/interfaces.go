package store

import (
	"context"

	"github.com/MKhiriev/go-sync-resolver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStorage is the client-side entry store. Every read and write happens
// inside a transaction scoped to the callback: Update commits when fn returns
// nil and rolls back every buffered write otherwise.
//
// Write transactions are serialized, so a [MutableEntry] obtained from a
// [WriteTx] is an exclusive handle for the lifetime of that transaction.
type LocalStorage interface {
	// View runs fn in a read-only transaction.
	View(ctx context.Context, fn func(tx ReadTx) error) error

	// Update runs fn in a write transaction.
	Update(ctx context.Context, fn func(tx WriteTx) error) error

	// Close releases the underlying resources.
	Close() error
}

// ReadTx is the accessor side of a transaction. Inside a WriteTx it observes
// the transaction's own uncommitted writes.
type ReadTx interface {
	// GetEntry returns the entry with the given ID or [ErrEntryNotFound].
	GetEntry(id string) (models.Entry, error)

	// ConflictingIDs lists entries with both IsUnsynced and
	// IsUnappliedUpdate set, sorted by ID.
	ConflictingIDs() ([]string, error)

	// UnsyncedIDs lists entries waiting for a commit that are not
	// conflicting, sorted by ID.
	UnsyncedIDs() ([]string, error)

	// UnappliedIDs lists entries waiting for an apply that are not
	// conflicting, sorted by ID.
	UnappliedIDs() ([]string, error)

	// HighWaterMark returns the server version up to which the updates feed
	// has been consumed. It is independent of the versions recorded on
	// entries, which may run ahead of it after a rejected commit.
	HighWaterMark() (int64, error)
}

// WriteTx extends ReadTx with handle acquisition. Asking twice for the same
// ID within one transaction returns the same handle.
type WriteTx interface {
	ReadTx

	// GetMutable returns a handle to an existing entry or [ErrEntryNotFound].
	GetMutable(id string) (*MutableEntry, error)

	// CreateMutable creates a clean, empty entry and returns its handle.
	// Returns [ErrEntryExists] if the ID is taken.
	CreateMutable(id string) (*MutableEntry, error)

	// GetOrCreateMutable returns the handle to the entry with the given ID,
	// creating it on first contact.
	GetOrCreateMutable(id string) (*MutableEntry, error)

	// AdvanceHighWaterMark moves the high-water mark to version when it is
	// higher. The move is committed together with the transaction.
	AdvanceHighWaterMark(version int64) error
}

// ServerEntryRepository is the server-side, authoritative entry store.
type ServerEntryRepository interface {
	// GetUpdatesSince returns at most limit entries whose version is greater
	// than since, ordered by version.
	GetUpdatesSince(ctx context.Context, since int64, limit uint64) ([]models.ServerUpdate, error)

	// GetEntry returns the current server state of one entry or
	// [ErrEntryNotFound].
	GetEntry(ctx context.Context, id string) (models.ServerUpdate, error)

	// Commit stores item if its BaseVersion matches the current server
	// version (zero meaning "absent") and returns the newly assigned
	// version. Returns [ErrVersionConflict] otherwise.
	Commit(ctx context.Context, item models.CommitItem) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

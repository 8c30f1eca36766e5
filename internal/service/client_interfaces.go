package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sync-resolver/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConflictClassifier decides how a conflicting entry is resolved. It is
// consulted inside the write transaction that holds the entry's handle, so it
// must not block on I/O.
type ConflictClassifier interface {
	// Classify returns the resolution for e. An error leaves e conflicting
	// until the next resolution pass.
	Classify(ctx context.Context, e models.Entry) (models.Resolution, error)
}

// ConflictService runs the conflict-resolution pass of a sync cycle.
type ConflictService interface {
	// ResolveConflicts classifies and resolves every conflicting entry, each
	// in its own write transaction. Per-entry classification failures are
	// reported, not returned; the error is reserved for storage failures.
	ResolveConflicts(ctx context.Context) (models.ResolveReport, error)
}

// ClientSyncService defines the client-side contract for writing entries
// locally and synchronising them with the remote server.
type ClientSyncService interface {
	// WriteLocal records a local value. An empty id creates a new entry with
	// a generated ID. Returns the entry as stored.
	WriteLocal(ctx context.Context, id string, value []byte) (models.Entry, error)

	// DeleteLocal records a local tombstone for an existing entry.
	DeleteLocal(ctx context.Context, id string) (models.Entry, error)

	// GetEntry returns the local state of one entry.
	GetEntry(ctx context.Context, id string) (models.Entry, error)

	// ReceiveUpdates pulls every server update above the local high-water
	// mark and records it on the matching entry. Returns the number of
	// updates recorded.
	ReceiveUpdates(ctx context.Context) (int, error)

	// ApplyUpdates merges recorded server values into entries that carry no
	// local change. Returns the number of entries applied.
	ApplyUpdates(ctx context.Context) (int, error)

	// CommitChanges pushes local changes of non-conflicting entries. Returns
	// the number of accepted and rejected items.
	CommitChanges(ctx context.Context) (committed, rejected int, err error)

	// RunCycle performs receive, resolve, apply and commit in that order.
	RunCycle(ctx context.Context) (models.CycleReport, error)
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically runs a sync cycle.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

package models

import "time"

// ServerUpdate is one server-side version of an entry as delivered to the
// client by the updates endpoint.
type ServerUpdate struct {
	// ID is the entry identity.
	ID string `json:"id"`

	// Value is the server's value; nil for tombstones.
	Value []byte `json:"value,omitempty"`

	// Deleted marks a server-side tombstone.
	Deleted bool `json:"deleted"`

	// Version is the server version of this value. Versions are drawn from
	// a single server-wide sequence so they double as a high-water mark.
	Version int64 `json:"version"`

	// Mtime is the modification time recorded by the server.
	Mtime time.Time `json:"mtime"`
}

// UpdatesQuery selects one page of server updates.
type UpdatesQuery struct {
	// Since is the client's high-water mark; only versions above it are
	// returned.
	Since int64 `json:"since"`

	// Limit caps the page size.
	Limit int64 `json:"limit"`
}

// UpdatesResponse is returned by GET /api/sync/updates.
type UpdatesResponse struct {
	// Updates holds every entry whose version is greater than the requested
	// high-water mark, ordered by version.
	Updates []ServerUpdate `json:"updates"`

	// Length is the number of elements in Updates.
	Length int `json:"length"`
}

// CommitItem is one local change pushed to the server.
type CommitItem struct {
	// ID is the entry identity.
	ID string `json:"id"`

	// Value is the local value; nil for tombstones.
	Value []byte `json:"value,omitempty"`

	// Deleted marks a local tombstone.
	Deleted bool `json:"deleted"`

	// BaseVersion is the server version the change was derived from.
	// Zero means the entry has never been seen by the server.
	BaseVersion int64 `json:"base_version"`

	// Mtime is the local modification time.
	Mtime time.Time `json:"mtime"`
}

// CommitRequest is sent by the client to POST /api/sync/commit.
type CommitRequest struct {
	// Items are the local changes to commit.
	Items []CommitItem `json:"items"`

	// Length is the number of elements in Items.
	Length int `json:"length"`

	// Hash is the hex BLAKE2b-256 digest of the JSON-encoded Items. The
	// server rejects the request when it does not match.
	Hash string `json:"hash"`
}

// CommitStatus is the per-item outcome of a commit.
type CommitStatus string

const (
	// CommitStatusSuccess means the item was stored; Version holds the new
	// server version.
	CommitStatusSuccess CommitStatus = "success"

	// CommitStatusConflict means the server's version moved past the
	// item's BaseVersion; Current holds the server's state.
	CommitStatusConflict CommitStatus = "conflict"
)

// CommitResult is the outcome for a single CommitItem.
type CommitResult struct {
	ID      string        `json:"id"`
	Status  CommitStatus  `json:"status"`
	Version int64         `json:"version,omitempty"`
	Current *ServerUpdate `json:"current,omitempty"`
}

// CommitResponse is returned by POST /api/sync/commit.
type CommitResponse struct {
	Results []CommitResult `json:"results"`
	Length  int            `json:"length"`
}

// CycleReport summarizes one full sync cycle on the client.
type CycleReport struct {
	// Received is the number of server updates recorded locally.
	Received int `json:"received"`

	// Resolve is the outcome of the conflict-resolution pass.
	Resolve ResolveReport `json:"resolve"`

	// Applied is the number of server updates merged into local values.
	Applied int `json:"applied"`

	// Committed is the number of local changes accepted by the server.
	Committed int `json:"committed"`

	// Rejected is the number of local changes the server refused with a
	// version conflict; they become conflicts on the next cycle.
	Rejected int `json:"rejected"`
}

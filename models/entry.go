// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"time"
)

// Entry is a single synchronized record shared between the local store and
// the remote server. It carries both sides' values together with the
// bookkeeping flags the sync cycle uses to decide what to commit, what to
// apply and what to resolve.
//
// Entry is plain state; every mutation goes through a store-issued handle.
type Entry struct {
	// ID is the stable identity of the entry. It is assigned on first
	// contact (local creation or first server mention) and never changes.
	ID string `json:"id"`

	// LocalValue is the most recent value written locally.
	// It is nil when the entry has never been modified locally.
	LocalValue []byte `json:"local_value,omitempty"`

	// IsDeleted is the local tombstone.
	IsDeleted bool `json:"is_deleted"`

	// LocalMtime is the time of the last local write.
	LocalMtime time.Time `json:"local_mtime"`

	// BaseVersion is the server version LocalValue was derived from.
	// The server accepts a commit only when it matches its current version.
	BaseVersion int64 `json:"base_version"`

	// ServerValue is the most recent value received from the server.
	// It is nil when the server has never sent an update for this ID.
	ServerValue []byte `json:"server_value,omitempty"`

	// ServerIsDeleted is the server-side tombstone.
	ServerIsDeleted bool `json:"server_is_deleted"`

	// ServerMtime is the modification time reported by the server.
	ServerMtime time.Time `json:"server_mtime"`

	// ServerVersion is the version of ServerValue.
	ServerVersion int64 `json:"server_version"`

	// IsUnsynced is true while LocalValue has not been committed.
	IsUnsynced bool `json:"is_unsynced"`

	// IsUnappliedUpdate is true while ServerValue has not been merged
	// into the local view.
	IsUnappliedUpdate bool `json:"is_unapplied_update"`

	// IsConflicting is true exactly when IsUnsynced and IsUnappliedUpdate
	// are both set.
	IsConflicting bool `json:"is_conflicting"`
}

// HasLocalValue reports whether the entry was ever written locally.
func (e Entry) HasLocalValue() bool {
	return e.LocalValue != nil || e.IsDeleted
}

// HasServerValue reports whether the server ever sent a value for the entry.
func (e Entry) HasServerValue() bool {
	return e.ServerValue != nil || e.ServerIsDeleted || e.ServerVersion > 0
}

// State derives the lifecycle state from the dirty flags.
func (e Entry) State() EntryState {
	switch {
	case e.IsUnsynced && e.IsUnappliedUpdate:
		return StateConflicting
	case e.IsUnsynced:
		return StateLocalDirty
	case e.IsUnappliedUpdate:
		return StateServerDirty
	default:
		return StateClean
	}
}

// SameValues reports whether the local and server sides carry byte-identical
// values and the same tombstone. Both tombstoned counts as equal regardless of
// the last values.
func (e Entry) SameValues() bool {
	if e.IsDeleted != e.ServerIsDeleted {
		return false
	}
	if e.IsDeleted {
		return true
	}
	return bytes.Equal(e.LocalValue, e.ServerValue)
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	out := e
	if e.LocalValue != nil {
		out.LocalValue = bytes.Clone(e.LocalValue)
	}
	if e.ServerValue != nil {
		out.ServerValue = bytes.Clone(e.ServerValue)
	}
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"time"

	"github.com/MKhiriev/go-sync-resolver/internal/conflict"
	"github.com/MKhiriev/go-sync-resolver/models"
)

var _ conflict.MutableEntry = (*MutableEntry)(nil)

// MutableEntry is the exclusive, transaction-scoped handle to one entry.
//
// Writes are buffered in the handle and become visible to other transactions
// only when the issuing [WriteTx] commits; a rollback drops them. Every flag
// write recomputes IsConflicting, so the invariant
// IsConflicting == IsUnsynced && IsUnappliedUpdate holds at every observable
// point. A handle must not be used after its transaction has ended; writes
// made then are never persisted.
type MutableEntry struct {
	entry   models.Entry
	dirty   bool
	created bool
}

func newMutableEntry(e models.Entry, created bool) *MutableEntry {
	return &MutableEntry{entry: e.Clone(), created: created, dirty: created}
}

// ID returns the identity of the entry.
func (m *MutableEntry) ID() string {
	return m.entry.ID
}

// Entry returns a copy of the entry as seen through the handle.
func (m *MutableEntry) Entry() models.Entry {
	return m.entry.Clone()
}

// PutIsUnsynced sets IsUnsynced.
func (m *MutableEntry) PutIsUnsynced(value bool) {
	if m.entry.IsUnsynced == value {
		return
	}
	m.entry.IsUnsynced = value
	m.touchFlags()
}

// PutIsUnappliedUpdate sets IsUnappliedUpdate.
func (m *MutableEntry) PutIsUnappliedUpdate(value bool) {
	if m.entry.IsUnappliedUpdate == value {
		return
	}
	m.entry.IsUnappliedUpdate = value
	m.touchFlags()
}

// PutBaseVersion sets BaseVersion.
func (m *MutableEntry) PutBaseVersion(version int64) {
	if m.entry.BaseVersion == version {
		return
	}
	m.entry.BaseVersion = version
	m.dirty = true
}

// PutLocalValue records a local write and marks the entry unsynced.
func (m *MutableEntry) PutLocalValue(value []byte, mtime time.Time) {
	if value == nil {
		value = []byte{}
	}
	m.entry.LocalValue = bytes.Clone(value)
	m.entry.IsDeleted = false
	m.entry.LocalMtime = mtime
	m.dirty = true
	m.PutIsUnsynced(true)
}

// PutLocalDeleted records a local tombstone and marks the entry unsynced.
func (m *MutableEntry) PutLocalDeleted(mtime time.Time) {
	m.entry.LocalValue = nil
	m.entry.IsDeleted = true
	m.entry.LocalMtime = mtime
	m.dirty = true
	m.PutIsUnsynced(true)
}

// PutServerUpdate records a server version of the entry. Updates not newer
// than the known server version are ignored; the return value reports whether
// the update was recorded.
//
// An update at or below BaseVersion is the echo of a version the local value
// already derives from, typically this client's own commit. It is recorded
// without raising IsUnappliedUpdate.
func (m *MutableEntry) PutServerUpdate(u models.ServerUpdate) bool {
	if u.Version <= m.entry.ServerVersion {
		return false
	}
	m.setServerSide(u.Value, u.Deleted, u.Mtime, u.Version)
	if u.Version > m.entry.BaseVersion {
		m.PutIsUnappliedUpdate(true)
	}
	return true
}

// ApplyServerValue merges the server value into the local view and clears
// IsUnappliedUpdate. The local value is overwritten, so callers must not use
// it on an unsynced entry.
func (m *MutableEntry) ApplyServerValue() {
	if m.entry.ServerIsDeleted {
		m.entry.LocalValue = nil
	} else {
		m.entry.LocalValue = bytes.Clone(m.entry.ServerValue)
	}
	m.entry.IsDeleted = m.entry.ServerIsDeleted
	m.entry.LocalMtime = m.entry.ServerMtime
	m.entry.BaseVersion = m.entry.ServerVersion
	m.dirty = true
	m.PutIsUnappliedUpdate(false)
}

// MarkCommitted records that the server accepted item under version by
// rebasing the entry onto version. The entry leaves the unsynced state only if
// no local write happened after item was taken; otherwise the newer edit is
// kept. The server side is left to the updates feed, which delivers the
// accepted version back as an echo.
func (m *MutableEntry) MarkCommitted(item models.CommitItem, version int64) {
	if version > m.entry.BaseVersion {
		m.PutBaseVersion(version)
	}
	if m.matchesLocal(item) {
		m.PutIsUnsynced(false)
	}
}

func (m *MutableEntry) matchesLocal(item models.CommitItem) bool {
	if m.entry.IsDeleted != item.Deleted || !m.entry.LocalMtime.Equal(item.Mtime) {
		return false
	}
	return item.Deleted || bytes.Equal(m.entry.LocalValue, item.Value)
}

func (m *MutableEntry) setServerSide(value []byte, deleted bool, mtime time.Time, version int64) {
	if deleted {
		m.entry.ServerValue = nil
	} else {
		if value == nil {
			value = []byte{}
		}
		m.entry.ServerValue = bytes.Clone(value)
	}
	m.entry.ServerIsDeleted = deleted
	m.entry.ServerMtime = mtime
	m.entry.ServerVersion = version
	m.dirty = true
}

func (m *MutableEntry) touchFlags() {
	m.entry.IsConflicting = m.entry.IsUnsynced && m.entry.IsUnappliedUpdate
	m.dirty = true
}

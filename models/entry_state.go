// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntryState is the lifecycle state of an Entry derived from its flags.
//
//	Clean       --(local write)-->          LocalDirty
//	Clean       --(server update arrives)--> ServerDirty
//	LocalDirty  --(server update arrives)--> Conflicting
//	ServerDirty --(local write)-->          Conflicting
//	LocalDirty  --(commit succeeds)-->      Clean
//	ServerDirty --(update applied)-->       Clean
//	Conflicting --(resolution)-->           LocalDirty | ServerDirty | Clean
type EntryState int

const (
	// StateClean means nothing is outstanding on either side.
	StateClean EntryState = iota

	// StateLocalDirty means a local change waits to be committed.
	StateLocalDirty

	// StateServerDirty means a server update waits to be applied.
	StateServerDirty

	// StateConflicting means both a local change and a server update
	// are outstanding.
	StateConflicting
)

func (s EntryState) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateLocalDirty:
		return "local_dirty"
	case StateServerDirty:
		return "server_dirty"
	case StateConflicting:
		return "conflicting"
	default:
		return "unknown"
	}
}

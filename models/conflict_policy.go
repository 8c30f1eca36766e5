// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConflictPolicy names the strategy used to pick a [Resolution] for a
// conflicting entry whose two sides differ.
type ConflictPolicy string

const (
	// PolicyServerWins discards local changes.
	PolicyServerWins ConflictPolicy = "server_wins"

	// PolicyLocalWins overwrites the server with the local value.
	PolicyLocalWins ConflictPolicy = "local_wins"

	// PolicyLastWriteWins keeps the side with the later modification time,
	// favouring the server on ties.
	PolicyLastWriteWins ConflictPolicy = "last_write_wins"
)

// Valid reports whether p is one of the known policies.
func (p ConflictPolicy) Valid() bool {
	switch p {
	case PolicyServerWins, PolicyLocalWins, PolicyLastWriteWins:
		return true
	}
	return false
}

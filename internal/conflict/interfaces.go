// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflict

import "github.com/MKhiriev/go-sync-resolver/models"

// MutableEntry is the narrow capability the resolver needs: an exclusive,
// transaction-scoped handle to one entry. Implementations must recompute
// IsConflicting on every flag write.
type MutableEntry interface {
	// Entry returns the current state of the entry as seen through the
	// handle, including writes not yet committed.
	Entry() models.Entry

	PutIsUnsynced(value bool)
	PutIsUnappliedUpdate(value bool)
	PutBaseVersion(version int64)
}

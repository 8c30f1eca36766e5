// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-sync-resolver/models"
)

// handleSet is the registry of handles issued by one write transaction.
// Reads inside the transaction consult it before the committed state.
type handleSet map[string]*MutableEntry

func isConflicting(e models.Entry) bool { return e.IsConflicting }

func isPendingCommit(e models.Entry) bool { return e.IsUnsynced && !e.IsUnappliedUpdate }

func isPendingApply(e models.Entry) bool { return e.IsUnappliedUpdate && !e.IsUnsynced }

// overlay merges committed IDs matching pred with the transaction's handles,
// whose buffered state takes precedence. The result is sorted.
func (h handleSet) overlay(base []string, pred func(models.Entry) bool) []string {
	set := make(map[string]struct{}, len(base))
	for _, id := range base {
		set[id] = struct{}{}
	}
	for id, m := range h {
		if pred(m.entry) {
			set[id] = struct{}{}
		} else {
			delete(set, id)
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// pendingMark is a high-water mark move buffered by a write transaction.
type pendingMark struct {
	value int64
	set   bool
}

func (p *pendingMark) advance(v int64) {
	if v > p.value {
		p.value, p.set = v, true
	}
}

func (p pendingMark) over(base int64) int64 {
	if p.set {
		return max(base, p.value)
	}
	return base
}

func (h handleSet) dirty() []*MutableEntry {
	out := make([]*MutableEntry, 0, len(h))
	for _, id := range slices.Sorted(maps.Keys(h)) {
		if m := h[id]; m.dirty {
			out = append(out, m)
		}
	}
	return out
}

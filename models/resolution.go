// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Resolution is the decision taken for a conflicting Entry.
type Resolution int

const (
	// ResolutionNone is the zero value; it never reaches the resolver.
	ResolutionNone Resolution = iota

	// ResolutionIgnoreLocalChanges discards the local edit; the server's
	// value is applied on the next apply step.
	ResolutionIgnoreLocalChanges

	// ResolutionOverwriteServerChanges keeps the local edit; it is committed
	// on the next commit step, overwriting the server's value.
	ResolutionOverwriteServerChanges

	// ResolutionIgnoreConflict retires the bookkeeping of an entry whose two
	// sides already agree.
	ResolutionIgnoreConflict
)

func (r Resolution) String() string {
	switch r {
	case ResolutionIgnoreLocalChanges:
		return "ignore_local_changes"
	case ResolutionOverwriteServerChanges:
		return "overwrite_server_changes"
	case ResolutionIgnoreConflict:
		return "ignore_conflict"
	default:
		return "none"
	}
}

// ResolveReport summarizes one conflict-resolution pass.
type ResolveReport struct {
	// Resolved counts applied resolutions by kind.
	Resolved map[Resolution]int `json:"resolved"`

	// Failed lists entries whose classification failed; they stay
	// conflicting until the next pass.
	Failed []string `json:"failed,omitempty"`

	// Skipped counts entries that were no longer conflicting when their
	// transaction started.
	Skipped int `json:"skipped"`
}

// Total returns the number of entries a resolution was applied to.
func (r ResolveReport) Total() int {
	total := 0
	for _, n := range r.Resolved {
		total += n
	}
	return total
}

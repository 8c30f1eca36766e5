// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package conflict holds the resolution primitives of the sync engine.
//
// Each primitive takes a [MutableEntry] already classified as conflicting (or,
// for [IgnoreConflict], as carrying identical values on both sides) and
// performs exactly one flag transition:
//
//   - [IgnoreLocalChanges] clears IsUnsynced. The server's value wins on the
//     next apply step.
//   - [OverwriteServerChanges] clears IsUnappliedUpdate and rebases the local
//     edit onto the server version. The local value wins on the next commit.
//   - [IgnoreConflict] clears both flags. The sides already agree.
//
// The primitives never fail and are idempotent: calling one on an entry that
// is not in the expected dirty state leaves it untouched. Atomicity comes from
// the transaction that issued the handle; a rollback discards every write made
// here.
//
// Which primitive to call is decided elsewhere, by a classifier policy.
// [Resolver] is the dispatching front end used by the sync services.
package conflict

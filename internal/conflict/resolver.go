// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package conflict

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// IgnoreLocalChanges marks the entry as no longer requiring a commit, letting
// the server's version win during the next apply step. IsUnappliedUpdate is
// left as is.
func IgnoreLocalChanges(e MutableEntry) {
	if !e.Entry().IsUnsynced {
		return
	}
	e.PutIsUnsynced(false)
}

// OverwriteServerChanges marks the entry as no longer requiring the server
// update. The local value is rebased onto the server version, so the next
// commit overwrites the server's version. IsUnsynced is left as is.
func OverwriteServerChanges(e MutableEntry) {
	cur := e.Entry()
	if !cur.IsUnappliedUpdate {
		return
	}
	rebase(e, cur)
	e.PutIsUnappliedUpdate(false)
}

// IgnoreConflict retires both dirty flags of an entry whose local and server
// versions are identical.
//
// The equality is the caller's judgement and is not checked here. Calling it
// on divergent values silently drops the local edit.
func IgnoreConflict(e MutableEntry) {
	cur := e.Entry()
	if !cur.IsUnsynced && !cur.IsUnappliedUpdate {
		return
	}
	rebase(e, cur)
	e.PutIsUnsynced(false)
	e.PutIsUnappliedUpdate(false)
}

func rebase(e MutableEntry, cur models.Entry) {
	if cur.ServerVersion > cur.BaseVersion {
		e.PutBaseVersion(cur.ServerVersion)
	}
}

// Resolver dispatches a classified [models.Resolution] to its primitive.
// It keeps no reference to the handle after Apply returns.
type Resolver struct {
	verifyEquality bool
	logger         *logger.Logger
}

// NewResolver constructs a Resolver. With verifyEquality set, IgnoreConflict
// decisions on entries whose sides differ are logged at warn level; they are
// still applied.
func NewResolver(verifyEquality bool, logger *logger.Logger) *Resolver {
	return &Resolver{
		verifyEquality: verifyEquality,
		logger:         logger,
	}
}

// Apply performs resolution on e. It fails only for resolutions it does not
// know; in that case e is left untouched.
func (r *Resolver) Apply(ctx context.Context, e MutableEntry, resolution models.Resolution) error {
	log := logger.FromContextOr(ctx, r.logger)
	before := e.Entry()

	switch resolution {
	case models.ResolutionIgnoreLocalChanges:
		IgnoreLocalChanges(e)
	case models.ResolutionOverwriteServerChanges:
		OverwriteServerChanges(e)
	case models.ResolutionIgnoreConflict:
		if r.verifyEquality && !before.SameValues() {
			log.Warn().
				Str("func", "Resolver.Apply").
				Str("entry_id", before.ID).
				Msg("ignore_conflict applied to entry with divergent values: local change is dropped")
		}
		IgnoreConflict(e)
	default:
		log.Error().
			Str("func", "Resolver.Apply").
			Str("entry_id", before.ID).
			Int("resolution", int(resolution)).
			Msg("unknown resolution")
		return fmt.Errorf("%w: %d", ErrUnknownResolution, int(resolution))
	}

	after := e.Entry()
	log.Debug().
		Str("func", "Resolver.Apply").
		Str("entry_id", before.ID).
		Stringer("resolution", resolution).
		Stringer("from", before.State()).
		Stringer("to", after.State()).
		Msg("conflict resolved")

	return nil
}

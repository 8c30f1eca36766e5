// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-sync-resolver/internal/utils"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// ClassifierFunc adapts a plain function to [ConflictClassifier].
type ClassifierFunc func(ctx context.Context, e models.Entry) (models.Resolution, error)

// Classify implements [ConflictClassifier].
func (f ClassifierFunc) Classify(ctx context.Context, e models.Entry) (models.Resolution, error) {
	return f(ctx, e)
}

// NewConflictClassifier returns the classifier for policy, wrapped by
// [WithEqualityCheck]. Returns [ErrUnknownConflictPolicy] for anything else.
func NewConflictClassifier(policy models.ConflictPolicy) (ConflictClassifier, error) {
	var inner ConflictClassifier
	switch policy {
	case models.PolicyServerWins:
		inner = ClassifierFunc(serverWins)
	case models.PolicyLocalWins:
		inner = ClassifierFunc(localWins)
	case models.PolicyLastWriteWins:
		inner = ClassifierFunc(lastWriteWins)
	default:
		return nil, ErrUnknownConflictPolicy
	}

	return WithEqualityCheck(inner), nil
}

// WithEqualityCheck returns a classifier that picks
// [models.ResolutionIgnoreConflict] when both sides of the entry carry the
// same digest, and defers to next otherwise.
func WithEqualityCheck(next ConflictClassifier) ConflictClassifier {
	return ClassifierFunc(func(ctx context.Context, e models.Entry) (models.Resolution, error) {
		if sidesEqual(e) {
			return models.ResolutionIgnoreConflict, nil
		}
		return next.Classify(ctx, e)
	})
}

func sidesEqual(e models.Entry) bool {
	return utils.ValueDigest(e.LocalValue, e.IsDeleted) == utils.ValueDigest(e.ServerValue, e.ServerIsDeleted)
}

func serverWins(context.Context, models.Entry) (models.Resolution, error) {
	return models.ResolutionIgnoreLocalChanges, nil
}

func localWins(context.Context, models.Entry) (models.Resolution, error) {
	return models.ResolutionOverwriteServerChanges, nil
}

// lastWriteWins keeps the side with the later mtime; ties go to the server.
func lastWriteWins(_ context.Context, e models.Entry) (models.Resolution, error) {
	if e.LocalMtime.After(e.ServerMtime) {
		return models.ResolutionOverwriteServerChanges, nil
	}
	return models.ResolutionIgnoreLocalChanges, nil
}

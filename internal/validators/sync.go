// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-resolver/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the identity of a commit item.
	FieldID = "id"

	// FieldBaseVersion targets the optimistic-locking base of a commit item.
	FieldBaseVersion = "base_version"

	// FieldItems targets the item list of a commit request, validating every
	// item and rejecting duplicate IDs.
	FieldItems = "items"

	// FieldLength targets the declared length of a commit request.
	FieldLength = "length"

	// FieldSince targets the high-water mark of an updates query.
	FieldSince = "since"

	// FieldLimit targets the page size of an updates query.
	FieldLimit = "limit"
)

// SyncValidator validates the requests served by the sync endpoints.
type SyncValidator struct {
}

// NewSyncValidator returns a [Validator] for [models.CommitRequest],
// [models.CommitItem] and [models.UpdatesQuery] values and pointers.
func NewSyncValidator() Validator {
	return &SyncValidator{}
}

// Validate implements [Validator].
func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CommitRequest:
		return v.validateCommitRequest(ctx, value, fields...)
	case *models.CommitRequest:
		return v.validateCommitRequest(ctx, *value, fields...)

	case models.CommitItem:
		return v.validateCommitItem(ctx, value, fields...)
	case *models.CommitItem:
		return v.validateCommitItem(ctx, *value, fields...)

	case models.UpdatesQuery:
		return v.validateUpdatesQuery(ctx, value, fields...)
	case *models.UpdatesQuery:
		return v.validateUpdatesQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validateCommitRequest(ctx context.Context, request models.CommitRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItems, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldItems:
			if len(request.Items) == 0 {
				return ErrEmptyItems
			}
			seen := make(map[string]struct{}, len(request.Items))
			for i, item := range request.Items {
				if err := v.validateCommitItem(ctx, item); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if _, dup := seen[item.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w: %s", i, ErrDuplicateEntryID, item.ID)
				}
				seen[item.ID] = struct{}{}
			}
		case FieldLength:
			if request.Length != len(request.Items) {
				return ErrLengthMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateCommitItem(_ context.Context, item models.CommitItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldBaseVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if item.ID == "" {
				return ErrInvalidEntryID
			}
		case FieldBaseVersion:
			if item.BaseVersion < 0 {
				return ErrInvalidBaseVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateUpdatesQuery(_ context.Context, query models.UpdatesQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSince, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldSince:
			if query.Since < 0 {
				return ErrInvalidSince
			}
		case FieldLimit:
			if query.Limit <= 0 {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

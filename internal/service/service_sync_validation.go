// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-resolver/internal/validators"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// SyncValidationService rejects malformed requests before they reach the
// wrapped SyncService. Errors wrap the validators sentinels.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewSyncValidator(),
	}
}

func (v *SyncValidationService) GetUpdates(ctx context.Context, query models.UpdatesQuery) ([]models.ServerUpdate, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("error during updates query validation: %w", err)
	}

	return v.inner.GetUpdates(ctx, query)
}

func (v *SyncValidationService) GetEntry(ctx context.Context, id string) (models.ServerUpdate, error) {
	if err := v.validator.Validate(ctx, models.CommitItem{ID: id}, validators.FieldID); err != nil {
		return models.ServerUpdate{}, fmt.Errorf("error during entry ID validation: %w", err)
	}

	return v.inner.GetEntry(ctx, id)
}

func (v *SyncValidationService) Commit(ctx context.Context, req models.CommitRequest) ([]models.CommitResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error during commit request validation: %w", err)
	}

	return v.inner.Commit(ctx, req)
}

func (v *SyncValidationService) Wrap(wrapper SyncService) SyncService {
	v.inner = wrapper
	return v
}

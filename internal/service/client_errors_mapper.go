// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-sync-resolver/internal/adapter"
	"github.com/MKhiriev/go-sync-resolver/internal/app"
	"github.com/MKhiriev/go-sync-resolver/internal/store"
)

var badRequestErrors = map[string]error{
	app.MsgInvalidDataProvided:      ErrInvalidDataProvided,
	app.MsgIntegrityCheckFailed:     ErrIntegrityCheckFailed,
	app.MsgNoCommitItemsProvided:    ErrValidationNoCommitItemsProvided,
	app.MsgEmptyEntryIDProvided:     ErrValidationEmptyEntryIDProvided,
	app.MsgDuplicateEntryIDProvided: ErrValidationDuplicateEntryID,
	app.MsgNegativeBaseVersion:      ErrValidationNegativeBaseVersion,
	app.MsgLengthMismatch:           ErrValidationLengthMismatch,
	app.MsgInvalidSinceParameter:    ErrValidationInvalidSinceParameter,
	app.MsgInvalidLimitParameter:    ErrValidationInvalidLimitParameter,
}

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if mapped, ok := badRequestErrors[extractBody(err, adapter.ErrBadRequest)]; ok {
			return mapped
		}

	case errors.Is(err, adapter.ErrNotFound):
		if extractBody(err, adapter.ErrNotFound) == app.MsgEntryNotFound {
			return store.ErrEntryNotFound
		}

	case errors.Is(err, adapter.ErrServiceUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return ErrServerUnavailable

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerInternal
	}

	return err
}

// extractBody extracts the body from a message of the form "<sentinel>: <body>"
func extractBody(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if idx := strings.Index(msg, prefix); idx != -1 {
		return msg[idx+len(prefix):]
	}
	return msg
}

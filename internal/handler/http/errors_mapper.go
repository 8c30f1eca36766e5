package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-resolver/internal/app"
	"github.com/MKhiriev/go-sync-resolver/internal/store"
	"github.com/MKhiriev/go-sync-resolver/internal/validators"
)

// errorResponse is the status and plain-text body sent for a service error.
// The body is one of the app.Msg* constants so the client can map it back.
type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	validators.ErrEmptyItems:         {http.StatusBadRequest, app.MsgNoCommitItemsProvided},
	validators.ErrInvalidEntryID:     {http.StatusBadRequest, app.MsgEmptyEntryIDProvided},
	validators.ErrDuplicateEntryID:   {http.StatusBadRequest, app.MsgDuplicateEntryIDProvided},
	validators.ErrInvalidBaseVersion: {http.StatusBadRequest, app.MsgNegativeBaseVersion},
	validators.ErrLengthMismatch:     {http.StatusBadRequest, app.MsgLengthMismatch},
	validators.ErrInvalidSince:       {http.StatusBadRequest, app.MsgInvalidSinceParameter},
	validators.ErrInvalidLimit:       {http.StatusBadRequest, app.MsgInvalidLimitParameter},

	store.ErrEntryNotFound:          {http.StatusNotFound, app.MsgEntryNotFound},
	store.ErrTemporarilyUnavailable: {http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

var internalErrorResponse = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

func responseFromError(err error) (int, string) {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return internalErrorResponse.status, internalErrorResponse.message
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-resolver/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync server.
// Implementations are responsible for serialisation, request integrity
// digests and mapping transport-level errors to the sentinel values defined in
// this package.
type ServerAdapter interface {
	// GetUpdates fetches at most limit server entries whose version is
	// greater than since, ordered by version.
	GetUpdates(ctx context.Context, since int64, limit uint64) (models.UpdatesResponse, error)

	// Commit pushes local changes. Per-item outcomes are reported in the
	// response; a version conflict on one item is not a transport error.
	Commit(ctx context.Context, req models.CommitRequest) (models.CommitResponse, error)

	// GetServerVersion returns the build information of the server.
	GetServerVersion(ctx context.Context) (models.VersionResponse, error)
}

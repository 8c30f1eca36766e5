package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sync-resolver/internal/config"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/utils"
	"github.com/MKhiriev/go-sync-resolver/models"
)

// TraceIDHeader carries the trace ID of a sync cycle to the server.
const TraceIDHeader = utils.TraceIDHeader

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetUpdates implements [ServerAdapter]. It GETs
// GET /api/sync/updates?since=N&limit=M and decodes the response.
func (h *httpServerAdapter) GetUpdates(ctx context.Context, since int64, limit uint64) (models.UpdatesResponse, error) {
	var updates models.UpdatesResponse

	resp, err := h.client.NewRequest(ctx).
		SetQueryParams(map[string]string{
			"since": strconv.FormatInt(since, 10),
			"limit": strconv.FormatUint(limit, 10),
		}).
		SetResult(&updates).
		Get("/api/sync/updates")
	if err != nil {
		return models.UpdatesResponse{}, fmt.Errorf("get updates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdatesResponse{}, err
	}

	return updates, nil
}

// Commit implements [ServerAdapter]. It computes the integrity digest over
// req.Items, sets req.Length and POSTs the request to POST /api/sync/commit.
func (h *httpServerAdapter) Commit(ctx context.Context, req models.CommitRequest) (models.CommitResponse, error) {
	var result models.CommitResponse

	hash, err := computeTransportHash(req.Items)
	if err != nil {
		return models.CommitResponse{}, fmt.Errorf("commit hash: %w", err)
	}
	req.Hash = hash
	req.Length = len(req.Items)

	logger.FromContextOr(ctx, h.logger).Debug().
		Str("func", "*httpServerAdapter.Commit").
		Int("items", req.Length).
		Msg("committing local changes")

	resp, err := h.client.NewRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/sync/commit")
	if err != nil {
		return models.CommitResponse{}, fmt.Errorf("commit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CommitResponse{}, err
	}

	return result, nil
}

// GetServerVersion implements [ServerAdapter]. It GETs GET /api/version.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.NewRequest(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func computeTransportHash(v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return utils.HashString(payload), nil
}

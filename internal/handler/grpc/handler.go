// Package grpc exposes the sync server's health over the standard gRPC
// health-checking protocol.
package grpc

import (
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// SyncServiceName is the health service name reported for the sync API.
const SyncServiceName = "sync.v1.SyncService"

// Handler is the root gRPC transport handler.
//
// It owns the health server and flips the sync service between SERVING and
// NOT_SERVING as the transport starts and stops.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.SetServingStatus(SyncServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to registrar.
func (h *Handler) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, h.health)
}

// Serving marks the server and the sync service as SERVING.
func (h *Handler) Serving() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(SyncServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Str("service", SyncServiceName).Msg("health status set to SERVING")
}

// Shutdown reports NOT_SERVING for every service and rejects later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("health status set to NOT_SERVING")
}

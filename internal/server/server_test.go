package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-resolver/internal/config"
	"github.com/MKhiriev/go-sync-resolver/internal/handler"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"
	"github.com/MKhiriev/go-sync-resolver/internal/mock"
	"github.com/MKhiriev/go-sync-resolver/internal/service"
	"github.com/MKhiriev/go-sync-resolver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const loopback = "127.0.0.1:0"

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()
	ctrl := gomock.NewController(t)
	info := mock.NewMockAppInfoService(ctrl)
	info.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc")).
		AnyTimes()

	services := &service.Services{
		AppInfoService: info,
		SyncService:    mock.NewMockSyncService(ctrl),
	}
	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return s.(*server)
}

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", loopback)
	require.NoError(t, err)
	return ln
}

// ── NewServer ───────────────────────────────────────────────────────────────

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		handlers *handler.Handlers
		wantErr  error
		wantHTTP bool
		wantGRPC bool
	}{
		{
			name:     "no addresses",
			cfg:      config.Server{},
			handlers: &handler.Handlers{},
			wantErr:  errNoServersAreCreated,
		},
		{
			name:     "address without handler",
			cfg:      config.Server{HTTPAddress: loopback},
			handlers: &handler.Handlers{},
			wantErr:  errNoServersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}

	t.Run("both transports", func(t *testing.T) {
		s := newTestServer(t, config.Server{HTTPAddress: loopback, GRPCAddress: loopback})
		assert.NotNil(t, s.httpServer)
		assert.NotNil(t, s.gRPCServer)
	})
}

// ── serve ───────────────────────────────────────────────────────────────────

func TestServer_ServeAndShutdown(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: loopback, GRPCAddress: loopback})
	httpLn, grpcLn := listen(t), listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, httpLn, grpcLn) }()

	resp, err := http.Get("http://" + httpLn.Addr().String() + "/api/version")
	require.NoError(t, err)
	var version models.VersionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&version))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", version.Version)

	conn, err := grpc.NewClient(grpcLn.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	require.Eventually(t, func() bool {
		hc, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && hc.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_Run_ListenFailure(t *testing.T) {
	busy := listen(t)
	defer busy.Close()

	s := newTestServer(t, config.Server{HTTPAddress: busy.Addr().String()})

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP server listen")
}

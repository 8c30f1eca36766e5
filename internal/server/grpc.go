package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-sync-resolver/internal/config"
	myGRPC "github.com/MKhiriev/go-sync-resolver/internal/handler/grpc"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server
	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		return nil, fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	return ln, nil
}

// serve runs on ln until shutdown. A graceful stop is not an error.
func (g *grpcServer) serve(ln net.Listener) error {
	g.handler.Serving()
	g.logger.Info().Str("address", ln.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server serve: %w", err)
	}
	return nil
}

func (g *grpcServer) shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
	g.logger.Info().Msg("gRPC server shut down")
}

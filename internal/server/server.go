package server

import (
	"context"
	"net"

	"github.com/MKhiriev/go-sync-resolver/internal/config"
	"github.com/MKhiriev/go-sync-resolver/internal/handler"
	"github.com/MKhiriev/go-sync-resolver/internal/logger"

	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates a transport server for every handler in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// Run implements Server. Listeners are opened before any server starts, so a
// busy port fails fast without leaving the other transport running.
func (s *server) Run(ctx context.Context) error {
	var httpLn, grpcLn net.Listener
	var err error

	if s.httpServer != nil {
		if httpLn, err = s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if grpcLn, err = s.gRPCServer.listen(); err != nil {
			if httpLn != nil {
				httpLn.Close()
			}
			return err
		}
	}

	return s.serve(ctx, httpLn, grpcLn)
}

// serve runs the enabled servers on the given listeners until ctx is done.
func (s *server) serve(ctx context.Context, httpLn, grpcLn net.Listener) error {
	g, gCtx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(func() error { return s.httpServer.serve(httpLn) })
	}
	if s.gRPCServer != nil {
		g.Go(func() error { return s.gRPCServer.serve(grpcLn) })
	}

	g.Go(func() error {
		<-gCtx.Done()
		s.shutdown()
		return nil
	})

	err := g.Wait()
	s.logger.Info().Err(err).Msg("server shut down")
	return err
}

func (s *server) shutdown() {
	if s.httpServer != nil {
		s.httpServer.shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.shutdown()
	}
}

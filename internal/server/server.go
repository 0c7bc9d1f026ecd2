package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT, then shuts every
// started server down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server first so no new requests reach the gRPC health
	// status after it flips to NOT_SERVING
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

func (s *server) run(ctx context.Context) {
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}

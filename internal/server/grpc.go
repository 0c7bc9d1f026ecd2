package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-todo-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	g.handler.SetServing(true)
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}

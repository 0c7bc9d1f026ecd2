package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

// ServiceName is the health-check service name reported alongside the
// overall ("") status.
const ServiceName = "gotodokeeper.TodoService"

// Handler is the root gRPC transport handler.
//
// The gRPC surface is limited to the standard health service. Status starts
// as NOT_SERVING and is flipped by [Handler.SetServing] once the HTTP API is
// accepting requests.
type Handler struct {
	// services provides access to application metadata for logging.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing updates the reported health of both the overall server and
// [ServiceName].
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)

	h.logger.Info().Str("status", status.String()).Msg("gRPC health status changed")
}

// Shutdown reports NOT_SERVING to all watchers and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging logs every unary call with its method, duration and status.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Dur("duration", time.Since(start)).
		Msg("gRPC call")

	return resp, err
}

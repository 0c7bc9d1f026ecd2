package http

import (
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// deleteRequiresAdmin puts the admin check in front of todo deletion.
	deleteRequiresAdmin bool
	requestTimeout      time.Duration

	traceIDs *utils.TraceIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:            services,
		deleteRequiresAdmin: cfg.App.DeleteRequiresAdmin,
		requestTimeout:      cfg.Server.RequestTimeout,
		traceIDs:            utils.NewTraceIDGenerator(),
		logger:              logger,
	}
}

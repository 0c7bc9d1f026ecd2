package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/server"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/workers"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-todo-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-todo-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost, workers.NewPool(cfg.Workers.HashConcurrency), log)
	attempts := service.NewLoginAttemptTracker(service.DefaultMaxLoginFailures, service.DefaultLoginFailureWindow)

	background := workers.NewWorkers(
		workers.NewPeriodicWorker("login-attempts-sweeper", time.Minute, attempts.Sweep, log),
	)
	go background.Run(ctx)

	services, err := service.NewServices(repositories, hasher, attempts, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

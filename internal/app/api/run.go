// Package api boots the HTTP process: observability, persistence,
// services, and the router.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	personsmemory "github.com/relatia/people-pets-api/internal/domains/persons/adapters/memory"
	personsobs "github.com/relatia/people-pets-api/internal/domains/persons/adapters/observability"
	personspostgres "github.com/relatia/people-pets-api/internal/domains/persons/adapters/persistence/postgres"
	personsapp "github.com/relatia/people-pets-api/internal/domains/persons/application"
	personsports "github.com/relatia/people-pets-api/internal/domains/persons/ports"
	petsmemory "github.com/relatia/people-pets-api/internal/domains/pets/adapters/memory"
	petsobs "github.com/relatia/people-pets-api/internal/domains/pets/adapters/observability"
	petspostgres "github.com/relatia/people-pets-api/internal/domains/pets/adapters/persistence/postgres"
	petsapp "github.com/relatia/people-pets-api/internal/domains/pets/application"
	petsports "github.com/relatia/people-pets-api/internal/domains/pets/ports"
	"github.com/relatia/people-pets-api/internal/platform/migrations"
	platformobservability "github.com/relatia/people-pets-api/internal/platform/observability"
	platformpostgres "github.com/relatia/people-pets-api/internal/platform/postgres"
)

const serviceName = "people-pets-api"

// Run boots the API with observability, repositories, and routes wired.
func Run(ctx context.Context) error {
	cfg := LoadConfig()

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanup := platformpostgres.ConnectOrNil(ctx, cfg.PostgresDSN, logger)
	defer cleanup()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	personService := personsobs.New(
		personsapp.NewService(buildPersonRepository(db, logger)),
		personsobs.WithLogger(logger),
		personsobs.WithTracer(instruments.Tracer("internal.persons.application")),
		personsobs.WithMeter(instruments.Meter("internal.persons.application")),
	)
	petService := petsobs.New(
		petsapp.NewService(buildPetRepository(db, logger)),
		petsobs.WithLogger(logger),
		petsobs.WithTracer(instruments.Tracer("internal.pets.application")),
		petsobs.WithMeter(instruments.Meter("internal.pets.application")),
	)

	router := NewRouter(RouterConfig{
		ServiceName:    serviceName,
		Version:        cfg.Version,
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
		Persons:        personService,
		Pets:           petService,
	})

	addr := ":" + cfg.Port
	logger.Info("API listening", slog.String("addr", addr), slog.String("environment", cfg.Environment))
	if err := router.Run(addr); err != nil {
		logger.Error("API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildPersonRepository(db *gorm.DB, logger *slog.Logger) personsports.Repository {
	if db == nil {
		return personsmemory.NewRepository()
	}
	logger.Info("person repository configured with postgres")
	return personspostgres.NewRepository(db)
}

func buildPetRepository(db *gorm.DB, logger *slog.Logger) petsports.Repository {
	if db == nil {
		return petsmemory.NewRepository()
	}
	logger.Info("pet repository configured with postgres")
	return petspostgres.NewRepository(db)
}

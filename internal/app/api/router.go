package api

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	personshttp "github.com/relatia/people-pets-api/internal/domains/persons/adapters/http"
	personsports "github.com/relatia/people-pets-api/internal/domains/persons/ports"
	petshttp "github.com/relatia/people-pets-api/internal/domains/pets/adapters/http"
	petsports "github.com/relatia/people-pets-api/internal/domains/pets/ports"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	ServiceName    string
	Version        string
	Environment    string
	AllowedOrigins []string
	Logger         *slog.Logger
	Persons        personsports.Service
	Pets           petsports.Service
}

// NewRouter builds the gin engine with middleware, the resource routes, and
// the health endpoint.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	router.GET("/health", healthHandler(cfg.Version, cfg.Environment))

	apiGroup := router.Group("/api")
	personshttp.NewHandler(cfg.Persons, cfg.Logger).Register(apiGroup)
	petshttp.NewHandler(cfg.Pets, cfg.Logger).Register(apiGroup)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cfg
}

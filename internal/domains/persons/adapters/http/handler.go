// Package http exposes the persons resource over gin, one handler per verb.
// Every handler resolves errors at its own boundary: nothing propagates
// past it, and internal detail never reaches the response body.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/persons/adapters/http/mapper"
	"github.com/relatia/people-pets-api/internal/domains/persons/application"
	"github.com/relatia/people-pets-api/internal/domains/persons/ports"
	"github.com/relatia/people-pets-api/internal/shared/respond"
)

// Handler serves the /api/persons routes.
type Handler struct {
	service ports.Service
	logger  *slog.Logger
}

// NewHandler wires the persons HTTP adapter.
func NewHandler(service ports.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts the persons routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/persons", h.List)
	rg.GET("/persons/search", h.Search)
	rg.GET("/persons/:id", h.Get)
	rg.POST("/persons", h.Create)
	rg.PUT("/persons/:id", h.Update)
	rg.DELETE("/persons/:id", h.Delete)
}

// List handles GET /api/persons.
func (h *Handler) List(c *gin.Context) {
	persons, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "could not retrieve persons")
		return
	}
	data := mapper.ToResponseList(persons, time.Now())
	respond.OK(c, fmt.Sprintf("found %d persons", len(data)), data)
}

// Get handles GET /api/persons/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	person, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "could not retrieve person")
		return
	}
	respond.OK(c, "person found", mapper.ToResponse(person, time.Now()))
}

// Create handles POST /api/persons.
func (h *Handler) Create(c *gin.Context) {
	var req mapper.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	created, err := h.service.Create(c.Request.Context(), mapper.FromCreateRequest(req))
	if err != nil {
		h.fail(c, err, "could not create person")
		return
	}
	location := "/api/persons/" + created.ID.String()
	respond.Created(c, location, "person created successfully", mapper.ToResponse(created, time.Now()))
}

// Update handles PUT /api/persons/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req mapper.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, mapper.FromUpdateRequest(req))
	if err != nil {
		h.fail(c, err, "could not update person")
		return
	}
	respond.OK(c, "person updated successfully", mapper.ToResponse(updated, time.Now()))
}

// Delete handles DELETE /api/persons/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "could not delete person")
		return
	}
	respond.OK[any](c, "person deleted successfully", nil)
}

// Search handles GET /api/persons/search?searchTerm=.
func (h *Handler) Search(c *gin.Context) {
	term := c.Query("searchTerm")
	if term == "" {
		respond.Error(c, http.StatusBadRequest, "searchTerm query parameter is required")
		return
	}
	persons, err := h.service.SearchByName(c.Request.Context(), term)
	if err != nil {
		h.fail(c, err, "could not search persons")
		return
	}
	data := mapper.ToResponseList(persons, time.Now())
	respond.OK(c, fmt.Sprintf("found %d persons matching '%s'", len(data), term), data)
}

// fail maps application and port errors to envelope responses. Unanticipated
// errors are logged with full context and answered with a generic 500.
func (h *Handler) fail(c *gin.Context, err error, message string) {
	var validation *application.ValidationError
	switch {
	case errors.As(err, &validation):
		respond.Error(c, http.StatusBadRequest, "invalid input data", validation.Violations...)
	case errors.Is(err, ports.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "person not found")
	case errors.Is(err, ports.ErrDuplicateEmail):
		respond.Error(c, http.StatusConflict, "email already registered")
	default:
		h.logger.Error(message,
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()))
		respond.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// parseID reads the :id path parameter. A malformed id cannot address any
// resource, so it answers 404 just like a route mismatch would.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "person not found")
		return uuid.Nil, false
	}
	return id, true
}

// Package http exposes the pets resource over gin.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/pets/adapters/http/mapper"
	"github.com/relatia/people-pets-api/internal/domains/pets/application"
	"github.com/relatia/people-pets-api/internal/domains/pets/ports"
	"github.com/relatia/people-pets-api/internal/shared/respond"
)

// Handler serves the /api/pets routes.
type Handler struct {
	service ports.Service
	logger  *slog.Logger
}

// NewHandler wires the pets HTTP adapter.
func NewHandler(service ports.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts the pets routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/pets", h.List)
	rg.GET("/pets/search", h.Search)
	rg.GET("/pets/age-range", h.AgeRange)
	rg.GET("/pets/species/:species", h.BySpecies)
	rg.GET("/pets/:id", h.Get)
	rg.POST("/pets", h.Create)
	rg.PUT("/pets/:id", h.Update)
	rg.DELETE("/pets/:id", h.Delete)
}

// List handles GET /api/pets.
func (h *Handler) List(c *gin.Context) {
	pets, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "could not retrieve pets")
		return
	}
	data := mapper.ToResponseList(pets)
	respond.OK(c, fmt.Sprintf("found %d pets", len(data)), data)
}

// Get handles GET /api/pets/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pet, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "could not retrieve pet")
		return
	}
	respond.OK(c, "pet found", mapper.ToResponse(pet))
}

// Create handles POST /api/pets.
func (h *Handler) Create(c *gin.Context) {
	var req mapper.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	created, err := h.service.Create(c.Request.Context(), mapper.FromCreateRequest(req))
	if err != nil {
		h.fail(c, err, "could not create pet")
		return
	}
	location := "/api/pets/" + created.ID.String()
	respond.Created(c, location, "pet created successfully", mapper.ToResponse(created))
}

// Update handles PUT /api/pets/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req mapper.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, mapper.FromUpdateRequest(req))
	if err != nil {
		h.fail(c, err, "could not update pet")
		return
	}
	respond.OK(c, "pet updated successfully", mapper.ToResponse(updated))
}

// Delete handles DELETE /api/pets/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "could not delete pet")
		return
	}
	respond.OK[any](c, "pet deleted successfully", nil)
}

// Search handles GET /api/pets/search?searchTerm=.
func (h *Handler) Search(c *gin.Context) {
	term := c.Query("searchTerm")
	if term == "" {
		respond.Error(c, http.StatusBadRequest, "searchTerm query parameter is required")
		return
	}
	pets, err := h.service.SearchByName(c.Request.Context(), term)
	if err != nil {
		h.fail(c, err, "could not search pets")
		return
	}
	data := mapper.ToResponseList(pets)
	respond.OK(c, fmt.Sprintf("found %d pets matching '%s'", len(data), term), data)
}

// BySpecies handles GET /api/pets/species/:species.
func (h *Handler) BySpecies(c *gin.Context) {
	species := c.Param("species")
	pets, err := h.service.GetBySpecies(c.Request.Context(), species)
	if err != nil {
		h.fail(c, err, "could not retrieve pets by species")
		return
	}
	data := mapper.ToResponseList(pets)
	respond.OK(c, fmt.Sprintf("found %d pets of species '%s'", len(data), species), data)
}

// AgeRange handles GET /api/pets/age-range?minAge=&maxAge=. The bounds are
// rejected here for shape and again in the service for ordering, so nothing
// invalid reaches the repository.
func (h *Handler) AgeRange(c *gin.Context) {
	min, okMin := parseAge(c, "minAge")
	if !okMin {
		return
	}
	max, okMax := parseAge(c, "maxAge")
	if !okMax {
		return
	}
	pets, err := h.service.GetByAgeRange(c.Request.Context(), min, max)
	if err != nil {
		h.fail(c, err, "could not retrieve pets by age range")
		return
	}
	data := mapper.ToResponseList(pets)
	respond.OK(c, fmt.Sprintf("found %d pets aged between %d and %d", len(data), min, max), data)
}

func (h *Handler) fail(c *gin.Context, err error, message string) {
	var validation *application.ValidationError
	switch {
	case errors.As(err, &validation):
		respond.Error(c, http.StatusBadRequest, "invalid input data", validation.Violations...)
	case errors.Is(err, application.ErrInvalidAgeRange):
		respond.Error(c, http.StatusBadRequest, "minAge must be less than or equal to maxAge and both must be non-negative")
	case errors.Is(err, ports.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "pet not found")
	default:
		h.logger.Error(message,
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()))
		respond.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "pet not found")
		return uuid.Nil, false
	}
	return id, true
}

func parseAge(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		respond.Error(c, http.StatusBadRequest, name+" query parameter is required")
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return value, true
}

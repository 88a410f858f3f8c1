// Package mapper maps between the pets wire shapes and the domain entity.
// Inbound shapes carry no id or createdAt fields by construction.
package mapper

import (
	"time"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/pets/domain"
)

// CreatePetRequest is the inbound shape for creating a pet.
type CreatePetRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed"`
	Color   *string `json:"color"`
	Age     *int    `json:"age"`
}

// UpdatePetRequest is the inbound shape for the full-replace update.
type UpdatePetRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed"`
	Color   *string `json:"color"`
	Age     *int    `json:"age"`
}

// PetResponse is the outbound read shape: every persisted field plus the
// derived description.
type PetResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       *string   `json:"breed"`
	Color       *string   `json:"color"`
	Age         *int      `json:"age"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromCreateRequest maps the inbound create shape to a domain draft.
func FromCreateRequest(req CreatePetRequest) domain.Pet {
	return domain.Pet{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Color:   req.Color,
		Age:     req.Age,
	}
}

// FromUpdateRequest maps the inbound update shape to a domain draft.
func FromUpdateRequest(req UpdatePetRequest) domain.Pet {
	return domain.Pet{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Color:   req.Color,
		Age:     req.Age,
	}
}

// ToResponse maps a domain pet to the read shape.
func ToResponse(p *domain.Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Color:       p.Color,
		Age:         p.Age,
		Description: p.Description(),
		CreatedAt:   p.CreatedAt,
	}
}

// ToResponseList maps pets preserving their order.
func ToResponseList(pets []domain.Pet) []PetResponse {
	list := make([]PetResponse, 0, len(pets))
	for i := range pets {
		list = append(list, ToResponse(&pets[i]))
	}
	return list
}

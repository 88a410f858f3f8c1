// Package mapper maps between the persons wire shapes and the domain entity.
// Inbound shapes deliberately have no id or createdAt fields: those are
// server-assigned and can never be supplied by a client.
package mapper

import (
	"time"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/persons/domain"
)

// CreatePersonRequest is the inbound shape for creating a person.
type CreatePersonRequest struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birthDate"`
	Height    *float64   `json:"height"`
}

// UpdatePersonRequest is the inbound shape for the full-replace update.
type UpdatePersonRequest struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birthDate"`
	Height    *float64   `json:"height"`
}

// PersonResponse is the outbound read shape: every persisted field plus the
// derived fullName and age.
type PersonResponse struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birthDate"`
	Age       *int       `json:"age"`
	Height    *float64   `json:"height"`
	CreatedAt time.Time  `json:"createdAt"`
}

// FromCreateRequest maps the inbound create shape to a domain draft.
func FromCreateRequest(req CreatePersonRequest) domain.Person {
	return domain.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		HeightCm:  req.Height,
	}
}

// FromUpdateRequest maps the inbound update shape to a domain draft.
func FromUpdateRequest(req UpdatePersonRequest) domain.Person {
	return domain.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		HeightCm:  req.Height,
	}
}

// ToResponse maps a domain person to the read shape, deriving age at the
// given reference time.
func ToResponse(p *domain.Person, now time.Time) PersonResponse {
	return PersonResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName(),
		Email:     p.Email,
		BirthDate: p.BirthDate,
		Age:       p.Age(now),
		Height:    p.HeightCm,
		CreatedAt: p.CreatedAt,
	}
}

// ToResponseList maps persons preserving their order.
func ToResponseList(persons []domain.Person, now time.Time) []PersonResponse {
	list := make([]PersonResponse, 0, len(persons))
	for i := range persons {
		list = append(list, ToResponse(&persons[i], now))
	}
	return list
}

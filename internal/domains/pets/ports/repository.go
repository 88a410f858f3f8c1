package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/pets/domain"
)

var ErrNotFound = errors.New("pet not found")

// Repository is the pets persistence port: the five canonical operations
// plus an existence probe, extended with the pets-specific refinements.
// List is ordered by species then name, ascending.
type Repository interface {
	List(ctx context.Context) ([]domain.Pet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	Update(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// GetBySpecies matches the species case-insensitively, ordered by name.
	GetBySpecies(ctx context.Context, species string) ([]domain.Pet, error)
	// SearchByName matches the term case-insensitively as a substring of
	// the name, ordered by name.
	SearchByName(ctx context.Context, term string) ([]domain.Pet, error)
	// GetByAgeRange returns pets with min <= age <= max, ordered by age
	// then name. Callers guarantee min >= 0, max >= 0 and min <= max.
	GetByAgeRange(ctx context.Context, min, max int) ([]domain.Pet, error)
}

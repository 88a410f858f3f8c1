package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/pets/domain"
)

// Service defines the pets use cases exposed to adapters (driving port).
type Service interface {
	List(ctx context.Context) ([]domain.Pet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	Create(ctx context.Context, draft domain.Pet) (*domain.Pet, error)
	Update(ctx context.Context, id uuid.UUID, draft domain.Pet) (*domain.Pet, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetBySpecies(ctx context.Context, species string) ([]domain.Pet, error)
	SearchByName(ctx context.Context, term string) ([]domain.Pet, error)
	GetByAgeRange(ctx context.Context, min, max int) ([]domain.Pet, error)
}

package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/persons/domain"
)

// Service defines the persons use cases exposed to adapters (driving port).
type Service interface {
	List(ctx context.Context) ([]domain.Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	Create(ctx context.Context, draft domain.Person) (*domain.Person, error)
	Update(ctx context.Context, id uuid.UUID, draft domain.Person) (*domain.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SearchByName(ctx context.Context, term string) ([]domain.Person, error)
}

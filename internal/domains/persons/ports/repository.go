package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/persons/domain"
)

var (
	ErrNotFound       = errors.New("person not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Repository is the persons persistence port: the five canonical operations
// plus an existence probe, extended with the persons-specific refinements.
// List is ordered by first name then last name, ascending.
type Repository interface {
	List(ctx context.Context) ([]domain.Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	Create(ctx context.Context, person *domain.Person) (*domain.Person, error)
	Update(ctx context.Context, person *domain.Person) (*domain.Person, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// GetByEmail matches the email case-insensitively; at most one result
	// given the uniqueness invariant.
	GetByEmail(ctx context.Context, email string) (*domain.Person, error)
	// EmailExists reports whether the email is taken, optionally excluding
	// one id so an update does not reject its own unchanged email.
	EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
	// SearchByName matches the term case-insensitively as a substring of
	// first name or last name.
	SearchByName(ctx context.Context, term string) ([]domain.Person, error)
}

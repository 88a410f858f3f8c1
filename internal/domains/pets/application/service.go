// Package application orchestrates the pets bounded context use cases.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/pets/domain"
	"github.com/relatia/people-pets-api/internal/domains/pets/ports"
)

var _ ports.Service = (*Service)(nil)

// Service implements the pets use cases over the persistence port.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the pets service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// List returns every pet ordered by species then name.
func (s *Service) List(ctx context.Context) ([]domain.Pet, error) {
	return s.repo.List(ctx)
}

// GetByID loads a single pet.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a new pet. The draft's ID and CreatedAt are discarded and
// assigned server-side.
func (s *Service) Create(ctx context.Context, draft domain.Pet) (*domain.Pet, error) {
	if violations := draft.Validate(); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	draft.ID = uuid.New()
	draft.CreatedAt = s.now()
	return s.repo.Create(ctx, &draft)
}

// Update replaces all mutable fields of the pet at id, preserving the
// original ID and CreatedAt regardless of what the draft carries.
func (s *Service) Update(ctx context.Context, id uuid.UUID, draft domain.Pet) (*domain.Pet, error) {
	if violations := draft.Validate(); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	draft.ID = existing.ID
	draft.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, &draft)
}

// Delete removes the pet at id, answering ErrNotFound for a missing id via
// an explicit existence check.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ports.ErrNotFound
	}
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("pet %s was not removed", id)
	}
	return nil
}

// GetBySpecies finds pets of the given species, case-insensitively.
func (s *Service) GetBySpecies(ctx context.Context, species string) ([]domain.Pet, error) {
	return s.repo.GetBySpecies(ctx, species)
}

// SearchByName finds pets whose name contains the term, case-insensitively.
func (s *Service) SearchByName(ctx context.Context, term string) ([]domain.Pet, error) {
	return s.repo.SearchByName(ctx, term)
}

// GetByAgeRange returns pets whose age falls inside the inclusive range.
// The bounds are validated here, before any query is issued.
func (s *Service) GetByAgeRange(ctx context.Context, min, max int) ([]domain.Pet, error) {
	if min < 0 || max < 0 || min > max {
		return nil, ErrInvalidAgeRange
	}
	return s.repo.GetByAgeRange(ctx, min, max)
}

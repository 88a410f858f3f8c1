// Package application orchestrates the persons bounded context use cases.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/persons/domain"
	"github.com/relatia/people-pets-api/internal/domains/persons/ports"
)

var _ ports.Service = (*Service)(nil)

// Service implements the persons use cases over the persistence port.
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

// NewService wires the persons service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// List returns every person ordered by first name then last name.
func (s *Service) List(ctx context.Context) ([]domain.Person, error) {
	return s.repo.List(ctx)
}

// GetByID loads a single person.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a new person. The draft's ID and CreatedAt are discarded
// and assigned server-side; a taken email yields ErrDuplicateEmail. The
// uniqueness pre-check is a fast path only, the unique index on
// lower(email) remains the real guarantee under concurrent submissions.
func (s *Service) Create(ctx context.Context, draft domain.Person) (*domain.Person, error) {
	if violations := draft.Validate(); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	taken, err := s.repo.EmailExists(ctx, draft.Email, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ports.ErrDuplicateEmail
	}
	draft.ID = uuid.New()
	draft.CreatedAt = s.now()
	return s.repo.Create(ctx, &draft)
}

// Update replaces all mutable fields of the person at id, preserving the
// original ID and CreatedAt regardless of what the draft carries.
func (s *Service) Update(ctx context.Context, id uuid.UUID, draft domain.Person) (*domain.Person, error) {
	if violations := draft.Validate(); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	taken, err := s.repo.EmailExists(ctx, draft.Email, &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ports.ErrDuplicateEmail
	}
	draft.ID = existing.ID
	draft.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, &draft)
}

// Delete removes the person at id. The explicit existence check turns a
// missing id into ErrNotFound so transport can answer 404 instead of 500.
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
		return fmt.Errorf("person %s was not removed", id)
	}
	return nil
}

// SearchByName finds persons whose first or last name contains the term,
// case-insensitively.
func (s *Service) SearchByName(ctx context.Context, term string) ([]domain.Person, error) {
	return s.repo.SearchByName(ctx, term)
}

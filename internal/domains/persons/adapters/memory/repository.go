package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/persons/domain"
	"github.com/relatia/people-pets-api/internal/domains/persons/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory persons persistence adapter for development
// and tests. It enforces the same case-insensitive email uniqueness the
// Postgres adapter gets from its unique index.
type Repository struct {
	mu      sync.RWMutex
	persons map[uuid.UUID]domain.Person
}

func NewRepository() *Repository {
	return &Repository{persons: map[uuid.UUID]domain.Person{}}
}

func (r *Repository) List(_ context.Context) ([]domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Person, 0, len(r.persons))
	for _, p := range r.persons {
		list = append(list, p)
	}
	sortByName(list)
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	person, ok := r.persons[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &person, nil
}

func (r *Repository) Create(_ context.Context, person *domain.Person) (*domain.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.persons {
		if strings.EqualFold(existing.Email, person.Email) {
			return nil, ports.ErrDuplicateEmail
		}
	}
	clone := *person
	r.persons[clone.ID] = clone
	saved := clone
	return &saved, nil
}

func (r *Repository) Update(_ context.Context, person *domain.Person) (*domain.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.persons[person.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	for id, existing := range r.persons {
		if id != person.ID && strings.EqualFold(existing.Email, person.Email) {
			return nil, ports.ErrDuplicateEmail
		}
	}
	clone := *person
	r.persons[clone.ID] = clone
	saved := clone
	return &saved, nil
}

func (r *Repository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.persons[id]; !ok {
		return false, nil
	}
	delete(r.persons, id)
	return true, nil
}

func (r *Repository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.persons[id]
	return ok, nil
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, person := range r.persons {
		if strings.EqualFold(person.Email, email) {
			clone := person
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) EmailExists(_ context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, person := range r.persons {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if strings.EqualFold(person.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) SearchByName(_ context.Context, term string) ([]domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(term)
	var matches []domain.Person
	for _, person := range r.persons {
		if strings.Contains(strings.ToLower(person.FirstName), needle) ||
			strings.Contains(strings.ToLower(person.LastName), needle) {
			matches = append(matches, person)
		}
	}
	sortByName(matches)
	return matches, nil
}

func sortByName(list []domain.Person) {
	sort.Slice(list, func(i, j int) bool {
		fi, fj := strings.ToLower(list[i].FirstName), strings.ToLower(list[j].FirstName)
		if fi != fj {
			return fi < fj
		}
		return strings.ToLower(list[i].LastName) < strings.ToLower(list[j].LastName)
	})
}

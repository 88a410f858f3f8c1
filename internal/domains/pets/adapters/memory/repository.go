package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/relatia/people-pets-api/internal/domains/pets/domain"
	"github.com/relatia/people-pets-api/internal/domains/pets/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory pets persistence adapter for development and tests.
type Repository struct {
	mu   sync.RWMutex
	pets map[uuid.UUID]domain.Pet
}

func NewRepository() *Repository {
	return &Repository{pets: map[uuid.UUID]domain.Pet{}}
}

func (r *Repository) List(_ context.Context) ([]domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.snapshot(func(domain.Pet) bool { return true })
	sort.Slice(list, func(i, j int) bool {
		si, sj := strings.ToLower(list[i].Species), strings.ToLower(list[j].Species)
		if si != sj {
			return si < sj
		}
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pet, ok := r.pets[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &pet, nil
}

func (r *Repository) Create(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *pet
	r.pets[clone.ID] = clone
	saved := clone
	return &saved, nil
}

func (r *Repository) Update(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[pet.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	clone := *pet
	r.pets[clone.ID] = clone
	saved := clone
	return &saved, nil
}

func (r *Repository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return false, nil
	}
	delete(r.pets, id)
	return true, nil
}

func (r *Repository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.pets[id]
	return ok, nil
}

func (r *Repository) GetBySpecies(_ context.Context, species string) ([]domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.snapshot(func(p domain.Pet) bool {
		return strings.EqualFold(p.Species, species)
	})
	sortByName(list)
	return list, nil
}

func (r *Repository) SearchByName(_ context.Context, term string) ([]domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(term)
	list := r.snapshot(func(p domain.Pet) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
	sortByName(list)
	return list, nil
}

func (r *Repository) GetByAgeRange(_ context.Context, min, max int) ([]domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.snapshot(func(p domain.Pet) bool {
		return p.Age != nil && *p.Age >= min && *p.Age <= max
	})
	sort.Slice(list, func(i, j int) bool {
		if *list[i].Age != *list[j].Age {
			return *list[i].Age < *list[j].Age
		}
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, nil
}

// snapshot copies matching pets under the caller-held lock.
func (r *Repository) snapshot(match func(domain.Pet) bool) []domain.Pet {
	list := make([]domain.Pet, 0, len(r.pets))
	for _, pet := range r.pets {
		if match(pet) {
			list = append(list, pet)
		}
	}
	return list
}

func sortByName(list []domain.Pet) {
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relatia/people-pets-api/internal/domains/pets/domain"
	"github.com/relatia/people-pets-api/internal/domains/pets/ports"
	"github.com/relatia/people-pets-api/internal/shared/gormrepo"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists pets in PostgreSQL over the generic repository base.
type Repository struct {
	base gormrepo.Repository[petRecord]
}

// NewRepository wires a PostgreSQL-backed pets repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: gormrepo.New[petRecord](db)}
}

type petRecord struct {
	ID        uuid.UUID `gorm:"primaryKey;column:id;type:uuid"`
	Name      string    `gorm:"column:name;size:100"`
	Species   string    `gorm:"column:species;size:50;index"`
	Breed     *string   `gorm:"column:breed;size:100"`
	Color     *string   `gorm:"column:color;size:50"`
	Age       *int      `gorm:"column:age"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (petRecord) TableName() string { return "pets" }

func newPetRecord(p *domain.Pet) petRecord {
	return petRecord{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     cloneStringPtr(p.Breed),
		Color:     cloneStringPtr(p.Color),
		Age:       cloneIntPtr(p.Age),
		CreatedAt: p.CreatedAt,
	}
}

func (r *petRecord) toDomain() domain.Pet {
	return domain.Pet{
		ID:        r.ID,
		Name:      r.Name,
		Species:   r.Species,
		Breed:     cloneStringPtr(r.Breed),
		Color:     cloneStringPtr(r.Color),
		Age:       cloneIntPtr(r.Age),
		CreatedAt: r.CreatedAt,
	}
}

// List returns every pet ordered by species, then name.
func (r *Repository) List(ctx context.Context) ([]domain.Pet, error) {
	records, err := r.base.List(ctx, "species ASC", "name ASC")
	if err != nil {
		return nil, err
	}
	return recordsToDomain(records), nil
}

// GetByID fetches a pet by identifier.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	record, err := r.base.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gormrepo.ErrNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	pet := record.toDomain()
	return &pet, nil
}

// Create inserts a new pet.
func (r *Repository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	record := newPetRecord(pet)
	if err := r.base.Create(ctx, &record); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// Update overwrites all mutable columns of the stored pet in place.
func (r *Repository) Update(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	exists, err := r.base.Exists(ctx, pet.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ports.ErrNotFound
	}
	record := newPetRecord(pet)
	if err := r.base.Update(ctx, &record); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// Delete removes a pet and reports whether a row was removed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.base.Delete(ctx, id)
}

// Exists probes for a pet without loading the full row.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.base.Exists(ctx, id)
}

// GetBySpecies matches the species case-insensitively, ordered by name.
func (r *Repository) GetBySpecies(ctx context.Context, species string) ([]domain.Pet, error) {
	var records []petRecord
	err := r.base.DB().WithContext(ctx).
		Where("LOWER(species) = LOWER(?)", species).
		Order("name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return recordsToDomain(records), nil
}

// SearchByName matches the term as a case-insensitive substring of the name.
func (r *Repository) SearchByName(ctx context.Context, term string) ([]domain.Pet, error) {
	var records []petRecord
	err := r.base.DB().WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return recordsToDomain(records), nil
}

// GetByAgeRange returns pets inside the inclusive range, ordered by age then
// name. Pets without a recorded age never match.
func (r *Repository) GetByAgeRange(ctx context.Context, min, max int) ([]domain.Pet, error) {
	var records []petRecord
	err := r.base.DB().WithContext(ctx).
		Where("age BETWEEN ? AND ?", min, max).
		Order("age ASC").
		Order("name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return recordsToDomain(records), nil
}

func recordsToDomain(records []petRecord) []domain.Pet {
	list := make([]domain.Pet, 0, len(records))
	for i := range records {
		list = append(list, records[i].toDomain())
	}
	return list
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relatia/people-pets-api/internal/domains/persons/domain"
	"github.com/relatia/people-pets-api/internal/domains/persons/ports"
	"github.com/relatia/people-pets-api/internal/shared/gormrepo"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists persons in PostgreSQL. The generic repository base
// covers the canonical operations; the persons-specific refinements are
// layered on top of the same handle.
type Repository struct {
	base gormrepo.Repository[personRecord]
}

// NewRepository wires a PostgreSQL-backed persons repository. The caller
// owns the DB lifecycle; schema management lives in platform/migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{base: gormrepo.New[personRecord](db)}
}

type personRecord struct {
	ID        uuid.UUID  `gorm:"primaryKey;column:id;type:uuid"`
	FirstName string     `gorm:"column:first_name;size:100"`
	LastName  string     `gorm:"column:last_name;size:100"`
	Email     string     `gorm:"column:email;size:150"`
	BirthDate *time.Time `gorm:"column:birth_date;type:date"`
	HeightCm  *float64   `gorm:"column:height_cm;type:decimal(5,2)"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (personRecord) TableName() string { return "persons" }

func newPersonRecord(p *domain.Person) personRecord {
	return personRecord{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		BirthDate: cloneTimePtr(p.BirthDate),
		HeightCm:  cloneFloatPtr(p.HeightCm),
		CreatedAt: p.CreatedAt,
	}
}

func (r *personRecord) toDomain() domain.Person {
	return domain.Person{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		BirthDate: cloneTimePtr(r.BirthDate),
		HeightCm:  cloneFloatPtr(r.HeightCm),
		CreatedAt: r.CreatedAt,
	}
}

// List returns every person ordered by first name, then last name.
func (r *Repository) List(ctx context.Context) ([]domain.Person, error) {
	records, err := r.base.List(ctx, "first_name ASC", "last_name ASC")
	if err != nil {
		return nil, err
	}
	return recordsToDomain(records), nil
}

// GetByID fetches a person by identifier.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	record, err := r.base.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	person := record.toDomain()
	return &person, nil
}

// Create inserts a new person. The unique index on lower(email) backstops
// the application-level uniqueness check.
func (r *Repository) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	record := newPersonRecord(person)
	if err := r.base.Create(ctx, &record); err != nil {
		return nil, mapError(err)
	}
	return r.GetByID(ctx, record.ID)
}

// Update overwrites all mutable columns of the stored person in place.
func (r *Repository) Update(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	exists, err := r.base.Exists(ctx, person.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ports.ErrNotFound
	}
	record := newPersonRecord(person)
	if err := r.base.Update(ctx, &record); err != nil {
		return nil, mapError(err)
	}
	return r.GetByID(ctx, record.ID)
}

// Delete removes a person and reports whether a row was removed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.base.Delete(ctx, id)
}

// Exists probes for a person without loading the full row.
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.base.Exists(ctx, id)
}

// GetByEmail returns the person holding the email, compared case-insensitively.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Person, error) {
	var record personRecord
	err := r.base.DB().WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	person := record.toDomain()
	return &person, nil
}

// EmailExists reports whether the email is taken, optionally ignoring one id.
func (r *Repository) EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	q := r.base.DB().WithContext(ctx).
		Model(&personRecord{}).
		Where("LOWER(email) = LOWER(?)", email)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SearchByName matches the term as a case-insensitive substring of first or
// last name, ordered by first name then last name.
func (r *Repository) SearchByName(ctx context.Context, term string) ([]domain.Person, error) {
	pattern := "%" + term + "%"
	var records []personRecord
	err := r.base.DB().WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern).
		Order("first_name ASC").
		Order("last_name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return recordsToDomain(records), nil
}

func recordsToDomain(records []personRecord) []domain.Person {
	list := make([]domain.Person, 0, len(records))
	for i := range records {
		list = append(list, records[i].toDomain())
	}
	return list
}

func mapError(err error) error {
	switch {
	case errors.Is(err, gormrepo.ErrNotFound):
		return ports.ErrNotFound
	case errors.Is(err, gormrepo.ErrDuplicateKey):
		return ports.ErrDuplicateEmail
	default:
		return err
	}
}

func cloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func cloneFloatPtr(f *float64) *float64 {
	if f == nil {
		return nil
	}
	clone := *f
	return &clone
}

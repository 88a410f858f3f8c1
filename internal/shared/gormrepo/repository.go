// Package gormrepo implements the generic repository base shared by every
// entity-specific persistence adapter. It covers the five canonical data
// operations plus an existence probe against a GORM-managed table; entity
// adapters embed it and layer their own query refinements on top.
package gormrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound signals the identifier does not resolve to a row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey signals a uniqueness constraint rejected the write.
	// Requires TranslateError on the gorm.Config.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Repository is a generic GORM-backed repository over a record type R.
// Every mutating operation commits immediately; there is no transaction
// spanning multiple calls.
type Repository[R any] struct {
	db *gorm.DB
}

// New wires a generic repository. The caller owns the DB lifecycle.
func New[R any](db *gorm.DB) Repository[R] {
	return Repository[R]{db: db}
}

// DB exposes the underlying handle for entity-specific refinements.
func (r Repository[R]) DB() *gorm.DB {
	return r.db
}

// List returns all rows ordered by the given ORDER BY clauses.
func (r Repository[R]) List(ctx context.Context, order ...string) ([]R, error) {
	q := r.db.WithContext(ctx)
	for _, clause := range order {
		q = q.Order(clause)
	}
	var records []R
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID returns the row at id or ErrNotFound; absence is never a panic.
func (r Repository[R]) GetByID(ctx context.Context, id uuid.UUID) (*R, error) {
	var record R
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create inserts the record. Constraint violations not caught earlier in the
// request flow surface as ErrDuplicateKey.
func (r Repository[R]) Create(ctx context.Context, record *R) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// Update overwrites all columns of the record in place (field-by-field
// replace, not merge).
func (r Repository[R]) Update(ctx context.Context, record *R) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// Delete removes the row at id and reports whether anything was removed.
// Deleting a nonexistent id is not an error at this layer.
func (r Repository[R]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(new(R), "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists reports whether a row with the given id exists without loading it.
func (r Repository[R]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(R)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

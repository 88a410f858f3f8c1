//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/relatia/people-pets-api/internal/domains/pets/domain"
	"github.com/relatia/people-pets-api/internal/domains/pets/ports"
	"github.com/relatia/people-pets-api/internal/platform/migrations"
)

func setupPetsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("people_pets_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newStoredPet(name, species string, age *int) *domain.Pet {
	return &domain.Pet{
		ID:        uuid.New(),
		Name:      name,
		Species:   species,
		Age:       age,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func intPtr(v int) *int { return &v }

func TestPetRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPetsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	breed := "boxer"
	pet := newStoredPet("Rex", "dog", intPtr(3))
	pet.Breed = &breed

	created, err := repo.Create(ctx, pet)
	require.NoError(t, err)
	assert.Equal(t, pet.ID, created.ID)

	fetched, err := repo.GetByID(ctx, pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", fetched.Name)
	require.NotNil(t, fetched.Breed)
	assert.Equal(t, "boxer", *fetched.Breed)
	require.NotNil(t, fetched.Age)
	assert.Equal(t, 3, *fetched.Age)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPetRepository_GetBySpeciesIgnoresCase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPetsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, p := range []*domain.Pet{
		newStoredPet("Rex", "Dog", nil),
		newStoredPet("Bobby", "dog", nil),
		newStoredPet("Misu", "cat", nil),
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	pets, err := repo.GetBySpecies(ctx, "DOG")
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Bobby", pets[0].Name)
	assert.Equal(t, "Rex", pets[1].Name)
}

func TestPetRepository_AgeRangeInclusiveAndSkipsUnknownAge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPetsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, p := range []*domain.Pet{
		newStoredPet("Rex", "dog", intPtr(3)),
		newStoredPet("Bobby", "dog", intPtr(5)),
		newStoredPet("Misu", "cat", nil),
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	pets, err := repo.GetByAgeRange(ctx, 3, 5)
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Rex", pets[0].Name)
	assert.Equal(t, "Bobby", pets[1].Name)

	pets, err = repo.GetByAgeRange(ctx, 4, 4)
	require.NoError(t, err)
	assert.Empty(t, pets)
}

func TestPetRepository_SearchByName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPetsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, p := range []*domain.Pet{
		newStoredPet("Rex", "dog", nil),
		newStoredPet("Trexa", "cat", nil),
		newStoredPet("Misu", "cat", nil),
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	pets, err := repo.SearchByName(ctx, "REX")
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Rex", pets[0].Name)
	assert.Equal(t, "Trexa", pets[1].Name)
}

func TestPetRepository_UpdateAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPetsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	pet := newStoredPet("Rex", "dog", intPtr(3))
	_, err := repo.Create(ctx, pet)
	require.NoError(t, err)

	pet.Age = intPtr(4)
	pet.Breed = nil
	updated, err := repo.Update(ctx, pet)
	require.NoError(t, err)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 4, *updated.Age)
	assert.Nil(t, updated.Breed)

	removed, err := repo.Delete(ctx, pet.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, pet.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.Update(ctx, pet)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

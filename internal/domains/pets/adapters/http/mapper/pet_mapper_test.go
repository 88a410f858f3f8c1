package mapper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatia/people-pets-api/internal/domains/pets/domain"
)

func TestToResponse_DerivesDescription(t *testing.T) {
	breed := "boxer"
	color := "brown"
	pet := &domain.Pet{
		ID:      uuid.New(),
		Name:    "Rex",
		Species: "dog",
		Breed:   &breed,
		Color:   &color,
	}

	resp := ToResponse(pet)

	assert.Equal(t, "Rex - dog (boxer) - brown", resp.Description)
}

func TestFromCreateRequest_CarriesNoServerFields(t *testing.T) {
	draft := FromCreateRequest(CreatePetRequest{Name: "Rex", Species: "dog"})

	assert.Equal(t, uuid.Nil, draft.ID)
	assert.True(t, draft.CreatedAt.IsZero())
	assert.Nil(t, draft.Breed)
}

func TestToResponseList_PreservesOrder(t *testing.T) {
	pets := []domain.Pet{
		{Name: "Misu", Species: "cat"},
		{Name: "Rex", Species: "dog"},
	}

	list := ToResponseList(pets)

	require.Len(t, list, 2)
	assert.Equal(t, "Misu - cat", list[0].Description)
	assert.Equal(t, "Rex - dog", list[1].Description)
}

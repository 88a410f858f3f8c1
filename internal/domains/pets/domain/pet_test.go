package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestDescription_NameAndSpeciesOnly(t *testing.T) {
	p := Pet{Name: "Rex", Species: "dog"}
	assert.Equal(t, "Rex - dog", p.Description())
}

func TestDescription_WithBreed(t *testing.T) {
	p := Pet{Name: "Rex", Species: "dog", Breed: strPtr("Labrador")}
	assert.Equal(t, "Rex - dog (Labrador)", p.Description())
}

func TestDescription_WithBreedAndColor(t *testing.T) {
	p := Pet{Name: "Rex", Species: "dog", Breed: strPtr("Labrador"), Color: strPtr("black")}
	assert.Equal(t, "Rex - dog (Labrador) - black", p.Description())
}

func TestDescription_ColorWithoutBreed(t *testing.T) {
	p := Pet{Name: "Misu", Species: "cat", Color: strPtr("white")}
	assert.Equal(t, "Misu - cat - white", p.Description())
}

func TestValidate_Valid(t *testing.T) {
	p := Pet{Name: "Rex", Species: "dog", Age: intPtr(3)}
	assert.Empty(t, p.Validate())
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	p := Pet{}
	violations := p.Validate()
	require.Len(t, violations, 2)
	assert.Equal(t, "name is required", violations[0])
	assert.Equal(t, "species is required", violations[1])
}

func TestValidate_AgeOutOfRange(t *testing.T) {
	p := Pet{Name: "Rex", Species: "dog", Age: intPtr(51)}
	violations := p.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "age must be between 0 and 50 years", violations[0])
}

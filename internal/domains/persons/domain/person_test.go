package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestFullName(t *testing.T) {
	p := Person{FirstName: "Ana", LastName: "Ruiz"}
	assert.Equal(t, "Ana Ruiz", p.FullName())
}

func TestAge_NoBirthDate(t *testing.T) {
	p := Person{}
	assert.Nil(t, p.Age(time.Now()))
}

func TestAge_BirthdayNotYetReached(t *testing.T) {
	p := Person{BirthDate: datePtr(1990, time.June, 15)}
	now := time.Date(2024, time.June, 14, 12, 0, 0, 0, time.UTC)

	age := p.Age(now)
	require.NotNil(t, age)
	assert.Equal(t, 33, *age)
}

func TestAge_OnBirthday(t *testing.T) {
	p := Person{BirthDate: datePtr(1990, time.June, 15)}
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	age := p.Age(now)
	require.NotNil(t, age)
	assert.Equal(t, 34, *age)
}

func TestValidate_Valid(t *testing.T) {
	height := 170.5
	p := Person{
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@x.com",
		BirthDate: datePtr(1990, time.June, 15),
		HeightCm:  &height,
	}
	assert.Empty(t, p.Validate())
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	tooTall := 301.0
	p := Person{HeightCm: &tooTall}

	violations := p.Validate()
	require.Len(t, violations, 4)
	assert.Equal(t, "firstName is required", violations[0])
	assert.Equal(t, "lastName is required", violations[1])
	assert.Equal(t, "email is required", violations[2])
	assert.Equal(t, "height must be between 0 and 300 cm", violations[3])
}

func TestValidate_NameTooLong(t *testing.T) {
	p := Person{
		FirstName: strings.Repeat("a", 101),
		LastName:  "Ruiz",
		Email:     "ana@x.com",
	}
	violations := p.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "firstName")
}

func TestValidate_EmailShape(t *testing.T) {
	p := Person{FirstName: "Ana", LastName: "Ruiz", Email: "not-an-email"}
	violations := p.Validate()
	require.Len(t, violations, 1)
	assert.Equal(t, "email format is invalid", violations[0])
}

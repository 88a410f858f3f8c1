// Package domain holds the Pet entity and its validation rules.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxNameLength    = 100
	maxSpeciesLength = 50
	maxBreedLength   = 100
	maxColorLength   = 50
	maxAge           = 50
)

// Pet is the persisted shape managed by the pets bounded context.
// ID and CreatedAt are server-generated and immutable after creation.
type Pet struct {
	ID        uuid.UUID
	Name      string
	Species   string
	Breed     *string
	Color     *string
	Age       *int
	CreatedAt time.Time
}

// Description derives the display string: "Name - species", with the breed
// in parentheses and the color appended when present.
func (p *Pet) Description() string {
	desc := fmt.Sprintf("%s - %s", p.Name, p.Species)
	if p.Breed != nil && *p.Breed != "" {
		desc += fmt.Sprintf(" (%s)", *p.Breed)
	}
	if p.Color != nil && *p.Color != "" {
		desc += fmt.Sprintf(" - %s", *p.Color)
	}
	return desc
}

// Validate returns one message per violated field rule, in field order.
func (p *Pet) Validate() []string {
	var violations []string
	if strings.TrimSpace(p.Name) == "" {
		violations = append(violations, "name is required")
	} else if len(p.Name) > maxNameLength {
		violations = append(violations, fmt.Sprintf("name must not exceed %d characters", maxNameLength))
	}
	if strings.TrimSpace(p.Species) == "" {
		violations = append(violations, "species is required")
	} else if len(p.Species) > maxSpeciesLength {
		violations = append(violations, fmt.Sprintf("species must not exceed %d characters", maxSpeciesLength))
	}
	if p.Breed != nil && len(*p.Breed) > maxBreedLength {
		violations = append(violations, fmt.Sprintf("breed must not exceed %d characters", maxBreedLength))
	}
	if p.Color != nil && len(*p.Color) > maxColorLength {
		violations = append(violations, fmt.Sprintf("color must not exceed %d characters", maxColorLength))
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > maxAge) {
		violations = append(violations, fmt.Sprintf("age must be between 0 and %d years", maxAge))
	}
	return violations
}

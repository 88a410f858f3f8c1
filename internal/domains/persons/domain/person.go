// Package domain holds the Person entity and its validation rules.
package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxNameLength  = 100
	maxEmailLength = 150
	maxHeightCm    = 300
)

// Person is the persisted shape managed by the persons bounded context.
// ID and CreatedAt are server-generated and immutable after creation.
type Person struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	BirthDate *time.Time
	HeightCm  *float64
	CreatedAt time.Time
}

// FullName derives the display name from first and last name.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Age derives the age in whole years at the given reference time.
// It returns nil when no birth date is recorded.
func (p *Person) Age(now time.Time) *int {
	if p.BirthDate == nil {
		return nil
	}
	birth := dateOnly(*p.BirthDate)
	today := dateOnly(now)
	age := today.Year() - birth.Year()
	if birth.After(today.AddDate(-age, 0, 0)) {
		age--
	}
	return &age
}

// Validate returns one message per violated field rule, in field order.
// An empty result means the entity is valid.
func (p *Person) Validate() []string {
	var violations []string
	if strings.TrimSpace(p.FirstName) == "" {
		violations = append(violations, "firstName is required")
	} else if len(p.FirstName) > maxNameLength {
		violations = append(violations, fmt.Sprintf("firstName must not exceed %d characters", maxNameLength))
	}
	if strings.TrimSpace(p.LastName) == "" {
		violations = append(violations, "lastName is required")
	} else if len(p.LastName) > maxNameLength {
		violations = append(violations, fmt.Sprintf("lastName must not exceed %d characters", maxNameLength))
	}
	switch {
	case strings.TrimSpace(p.Email) == "":
		violations = append(violations, "email is required")
	case len(p.Email) > maxEmailLength:
		violations = append(violations, fmt.Sprintf("email must not exceed %d characters", maxEmailLength))
	case !validEmail(p.Email):
		violations = append(violations, "email format is invalid")
	}
	if p.HeightCm != nil && (*p.HeightCm < 0 || *p.HeightCm > maxHeightCm) {
		violations = append(violations, fmt.Sprintf("height must be between 0 and %d cm", maxHeightCm))
	}
	return violations
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	// reject addresses with a display name, only the bare form is accepted
	return err == nil && addr.Address == email
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package application

import (
	"errors"
	"strings"
)

// ErrInvalidAgeRange signals min/max query bounds that cannot select anything.
var ErrInvalidAgeRange = errors.New("invalid age range")

// ValidationError carries every violated field rule for a rejected input.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid pet input: " + strings.Join(e.Violations, "; ")
}

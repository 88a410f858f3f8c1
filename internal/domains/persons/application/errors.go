package application

import (
	"strings"
)

// ValidationError carries every violated field rule for a rejected input,
// one message per rule.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid person input: " + strings.Join(e.Violations, "; ")
}

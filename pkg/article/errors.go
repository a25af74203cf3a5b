package article

import "fmt"

// MissingFieldError is returned when an input table lacks a required column.
type MissingFieldError struct {
	Field  string
	Source string
}

func (e *MissingFieldError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("missing required field %q in %s", e.Field, e.Source)
	}
	return fmt.Sprintf("missing required field %q", e.Field)
}

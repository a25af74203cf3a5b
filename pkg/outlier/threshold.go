// Package outlier removes articles whose word counts fall outside configured bounds.
package outlier

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Threshold holds inclusive word-count bounds for titles and contents.
type Threshold struct {
	MinTitleWords   int `json:"min_title_words" yaml:"min_title_words" mapstructure:"min_title_words" validate:"gte=0"`
	MaxTitleWords   int `json:"max_title_words" yaml:"max_title_words" mapstructure:"max_title_words" validate:"gte=0,gtefield=MinTitleWords"`
	MinContentWords int `json:"min_content_words" yaml:"min_content_words" mapstructure:"min_content_words" validate:"gte=0"`
	MaxContentWords int `json:"max_content_words" yaml:"max_content_words" mapstructure:"max_content_words" validate:"gte=0,gtefield=MinContentWords"`
}

// NewThreshold creates a threshold from the four bounds.
func NewThreshold(minTitle, maxTitle, minContent, maxContent int) Threshold {
	return Threshold{
		MinTitleWords:   minTitle,
		MaxTitleWords:   maxTitle,
		MinContentWords: minContent,
		MaxContentWords: maxContent,
	}
}

// DefaultThreshold returns the bounds used when none are configured.
func DefaultThreshold() Threshold {
	return NewThreshold(1, 30, 10, 1000)
}

// Field names reported by InvalidThresholdError.
const (
	FieldTitleWords   = "title_words"
	FieldContentWords = "content_words"
)

// InvalidThresholdError reports a bound pair that cannot select any row.
type InvalidThresholdError struct {
	Field  string
	Min    int
	Max    int
	Reason string
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("invalid %s threshold [%d, %d]: %s", e.Field, e.Min, e.Max, e.Reason)
}

var validate = validator.New()

// Validate checks that every bound is non-negative and each min <= max.
func (t Threshold) Validate() error {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate threshold: %w", err)
	}

	fe := verrs[0]
	ierr := &InvalidThresholdError{Reason: reason(fe)}
	switch fe.StructField() {
	case "MinTitleWords", "MaxTitleWords":
		ierr.Field, ierr.Min, ierr.Max = FieldTitleWords, t.MinTitleWords, t.MaxTitleWords
	default:
		ierr.Field, ierr.Min, ierr.Max = FieldContentWords, t.MinContentWords, t.MaxContentWords
	}
	return ierr
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must not be negative", fe.StructField())
	case "gtefield":
		return fmt.Sprintf("%s is below %s", fe.StructField(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation '%s'", fe.StructField(), fe.Tag())
	}
}

// String renders the bounds as "title=[a,b] content=[c,d]".
func (t Threshold) String() string {
	return fmt.Sprintf("title=[%d,%d] content=[%d,%d]",
		t.MinTitleWords, t.MaxTitleWords, t.MinContentWords, t.MaxContentWords)
}

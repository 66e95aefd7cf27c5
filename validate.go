package sheetbind

// validate.go defines the record-validation collaborator boundary. The
// engine never interprets constraints itself: it hands each decoded record
// to a RecordValidator and folds the returned violations into per-row
// reports. The default implementation adapts go-playground/validator, so
// record types opt in with ordinary `validate` struct tags.

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Violation is a single field constraint failure reported by a
// RecordValidator.
type Violation struct {
	Field   string // programmatic field name on the record type
	Message string
}

// RecordValidator checks one populated record and returns its constraint
// violations in the order they were produced. A nil or empty slice means
// the record is valid. Implementations must be safe for concurrent use.
type RecordValidator interface {
	Validate(rec any) []Violation
}

// NewStructValidator returns the default RecordValidator, backed by
// go-playground/validator and its `validate` struct tags.
func NewStructValidator() RecordValidator {
	return &structValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

type structValidator struct {
	v *validator.Validate
}

func (s *structValidator) Validate(rec any) []Violation {
	err := s.v.Struct(rec)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		// Non-struct record types carry no tags to check.
		return nil
	}

	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return []Violation{{Message: err.Error()}}
	}

	out := make([]Violation, 0, len(ferrs))
	for _, fe := range ferrs {
		msg := fe.Tag()
		if p := fe.Param(); p != "" {
			msg += "=" + p
		}
		out = append(out, Violation{Field: fe.Field(), Message: msg})
	}
	return out
}

package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Ruleset configuration errors. They are returned by NewRuleset and LoadRuleset
// and are never produced while validating a Record.
var (
	// ErrEmptyRuleset is returned when a ruleset has no field rules.
	ErrEmptyRuleset = errors.New("ruleset has no field rules")

	// ErrInvalidField is returned when a field rule has no name.
	ErrInvalidField = errors.New("invalid field rule")

	// ErrDuplicateField is returned when two field rules share a name.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrUnknownCheckKind is returned for a check kind the engine does not know.
	ErrUnknownCheckKind = errors.New("unknown check kind")

	// ErrInvalidCheck is returned when a check is missing a parameter or has a bad one.
	ErrInvalidCheck = errors.New("invalid check parameters")

	// ErrInvalidPattern is returned when a pattern check does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// ValidationError is a single field failure.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is the error form of a failed Result, one entry per invalid field.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Get returns the message for field, or "" when the field is valid.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, err := range ve {
		fields = append(fields, err.Field)
	}
	return fields
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

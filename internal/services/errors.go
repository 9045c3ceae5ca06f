package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ErrRestaurantNotFound is returned when a restaurant id does not exist
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ValidationError carries the messages rendered in an {"errors": [...]} body
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a ValidationError from plain messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AsValidationError flattens ozzo validation errors into a ValidationError.
// Field errors become "<field> <message>" sorted by field name.
// Errors of any other kind are returned unchanged.
func AsValidationError(err error) error {
	if err == nil {
		return nil
	}

	var existing *ValidationError
	if errors.As(err, &existing) {
		return existing
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		if fieldErrs[field] == nil {
			continue
		}
		messages = append(messages, fmt.Sprintf("%s %s", field, fieldErrs[field].Error()))
	}
	return &ValidationError{Messages: messages}
}

package services

import (
	"errors"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every rejected field of a request payload.
type ValidationError struct {
	Fields []FieldError
}

func (err *ValidationError) Error() string {
	messages := make([]string, 0, len(err.Fields))
	for _, field := range err.Fields {
		messages = append(messages, field.Field+": "+field.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func (err *ValidationError) add(field string, message string) {
	err.Fields = append(err.Fields, FieldError{Field: field, Message: message})
}

// errOrNil keeps callers from returning a typed nil inside the error interface.
func (err *ValidationError) errOrNil() error {
	if len(err.Fields) == 0 {
		return nil
	}
	return err
}

func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

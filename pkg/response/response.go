// Package response defines the JSON error envelope returned by the API.
package response

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Error is the body of every non-2xx response.
type Error struct {
	Message string            `json:"error"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// ValidationError describes one field that failed request shape validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	EmptyRequestBody   = Error{Message: "empty request body"}
	InvalidRequestBody = Error{Message: "invalid request body"}
	MissingToken       = Error{Message: "missing authorization token"}
	InvalidToken       = Error{Message: "invalid or expired token"}
	ServerError        = Error{Message: "server error occurred"}
)

func NewError(msg string) Error {
	return Error{Message: msg}
}

// Validation builds the envelope for a failed validator.Struct call.
func Validation(err error) Error {
	return Error{
		Message: "validation error",
		Errors:  ValidationErrors(err),
	}
}

func ValidationErrors(err error) []ValidationError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	validationErrs := make([]ValidationError, 0, len(errs))
	for _, e := range errs {
		validationErrs = append(validationErrs, ValidationError{
			Field:   e.Field(),
			Message: messageForTag(e.Tag(), e.Param()),
		})
	}

	return validationErrs
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "email":
		return "invalid email"
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	default:
		return "invalid value"
	}
}

package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTable      = errors.New("unknown table")
	ErrUnknownField      = errors.New("unknown field")
	ErrFieldNotSortable  = errors.New("field is not sortable")
	ErrInvalidPageSize   = errors.New("invalid page size")
	ErrDuplicateField    = errors.New("duplicate field")
	ErrSessionNotFound   = errors.New("table session not found")
	ErrSourceUnavailable = errors.New("data source unavailable")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

const (
	CodeUnknownField    = "UNKNOWN_FIELD"
	CodeNotSortable     = "NOT_SORTABLE"
	CodeInvalidPageSize = "INVALID_PAGE_SIZE"
	CodeInvalidValue    = "INVALID_VALUE"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ValidationError, 0),
	}
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}

	return v.Errors[0].Message
}

func (v *ValidationErrors) Add(field, message, code string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ErrOrNil returns v only when it holds at least one error.
func (v *ValidationErrors) ErrOrNil() error {
	if v.HasErrors() {
		return v
	}

	return nil
}

// Unwrap exposes the sentinel behind each code so errors.Is works on the aggregate.
func (v *ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v.Errors))

	for _, e := range v.Errors {
		if sentinel, ok := codeSentinels[e.Code]; ok {
			errs = append(errs, sentinel)
		}
	}

	return errs
}

var codeSentinels = map[string]error{
	CodeUnknownField:    ErrUnknownField,
	CodeNotSortable:     ErrFieldNotSortable,
	CodeInvalidPageSize: ErrInvalidPageSize,
}

func unknownFieldMessage(field string) string {
	return fmt.Sprintf("%s: %q", ErrUnknownField, field)
}

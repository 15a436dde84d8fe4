//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

// ErrorResponseBuilder helps create REST error bodies with a fluent interface.
// By default it builds a flat error without field errors.
type ErrorResponseBuilder struct {
	*testkit.BaseBuilder
	message          *string
	errorCode        *string
	errorDescription *string
	fieldErrors      []entities.FieldError
}

// NewErrorResponseBuilder creates a new builder with sensible defaults.
func NewErrorResponseBuilder() *ErrorResponseBuilder {
	return &ErrorResponseBuilder{
		BaseBuilder:      testkit.NewBaseBuilder(),
		errorCode:        ptr("invalid_request"),
		errorDescription: ptr("the request is invalid"),
	}
}

// WithMessage sets the top-level message.
func (b *ErrorResponseBuilder) WithMessage(message string) *ErrorResponseBuilder {
	b.message = ptr(message)
	return b
}

// WithError sets the flat error code.
func (b *ErrorResponseBuilder) WithError(code string) *ErrorResponseBuilder {
	b.errorCode = ptr(code)
	return b
}

// WithErrorDescription sets the flat error description.
func (b *ErrorResponseBuilder) WithErrorDescription(description string) *ErrorResponseBuilder {
	b.errorDescription = ptr(description)
	return b
}

// WithoutFlatError clears error and error description.
func (b *ErrorResponseBuilder) WithoutFlatError() *ErrorResponseBuilder {
	b.errorCode = nil
	b.errorDescription = nil
	return b
}

// WithFieldError appends a structured field error.
func (b *ErrorResponseBuilder) WithFieldError(resource, field, code, message string) *ErrorResponseBuilder {
	b.fieldErrors = append(b.fieldErrors, entities.FieldError{
		Resource: resource,
		Field:    ptr(field),
		Code:     code,
		Message:  ptr(message),
	})
	return b
}

// WithEmptyFieldErrors marks the field errors list as present but empty.
func (b *ErrorResponseBuilder) WithEmptyFieldErrors() *ErrorResponseBuilder {
	b.fieldErrors = []entities.FieldError{}
	return b
}

// Build creates the response (satisfies testkit.Builder interface).
func (b *ErrorResponseBuilder) Build() interface{} {
	return b.BuildErrorResponse()
}

// BuildErrorResponse creates the response with a concrete return type.
func (b *ErrorResponseBuilder) BuildErrorResponse() *entities.ErrorResponse {
	var fieldErrors []entities.FieldError
	if b.fieldErrors != nil {
		fieldErrors = append([]entities.FieldError{}, b.fieldErrors...)
	}
	return &entities.ErrorResponse{
		Message:          b.message,
		Error:            b.errorCode,
		ErrorDescription: b.errorDescription,
		Errors:           fieldErrors,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ErrorResponseBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.message = nil
	b.errorCode = ptr("invalid_request")
	b.errorDescription = ptr("the request is invalid")
	b.fieldErrors = nil
	return b
}

// Clone creates a deep copy of the ErrorResponseBuilder.
func (b *ErrorResponseBuilder) Clone() testkit.Builder {
	var fieldErrors []entities.FieldError
	if b.fieldErrors != nil {
		fieldErrors = append([]entities.FieldError{}, b.fieldErrors...)
	}
	return &ErrorResponseBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		message:          b.message,
		errorCode:        b.errorCode,
		errorDescription: b.errorDescription,
		fieldErrors:      fieldErrors,
	}
}

func ptr(s string) *string {
	return &s
}

package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorResponse is the body of a failed REST call. The server fills either
// Errors (structured, per field) or Error/ErrorDescription (flat); Errors wins
// when both are present. A nil Errors slice means the field was absent.
type ErrorResponse struct {
	Message          *string      `json:"message,omitempty"`
	Error            *string      `json:"error,omitempty"`
	ErrorDescription *string      `json:"errorDescription,omitempty"`
	Errors           []FieldError `json:"errors"`
}

// FieldError is one structured entry of an ErrorResponse.
// Resource and Code are mandatory on the wire.
type FieldError struct {
	Resource string  `json:"resource"`
	Field    *string `json:"field,omitempty"`
	Code     string  `json:"code"`
	Message  *string `json:"message,omitempty"`
}

// ParseErrorResponse decodes a JSON error body.
func ParseErrorResponse(body []byte) (*ErrorResponse, error) {
	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, NewParseError("failed to decode error response", err)
	}
	return &response, nil
}

// UnmarshalJSON also accepts the OAuth spelling "error_description".
func (r *ErrorResponse) UnmarshalJSON(data []byte) error {
	type plain ErrorResponse
	var decoded struct {
		plain
		SnakeErrorDescription *string `json:"error_description"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*r = ErrorResponse(decoded.plain)
	if r.ErrorDescription == nil {
		r.ErrorDescription = decoded.SnakeErrorDescription
	}
	return nil
}

// HasFieldErrors reports whether the structured errors list was sent.
func (r *ErrorResponse) HasFieldErrors() bool {
	return r.Errors != nil
}

// PresentableError renders the response for the end user.
func (r *ErrorResponse) PresentableError() string {
	if !r.HasFieldErrors() {
		return "[" + valueOf(r.Error) + "] " + valueOf(r.ErrorDescription)
	}

	var builder strings.Builder
	builder.WriteString(valueOf(r.Message))
	for _, fieldError := range r.Errors {
		builder.WriteString("\n")
		builder.WriteString(fieldError.String())
	}
	return builder.String()
}

// ContainsReasonMessage reports whether the top-level message contains reason.
func (r *ErrorResponse) ContainsReasonMessage(reason string) bool {
	return r.Message != nil && strings.Contains(*r.Message, reason)
}

// ContainsErrorCode reports whether any field error code contains code.
func (r *ErrorResponse) ContainsErrorCode(code string) bool {
	for _, fieldError := range r.Errors {
		if strings.Contains(fieldError.Code, code) {
			return true
		}
	}
	return false
}

// ContainsErrorMessage searches the flat error and description, or, when
// field errors are present, their codes. Field messages are not searched.
func (r *ErrorResponse) ContainsErrorMessage(message string) bool {
	if !r.HasFieldErrors() {
		if r.Error != nil && strings.Contains(*r.Error, message) {
			return true
		}
		return r.ErrorDescription != nil && strings.Contains(*r.ErrorDescription, message)
	}
	return r.ContainsErrorCode(message)
}

func (e FieldError) String() string {
	return fmt.Sprintf("[%s; %s]%s: %s", e.Resource, valueOf(e.Field), e.Code, valueOf(e.Message))
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

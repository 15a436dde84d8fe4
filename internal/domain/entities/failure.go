package entities

import (
	"context"
	"errors"
	"net/http"
)

// FailureKind tags every failure a REST call can end with.
type FailureKind int

const (
	KindUnknown FailureKind = iota
	KindAuthentication
	KindOperationCanceled
	KindConfusing
	KindStatusCode
	KindParse
	KindRateLimited
	KindTokenExpired
)

func (k FailureKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindOperationCanceled:
		return "operation canceled"
	case KindConfusing:
		return "confusing"
	case KindStatusCode:
		return "status code"
	case KindParse:
		return "parse"
	case KindRateLimited:
		return "rate limited"
	case KindTokenExpired:
		return "token expired"
	default:
		return "unknown"
	}
}

// Failure is implemented by every typed failure below. Callers switch on Kind
// or use errors.As with the concrete type.
type Failure interface {
	error
	Kind() FailureKind
}

// AuthenticationError means the credentials were rejected or missing.
type AuthenticationError struct {
	Message string
	Cause   error
}

func NewAuthenticationError(message string, cause error) *AuthenticationError {
	return &AuthenticationError{Message: message, Cause: cause}
}

func (e *AuthenticationError) Error() string     { return messageOrCause(e.Message, e.Cause) }
func (e *AuthenticationError) Unwrap() error     { return e.Cause }
func (e *AuthenticationError) Kind() FailureKind { return KindAuthentication }

// TokenExpiredError means the access token is expired, missing or unknown to the server.
type TokenExpiredError struct {
	Message string
}

func NewTokenExpiredError(message string) *TokenExpiredError {
	return &TokenExpiredError{Message: message}
}

func (e *TokenExpiredError) Error() string     { return e.Message }
func (e *TokenExpiredError) Kind() FailureKind { return KindTokenExpired }

// RateLimitError means the server refused the call because of its rate limit.
type RateLimitError struct {
	Message string
}

func NewRateLimitError(message string) *RateLimitError {
	return &RateLimitError{Message: message}
}

func (e *RateLimitError) Error() string     { return e.Message }
func (e *RateLimitError) Kind() FailureKind { return KindRateLimited }

// OperationCanceledError means the caller aborted the call. It is never retried.
type OperationCanceledError struct {
	Cause error
}

func NewOperationCanceledError(cause error) *OperationCanceledError {
	return &OperationCanceledError{Cause: cause}
}

func (e *OperationCanceledError) Error() string {
	if e.Cause == nil {
		return "operation canceled"
	}
	return "operation canceled: " + e.Cause.Error()
}

func (e *OperationCanceledError) Unwrap() error     { return e.Cause }
func (e *OperationCanceledError) Kind() FailureKind { return KindOperationCanceled }

// ConfusingError is a response that did not match what the protocol promised.
// Details, when set, is prepended to the message separated by a blank line.
type ConfusingError struct {
	Details string
	Message string
	Cause   error
}

func NewConfusingError(message string, cause error) *ConfusingError {
	return &ConfusingError{Message: message, Cause: cause}
}

// WithDetails returns a copy carrying the given context.
func (e *ConfusingError) WithDetails(details string) *ConfusingError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *ConfusingError) Error() string {
	message := messageOrCause(e.Message, e.Cause)
	if e.Details == "" {
		return message
	}
	return e.Details + "\n\n" + message
}

func (e *ConfusingError) Unwrap() error     { return e.Cause }
func (e *ConfusingError) Kind() FailureKind { return KindConfusing }

// StatusCodeError is a ConfusingError carrying the HTTP status and the decoded
// body, when the body could be decoded.
type StatusCodeError struct {
	ConfusingError
	StatusCode int
	Response   *ErrorResponse
}

func NewStatusCodeError(message string, statusCode int, response *ErrorResponse) *StatusCodeError {
	return &StatusCodeError{
		ConfusingError: ConfusingError{Message: message},
		StatusCode:     statusCode,
		Response:       response,
	}
}

// WithDetails returns a copy carrying the given context.
func (e *StatusCodeError) WithDetails(details string) *StatusCodeError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *StatusCodeError) Kind() FailureKind { return KindStatusCode }

// As lets errors.As match a StatusCodeError against *ConfusingError.
func (e *StatusCodeError) As(target any) bool {
	if confusing, ok := target.(**ConfusingError); ok {
		*confusing = &e.ConfusingError
		return true
	}
	return false
}

// ParseError means a response body could not be decoded at all.
type ParseError struct {
	Message string
	Cause   error
}

func NewParseError(message string, cause error) *ParseError {
	return &ParseError{Message: message, Cause: cause}
}

func (e *ParseError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *ParseError) Unwrap() error     { return e.Cause }
func (e *ParseError) Kind() FailureKind { return KindParse }

// KindOf returns the kind of the first Failure in err's chain. A bare
// context.Canceled counts as KindOperationCanceled.
func KindOf(err error) FailureKind {
	if err == nil {
		return KindUnknown
	}
	var failure Failure
	if errors.As(err, &failure) {
		return failure.Kind()
	}
	if errors.Is(err, context.Canceled) {
		return KindOperationCanceled
	}
	return KindUnknown
}

// IsAuthenticationFailure reports whether err asks for new credentials.
func IsAuthenticationFailure(err error) bool {
	kind := KindOf(err)
	return kind == KindAuthentication || kind == KindTokenExpired
}

// IsRetryable reports whether repeating the same call could succeed.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindRateLimited:
		return true
	case KindStatusCode:
		var statusErr *StatusCodeError
		if !errors.As(err, &statusErr) {
			return false
		}
		return statusErr.StatusCode >= http.StatusInternalServerError ||
			statusErr.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}

func messageOrCause(message string, cause error) string {
	if message == "" && cause != nil {
		return cause.Error()
	}
	return message
}

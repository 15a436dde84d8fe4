//go:build unit

package entities_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

func TestConfusingError(t *testing.T) {
	t.Parallel()

	t.Run("should prepend details separated by a blank line", func(t *testing.T) {
		t.Parallel()

		// given
		err := entities.NewConfusingError("boom", nil).WithDetails("ctx")

		// when
		message := err.Error()

		// then
		assert.Equal(t, "ctx\n\nboom", message)
	})

	t.Run("should render only the message without details", func(t *testing.T) {
		t.Parallel()

		// given
		err := entities.NewConfusingError("boom", nil)

		// when / then
		assert.Equal(t, "boom", err.Error())
	})

	t.Run("should compose details with the cause message", func(t *testing.T) {
		t.Parallel()

		// given
		err := entities.NewConfusingError("", errors.New("boom")).WithDetails("ctx")

		// when / then
		assert.Equal(t, "ctx\n\nboom", err.Error())
	})

	t.Run("should fall back to the cause message", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("unexpected EOF")
		err := entities.NewConfusingError("", cause)

		// when / then
		assert.Equal(t, "unexpected EOF", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("should not change the original when adding details", func(t *testing.T) {
		t.Parallel()

		// given
		original := entities.NewConfusingError("boom", nil)

		// when
		detailed := original.WithDetails("ctx")

		// then
		assert.Empty(t, original.Details)
		assert.Equal(t, "ctx", detailed.Details)
	})
}

func TestStatusCodeError(t *testing.T) {
	t.Parallel()

	t.Run("should be matched as a confusing error", func(t *testing.T) {
		t.Parallel()

		// given
		err := fmt.Errorf("wrapped: %w",
			entities.NewStatusCodeError("500 Internal Server Error - oops", http.StatusInternalServerError, nil).
				WithDetails("Can't create bug"))

		// when
		var confusing *entities.ConfusingError
		matched := errors.As(err, &confusing)

		// then
		require.True(t, matched)
		assert.Equal(t, "Can't create bug", confusing.Details)
		assert.Equal(t, "500 Internal Server Error - oops", confusing.Message)
	})

	t.Run("should keep status code and response", func(t *testing.T) {
		t.Parallel()

		// given
		message := "Validation Failed"
		response := &entities.ErrorResponse{Message: &message}
		err := error(entities.NewStatusCodeError("422 Unprocessable Entity", http.StatusUnprocessableEntity, response))

		// when
		var statusErr *entities.StatusCodeError
		matched := errors.As(err, &statusErr)

		// then
		require.True(t, matched)
		assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
		assert.Same(t, response, statusErr.Response)
		assert.Equal(t, "422 Unprocessable Entity", err.Error())
	})
}

func TestOperationCanceledError(t *testing.T) {
	t.Parallel()

	t.Run("should render with and without cause", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Equal(t, "operation canceled", entities.NewOperationCanceledError(nil).Error())
		assert.Equal(t, "operation canceled: context canceled",
			entities.NewOperationCanceledError(context.Canceled).Error())
	})

	t.Run("should unwrap to the context error", func(t *testing.T) {
		t.Parallel()

		// given
		err := entities.NewOperationCanceledError(context.Canceled)

		// when / then
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected entities.FailureKind
	}{
		{name: "should return unknown for nil", err: nil, expected: entities.KindUnknown},
		{name: "should return unknown for plain errors", err: errors.New("x"), expected: entities.KindUnknown},
		{
			name:     "should classify authentication",
			err:      entities.NewAuthenticationError("bad", nil),
			expected: entities.KindAuthentication,
		},
		{name: "should classify token expiry", err: entities.NewTokenExpiredError("expired"), expected: entities.KindTokenExpired},
		{name: "should classify rate limit", err: entities.NewRateLimitError("slow down"), expected: entities.KindRateLimited},
		{name: "should classify parse", err: entities.NewParseError("bad json", nil), expected: entities.KindParse},
		{name: "should classify confusing", err: entities.NewConfusingError("odd", nil), expected: entities.KindConfusing},
		{
			name:     "should classify status code before confusing",
			err:      entities.NewStatusCodeError("500", http.StatusInternalServerError, nil),
			expected: entities.KindStatusCode,
		},
		{
			name:     "should classify wrapped failures",
			err:      fmt.Errorf("outer: %w", entities.NewOperationCanceledError(nil)),
			expected: entities.KindOperationCanceled,
		},
		{
			name:     "should classify a bare context cancellation",
			err:      fmt.Errorf("outer: %w", context.Canceled),
			expected: entities.KindOperationCanceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			kind := entities.KindOf(tt.err)

			// then
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "should retry rate limits", err: entities.NewRateLimitError("slow down"), expected: true},
		{
			name:     "should retry server errors",
			err:      entities.NewStatusCodeError("503", http.StatusServiceUnavailable, nil),
			expected: true,
		},
		{
			name:     "should retry too many requests",
			err:      entities.NewStatusCodeError("429", http.StatusTooManyRequests, nil),
			expected: true,
		},
		{
			name:     "should not retry client errors",
			err:      entities.NewStatusCodeError("422", http.StatusUnprocessableEntity, nil),
			expected: false,
		},
		{name: "should not retry cancellation", err: entities.NewOperationCanceledError(nil), expected: false},
		{name: "should not retry authentication", err: entities.NewAuthenticationError("bad", nil), expected: false},
		{name: "should not retry nil", err: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when / then
			assert.Equal(t, tt.expected, entities.IsRetryable(tt.err))
		})
	}
}

func TestIsAuthenticationFailure(t *testing.T) {
	t.Parallel()

	t.Run("should accept authentication and token failures", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.True(t, entities.IsAuthenticationFailure(entities.NewAuthenticationError("bad", nil)))
		assert.True(t, entities.IsAuthenticationFailure(entities.NewTokenExpiredError("expired")))
		assert.False(t, entities.IsAuthenticationFailure(entities.NewRateLimitError("slow down")))
		assert.False(t, entities.IsAuthenticationFailure(errors.New("x")))
	})
}

func TestFailureKindString(t *testing.T) {
	t.Parallel()

	t.Run("should name every kind", func(t *testing.T) {
		t.Parallel()

		// given / when / then
		assert.Equal(t, "status code", entities.KindStatusCode.String())
		assert.Equal(t, "token expired", entities.KindTokenExpired.String())
		assert.Equal(t, "unknown", entities.FailureKind(99).String())
	})
}

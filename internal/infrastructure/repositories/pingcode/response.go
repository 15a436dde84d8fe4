package pingcode

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

var (
	rateLimitReasons = []string{
		"Application has exceeded the rate limit",
		"API rate limit exceeded",
	}
	tokenExpiredReasons = []string{
		"Access token is expired",
		"Access token is required",
		"Access token does not exist",
	}
)

const invalidGrantReason = "invalid_grant"

// checkResponse turns a status >= 400 into a typed failure.
func checkResponse(req *http.Request, resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	statusLine := fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	errorText := readErrorText(resp)
	logger.Infof("Request: %s %s: error %s body:\n%s", req.Method, req.URL, statusLine, errorText)

	jsonError := decodeJSONError(resp.Header.Get("Content-Type"), errorText)
	if jsonError == nil {
		logger.Warnf("Request: %s %s: unable to parse JSON error", req.Method, req.URL)
	}

	switch resp.StatusCode {
	case http.StatusNotFound,
		http.StatusUnauthorized,
		http.StatusPaymentRequired,
		http.StatusForbidden:
		return classifyAuthFailure(jsonError, errorText, statusLine)
	default:
		if jsonError != nil {
			return entities.NewStatusCodeError(
				statusLine+" - "+jsonError.PresentableError(), resp.StatusCode, jsonError,
			)
		}
		return entities.NewStatusCodeError(statusLine+" - "+errorText, resp.StatusCode, nil)
	}
}

func classifyAuthFailure(jsonError *entities.ErrorResponse, errorText, statusLine string) error {
	if jsonError != nil {
		if containsAnyReason(jsonError, rateLimitReasons) {
			return entities.NewRateLimitError(valueOrEmpty(jsonError.Message))
		}
		if containsAnyReason(jsonError, tokenExpiredReasons) {
			return entities.NewTokenExpiredError(valueOrEmpty(jsonError.Message))
		}
		if jsonError.ContainsReasonMessage(invalidGrantReason) {
			return entities.NewAuthenticationError(jsonError.PresentableError(), nil)
		}
		return entities.NewAuthenticationError("Request response: "+jsonError.PresentableError(), nil)
	}

	if errorText != "" {
		return entities.NewAuthenticationError("Request response: "+errorText, nil)
	}
	return entities.NewAuthenticationError("Request response: "+statusLine, nil)
}

func containsAnyReason(jsonError *entities.ErrorResponse, reasons []string) bool {
	for _, reason := range reasons {
		if jsonError.ContainsReasonMessage(reason) {
			return true
		}
	}
	return false
}

// readErrorText reads the error body; the transport already gunzips it.
func readErrorText(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warnf("Failed to read error body: %v", err)
		return ""
	}
	return string(data)
}

func decodeJSONError(contentType, errorText string) *entities.ErrorResponse {
	if !strings.HasPrefix(contentType, jsonMimeType) {
		return nil
	}
	jsonError, err := entities.ParseErrorResponse([]byte(errorText))
	if err != nil {
		logger.Warn(err)
		return nil
	}
	return jsonError
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

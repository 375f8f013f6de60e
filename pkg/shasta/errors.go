package shasta

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the Shasta API. The raw body
// is retained so callers can inspect payloads the client does not model.
type APIError struct {
	StatusCode int    `json:"status"              yaml:"status"`
	Message    string `json:"message"             yaml:"message"`
	RequestID  string `json:"requestId,omitempty" yaml:"requestId,omitempty"`
	Body       []byte `json:"-"                   yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("shasta API error (status %d): %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("shasta API error (status %d): %s", e.StatusCode, string(e.Body))
}

// RetryExhaustedError is returned when every attempt was rate limited and
// the retry budget ran out.
type RetryExhaustedError struct {
	Attempts   int
	LastStatus int
}

// Error implements the error interface.
func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("giving up after %d attempts due to rate limiting (last status %d)", e.Attempts, e.LastStatus)
}

// Static errors for configuration validation.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrAccessTokenRequired = errors.New("access token is required")
	ErrOrgIDRequired       = errors.New("MSP organization ID is required")
	ErrSkipTLSOnlyInDev    = errors.New("skipTLSVerify is only allowed in development environments")
)

// ParseAPIError builds an APIError from a failed response. Bodies that are
// not the documented {"message": ..., "requestId": ...} shape are kept raw.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	// Best effort: the error envelope is not guaranteed for every endpoint.
	_ = json.Unmarshal(body, apiErr)
	apiErr.StatusCode = statusCode

	return apiErr
}

// IsNotFound checks whether the error is a not-found response.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsRateLimited checks whether the error is a rate-limit response. The
// client only surfaces these once the retry budget is exhausted, so this
// matches RetryExhaustedError as well as a raw 429 APIError.
func IsRateLimited(err error) bool {
	retryErr := &RetryExhaustedError{}
	if errors.As(err, &retryErr) {
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// IsRetryExhausted checks whether the error reports an exhausted retry
// budget.
func IsRetryExhausted(err error) bool {
	retryErr := &RetryExhaustedError{}

	return errors.As(err, &retryErr)
}

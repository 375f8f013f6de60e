package shasta_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shasta-io/shasta/pkg/shasta"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	t.Run("structured error body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"message": "Venue not found", "requestId": "req-9"}`)
		apiErr := shasta.ParseAPIError(http.StatusNotFound, body)

		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Venue not found", apiErr.Message)
		assert.Equal(t, "req-9", apiErr.RequestID)
		assert.Contains(t, apiErr.Error(), "Venue not found")
	})

	t.Run("unstructured body is kept raw", func(t *testing.T) {
		t.Parallel()

		body := []byte("service unavailable")
		apiErr := shasta.ParseAPIError(http.StatusBadGateway, body)

		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Empty(t, apiErr.Message)
		assert.Equal(t, body, apiErr.Body)
		assert.Contains(t, apiErr.Error(), "service unavailable")
	})

	t.Run("status in body cannot override response status", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"status": 200, "message": "nope"}`)
		apiErr := shasta.ParseAPIError(http.StatusForbidden, body)

		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := shasta.ParseAPIError(http.StatusNotFound, nil)
	rateLimited := shasta.ParseAPIError(http.StatusTooManyRequests, nil)
	exhausted := &shasta.RetryExhaustedError{Attempts: 6, LastStatus: http.StatusTooManyRequests}

	assert.True(t, shasta.IsNotFound(notFound))
	assert.False(t, shasta.IsNotFound(rateLimited))

	assert.True(t, shasta.IsRateLimited(rateLimited))
	assert.True(t, shasta.IsRateLimited(exhausted))
	assert.False(t, shasta.IsRateLimited(notFound))

	assert.True(t, shasta.IsRetryExhausted(exhausted))
	assert.False(t, shasta.IsRetryExhausted(rateLimited))

	assert.False(t, shasta.IsNotFound(errors.New("plain")))
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("deleting venue: %w", shasta.ParseAPIError(http.StatusNotFound, nil))
	assert.True(t, shasta.IsNotFound(wrapped))

	wrappedExhausted := fmt.Errorf("listing venues: %w", &shasta.RetryExhaustedError{Attempts: 6})
	assert.True(t, shasta.IsRetryExhausted(wrappedExhausted))

	retryErr := &shasta.RetryExhaustedError{}
	require.ErrorAs(t, wrappedExhausted, &retryErr)
	assert.Equal(t, 6, retryErr.Attempts)
}

func TestRetryExhaustedError_Message(t *testing.T) {
	t.Parallel()

	err := &shasta.RetryExhaustedError{Attempts: 6, LastStatus: http.StatusTooManyRequests}
	assert.Contains(t, err.Error(), "6 attempts")
	assert.Contains(t, err.Error(), "429")
}

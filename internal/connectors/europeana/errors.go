package europeana

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// Europeana-specific errors.
var (
	// ErrMissingAPIKey indicates no wskey is configured.
	ErrMissingAPIKey = errors.New("europeana: api key is required")

	// ErrMissingProvider indicates no data provider is configured.
	ErrMissingProvider = errors.New("europeana: data provider is required")

	// ErrInvalidBaseURL indicates the search endpoint is not an absolute URL.
	ErrInvalidBaseURL = errors.New("europeana: invalid base url")

	// ErrInvalidResponse indicates the response body is not a search response.
	ErrInvalidResponse = errors.New("europeana: invalid response")
)

// RateLimitError represents a 429 response.
type RateLimitError struct {
	RetryAt time.Time
	URL     string
}

func (e *RateLimitError) Error() string {
	if e.RetryAt.IsZero() {
		return fmt.Sprintf("europeana: rate limit exceeded (URL: %s)", e.URL)
	}
	return fmt.Sprintf("europeana: rate limit exceeded, retry at %s (URL: %s)", e.RetryAt.Format(time.RFC3339), e.URL)
}

// Unwrap lets errors.Is match domain.ErrRateLimited.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// APIError represents a failed search request.
// URL never contains the API key.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("europeana: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap maps authentication failures onto domain.ErrAuthRequired.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return domain.ErrAuthRequired
	}
	return nil
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates a rejected API key.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsNotFound checks if the error indicates the endpoint was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

package europeana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/custodia-labs/artgraph/internal/logger"
)

const (
	// UserAgent identifies artgraph to the API.
	UserAgent = "artgraph"

	// MaxResponseBytes bounds the size of a response body.
	MaxResponseBytes = 32 << 20
)

// Client performs search requests with rate limiting.
type Client struct {
	http        *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a client for cfg. A nil httpClient gets a default
// client with cfg's timeout.
func NewClient(cfg *Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		http:        httpClient,
		rateLimiter: NewRateLimiter(cfg.RateLimit),
	}
}

// Search issues a GET for searchURL and decodes the response.
// It does not retry: a failed request returns its error to the caller.
func (c *Client) Search(ctx context.Context, searchURL string) (*SearchResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	logger.Debug("GET %s", redactKey(searchURL))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", redactKey(searchURL), scrubURLError(err))
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckRateLimit(resp, searchURL); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp, body),
			URL:        redactKey(searchURL),
		}
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "request unsuccessful"
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg, URL: redactKey(searchURL)}
	}

	return &result, nil
}

// errorMessage prefers the API's own error text over the status text.
func errorMessage(resp *http.Response, body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(resp.Status)
}

// scrubURLError removes the request URL from transport errors so the key
// does not leak into messages.
func scrubURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

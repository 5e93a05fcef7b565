package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/handiism/albums-tui/internal/logging"
)

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "albums-tui"

// Client wraps HTTP operations with album API configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Bearer token authentication
//   - A fresh X-Request-ID per request, echoed in the operational log
//   - Timeout handling
//   - JSON request/response helpers
//
// Example usage:
//
//	client := NewClient(Options{Token: token, Timeout: 30 * time.Second})
//
//	var albums []dto.JSONAlbum
//	err := client.GetJSON(ctx, "https://photos.example.com/api/albums", &albums)
type Client struct {
	httpClient *http.Client
	userAgent  string
	token      string
	log        *logging.Logger
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	// Timeout bounds each request. Defaults to 60 seconds.
	Timeout time.Duration

	// UserAgent overrides DefaultUserAgent.
	UserAgent string

	// Token is sent as "Authorization: Bearer <token>" when non-empty.
	Token string

	// Logger receives one entry per request. Defaults to a no-op logger.
	Logger *logging.Logger

	// Transport replaces the default round tripper, mostly for tests.
	Transport http.RoundTripper
}

// NewClient creates a new HTTP client.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		userAgent: opts.UserAgent,
		token:     opts.Token,
		log:       opts.Logger,
	}
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 2xx (a *StatusError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, nil, "")
}

// GetJSON performs a GET request and decodes the JSON response into v.
func (c *Client) GetJSON(ctx context.Context, url string, v interface{}) error {
	body, err := c.do(ctx, http.MethodGet, url, nil, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}

// PostJSON sends in as a JSON body and decodes the JSON response into out.
//
// out may be nil when the response body is not needed.
func (c *Client) PostJSON(ctx context.Context, url string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, url, payload, "application/json")
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", url, err)
	}
	return nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like cover images.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte, accept string) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.HTTPRequest(method, url, requestID, 0, time.Since(start), err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Code: resp.StatusCode, Status: resp.Status}
		c.log.HTTPRequest(method, url, requestID, resp.StatusCode, time.Since(start), statusErr)
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	c.log.HTTPRequest(method, url, requestID, resp.StatusCode, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return body, nil
}

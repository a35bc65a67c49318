// Package apiclient is the HTTP client for the FundiConnect platform API.
//
// Every endpoint returns a uniform envelope {success, data?, message?,
// errors?}; application failures (4xx/5xx) decode into the envelope and
// surface as *APIError rather than bare status codes. Only transport
// faults (DNS, timeouts, malformed bodies) escalate as plain errors.
//
// The client is safe for concurrent use. Calls are paced by a client-side
// rate limiter so bursty dashboard refreshes cannot hammer the platform.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
	DefaultRateBurst = 5
	defaultUserAgent = "fundictl"
)

// ErrNoBaseURL is returned by New when the API base URL is missing.
var ErrNoBaseURL = errors.New("api base url is required")

// Config configures a Client.
type Config struct {
	// BaseURL is the platform API root, e.g. "https://api.fundiconnect.co.ke/api/v1".
	// Required.
	BaseURL string

	// Token is the bearer token for authenticated calls. Optional; public
	// endpoints (job discovery, login) work without it.
	Token string

	// Timeout bounds each request. Default: DefaultTimeout.
	Timeout time.Duration

	// RateLimit and RateBurst pace outgoing requests. Defaults:
	// DefaultRateLimit / DefaultRateBurst.
	RateLimit float64
	RateBurst int

	// UserAgent overrides the User-Agent header. Optional.
	UserAgent string

	// HTTPClient overrides the underlying http.Client (tests). Optional.
	HTTPClient *http.Client
}

// Client talks to the FundiConnect platform API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string

	// mu guards token: SetToken races with in-flight requests when the
	// client is shared with the serve-mode refresh goroutine.
	mu    sync.RWMutex
	token string
}

// New creates a Client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrNoBaseURL
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url: unsupported scheme %q", base.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = DefaultRateBurst
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		token:     cfg.Token,
		limiter:   rate.NewLimiter(rate.Limit(limit), burst),
		userAgent: ua,
	}, nil
}

// SetToken replaces the bearer token, e.g. after login.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// bearerToken returns the current token under the read lock.
func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Envelope is the uniform response wrapper every platform endpoint emits.
type Envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// get issues a GET and decodes the envelope data payload into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post issues a POST with a JSON body and decodes the data payload into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// patch issues a PATCH with a JSON body and decodes the data payload into out.
func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeEnvelope(resp, out)
}

// newRequest builds a request with the standard headers: bearer token when
// present, a fresh correlation ID, and the client user agent.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// decodeEnvelope reads a response, enforces envelope semantics, and
// unmarshals the data payload into out (ignored when out is nil).
func decodeEnvelope(resp *http.Response, out any) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Non-envelope body (proxy error page, etc.) is a transport-level
		// fault, reported with the status for operator context.
		return fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Fields:     env.Errors,
		}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

const maxResponseBytes = 8 << 20

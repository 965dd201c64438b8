package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/teemow/daybook/internal/session"
)

const (
	// apiPrefix is the fixed path prefix every backend route lives under.
	apiPrefix = "/api"

	// defaultTimeout bounds a single request including body read. The
	// core performs no retries, so a hung request would otherwise block
	// the calling flow indefinitely.
	defaultTimeout = 30 * time.Second
)

// Recorder records request metrics. It is implemented by
// instrumentation.Metrics; the indirection keeps this package free of
// the OpenTelemetry dependency.
type Recorder interface {
	RecordRequest(ctx context.Context, method, path string, status int, duration time.Duration)
}

// Client is the single configured HTTP client all backend traffic goes
// through. It resolves a base origin from the deployment target and
// attaches the session bearer token to every request that has one.
//
// The client does not retry, cache or deduplicate requests; each call
// is independent.
type Client struct {
	httpClient *http.Client
	baseURL    string
	store      *session.Store
	logger     *slog.Logger
	recorder   Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithTarget resolves the base origin from a deployment target.
func WithTarget(target string) Option {
	return func(c *Client) {
		c.baseURL = BaseURLForTarget(target)
	}
}

// WithBaseURL overrides the base origin directly, bypassing target
// resolution. Used for tests and ad-hoc deployments.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its transport is
// still wrapped with the token-attaching stage.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRecorder sets the metrics recorder for request instrumentation.
func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

// NewClient creates the request dispatcher. The session store is read
// before every outgoing request; it is never written by this package.
func NewClient(store *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: BaseURLForTarget(DefaultTarget),
		store:   store,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.httpClient.Transport = &sessionTransport{base: base, store: store}

	return c
}

// BaseURL returns the resolved backend origin (without the /api prefix).
func (c *Client) BaseURL() string {
	return c.baseURL
}

// sessionTransport attaches the bearer token from the session store to
// every request that has one. Requests without a token proceed
// unauthenticated.
type sessionTransport struct {
	base  http.RoundTripper
	store *session.Store
}

// RoundTrip implements http.RoundTripper
func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, ok := t.store.Token(); ok {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(req)
}

// Do issues a JSON request against the backend. path is relative to the
// fixed /api prefix (e.g. "/todos" or "/todos/abc123"). body, when
// non-nil, is marshaled as the JSON request body. out, when non-nil,
// receives the decoded JSON response body.
//
// Error mapping:
//   - no response obtained: *TransportError
//   - non-2xx status: *ResourceError with the server-supplied message
//   - undecodable 2xx body: *MalformedResponseError
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.record(ctx, method, path, 0, duration)
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.record(ctx, method, path, resp.StatusCode, duration)
	c.logger.Debug("request completed",
		"method", method, "path", path, "status", resp.StatusCode, "duration", duration)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ResourceError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &MalformedResponseError{Err: err}
	}
	return nil
}

func (c *Client) record(ctx context.Context, method, path string, status int, duration time.Duration) {
	if c.recorder == nil {
		return
	}
	c.recorder.RecordRequest(ctx, method, path, status, duration)
}

// serverMessage extracts the backend's {"message": ...} error body.
// Anything else yields an empty message; callers fall back to a generic
// status-based description.
func serverMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Message
}

// Package client is the REST client for the congregation-management
// backend. Read paths fall back to the reactive cache when the server
// is unreachable; write paths always propagate errors and never apply
// state speculatively.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/flockhq/flock/pkg/cache"
	"github.com/flockhq/flock/pkg/otelhelper"
)

// ErrNotCached is returned when a request fails and no cached copy of
// the collection exists.
var ErrNotCached = errors.New("request failed and collection not cached")

// Client talks to the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCache attaches a reactive cache used as the read-path fallback.
func WithCache(cache *cache.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTracer attaches an OpenTelemetry tracer. Each request becomes a
// span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		// No client-side deadline: callers bound requests with ctx, and
		// the transport's defaults apply otherwise.
		httpClient: &http.Client{},
		logger:     slog.Default(),
		tracer:     noop.NewTracerProvider().Tracer("client"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// getCollection fetches a read path, caching the decoded payload under
// collection and falling back to the cached copy on failure.
func (c *Client) getCollection(ctx context.Context, path, collection string, out any) error {
	err := c.do(ctx, http.MethodGet, path, nil, out)
	if err == nil {
		if c.cache != nil {
			if cacheErr := c.cache.Set(collection, out); cacheErr != nil {
				c.logger.WarnContext(ctx, "failed to cache collection",
					"collection", collection, "error", cacheErr)
			}
		}

		return nil
	}

	// Server errors on data we have a copy of should not blank the UI.
	if c.cache != nil && c.cache.Get(collection, out) {
		c.logger.WarnContext(ctx, "serving collection from cache",
			"collection", collection, "error", err)

		return nil
	}

	return fmt.Errorf("%w: %w", ErrNotCached, err)
}

// do performs one request and decodes the response into out, which may
// be nil when no body is expected.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	ctx, span := otelhelper.StartSpan(ctx, c.tracer, method+" "+path,
		attribute.String(otelhelper.MethodKey, method),
		attribute.String(otelhelper.EndpointKey, path),
	)
	defer span.End()

	var body io.Reader

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			otelhelper.SetError(span, err)

			return fmt.Errorf("failed to encode request body: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		otelhelper.SetError(span, err)

		return fmt.Errorf("failed to build request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		otelhelper.SetError(span, err)

		return fmt.Errorf("request failed: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		otelhelper.SetError(span, err)

		return fmt.Errorf("failed to read response: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
		otelhelper.SetError(span, apiErr)

		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := decodeBody(raw, out); err != nil {
		otelhelper.SetError(span, err)

		return err
	}

	return nil
}

// decodeBody accepts either the backend's {success, data} envelope or a
// bare JSON document.
func decodeBody(raw []byte, out any) error {
	var env struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(raw, &env); err == nil && env.Success != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}

		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

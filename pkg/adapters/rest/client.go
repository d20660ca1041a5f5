// Package rest provides HTTP clients for the remote capability backends:
// the memory service, the retrieval store, and the graph store. All three
// share one small JSON-over-POST client.
//
// A transport failure or non-2xx response is reported wrapped in
// domain.ErrCapabilityUnavailable, so callers can treat an unreachable
// backend as a degraded capability rather than a fatal error.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/daneel-ai/daneel/pkg/domain"
)

const defaultTimeout = 10 * time.Second

func unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s backend: %v", domain.ErrCapabilityUnavailable, name, err)
}

type client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	name    string
}

type Option func(*client)

// WithAPIKey sets the bearer token sent on every request.
func WithAPIKey(key string) Option {
	return func(c *client) {
		c.apiKey = key
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		c.http.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.http = hc
	}
}

func newClient(name, baseURL string, opts ...Option) *client {
	c := &client{
		http:    &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		name:    name,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// post sends a JSON body and decodes the JSON response into out.
// A nil out discards the response body.
func (c *client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", c.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return unavailable(c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return unavailable(c.name, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", c.name, err)
	}
	return nil
}

// Package client provides a typed client for the asset generation API.
//
// Every accessor issues exactly one HTTP request against the configured
// base URL and either returns a typed value or fails with *api.Error
// carrying the HTTP status. Get-one accessors map HTTP 404 to the
// api.ErrNotFound sentinel instead. The client holds no state between
// calls and never caches: each request asks intermediaries to revalidate
// against the origin.
package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// Client is an HTTP client for the asset generation API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option configures the client.
type Option func(*Client)

// New creates a new API client. Exactly one trailing slash is stripped
// from baseURL; an empty baseURL yields origin-relative request paths.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// BaseURL returns the normalized base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health checks the API health route.
func (c *Client) Health(ctx context.Context) (*models.Health, error) {
	return get[*models.Health](ctx, c, "/api/health", nil)
}

func esc(id string) string {
	return url.PathEscape(id)
}

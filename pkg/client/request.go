package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/RPP1011/asset-gen-tool/pkg/api"
)

// requestOpts controls how a single transport outcome is classified.
type requestOpts struct {
	// notFound maps HTTP 404 to the api.ErrNotFound sentinel. Only
	// get-one accessors opt in; a 404 on a list stays an *api.Error.
	notFound bool
	// allowEmpty accepts a 2xx response with no body (DELETE → 204).
	allowEmpty bool
}

// doJSON issues one request and collapses the outcome into a typed value
// or an error. No retries; cancellation and timeout come from ctx and the
// underlying http.Client.
func doJSON[T any](ctx context.Context, c *Client, method, path string, query url.Values, payload json.RawMessage, ro requestOpts) (T, error) {
	var zero T

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	// Always hit the origin; the dashboard trades latency for freshness.
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &api.Error{Status: resp.StatusCode, Message: "read response: " + err.Error()}
	}

	if ro.notFound && resp.StatusCode == http.StatusNotFound {
		return zero, fmt.Errorf("%s %s: %w", method, path, api.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &api.Error{Status: resp.StatusCode, Message: api.ExtractMessage(raw)}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		if ro.allowEmpty {
			return zero, nil
		}
		return zero, &api.Error{Status: resp.StatusCode, Message: api.EmptyResponseMessage}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, &api.Error{Status: resp.StatusCode, Message: "decode response: " + err.Error()}
	}
	return out, nil
}

// get fetches a resource without not-found translation (lists, health).
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return doJSON[T](ctx, c, http.MethodGet, path, query, nil, requestOpts{})
}

// getOne fetches a single resource by id; 404 becomes api.ErrNotFound.
func getOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	return doJSON[T](ctx, c, http.MethodGet, path, nil, nil, requestOpts{notFound: true})
}

// post creates a resource.
func post[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var zero T
	raw, err := json.Marshal(payload)
	if err != nil {
		return zero, fmt.Errorf("encode request: %w", err)
	}
	return doJSON[T](ctx, c, http.MethodPost, path, nil, raw, requestOpts{})
}

// patch applies a partial update. An update with no fields set is rejected
// before any request is issued; the server would answer 400 anyway.
func patch[T any](ctx context.Context, c *Client, path string, updates any) (T, error) {
	var zero T
	raw, err := json.Marshal(updates)
	if err != nil {
		return zero, fmt.Errorf("encode request: %w", err)
	}
	if string(raw) == "{}" || string(raw) == "null" {
		return zero, fmt.Errorf("no fields provided for update")
	}
	return doJSON[T](ctx, c, http.MethodPatch, path, nil, raw, requestOpts{})
}

// del removes a resource; the expected 204 carries no body.
func del(ctx context.Context, c *Client, path string) error {
	_, err := doJSON[struct{}](ctx, c, http.MethodDelete, path, nil, nil, requestOpts{allowEmpty: true})
	return err
}

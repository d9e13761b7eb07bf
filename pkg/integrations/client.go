package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/pokedex/pkg/observability"
)

// Client provides shared HTTP functionality for all upstream API clients.
// It handles status classification, cancellation and common request headers.
//
// Client performs exactly one request per call. It never retries and never
// caches; callers that need either must build it themselves.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client that sends requests through hc with the given
// default headers. Pass nil for hc to use [NewHTTPClient], and nil for headers
// if no default headers are needed.
func NewClient(hc *http.Client, headers map[string]string) *Client {
	if hc == nil {
		hc = NewHTTPClient()
	}
	return &Client{
		http:    hc,
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// A body that cannot be decoded into v, or that carries anything after the
// first JSON value, yields an error wrapping [ErrDecode].
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return err
	}
	defer body.Close()
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: trailing data after JSON value", ErrDecode)
	}
	return nil
}

// GetBytes performs an HTTP GET request and returns the raw response body.
// Useful when the caller wants to decide for itself how to treat a body that
// is not valid JSON.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	body, err := c.doRequest(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	return data, nil
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			hooks.OnError(ctx, req.Method, host, path, ctx.Err())
			return nil, ctx.Err()
		}
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return &StatusError{StatusCode: code}
}

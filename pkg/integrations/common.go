package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrNotFound matches a [StatusError] carrying 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures (DNS, refused connections, broken bodies).
	ErrNetwork = errors.New("network error")

	// ErrDecode is returned when a response body does not decode into the expected shape.
	ErrDecode = errors.New("malformed response")
)

// StatusError reports a non-2xx response from an upstream API.
type StatusError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is lets errors.Is(err, ErrNotFound) match a 404 StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// transport is shared by every client built with NewHTTPClient.
// http.Transport is safe for concurrent use.
var transport = newTransport()

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 20
	t.IdleConnTimeout = 90 * time.Second
	return t
}

// NewHTTPClient creates an HTTP client backed by the shared transport.
//
// The client has no Timeout: request lifetime is governed solely by the
// context passed to each call.
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: transport}
}

// NormalizeName lowercases a resource name for case-sensitive, lowercase-only
// upstream APIs. No other transformation is applied.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}

// JoinPath appends a single escaped path segment to base.
func JoinPath(base, segment string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(segment)
}

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }

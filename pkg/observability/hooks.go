// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about species lookups, translations, and upstream API calls.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the core packages stay
// free of any observability framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLookupHooks(&myLookupHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Lookup().OnLookupStart(ctx, name, translated)
//	// ... fetch, normalize, translate ...
//	observability.Lookup().OnLookupComplete(ctx, name, translated, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Lookup Hooks
// =============================================================================

// LookupHooks receives events from the species lookup pipeline.
type LookupHooks interface {
	// Lookup events
	OnLookupStart(ctx context.Context, name string, translated bool)
	OnLookupComplete(ctx context.Context, name string, translated bool, duration time.Duration, err error)

	// OnTranslation records the outcome of a description translation.
	// fallback is true when the original description was kept; reason
	// explains why and is nil otherwise.
	OnTranslation(ctx context.Context, style string, fallback bool, reason error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, cancellation).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLookupHooks is a no-op implementation of LookupHooks.
type NoopLookupHooks struct{}

func (NoopLookupHooks) OnLookupStart(context.Context, string, bool) {}
func (NoopLookupHooks) OnLookupComplete(context.Context, string, bool, time.Duration, error) {
}
func (NoopLookupHooks) OnTranslation(context.Context, string, bool, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	lookupHooks LookupHooks = NoopLookupHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetLookupHooks registers custom lookup hooks.
// This should be called once at application startup before serving requests.
func SetLookupHooks(h LookupHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		lookupHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Lookup returns the registered lookup hooks.
func Lookup() LookupHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return lookupHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	lookupHooks = NoopLookupHooks{}
	httpHooks = NoopHTTPHooks{}
}

package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Lookup hooks
	l := NoopLookupHooks{}
	l.OnLookupStart(ctx, "pikachu", false)
	l.OnLookupComplete(ctx, "pikachu", true, time.Second, nil)
	l.OnTranslation(ctx, "yoda", true, errors.New("status 429"))

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "pokeapi.co", "/api/v2/pokemon-species/pikachu")
	h.OnResponse(ctx, "GET", "pokeapi.co", "/api/v2/pokemon-species/pikachu", 200, time.Second)
	h.OnError(ctx, "GET", "pokeapi.co", "/api/v2/pokemon-species/pikachu", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Lookup().(NoopLookupHooks); !ok {
		t.Error("Lookup() should return NoopLookupHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customLookup := &testLookupHooks{}
	SetLookupHooks(customLookup)
	if Lookup() != customLookup {
		t.Error("SetLookupHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Lookup().(NoopLookupHooks); !ok {
		t.Error("Reset() should restore NoopLookupHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLookupHooks{}
	SetLookupHooks(custom)

	// Setting nil should be ignored
	SetLookupHooks(nil)

	if Lookup() != custom {
		t.Error("SetLookupHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLookupHooks struct{ NoopLookupHooks }
type testHTTPHooks struct{ NoopHTTPHooks }

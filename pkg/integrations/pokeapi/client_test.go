package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perrors "github.com/matzehuels/pokedex/pkg/errors"
)

const pikachuJSON = `{
	"name": "pikachu",
	"is_legendary": false,
	"habitat": {"name": "forest", "url": "https://pokeapi.co/api/v2/pokemon-habitat/2/"},
	"flavor_text_entries": [
		{"flavor_text": "When several of\nthese POKéMON\fgather.", "language": {"name": "en", "url": "https://pokeapi.co/api/v2/language/9/"}},
		{"flavor_text": "Il lui arrive de remettre en marche.", "language": {"name": "fr", "url": "https://pokeapi.co/api/v2/language/5/"}}
	]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, server.Client(), nil), server
}

func TestFetchSpecies(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pikachuJSON))
	})

	species, err := client.FetchSpecies(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("FetchSpecies() error: %v", err)
	}
	if species.Name != "pikachu" {
		t.Errorf("Name = %q, want %q", species.Name, "pikachu")
	}
	if species.IsLegendary {
		t.Error("IsLegendary = true, want false")
	}
	if species.Habitat == nil || species.Habitat.Name != "forest" {
		t.Errorf("Habitat = %+v, want forest", species.Habitat)
	}
	if len(species.FlavorTextEntries) != 2 {
		t.Fatalf("FlavorTextEntries len = %d, want 2", len(species.FlavorTextEntries))
	}
	if species.FlavorTextEntries[1].Language.Name != "fr" {
		t.Errorf("second entry language = %q, want fr", species.FlavorTextEntries[1].Language.Name)
	}
}

func TestFetchSpeciesLowercasesName(t *testing.T) {
	var gotPath string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(pikachuJSON))
	})

	if _, err := client.FetchSpecies(context.Background(), "PIKACHU"); err != nil {
		t.Fatalf("FetchSpecies() error: %v", err)
	}
	if gotPath != "/pikachu" {
		t.Errorf("request path = %q, want %q", gotPath, "/pikachu")
	}
}

func TestFetchSpeciesLenientBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"invalid json", "invalid json"},
		{"json string", `"invalid json"`},
		{"json array", `[1,2,3]`},
		{"wrong field types", `{"name": 42, "is_legendary": "yes"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			species, err := client.FetchSpecies(context.Background(), "pikachu")
			if err != nil {
				t.Fatalf("FetchSpecies() error = %v, want nil", err)
			}
			if species == nil {
				t.Fatal("FetchSpecies() returned nil species")
			}
			if species.Name != "" || species.IsLegendary || species.Habitat != nil || species.FlavorTextEntries != nil {
				t.Errorf("species = %+v, want zero value", *species)
			}
		})
	}
}

func TestFetchSpeciesErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantCode   perrors.Code
		wantStatus int
	}{
		{"not found", http.StatusNotFound, perrors.ErrCodeNotFound, 404},
		{"server error", http.StatusInternalServerError, perrors.ErrCodeUpstream, 500},
		{"bad gateway", http.StatusBadGateway, perrors.ErrCodeUpstream, 502},
		{"rate limited", http.StatusTooManyRequests, perrors.ErrCodeUpstream, 429},
		{"bad request", http.StatusBadRequest, perrors.ErrCodeUpstream, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			species, err := client.FetchSpecies(context.Background(), "missingno")
			if species != nil {
				t.Errorf("species = %+v, want nil", species)
			}
			if got := perrors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v (err: %v)", got, tt.wantCode, err)
			}
			if got := perrors.GetStatus(err); got != tt.wantStatus {
				t.Errorf("status = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}

func TestFetchSpeciesCancelled(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.FetchSpecies(ctx, "pikachu")
	if !perrors.Is(err, perrors.ErrCodeCancelled) {
		t.Errorf("code = %v, want %v (err: %v)", perrors.GetCode(err), perrors.ErrCodeCancelled, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("error should wrap context.Canceled")
	}
}

func TestFetchSpeciesDeadline(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchSpecies(ctx, "pikachu")
	if !perrors.Is(err, perrors.ErrCodeCancelled) {
		t.Errorf("code = %v, want %v (err: %v)", perrors.GetCode(err), perrors.ErrCodeCancelled, err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("error should wrap context.DeadlineExceeded")
	}
}

func TestFetchSpeciesNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, nil, nil)
	_, err := client.FetchSpecies(context.Background(), "pikachu")
	if !perrors.Is(err, perrors.ErrCodeNetwork) {
		t.Errorf("code = %v, want %v (err: %v)", perrors.GetCode(err), perrors.ErrCodeNetwork, err)
	}
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	c := NewClient("", nil, nil)
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
}

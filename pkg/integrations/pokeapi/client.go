package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/integrations"
)

// DefaultBaseURL is the public PokeAPI species endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2/pokemon-species"

// Species is a raw species record as returned by PokeAPI.
//
// Only the fields Pokedex consumes are decoded. A Species is ephemeral: it
// lives for a single fetch-and-normalize call.
//
// Zero values: Name is empty, Habitat is nil, FlavorTextEntries is nil.
// Callers must validate Name before use; the client never does.
type Species struct {
	Name              string            `json:"name"`
	IsLegendary       bool              `json:"is_legendary"`
	Habitat           *NamedResource    `json:"habitat"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

// NamedResource is PokeAPI's {name, url} reference to another resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FlavorTextEntry is one localized description of a species.
type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
}

// Client provides access to the PokeAPI species endpoint.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PokeAPI client.
//
// Parameters:
//   - baseURL: species endpoint, usually [DefaultBaseURL]
//   - hc: HTTP client to send requests with (nil for the shared default)
//   - headers: default headers such as User-Agent (may be nil)
func NewClient(baseURL string, hc *http.Client, headers map[string]string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(hc, headers),
		baseURL: baseURL,
	}
}

// FetchSpecies retrieves the raw species record for name.
//
// The name is lowercased before it is placed in the request path; PokeAPI
// only knows lowercase names.
//
// Returns:
//   - Species on success; a 2xx response whose body is empty or not valid
//     JSON yields a zero-valued Species and no error
//   - error with [perrors.ErrCodeNotFound] on 404
//   - error with [perrors.ErrCodeUpstream] and the status code on other non-2xx
//   - error with [perrors.ErrCodeNetwork] when the upstream is unreachable
//   - error with [perrors.ErrCodeCancelled] when ctx is cancelled or expires
//
// Exactly one request is made per call.
func (c *Client) FetchSpecies(ctx context.Context, name string) (*Species, error) {
	name = integrations.NormalizeName(name)

	data, err := c.GetBytes(ctx, integrations.JoinPath(c.baseURL, name))
	if err != nil {
		return nil, classify(err, name)
	}

	var species Species
	if err := json.Unmarshal(data, &species); err != nil {
		species = Species{}
	}
	return &species, nil
}

func classify(err error, name string) error {
	var statusErr *integrations.StatusError
	switch {
	case perrors.IsContextError(err):
		return perrors.Cancelled(err, "fetch species %q", name)
	case errors.Is(err, integrations.ErrNotFound):
		return perrors.Wrap(perrors.ErrCodeNotFound, err, "species %q not found", name).
			WithStatus(http.StatusNotFound)
	case errors.As(err, &statusErr):
		return perrors.Wrap(perrors.ErrCodeUpstream, err, "species upstream failed for %q", name).
			WithStatus(statusErr.StatusCode)
	case errors.Is(err, integrations.ErrNetwork):
		return perrors.Wrap(perrors.ErrCodeNetwork, err, "species upstream unreachable")
	default:
		return perrors.Wrap(perrors.ErrCodeInternal, err, "fetch species %q", name)
	}
}

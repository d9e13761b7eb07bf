// Package integrations provides HTTP clients for the upstream APIs Pokedex
// aggregates.
//
// # Overview
//
// Each upstream has its own subpackage:
//
//   - [pokeapi]: species metadata (name, habitat, legendary flag, flavor text)
//   - [funtranslations]: stylistic "yoda" and "shakespeare" translations
//
// # Client Pattern
//
// All upstream clients follow a consistent pattern:
//
//	client := pokeapi.NewClient(pokeapi.DefaultBaseURL, nil, nil)
//	species, err := client.FetchSpecies(ctx, "Pikachu")
//
// Clients handle:
//   - One HTTP request per call, no retries and no caching
//   - Cancellation through the caller's context
//   - API-specific parsing
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by all upstream
// clients. It classifies responses into [StatusError] (non-2xx),
// [ErrNetwork] (transport failure) and [ErrDecode] (unexpected body), and
// passes context errors through untouched so callers can tell a cancelled
// request from a failed one. Every outbound request is reported to the
// [observability.HTTPHooks] registry.
//
// [pokeapi]: github.com/matzehuels/pokedex/pkg/integrations/pokeapi
// [funtranslations]: github.com/matzehuels/pokedex/pkg/integrations/funtranslations
// [observability.HTTPHooks]: github.com/matzehuels/pokedex/pkg/observability.HTTPHooks
package integrations

// Package pokeapi provides a client for the PokeAPI species endpoint.
//
// # Overview
//
// [Client.FetchSpecies] issues a single GET to {base}/{lowercased-name} and
// decodes the species record: name, legendary flag, habitat and the ordered
// list of localized flavor texts.
//
// Non-2xx responses become structured errors from
// [github.com/matzehuels/pokedex/pkg/errors]: 404 maps to NOT_FOUND, anything
// else to UPSTREAM_ERROR with the status code attached. A cancelled context
// is reported as CANCELLED, never as an upstream failure.
//
// A 2xx response with a body that is not a JSON object is not an error; the
// record comes back empty and the caller's validation rejects it.
//
// # Usage
//
//	client := pokeapi.NewClient(pokeapi.DefaultBaseURL, nil, nil)
//	species, err := client.FetchSpecies(ctx, "Pikachu")
package pokeapi

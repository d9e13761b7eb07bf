// Package pkg provides the core libraries of the Pokedex service.
//
// # Overview
//
// Pokedex answers one question: given a species name, what is it, where does
// it live, and what does its Pokédex entry say (optionally in the voice of
// Yoda or Shakespeare). The pkg directory is organized into these areas:
//
//  1. [pokedex] - Domain logic (normalization, style selection, orchestration)
//  2. [integrations] - Upstream API clients (PokeAPI, FunTranslations)
//  3. [config] - Layered configuration (defaults, TOML, dotenv, environment)
//  4. [errors] - Coded errors shared by every layer
//  5. [observability] - Hooks for lookup and upstream request events
//
// # Architecture
//
// The data flow for one lookup:
//
//	species name
//	     ↓
//	[integrations/pokeapi] (one GET to the species endpoint)
//	     ↓
//	[pokedex.SpeciesNormalizer] (pick habitat, first English flavor text)
//	     ↓
//	[pokedex.FunTranslator] (translated lookups only; falls back on failure)
//	     ↓
//	[pokedex.Summary]
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/pokedex/pkg/integrations/funtranslations"
//	    "github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
//	    "github.com/matzehuels/pokedex/pkg/pokedex"
//	)
//
//	species := pokeapi.NewClient(pokeapi.DefaultBaseURL, nil, nil)
//	translations := funtranslations.NewClient(funtranslations.DefaultBaseURL, nil, nil)
//	svc := pokedex.NewService(species, nil, pokedex.NewFunTranslator(translations, nil), nil)
//
//	summary, err := svc.GetTranslatedSpecies(ctx, "mewtwo")
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // no such species
//	}
//
// # Errors
//
// Every failure that reaches a caller is an [errors.Error] with one of the
// codes NOT_FOUND, UPSTREAM_ERROR, NETWORK_ERROR, INVALID_SPECIES, CANCELLED
// or INVALID_INPUT. Translation failures never surface; the original
// description is kept instead.
//
// # Testing
//
//	go test ./pkg/...               # All tests
//	go test ./pkg/pokedex/...       # Specific package
//	go test -run Example ./pkg/...  # Examples only
//
// [pokedex]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/pokedex
// [integrations]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/integrations
// [config]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/errors
// [errors.Error]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/errors#Error
// [observability]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/observability
//
// [integrations/pokeapi]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/integrations/pokeapi
// [pokedex.SpeciesNormalizer]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/pokedex#SpeciesNormalizer
// [pokedex.FunTranslator]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/pokedex#FunTranslator
// [pokedex.Summary]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/pokedex#Summary
package pkg

// Package config loads pokedex settings.
//
// Settings come from four layers, each overriding the one before:
//
//  1. built-in defaults ([Default])
//  2. an optional TOML file
//  3. an optional dotenv file (".env" when present)
//  4. POKEDEX_* environment variables
//
// Command-line flags are applied by the CLI on top of the loaded Config.
//
// A TOML file mirrors the struct layout:
//
//	[server]
//	addr = ":8080"
//	request_timeout = "5s"
//
//	[upstream]
//	species_url = "https://pokeapi.co/api/v2/pokemon-species"
//
//	[log]
//	level = "debug"
//
// The matching environment variables are POKEDEX_SERVER_ADDR,
// POKEDEX_SERVER_REQUEST_TIMEOUT, POKEDEX_UPSTREAM_SPECIES_URL and
// POKEDEX_LOG_LEVEL. Durations use Go syntax ("500ms", "10s").
package config

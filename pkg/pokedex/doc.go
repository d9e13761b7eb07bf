// Package pokedex turns upstream species records into public summaries.
//
// # Overview
//
// A lookup runs in strict sequence:
//
//	name → [pokeapi.Species] → [Summary] → (optional) translated Summary
//
// [Service.GetSpecies] fetches a record through a [SpeciesFetcher] and
// converts it with a [Normalizer]. [Service.GetTranslatedSpecies] then asks a
// [Translator] for a stylised description and overwrites the Summary's
// description with the answer.
//
// # Normalization
//
// [SpeciesNormalizer] rejects records without a name
// (INVALID_SPECIES), takes the habitat name when present, and uses the first
// English flavor text as the description with line feeds and form feeds
// turned into spaces. When no English text exists the description is empty.
//
// # Translation
//
// [SelectStyle] chooses "yoda" for cave habitats and legendary species and
// "shakespeare" otherwise. [FunTranslator] makes one upstream call and keeps
// the original description on any failure, so translated lookups only fail
// when the species lookup itself fails or the request is cancelled.
//
// [pokeapi.Species]: github.com/matzehuels/pokedex/pkg/integrations/pokeapi.Species
package pokedex

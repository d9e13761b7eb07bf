package pokedex

import (
	"strings"

	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
)

// DescriptionLanguage is the language code of the flavor text used as the
// Summary description.
const DescriptionLanguage = "en"

// Normalizer converts a raw species record into a Summary.
type Normalizer interface {
	Normalize(species *pokeapi.Species) (*Summary, error)
}

// SpeciesNormalizer is the default [Normalizer].
//
// The zero value is ready to use and selects [DescriptionLanguage].
type SpeciesNormalizer struct {
	// Language overrides the flavor text language. Empty means DescriptionLanguage.
	Language string
}

var flavorTextReplacer = strings.NewReplacer("\n", " ", "\f", " ")

// Normalize validates species and converts it to a Summary.
//
// It fails with [perrors.ErrCodeInvalidSpecies] when species is nil or its
// name is blank. The description is the first flavor text in the configured
// language with newlines and form feeds replaced by spaces; when no entry
// matches the description is empty. Entries in other languages are never
// used as a substitute.
func (n SpeciesNormalizer) Normalize(species *pokeapi.Species) (*Summary, error) {
	if species == nil {
		return nil, perrors.New(perrors.ErrCodeInvalidSpecies, "species record is missing")
	}

	var habitat string
	if species.Habitat != nil {
		habitat = species.Habitat.Name
	}

	return NewSummary(species.Name, n.description(species.FlavorTextEntries), habitat, species.IsLegendary)
}

func (n SpeciesNormalizer) description(entries []pokeapi.FlavorTextEntry) string {
	lang := n.Language
	if lang == "" {
		lang = DescriptionLanguage
	}
	for _, e := range entries {
		if e.Language.Name == lang {
			return flavorTextReplacer.Replace(e.FlavorText)
		}
	}
	return ""
}

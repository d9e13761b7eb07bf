package pokedex

import (
	"strings"

	perrors "github.com/matzehuels/pokedex/pkg/errors"
)

// Summary is the public representation of a species.
//
// Name is never blank in a Summary returned by this package. Description and
// Habitat may be empty. A Summary lives for a single request.
type Summary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Habitat     string `json:"habitat"`
	IsLegendary bool   `json:"islegendary"`
}

// NewSummary builds a Summary, failing with [perrors.ErrCodeInvalidSpecies]
// when name is empty or whitespace-only.
func NewSummary(name, description, habitat string, legendary bool) (*Summary, error) {
	if strings.TrimSpace(name) == "" {
		return nil, perrors.New(perrors.ErrCodeInvalidSpecies, "species has no name")
	}
	return &Summary{
		Name:        name,
		Description: description,
		Habitat:     habitat,
		IsLegendary: legendary,
	}, nil
}

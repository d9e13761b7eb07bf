package pokedex

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
	"github.com/matzehuels/pokedex/pkg/observability"
)

// SpeciesFetcher retrieves a raw species record by name.
// [pokeapi.Client] satisfies it.
type SpeciesFetcher interface {
	FetchSpecies(ctx context.Context, name string) (*pokeapi.Species, error)
}

// Service answers species lookups: fetch, normalize and, for translated
// lookups, translate.
//
// The Service is stateless apart from its collaborators; it holds no cache
// and does not coalesce concurrent lookups. Multiple goroutines can safely
// share one Service.
type Service struct {
	species    SpeciesFetcher
	normalizer Normalizer
	translator Translator
	logger     *log.Logger
}

// NewService creates a Service.
// If normalizer is nil, a SpeciesNormalizer is used.
// If logger is nil, log.Default() is used.
func NewService(species SpeciesFetcher, normalizer Normalizer, translator Translator, logger *log.Logger) *Service {
	if normalizer == nil {
		normalizer = SpeciesNormalizer{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		species:    species,
		normalizer: normalizer,
		translator: translator,
		logger:     logger,
	}
}

// GetSpecies fetches and normalizes the species called name.
// Errors from either stage are returned unchanged.
func (s *Service) GetSpecies(ctx context.Context, name string) (summary *Summary, err error) {
	start := time.Now()
	hooks := observability.Lookup()
	hooks.OnLookupStart(ctx, name, false)
	defer func() { hooks.OnLookupComplete(ctx, name, false, time.Since(start), err) }()

	return s.getSpecies(ctx, name)
}

// GetTranslatedSpecies is GetSpecies followed by a translation of the
// description. Translation problems keep the original description and are
// never returned; a lookup failure skips translation entirely. If the
// translation fell back because ctx ended, the lookup fails with
// [perrors.ErrCodeCancelled]; a translation that completed is kept.
func (s *Service) GetTranslatedSpecies(ctx context.Context, name string) (summary *Summary, err error) {
	start := time.Now()
	hooks := observability.Lookup()
	hooks.OnLookupStart(ctx, name, true)
	defer func() { hooks.OnLookupComplete(ctx, name, true, time.Since(start), err) }()

	summary, err = s.getSpecies(ctx, name)
	if err != nil {
		return nil, err
	}
	if s.translator == nil {
		return summary, nil
	}

	description, translated := s.translator.Translate(ctx, summary)
	if ctxErr := ctx.Err(); !translated && ctxErr != nil {
		return nil, perrors.Cancelled(ctxErr, "translate species %q", summary.Name)
	}
	summary.Description = description
	return summary, nil
}

func (s *Service) getSpecies(ctx context.Context, name string) (*Summary, error) {
	species, err := s.species.FetchSpecies(ctx, name)
	if err != nil {
		s.logger.Debug("species fetch failed", "name", name, "code", perrors.GetCode(err), "err", err)
		return nil, err
	}

	summary, err := s.normalizer.Normalize(species)
	if err != nil {
		s.logger.Error("species record rejected", "name", name, "err", err)
		return nil, err
	}

	s.logger.Debug("fetched species", "name", summary.Name, "habitat", summary.Habitat, "legendary", summary.IsLegendary)
	return summary, nil
}

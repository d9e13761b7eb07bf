package pokedex

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pokedex/pkg/integrations/funtranslations"
	"github.com/matzehuels/pokedex/pkg/observability"
)

// caveHabitat sends a species to the yoda style regardless of legendary status.
const caveHabitat = "cave"

var errNoTranslation = errors.New("response has no translated text")

// Translator produces the final description for a Summary.
// Implementations never fail: on any problem they return the original text
// and translated reports false.
type Translator interface {
	Translate(ctx context.Context, summary *Summary) (description string, translated bool)
}

// TranslationAPI is the upstream call a FunTranslator makes.
// [funtranslations.Client] satisfies it.
type TranslationAPI interface {
	Translate(ctx context.Context, style funtranslations.Style, text string) (*funtranslations.Result, error)
}

// SelectStyle picks the translation style for a Summary: yoda for cave
// dwellers (habitat compared case-insensitively) and legendary species,
// shakespeare for everything else.
func SelectStyle(summary *Summary) funtranslations.Style {
	if strings.EqualFold(summary.Habitat, caveHabitat) || summary.IsLegendary {
		return funtranslations.StyleYoda
	}
	return funtranslations.StyleShakespeare
}

// FunTranslator is a [Translator] backed by the FunTranslations API.
//
// It is safe for concurrent use if its TranslationAPI is.
type FunTranslator struct {
	api    TranslationAPI
	logger *log.Logger
}

// NewFunTranslator creates a FunTranslator. A nil logger uses log.Default().
func NewFunTranslator(api TranslationAPI, logger *log.Logger) *FunTranslator {
	if logger == nil {
		logger = log.Default()
	}
	return &FunTranslator{api: api, logger: logger}
}

// Translate returns the summary's description rewritten in the selected
// style. It makes exactly one upstream call and falls back to the original
// description when the call fails, the body is malformed, or the translated
// text is missing. An empty translated text is returned as-is.
func (t *FunTranslator) Translate(ctx context.Context, summary *Summary) (string, bool) {
	style := SelectStyle(summary)
	hooks := observability.Lookup()

	res, err := t.api.Translate(ctx, style, summary.Description)
	if err == nil && !res.OK() {
		err = errNoTranslation
	}
	if err != nil {
		t.logger.Warn("translation failed, keeping original description",
			"name", summary.Name, "style", style, "err", err)
		hooks.OnTranslation(ctx, string(style), true, err)
		return summary.Description, false
	}

	t.logger.Debug("translated description", "name", summary.Name, "style", style)
	hooks.OnTranslation(ctx, string(style), false, nil)
	return *res.Translated, true
}

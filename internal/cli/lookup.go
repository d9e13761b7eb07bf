package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/pokedex"
)

// lookupCommand creates the lookup command, which runs one lookup against
// the configured upstreams and prints the result.
func (c *CLI) lookupCommand() *cobra.Command {
	var (
		translated bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look up a Pokémon species",
		Long: `Look up a Pokémon species and print its summary.

With --translated the description is rewritten in Yoda style for cave
dwellers and legendary species and in Shakespeare style otherwise. If the
translation service fails, the original description is printed.`,
		Example: `  pokedex lookup pikachu
  pokedex lookup mewtwo --translated
  pokedex lookup zubat --translated --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLookup(cmd, args[0], translated, asJSON)
		},
	}

	cmd.Flags().BoolVarP(&translated, "translated", "t", false, "translate the description")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}

func (c *CLI) runLookup(cmd *cobra.Command, name string, translated, asJSON bool) error {
	if err := perrors.ValidateSpeciesName(name); err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	svc := c.newService(c.Config)

	lookup := svc.GetSpecies
	if translated {
		lookup = svc.GetTranslatedSpecies
	}

	prog := newProgress(logger)
	var spinner *Spinner
	if !asJSON {
		spinner = newSpinner(ctx, fmt.Sprintf("Looking up %s...", name))
		spinner.Start()
	}

	summary, err := lookup(ctx, name)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		if !asJSON {
			printError("%s", lookupFailure(name, err))
		}
		return err
	}
	prog.done("Looked up " + summary.Name)

	if asJSON {
		return writeJSON(summary)
	}
	printSummary(summary)
	return nil
}

// lookupFailure phrases a lookup error for the terminal.
func lookupFailure(name string, err error) string {
	switch perrors.GetCode(err) {
	case perrors.ErrCodeNotFound:
		return fmt.Sprintf("No species called %q", name)
	case perrors.ErrCodeUpstream:
		return fmt.Sprintf("PokeAPI answered with status %d", perrors.GetStatus(err))
	case perrors.ErrCodeNetwork:
		return "PokeAPI is unreachable"
	case perrors.ErrCodeCancelled:
		return "Lookup cancelled"
	default:
		return "Lookup failed"
	}
}

func writeJSON(s *pokedex.Summary) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Package cli implements the pokedex command-line interface.
//
// The CLI is built on cobra and logs through charmbracelet/log. Every
// command loads configuration (see [config.Load]) before it runs; the
// persistent --config and --env-file flags select the files consulted and
// --verbose switches to debug logging with upstream request tracing.
//
// # Commands
//
//   - serve: run the HTTP API
//   - lookup: look up one species from the terminal
//   - config: print the effective configuration as TOML
//   - completion: generate shell completion scripts
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/buildinfo"
	"github.com/matzehuels/pokedex/pkg/config"
	"github.com/matzehuels/pokedex/pkg/integrations"
	"github.com/matzehuels/pokedex/pkg/integrations/funtranslations"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
	"github.com/matzehuels/pokedex/pkg/observability"
	"github.com/matzehuels/pokedex/pkg/pokedex"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "pokedex"

	// skipConfigAnnotation marks commands that run without loading config.
	skipConfigAnnotation = "pokedex/skip-config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is populated before any command runs.
	Config *config.Config

	configFile string
	envFile    string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Pokedex serves Pokémon species summaries",
		Long:              `Pokedex looks up Pokémon species on PokeAPI, condenses them into short summaries and can rewrite their descriptions in Yoda or Shakespeare style through FunTranslations.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configFile, "config", "c", "", "TOML config file")
	flags.StringVar(&c.envFile, "env-file", "", "dotenv file (default: "+config.DefaultEnvFile+" if present)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.lookupCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration and configures logging for the command about
// to run.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	if _, ok := cmd.Annotations[skipConfigAnnotation]; ok {
		return nil
	}

	cfg, err := config.Load(config.Options{File: c.configFile, EnvFile: c.envFile})
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = LogInfo
	}
	if c.verbose {
		level = LogDebug
	}
	// Hook loggers copy the level when created, so set it first.
	c.SetLogLevel(level)
	if c.verbose {
		observability.SetLookupHooks(newLogLookupHooks(c.Logger))
		observability.SetHTTPHooks(newLogHTTPHooks(c.Logger))
	}

	c.Logger.Debug("configuration loaded",
		"file", c.configFile,
		"species_url", cfg.Upstream.SpeciesURL,
		"translation_url", cfg.Upstream.TranslationURL,
	)
	return nil
}

// =============================================================================
// Service Factory
// =============================================================================

// newService wires the upstream clients from cfg into a pokedex.Service.
// Both clients share one HTTP transport.
func (c *CLI) newService(cfg *config.Config) *pokedex.Service {
	var headers map[string]string
	if cfg.Upstream.UserAgent != "" {
		headers = map[string]string{"User-Agent": cfg.Upstream.UserAgent}
	}
	hc := integrations.NewHTTPClient()

	species := pokeapi.NewClient(cfg.Upstream.SpeciesURL, hc, headers)
	translations := funtranslations.NewClient(cfg.Upstream.TranslationURL, hc, headers).
		WithSecret(cfg.Upstream.TranslationAPISecret)

	return pokedex.NewService(
		species,
		pokedex.SpeciesNormalizer{},
		pokedex.NewFunTranslator(translations, c.Logger),
		c.Logger,
	)
}

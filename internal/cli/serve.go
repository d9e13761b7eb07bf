package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/internal/api"
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr           string
		requestTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Routes:
  GET /pokemon/{name}              species summary
  GET /pokemon/translated/{name}   summary with a translated description
  GET /healthz                     liveness

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *c.Config
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("request-timeout") {
				cfg.Server.RequestTimeout = requestTimeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			server := api.NewServer(c.newService(&cfg), cfg.Server, c.Logger)
			printInfo("Serving on %s", StyleHighlight.Render(cfg.Server.Addr))
			printDetail("species     %s", cfg.Upstream.SpeciesURL)
			printDetail("translation %s", cfg.Upstream.TranslationURL)

			if err := server.ListenAndServe(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config, \":8080\")")
	cmd.Flags().DurationVar(&requestTimeout, "request-timeout", 0, "per-request deadline, 0 for none (default from config)")

	return cmd
}

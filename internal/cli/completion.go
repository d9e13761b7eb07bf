package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pokedex.

To load completions:

Bash:
  $ source <(pokedex completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ pokedex completion bash > /etc/bash_completion.d/pokedex
  # macOS:
  $ pokedex completion bash > $(brew --prefix)/etc/bash_completion.d/pokedex

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ pokedex completion zsh > "${fpath[1]}/_pokedex"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ pokedex completion fish | source

  # To load completions for each session, execute once:
  $ pokedex completion fish > ~/.config/fish/completions/pokedex.fish

PowerShell:
  PS> pokedex completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> pokedex completion powershell > pokedex.ps1
  # and source this file from your PowerShell profile.
`,
		Annotations:           map[string]string{skipConfigAnnotation: ""},
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(stdout, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout)
			}
			return nil
		},
	}

	return cmd
}

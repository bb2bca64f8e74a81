package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for hexgrid.

To load completions:

Bash:
  $ source <(hexgrid completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ hexgrid completion bash > /etc/bash_completion.d/hexgrid
  # macOS:
  $ hexgrid completion bash > $(brew --prefix)/etc/bash_completion.d/hexgrid

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ hexgrid completion zsh > "${fpath[1]}/_hexgrid"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ hexgrid completion fish | source

  # To load completions for each session, execute once:
  $ hexgrid completion fish > ~/.config/fish/completions/hexgrid.fish

PowerShell:
  PS> hexgrid completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> hexgrid completion powershell > hexgrid.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		// Completion scripts need no config or logger.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(pathmend completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ pathmend completion bash > /etc/bash_completion.d/pathmend
  # macOS:
  $ pathmend completion bash > /usr/local/etc/bash_completion.d/pathmend

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ pathmend completion zsh > "${fpath[1]}/_pathmend"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ pathmend completion fish | source
  # To load completions for each session, execute once:
  $ pathmend completion fish > ~/.config/fish/completions/pathmend.fish

PowerShell:
  PS> pathmend completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> pathmend completion powershell > pathmend.ps1
  # and source this file from your PowerShell profile.
`,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

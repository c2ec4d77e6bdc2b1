package cli

import (
	"github.com/spf13/cobra"
)

// graphExtensions are the file extensions offered when completing a graph
// or solution argument.
var graphExtensions = []string{"gr", "ds", "sol"}

// completeGraphFiles completes graph and solution paths for solve, verify,
// stats and render.
func completeGraphFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return graphExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// completionCommand prints a shell completion script.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for domsearch. Graph arguments complete to
.gr, .ds and .sol files; gen completes its graph families.

  bash:        source <(domsearch completion bash)
  zsh:         domsearch completion zsh > "${fpath[1]}/_domsearch"
  fish:        domsearch completion fish > ~/.config/fish/completions/domsearch.fish
  powershell:  domsearch completion powershell | Out-String | Invoke-Expression

Start a new shell afterwards.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.Out, true)
			case "zsh":
				return root.GenZshCompletion(c.Out)
			case "fish":
				return root.GenFishCompletion(c.Out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(c.Out)
			}
		},
	}
}

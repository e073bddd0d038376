package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for herd.

To load completions:

Bash:
  $ source <(herd completion bash)
  # Or add to ~/.bashrc:
  $ echo 'source <(herd completion bash)' >> ~/.bashrc

Zsh:
  $ source <(herd completion zsh)
  # Or add to ~/.zshrc:
  $ echo 'source <(herd completion zsh)' >> ~/.zshrc

Fish:
  $ herd completion fish | source
  # Or add to config:
  $ herd completion fish > ~/.config/fish/completions/herd.fish
`,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				rootCmd.GenFishCompletion(os.Stdout, true)
			}
		},
	})
}

// Package cli implements the command-line interface for herd.
package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/herd/internal/config"
	"github.com/kilupskalvis/herd/internal/engine"
	"github.com/kilupskalvis/herd/internal/models"
)

// Version is the herd release, overridable at build time.
var Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "herd",
	Short: "Bulk git and package operations across a workspace of modules",
	Long: `herd discovers every module (a git checkout with a package manifest)
under the roots listed in ` + config.EnvRoots + ` and applies conservative,
state-gated bulk operations across the whole set: status, checkout,
fetch, merge, push, version-bump-and-publish, clean, install and local
cross-linking.`,
	Args: cobra.ArbitraryArgs,
	Run:  runRoot,
}

func runRoot(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		_ = cmd.Help()
		return
	}
	fmt.Printf("%s is not a command. See herd --help.\n", args[0])
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.Flags().BoolP("version", "v", false, "Print the herd version")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(distCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(linkCmd)
}

// initEngine loads the configuration, warns about slow fallbacks and
// snapshots the whole workspace.
func initEngine(ctx context.Context) (*engine.Engine, []*models.ModuleInfo) {
	cfg := config.Load()
	if cfg.HomeFallback {
		yellow := color.New(color.FgYellow)
		yellow.Fprintf(os.Stderr, "%s is not set, scanning your home directory (this can be slow)\n", config.EnvRoots)
	}

	eng := engine.New(cfg)
	return eng, eng.Snapshot(ctx)
}

// sortByName orders snapshots by module name for stable reports.
func sortByName(infos []*models.ModuleInfo) {
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})
}

// failure prints a single-line, per-module failure to the error stream.
func failure(format string, args ...interface{}) {
	red := color.New(color.FgRed)
	red.Fprintf(os.Stderr, format+"\n", args...)
}

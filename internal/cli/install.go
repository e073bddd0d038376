package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var installDryRun bool

var installCmd = &cobra.Command{
	Use:     "install",
	Aliases: []string{"i"},
	Short:   "Install dependencies in every module",
	Long: `Run the package manager install in every module, without writing a
lockfile and with a per-module download cache.`,
	Args: cobra.NoArgs,
	Run:  runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installDryRun, "dry-run", "n", false, "Show the install commands without running them")
}

func runInstall(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	eng, infos := initEngine(ctx)

	results := eng.Install(ctx, infos, installDryRun, func(done, total int, path string) {
		if !installDryRun {
			fmt.Printf("\rinstalling %d/%d", done, total)
		}
	})
	if !installDryRun {
		fmt.Println()
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			failure("install failed for %s: %v", res.Info.Name(), res.Err)
			continue
		}
		if installDryRun {
			fmt.Printf("%s: %s\n", res.Info.Name(), res.Detail)
		}
	}
	if installDryRun {
		return
	}
	fmt.Printf("Installed %d module(s)", len(results)-failed)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
}

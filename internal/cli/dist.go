package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/herd/internal/models"
)

var distDryRun bool

var distCmd = &cobra.Command{
	Use:   "dist <major|minor|patch>",
	Short: "Bump, tag and publish every release-ready module",
	Long: `Bump the manifest version of every module that is publishable, on
master, clean and not behind its upstream, then commit, tag, push the
tag and publish to the registry. A module that fails a step is skipped;
the rest of the batch continues.`,
	Args: cobra.ExactArgs(1),
	Run:  runDist,
}

func init() {
	distCmd.Flags().BoolVarP(&distDryRun, "dry-run", "n", false, "Show what would be released without touching anything")
}

func runDist(cmd *cobra.Command, args []string) {
	bump, err := models.ParseBump(args[0])
	if err != nil {
		fmt.Printf("%v. See herd dist --help.\n", err)
		return
	}

	ctx := context.Background()
	eng, infos := initEngine(ctx)

	yellow := color.New(color.FgYellow)
	notify := func(m *models.ModuleInfo, err error, attempt, max int) {
		yellow.Printf("publish failed for %s, retrying %d/%d\n", m.Manifest.Name, attempt, max)
	}

	results := eng.Dist(ctx, infos, bump, distDryRun, notify)

	green := color.New(color.FgGreen)
	released := 0
	for _, res := range results {
		if res.Err != nil {
			failure("dist failed for %s: %v", res.Info.Name(), res.Err)
			continue
		}
		released++
		green.Println(res.Detail)
	}
	if len(results) == 0 {
		fmt.Println("Nothing to release.")
		return
	}
	if distDryRun {
		fmt.Printf("\nWould release %d module(s)\n", released)
		return
	}
	fmt.Printf("\nReleased %d of %d module(s)\n", released, len(results))
}

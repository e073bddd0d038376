package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/herd/internal/engine"
	"github.com/kilupskalvis/herd/internal/models"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge upstream into every clean, behind module",
	Long: `Merge the upstream branch into every module whose working tree is
clean and whose branch is strictly behind its upstream. Modules that
are dirty, ahead or already in sync are left alone.`,
	Args: cobra.NoArgs,
	Run:  runMerge,
}

func runMerge(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	eng, infos := initEngine(ctx)
	mergeAll(ctx, eng, infos)
}

// mergeAll merges and reports. Shared with pull.
func mergeAll(ctx context.Context, eng *engine.Engine, infos []*models.ModuleInfo) {
	results := eng.Merge(ctx, infos)

	green := color.New(color.FgGreen)
	merged := 0
	for _, res := range results {
		if res.Err != nil {
			failure("merge failed for %s: %v", res.Info.Name(), res.Err)
			continue
		}
		merged++
		green.Printf("merged %s into %s\n", res.Info.UpstreamBranch(), res.Info.Name())
	}
	if len(results) == 0 {
		fmt.Println("Nothing to merge.")
		return
	}
	fmt.Printf("\nMerged %d of %d module(s)\n", merged, len(results))
}

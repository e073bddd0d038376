package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/herd/internal/engine"
	"github.com/kilupskalvis/herd/internal/models"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch all remotes of every module",
	Args:  cobra.NoArgs,
	Run:   runFetch,
}

func runFetch(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	eng, infos := initEngine(ctx)
	fetchAll(ctx, eng, infos)
}

// fetchAll runs the fetch with a progress line and reports per-module
// failures afterwards. Shared with pull.
func fetchAll(ctx context.Context, eng *engine.Engine, infos []*models.ModuleInfo) {
	results := eng.Fetch(ctx, infos, func(done, total int, path string) {
		fmt.Printf("\rfetching %d/%d", done, total)
	})
	fmt.Println()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			failure("fetch failed for %s: %v", res.Info.Name(), res.Err)
		}
	}
	fmt.Printf("Fetched %d module(s)", len(results)-failed)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
}

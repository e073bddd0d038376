package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove untracked and ignored files in every module",
	Long: `Run a forced clean in every module, removing untracked files,
untracked directories and ignored files such as build output.`,
	Args: cobra.NoArgs,
	Run:  runClean,
}

func runClean(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	eng, infos := initEngine(ctx)

	results := eng.Clean(ctx, infos, func(done, total int, path string) {
		fmt.Printf("\rcleaning %d/%d", done, total)
	})
	fmt.Println()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			failure("clean failed for %s: %v", res.Info.Name(), res.Err)
		}
	}
	fmt.Printf("Cleaned %d module(s)", len(results)-failed)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
}

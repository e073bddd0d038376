package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch all modules, then merge where safe",
	Long: `Fetch every module's remotes, take a fresh look at the workspace and
merge upstream into every module the merge gate accepts.`,
	Args: cobra.NoArgs,
	Run:  runPull,
}

func runPull(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	eng, infos := initEngine(ctx)

	fetchAll(ctx, eng, infos)

	// The fetch may have moved remote refs; merge from a fresh snapshot.
	infos = eng.Snapshot(ctx)
	mergeAll(ctx, eng, infos)
}

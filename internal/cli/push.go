package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pushDryRun bool

var pushCmd = &cobra.Command{
	Use:     "push",
	Aliases: []string{"p"},
	Short:   "Push every clean, ahead module to its upstream",
	Long: `Push every module whose working tree is clean and whose branch is
strictly ahead of its upstream. Diverged and dirty modules are left
alone.`,
	Args: cobra.NoArgs,
	Run:  runPush,
}

func init() {
	pushCmd.Flags().BoolVarP(&pushDryRun, "dry-run", "n", false, "Show what would be pushed without pushing")
}

func runPush(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	eng, infos := initEngine(ctx)

	results := eng.Push(ctx, infos, pushDryRun, nil)

	green := color.New(color.FgGreen)
	pushed := 0
	for _, res := range results {
		if res.Err != nil {
			failure("push failed for %s: %v", res.Info.Name(), res.Err)
			continue
		}
		pushed++
		green.Printf("%s: %s\n", res.Info.Name(), res.Detail)
	}
	if len(results) == 0 {
		fmt.Println("Nothing to push.")
		return
	}
	if pushDryRun {
		fmt.Printf("\nWould push %d module(s)\n", pushed)
		return
	}
	fmt.Printf("\nPushed %d of %d module(s)\n", pushed, len(results))
}

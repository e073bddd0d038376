package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:     "checkout <branch>",
	Aliases: []string{"ch"},
	Short:   "Switch every module to a branch",
	Long: `Check out the named branch in every module that has it, locally or on
the remote. Modules where the checkout fails are skipped.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheckout,
}

func runCheckout(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	eng, infos := initEngine(ctx)

	results := eng.Checkout(ctx, infos, args[0])
	for _, res := range results {
		fmt.Printf("%s %s\n", res.Info.Name(), res.Info.Branch)
	}
	fmt.Printf("\nChecked out '%s' in %d of %d module(s)\n", args[0], len(results), len(infos))
}

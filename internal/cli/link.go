package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var linkDryRun bool

var linkCmd = &cobra.Command{
	Use:     "link",
	Aliases: []string{"ln"},
	Short:   "Symlink workspace-local dependencies between modules",
	Long: `Replace installed copies of dependencies that live in this workspace
with symlinks to their local checkouts, so edits are visible across
modules immediately.`,
	Args: cobra.NoArgs,
	Run:  runLink,
}

func init() {
	linkCmd.Flags().BoolVarP(&linkDryRun, "dry-run", "n", false, "Show the links without creating them")
}

func runLink(cmd *cobra.Command, args []string) {
	eng, infos := initEngine(context.Background())
	results := eng.Link(infos, linkDryRun)

	green := color.New(color.FgGreen)
	linked := 0
	for _, res := range results {
		for _, l := range res.Links {
			if l.Err != nil {
				failure("link failed for %s -> %s: %v", res.Info.Name(), l.Name, l.Err)
				continue
			}
			linked++
			green.Printf("%s: %s -> %s\n", res.Info.Name(), l.Name, l.Target)
		}
	}
	if linked == 0 {
		fmt.Println("No workspace-local dependencies to link.")
		return
	}
	if linkDryRun {
		fmt.Printf("\nWould create %d link(s)\n", linked)
		return
	}
	fmt.Printf("\nCreated %d link(s)\n", linked)
}

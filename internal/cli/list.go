package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every discovered module",
	Long:    `Print a table of module name, version, path and branch for every module under the configured roots.`,
	Args:    cobra.NoArgs,
	Run:     runList,
}

func runList(cmd *cobra.Command, args []string) {
	_, infos := initEngine(context.Background())
	sortByName(infos)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, m := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name(), m.Version(), m.DisplayPath, m.Branch)
	}
	w.Flush()

	fmt.Printf("\n%d module(s)\n", len(infos))
}

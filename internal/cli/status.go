package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/herd/internal/engine"
	"github.com/kilupskalvis/herd/internal/models"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"s"},
	Short:   "Show modules with pending changes or divergence",
	Long: `Show every module whose working tree has pending changes or whose
branch has diverged from its upstream. Clean, in-sync modules are
omitted.`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	_, infos := initEngine(context.Background())
	sortByName(infos)

	shown := 0
	for _, m := range infos {
		if !engine.WantsStatus(m) {
			continue
		}
		shown++

		fmt.Printf("%s (%s)\n", m.Name(), m.Branch)
		if ab := m.AheadBehind; ab != nil && (ab.Ahead != 0 || ab.Behind != 0) {
			color.New(color.FgYellow).Printf("  ahead %d, behind %d\n", ab.Ahead, ab.Behind)
		}
		for _, entry := range m.Status {
			flagColor(entry.Flag).Printf("  %-2s %s\n", entry.Flag, entry.Path)
		}
	}

	if shown == 0 {
		fmt.Println("All modules clean and in sync.")
	}
}

func flagColor(flag models.StatusFlag) *color.Color {
	switch flag {
	case models.FlagNew:
		return color.New(color.FgGreen)
	case models.FlagModified, models.FlagRenamed, models.FlagTypeChanged:
		return color.New(color.FgYellow)
	case models.FlagDeleted, models.FlagConflicted:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}

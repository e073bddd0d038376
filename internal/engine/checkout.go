package engine

import (
	"context"
	"os"

	"github.com/kilupskalvis/herd/internal/models"
	"github.com/kilupskalvis/herd/internal/workspace"
)

// Checkout switches every module to the named branch. Modules where the
// checkout fails are skipped silently; each survivor is re-snapshotted
// so the caller reports the state it actually ended up in.
func (e *Engine) Checkout(ctx context.Context, infos []*models.ModuleInfo, branch string) []ModuleResult {
	home, _ := os.UserHomeDir()

	var results []ModuleResult
	for _, m := range withRepo(infos) {
		if err := m.Repo.CheckoutBranch(branch, e.cfg.Remote); err != nil {
			continue
		}
		fresh := workspace.Assemble(ctx, m.Path, e.cfg.Remote, home)
		results = append(results, ModuleResult{Info: fresh, Detail: fresh.Branch})
	}
	return results
}

package engine

import (
	"context"

	"github.com/kilupskalvis/herd/internal/models"
)

// Merge integrates the upstream into the local branch for every module
// the merge gate accepts: clean tree, strictly behind, nothing local to
// lose.
func (e *Engine) Merge(ctx context.Context, infos []*models.ModuleInfo) []ModuleResult {
	var results []ModuleResult
	for _, m := range filter(withRepo(infos), CanMerge) {
		results = append(results, ModuleResult{
			Info: m,
			Err:  m.Repo.MergeUpstream(ctx, m.UpstreamBranch()),
		})
	}
	return results
}

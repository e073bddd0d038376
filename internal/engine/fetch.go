package engine

import (
	"context"

	"github.com/kilupskalvis/herd/internal/models"
)

// Fetch downloads refs from every remote of every module, in parallel.
func (e *Engine) Fetch(ctx context.Context, infos []*models.ModuleInfo, progress ProgressFunc) []ModuleResult {
	return e.forEach(ctx, withRepo(infos), progress, func(ctx context.Context, m *models.ModuleInfo) ModuleResult {
		return ModuleResult{Info: m, Err: m.Repo.FetchAll(ctx)}
	})
}

// Clean removes untracked and ignored files from every module.
func (e *Engine) Clean(ctx context.Context, infos []*models.ModuleInfo, progress ProgressFunc) []ModuleResult {
	return e.forEach(ctx, withRepo(infos), progress, func(ctx context.Context, m *models.ModuleInfo) ModuleResult {
		return ModuleResult{Info: m, Err: m.Repo.Clean(ctx)}
	})
}

package engine

import (
	"context"
	"fmt"

	"github.com/kilupskalvis/herd/internal/models"
)

// Push uploads every module that is strictly ahead of its upstream.
// Under dry-run the result describes what would be pushed and no
// process is spawned.
func (e *Engine) Push(ctx context.Context, infos []*models.ModuleInfo, dryRun bool, progress ProgressFunc) []ModuleResult {
	targets := filter(withRepo(infos), CanPush)
	return e.forEach(ctx, targets, progress, func(ctx context.Context, m *models.ModuleInfo) ModuleResult {
		detail := fmt.Sprintf("%d commit(s)", m.AheadBehind.Ahead)
		if dryRun {
			return ModuleResult{Info: m, Detail: detail}
		}
		return ModuleResult{Info: m, Detail: detail, Err: m.Repo.Push(ctx)}
	})
}

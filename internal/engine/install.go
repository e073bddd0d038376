package engine

import (
	"context"
	"strings"

	"github.com/kilupskalvis/herd/internal/models"
)

// Install runs the dependency install for every module, each with a
// module-local cache and without producing a lockfile. Under dry-run
// the result carries the command that would run.
func (e *Engine) Install(ctx context.Context, infos []*models.ModuleInfo, dryRun bool, progress ProgressFunc) []ModuleResult {
	return e.forEach(ctx, infos, progress, func(ctx context.Context, m *models.ModuleInfo) ModuleResult {
		args := installArgs(m.Path)
		detail := "npm " + strings.Join(args, " ")
		if dryRun {
			return ModuleResult{Info: m, Detail: detail}
		}
		return ModuleResult{Info: m, Detail: detail, Err: e.npm.Run(ctx, m.Path, args...)}
	})
}

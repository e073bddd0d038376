// Package engine applies bulk operations across discovered modules.
// Every operation filters its input snapshots through a state predicate
// and acts only on the survivors; per-module failures are recorded in
// the result, never propagated.
package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/kilupskalvis/herd/internal/config"
	"github.com/kilupskalvis/herd/internal/models"
	"github.com/kilupskalvis/herd/internal/workspace"
)

// ProgressFunc is called after each module of a bulk operation
// completes. Safe to call from multiple goroutines is not required;
// the engine serializes calls through an atomic counter.
type ProgressFunc func(done, total int, path string)

// LinkResult is the outcome of creating one dependency symlink.
type LinkResult struct {
	Name   string
	Target string
	Err    error
}

// ModuleResult is the per-module outcome of a bulk operation.
type ModuleResult struct {
	Info   *models.ModuleInfo
	Detail string
	Err    error
	Links  []LinkResult
}

// Engine drives bulk operations over the workspace.
type Engine struct {
	cfg *config.Config
	npm Runner
}

// New creates an engine bound to the given configuration.
func New(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg, npm: execRunner{}}
}

// Snapshot discovers every module under the configured roots and
// assembles a fresh state snapshot for each.
func (e *Engine) Snapshot(ctx context.Context) []*models.ModuleInfo {
	paths := workspace.Discover(e.cfg.Roots)
	return workspace.AssembleAll(ctx, paths, e.cfg.Remote, e.cfg.Jobs)
}

// forEach runs fn for every module with a bounded worker pool and
// reports completion through progress. Results keep the input order.
func (e *Engine) forEach(ctx context.Context, infos []*models.ModuleInfo, progress ProgressFunc,
	fn func(ctx context.Context, info *models.ModuleInfo) ModuleResult) []ModuleResult {

	jobs := e.cfg.Jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([]ModuleResult, len(infos))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, info := range infos {
		i, info := i, info
		g.Go(func() error {
			results[i] = fn(ctx, info)
			if progress != nil {
				progress(int(done.Add(1)), len(infos), info.Path)
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

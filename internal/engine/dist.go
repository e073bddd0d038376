package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kilupskalvis/herd/internal/manifest"
	"github.com/kilupskalvis/herd/internal/models"
)

// publishAttempts bounds the publish retries per module.
const publishAttempts = 5

// publishBackoffInitial is the first retry delay; tests shrink it.
var publishBackoffInitial = 500 * time.Millisecond

// DistNotify is called when a publish attempt fails and will be
// retried.
type DistNotify func(m *models.ModuleInfo, err error, attempt, max int)

// Dist bumps the manifest version of every module the dist gate
// accepts, then commits, tags, pushes the tag and publishes. A failed
// step skips the module's remaining steps; the batch continues.
func (e *Engine) Dist(ctx context.Context, infos []*models.ModuleInfo, bump models.Bump, dryRun bool, notify DistNotify) []ModuleResult {
	targets := filter(infos, func(m *models.ModuleInfo) bool {
		return CanDist(m, e.cfg.Remote)
	})

	var results []ModuleResult
	for _, m := range targets {
		results = append(results, e.distOne(ctx, m, bump, dryRun, notify))
	}
	return results
}

func (e *Engine) distOne(ctx context.Context, m *models.ModuleInfo, bump models.Bump, dryRun bool, notify DistNotify) ModuleResult {
	next, err := bump.Apply(m.Manifest.Version)
	if err != nil {
		return ModuleResult{Info: m, Err: err}
	}

	tag := "v" + next
	detail := "+ " + m.Manifest.Name + "@" + next
	if dryRun {
		return ModuleResult{Info: m, Detail: detail}
	}

	if err := manifest.SetVersion(m.Path, next); err != nil {
		return ModuleResult{Info: m, Err: fmt.Errorf("bump version: %w", err)}
	}
	if err := m.Repo.CommitAll(ctx, tag); err != nil {
		return ModuleResult{Info: m, Err: fmt.Errorf("commit: %w", err)}
	}
	if err := m.Repo.CreateTag(ctx, tag); err != nil {
		return ModuleResult{Info: m, Err: fmt.Errorf("tag: %w", err)}
	}
	if err := m.Repo.PushTag(ctx, e.cfg.Remote, tag); err != nil {
		return ModuleResult{Info: m, Err: fmt.Errorf("push tag: %w", err)}
	}
	if err := e.publish(ctx, m, notify); err != nil {
		return ModuleResult{Info: m, Err: fmt.Errorf("publish: %w", err)}
	}
	return ModuleResult{Info: m, Detail: detail}
}

// publish uploads the module to the registry, retrying transient
// failures with exponential backoff.
func (e *Engine) publish(ctx context.Context, m *models.ModuleInfo, notify DistNotify) error {
	attempt := 0
	op := func() error {
		attempt++
		return e.npm.Run(ctx, m.Path, "publish")
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = publishBackoffInitial
	return backoff.RetryNotify(op,
		backoff.WithContext(backoff.WithMaxRetries(bo, publishAttempts-1), ctx),
		func(err error, _ time.Duration) {
			if notify != nil {
				notify(m, err, attempt, publishAttempts)
			}
		})
}

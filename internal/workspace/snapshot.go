package workspace

import (
	"context"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kilupskalvis/herd/internal/gitx"
	"github.com/kilupskalvis/herd/internal/manifest"
	"github.com/kilupskalvis/herd/internal/models"
)

// Assemble builds the snapshot for one module. The manifest and the
// checkout are read independently: a failure on one side leaves the
// other side's fields intact, and no failure is fatal.
func Assemble(ctx context.Context, path, remote, home string) *models.ModuleInfo {
	info := &models.ModuleInfo{
		Path:        path,
		DisplayPath: CollapseHome(path, home),
	}

	if m, err := manifest.Load(path); err == nil {
		info.Manifest = m
	}
	if l, err := manifest.LoadLock(path); err == nil {
		info.Lockfile = l
	}

	repo, err := gitx.Open(path)
	if err != nil {
		return info
	}
	info.Repo = repo
	info.Origin = repo.RemoteURL(remote)
	info.Branch = repo.CurrentBranch()
	info.Status = repo.WorkingTreeStatus(ctx)
	info.AheadBehind = repo.AheadBehind()
	info.Tags = repo.Tags()
	return info
}

// AssembleAll snapshots every module with a bounded worker pool. The
// result keeps the order of paths.
func AssembleAll(ctx context.Context, paths []string, remote string, jobs int) []*models.ModuleInfo {
	home, _ := os.UserHomeDir()
	if jobs < 1 {
		jobs = 1
	}

	infos := make([]*models.ModuleInfo, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			infos[i] = Assemble(ctx, path, remote, home)
			return nil
		})
	}
	_ = g.Wait()
	return infos
}

// CollapseHome shortens a path by replacing the home prefix with "~".
func CollapseHome(path, home string) string {
	if home == "" || home == "/" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + path[len(home):]
	}
	return path
}

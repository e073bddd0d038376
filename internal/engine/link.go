package engine

import (
	"os"
	"path/filepath"

	"github.com/kilupskalvis/herd/internal/models"
	"github.com/kilupskalvis/herd/internal/workspace"
)

// depDirName is the module-local directory dependency links live in.
const depDirName = "node_modules"

// Link cross-links local modules: for every dependency that resolves to
// another discovered module, a symlink named after the dependency is
// created inside this module's dependency directory. Link failures are
// recorded per link, not per module.
func (e *Engine) Link(infos []*models.ModuleInfo, dryRun bool) []ModuleResult {
	workspace.ComputeSymlinks(infos)

	var results []ModuleResult
	for _, m := range infos {
		if len(m.Symlinks) == 0 {
			continue
		}
		res := ModuleResult{Info: m}
		for _, link := range m.Symlinks {
			lr := LinkResult{Name: link.Name, Target: link.Target}
			if !dryRun {
				lr.Err = createLink(link.Target, filepath.Join(m.Path, depDirName, link.Name))
			}
			res.Links = append(res.Links, lr)
		}
		results = append(results, res)
	}
	return results
}

// createLink replaces whatever sits at linkPath with a symlink to
// target.
func createLink(target, linkPath string) error {
	if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(linkPath); err != nil {
		return err
	}
	return os.Symlink(target, linkPath)
}

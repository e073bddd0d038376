// Package workspace discovers modules under the configured roots and
// assembles their state snapshots.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kilupskalvis/herd/internal/manifest"
)

// classification is the two-variant result of inspecting one directory:
// either it is a module, or it is a container whose children are worth
// descending into.
type classification struct {
	module   bool
	children []string
}

// classify decides whether dir is a module boundary. A module is a
// directory that directly contains both a git checkout and a package
// manifest; discovery never descends below a module.
func classify(dir string) classification {
	if isModule(dir) {
		return classification{module: true}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories are skipped, discovery is best-effort.
		return classification{}
	}

	var children []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		// Dot directories and dependency trees never hold workspace
		// modules and dominate scan time when descended into.
		if strings.HasPrefix(name, ".") || name == "node_modules" {
			continue
		}
		children = append(children, filepath.Join(dir, name))
	}
	return classification{children: children}
}

func isModule(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, manifest.FileName))
	return err == nil && info.Mode().IsRegular()
}

// Discover walks every root and returns the deduplicated, sorted set of
// module paths. Overlapping or repeated roots yield each physical
// module exactly once.
func Discover(roots []string) []string {
	visited := make(map[string]bool)
	var modules []string

	worklist := make([]string, 0, len(roots))
	for _, r := range roots {
		if abs, err := filepath.Abs(r); err == nil {
			worklist = append(worklist, abs)
		}
	}

	for len(worklist) > 0 {
		dir := worklist[0]
		worklist = worklist[1:]
		if visited[dir] {
			continue
		}
		visited[dir] = true

		c := classify(dir)
		if c.module {
			modules = append(modules, dir)
			continue
		}
		worklist = append(worklist, c.children...)
	}

	sort.Strings(modules)
	return modules
}

package workspace

import "github.com/kilupskalvis/herd/internal/models"

// ComputeSymlinks fills the Symlinks field of every snapshot: for each
// module, the declared dependencies that resolve to another discovered
// module, regular dependencies first, both in declaration order. A name
// that appears in both sections yields two entries.
func ComputeSymlinks(infos []*models.ModuleInfo) {
	byName := make(map[string]*models.ModuleInfo)
	for _, info := range infos {
		if info.Manifest != nil && info.Manifest.Name != "" {
			byName[info.Manifest.Name] = info
		}
	}

	for _, info := range infos {
		if info.Manifest == nil {
			continue
		}
		var links []models.Symlink
		for _, section := range [][]string{info.Manifest.DepOrder, info.Manifest.DevDepOrder} {
			for _, name := range section {
				dep, ok := byName[name]
				if !ok || dep == info {
					continue
				}
				links = append(links, models.Symlink{Name: name, Target: dep.Path})
			}
		}
		info.Symlinks = links
	}
}

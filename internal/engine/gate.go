package engine

import "github.com/kilupskalvis/herd/internal/models"

// The gating predicates below decide whether a bulk operation is safe
// to apply to one module. They are deliberately conservative: when the
// ahead/behind pairing is unresolved (nil) every divergence-dependent
// gate refuses the module.

// WantsStatus selects modules worth showing in the status report:
// anything diverged from its upstream or carrying pending changes.
func WantsStatus(m *models.ModuleInfo) bool {
	if m.Dirty() {
		return true
	}
	ab := m.AheadBehind
	return ab != nil && (ab.Ahead != 0 || ab.Behind != 0)
}

// CanMerge selects modules where merging the upstream cannot lose
// local work: tracked branch, clean tree, strictly behind.
func CanMerge(m *models.ModuleInfo) bool {
	if !m.HasUpstream() || m.Dirty() {
		return false
	}
	ab := m.AheadBehind
	return ab != nil && ab.Behind > 0 && ab.Ahead == 0
}

// CanPush selects modules that are strictly ahead of their upstream; a
// module that is also behind needs a merge first.
func CanPush(m *models.ModuleInfo) bool {
	if !m.HasUpstream() {
		return false
	}
	ab := m.AheadBehind
	return ab != nil && ab.Ahead > 0 && ab.Behind == 0
}

// CanDist selects modules that are safe to version-bump and publish:
// on master tracking the remote master, clean, not behind, manifest
// present and not marked private. A module with unpushed local commits
// still qualifies. When a tag for the current manifest version already
// exists it must be an ancestor of HEAD, otherwise HEAD does not carry
// that release.
func CanDist(m *models.ModuleInfo, remote string) bool {
	if m.Repo == nil || m.Manifest == nil || m.Manifest.Private {
		return false
	}
	if m.Branch != "master..."+remote+"/master" {
		return false
	}
	if m.Dirty() {
		return false
	}
	ab := m.AheadBehind
	if ab == nil || ab.Behind != 0 {
		return false
	}

	tag := m.Manifest.VersionTag()
	if !m.HasTag(tag) {
		return true
	}
	return m.Repo.IsDescendantOfHead(tag)
}

// filter returns the modules that satisfy pred.
func filter(infos []*models.ModuleInfo, pred func(*models.ModuleInfo) bool) []*models.ModuleInfo {
	var out []*models.ModuleInfo
	for _, m := range infos {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

// withRepo selects the modules whose checkout opened successfully.
func withRepo(infos []*models.ModuleInfo) []*models.ModuleInfo {
	return filter(infos, func(m *models.ModuleInfo) bool { return m.Repo != nil })
}

package models

import (
	"slices"
	"strings"
)

// Symlink is one locally-resolvable dependency of a module: a link named
// Name inside the module's dependency directory should point at Target.
type Symlink struct {
	Name   string
	Target string
}

// ModuleInfo is the immutable point-in-time snapshot of one module.
// Every field whose source operation failed is left at its zero value
// rather than carrying an error; one module's failure never aborts the
// rest of the batch.
type ModuleInfo struct {
	Path        string
	DisplayPath string

	// Repo is nil when the checkout could not be opened.
	Repo Repo

	// Origin is the URL of the "origin" remote with any credential
	// segment stripped. Empty when unavailable.
	Origin string

	// Branch is "<local>...<upstream>" when an upstream is configured,
	// "<local>" without one, and empty when the repository could not be
	// read or HEAD is detached.
	Branch string

	Status      []StatusEntry
	AheadBehind *AheadBehind
	Tags        []string

	Manifest *Manifest
	Lockfile *Lockfile

	// Symlinks is computed by the dependency linker, not by snapshot
	// assembly.
	Symlinks []Symlink
}

// Name returns the manifest name, or the display path when no manifest
// could be read.
func (m *ModuleInfo) Name() string {
	if m.Manifest == nil || m.Manifest.Name == "" {
		return m.DisplayPath
	}
	return m.Manifest.Name
}

// Version returns the manifest version, or empty.
func (m *ModuleInfo) Version() string {
	if m.Manifest == nil {
		return ""
	}
	return m.Manifest.Version
}

// LocalBranch returns the local part of the branch pairing.
func (m *ModuleInfo) LocalBranch() string {
	local, _, _ := strings.Cut(m.Branch, "...")
	return local
}

// UpstreamBranch returns the upstream part of the branch pairing, or
// empty when no upstream is configured.
func (m *ModuleInfo) UpstreamBranch() string {
	_, upstream, _ := strings.Cut(m.Branch, "...")
	return upstream
}

// HasUpstream reports whether the current branch tracks an upstream.
func (m *ModuleInfo) HasUpstream() bool {
	return strings.Contains(m.Branch, "...")
}

// Dirty reports whether the working tree has pending changes.
func (m *ModuleInfo) Dirty() bool {
	return len(m.Status) > 0
}

// HasTag reports whether the repository carries the given tag.
func (m *ModuleInfo) HasTag(name string) bool {
	return slices.Contains(m.Tags, name)
}

package models

// Manifest is the parsed package manifest of one module. Only the fields
// herd acts on are typed; the full document is rewritten through the
// manifest store when the version is bumped.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`

	// Declaration order of the dependency keys, preserved from the raw
	// document because Go maps do not keep it.
	DepOrder    []string `json:"-"`
	DevDepOrder []string `json:"-"`
}

// VersionedName returns "<name>@<version>".
func (m *Manifest) VersionedName() string {
	return m.Name + "@" + m.Version
}

// VersionTag returns the tag name that marks this manifest version.
func (m *Manifest) VersionTag() string {
	return "v" + m.Version
}

// Lockfile is the parsed package lockfile. Only the version field is
// typed; the rest of the document is opaque to herd.
type Lockfile struct {
	Version string `json:"version"`
}

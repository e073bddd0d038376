package workspace

import (
	"testing"

	"github.com/kilupskalvis/herd/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(name, path string, deps, devDeps []string) *models.ModuleInfo {
	m := &models.Manifest{
		Name:            name,
		Version:         "1.0.0",
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
		DepOrder:        deps,
		DevDepOrder:     devDeps,
	}
	for _, d := range deps {
		m.Dependencies[d] = "*"
	}
	for _, d := range devDeps {
		m.DevDependencies[d] = "*"
	}
	return &models.ModuleInfo{Path: path, Manifest: m}
}

func TestComputeSymlinks(t *testing.T) {
	a := snap("a", "/ws/a", []string{"b", "leftpad"}, nil)
	b := snap("b", "/ws/b", nil, nil)

	ComputeSymlinks([]*models.ModuleInfo{a, b})

	// Only the locally discovered dependency resolves.
	require.Len(t, a.Symlinks, 1)
	assert.Equal(t, models.Symlink{Name: "b", Target: "/ws/b"}, a.Symlinks[0])
	assert.Empty(t, b.Symlinks)
}

func TestComputeSymlinks_OrderRegularBeforeDev(t *testing.T) {
	a := snap("a", "/ws/a", []string{"z", "m"}, []string{"b"})
	z := snap("z", "/ws/z", nil, nil)
	m := snap("m", "/ws/m", nil, nil)
	b := snap("b", "/ws/b", nil, nil)

	ComputeSymlinks([]*models.ModuleInfo{a, z, m, b})

	require.Len(t, a.Symlinks, 3)
	// Declaration order within sections, regular deps first.
	assert.Equal(t, "z", a.Symlinks[0].Name)
	assert.Equal(t, "m", a.Symlinks[1].Name)
	assert.Equal(t, "b", a.Symlinks[2].Name)
}

func TestComputeSymlinks_NameInBothSections(t *testing.T) {
	a := snap("a", "/ws/a", []string{"b"}, []string{"b"})
	b := snap("b", "/ws/b", nil, nil)

	ComputeSymlinks([]*models.ModuleInfo{a, b})

	// One entry per section; sections are not de-duplicated against
	// each other.
	require.Len(t, a.Symlinks, 2)
}

func TestComputeSymlinks_NoManifest(t *testing.T) {
	a := &models.ModuleInfo{Path: "/ws/a"}
	ComputeSymlinks([]*models.ModuleInfo{a})
	assert.Empty(t, a.Symlinks)
}

func TestComputeSymlinks_SelfDependencyIgnored(t *testing.T) {
	a := snap("a", "/ws/a", []string{"a"}, nil)
	ComputeSymlinks([]*models.ModuleInfo{a})
	assert.Empty(t, a.Symlinks)
}

package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeModule creates a directory that classifies as a module: a .git
// directory plus a package manifest.
func makeModule(t *testing.T, dir, name string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name": "`+name+`", "version": "1.0.0"}`), 0644))
	return dir
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()

	a := makeModule(t, filepath.Join(root, "a"), "a")
	c := makeModule(t, filepath.Join(root, "b", "c"), "c")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty", "deeper"), 0755))

	got := Discover([]string{root})
	assert.Equal(t, []string{a, c}, got)
}

func TestDiscover_ModulesDoNotNest(t *testing.T) {
	root := t.TempDir()
	outer := makeModule(t, filepath.Join(root, "outer"), "outer")
	makeModule(t, filepath.Join(outer, "inner"), "inner")

	got := Discover([]string{root})
	require.Equal(t, []string{outer}, got)

	// No returned path is a strict descendant of another returned path.
	for _, a := range got {
		for _, b := range got {
			if a != b {
				assert.False(t, strings.HasPrefix(a, b+string(os.PathSeparator)))
			}
		}
	}
}

func TestDiscover_OverlappingRoots(t *testing.T) {
	root := t.TempDir()
	a := makeModule(t, filepath.Join(root, "a"), "a")
	b := makeModule(t, filepath.Join(root, "sub", "b"), "b")

	got := Discover([]string{root, filepath.Join(root, "sub"), root})
	assert.Equal(t, []string{a, b}, got)
}

func TestDiscover_SkipsDotAndDependencyDirs(t *testing.T) {
	root := t.TempDir()
	makeModule(t, filepath.Join(root, ".hidden", "m"), "hidden")
	makeModule(t, filepath.Join(root, "node_modules", "dep"), "dep")
	app := makeModule(t, filepath.Join(root, "app"), "app")

	got := Discover([]string{root})
	assert.Equal(t, []string{app}, got)
}

func TestDiscover_MissingRoot(t *testing.T) {
	root := t.TempDir()
	a := makeModule(t, filepath.Join(root, "a"), "a")

	got := Discover([]string{filepath.Join(root, "does-not-exist"), root})
	assert.Equal(t, []string{a}, got)
}

func TestClassify_ManifestWithoutRepoIsContainer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{}`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "child"), 0755))

	c := classify(dir)
	assert.False(t, c.module)
	assert.Equal(t, []string{filepath.Join(dir, "child")}, c.children)
}

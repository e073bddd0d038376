package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	c := &Config{}
	c.applyEnv("/a:/b/c")
	assert.Equal(t, []string{"/a", "/b/c"}, c.Roots)

	// Empty segments from doubled or trailing colons are dropped.
	c = &Config{}
	c.applyEnv("/a::/b:")
	assert.Equal(t, []string{"/a", "/b"}, c.Roots)

	// Empty value leaves earlier roots alone.
	c = &Config{Roots: []string{"/keep"}}
	c.applyEnv("")
	assert.Equal(t, []string{"/keep"}, c.Roots)
}

func TestApplyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"roots = [\"/ws\"]\nremote = \"upstream\"\njobs = 2\n"), 0644))

	c := &Config{Remote: "origin", Jobs: defaultJobs}
	c.applyFile(path)
	assert.Equal(t, []string{"/ws"}, c.Roots)
	assert.Equal(t, "upstream", c.Remote)
	assert.Equal(t, 2, c.Jobs)
}

func TestApplyFile_MissingOrBroken(t *testing.T) {
	c := &Config{Remote: "origin", Jobs: defaultJobs}
	c.applyFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, "origin", c.Remote)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0644))
	c.applyFile(path)
	assert.Equal(t, "origin", c.Remote)
	assert.Empty(t, c.Roots)
}

func TestExpandRoots(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	out := expandRoots([]string{"~/code", "/abs", "~"})
	assert.Equal(t, []string{filepath.Join(home, "code"), "/abs", home}, out)
}

func TestLoad_HomeFallback(t *testing.T) {
	t.Setenv(EnvRoots, "")

	cfg := Load()
	assert.True(t, cfg.HomeFallback)
	assert.Len(t, cfg.Roots, 1)
	assert.Equal(t, "origin", cfg.Remote)
	assert.Equal(t, defaultJobs, cfg.Jobs)
}

func TestLoad_EnvWins(t *testing.T) {
	t.Setenv(EnvRoots, "/one:/two")

	cfg := Load()
	assert.False(t, cfg.HomeFallback)
	assert.Equal(t, []string{"/one", "/two"}, cfg.Roots)
}

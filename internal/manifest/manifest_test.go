package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
  "name": "alpha",
  "version": "1.2.3",
  "dependencies": {
    "zeta": "^1.0.0",
    "beta": "~2.1.0"
  },
  "devDependencies": {
    "tap": "*"
  }
}`)

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "alpha", m.Name)
	assert.Equal(t, "1.2.3", m.Version)
	assert.False(t, m.Private)
	assert.Equal(t, "^1.0.0", m.Dependencies["zeta"])

	// Declaration order survives, not map order.
	assert.Equal(t, []string{"zeta", "beta"}, m.DepOrder)
	assert.Equal(t, []string{"tap"}, m.DevDepOrder)
}

func TestLoad_PrivateFlag(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name": "secret", "version": "0.0.1", "private": true}`)

	m, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, m.Private)
	assert.Nil(t, m.DepOrder)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{not json`)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadLock(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LockFileName),
		[]byte(`{"name": "alpha", "version": "1.2.3", "lockfileVersion": 3}`), 0644))

	l, err := LoadLock(dir)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", l.Version)

	_, err = LoadLock(t.TempDir())
	assert.True(t, os.IsNotExist(err))
}

func TestSetVersion(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name": "alpha", "version": "1.2.3", "scripts": {"test": "tap"}}`)

	require.NoError(t, SetVersion(dir, "1.2.4"))

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	// Pretty-printed, newline-terminated.
	assert.True(t, strings.HasSuffix(string(data), "\n"))
	assert.Contains(t, string(data), "  \"version\": \"1.2.4\"")

	// Unrelated fields survive the rewrite.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "1.2.4", doc["version"])
	assert.NotNil(t, doc["scripts"])
}

func TestSetVersion_UpdatesLockfile(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name": "alpha", "version": "1.2.3"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, LockFileName), []byte(`{
  "name": "alpha",
  "version": "1.2.3",
  "lockfileVersion": 3,
  "packages": {
    "": {"name": "alpha", "version": "1.2.3"},
    "node_modules/beta": {"version": "9.9.9"}
  }
}`), 0644))

	require.NoError(t, SetVersion(dir, "2.0.0"))

	l, err := LoadLock(dir)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", l.Version)

	data, err := os.ReadFile(filepath.Join(dir, LockFileName))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	packages := doc["packages"].(map[string]any)
	assert.Equal(t, "2.0.0", packages[""].(map[string]any)["version"])
	// Nested package versions are untouched.
	assert.Equal(t, "9.9.9", packages["node_modules/beta"].(map[string]any)["version"])
}

func TestSetVersion_NoLockfile(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name": "alpha", "version": "1.2.3"}`)

	require.NoError(t, SetVersion(dir, "1.3.0"))

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", m.Version)
}

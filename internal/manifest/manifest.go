// Package manifest reads and rewrites the package manifest and lockfile
// of one module.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kilupskalvis/herd/internal/models"
)

const (
	// FileName is the manifest every module must carry.
	FileName = "package.json"
	// LockFileName is the optional lockfile next to the manifest.
	LockFileName = "package-lock.json"
)

// Load parses the manifest in dir. Dependency declaration order is
// preserved alongside the usual key/value maps.
func Load(dir string) (*models.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}

	var m models.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}

	var sections struct {
		Dependencies    json.RawMessage `json:"dependencies"`
		DevDependencies json.RawMessage `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &sections); err == nil {
		m.DepOrder = objectKeys(sections.Dependencies)
		m.DevDepOrder = objectKeys(sections.DevDependencies)
	}

	return &m, nil
}

// LoadLock parses the lockfile in dir. A missing lockfile is reported
// through os.IsNotExist on the returned error.
func LoadLock(dir string) (*models.Lockfile, error) {
	data, err := os.ReadFile(filepath.Join(dir, LockFileName))
	if err != nil {
		return nil, err
	}

	var l models.Lockfile
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse %s: %w", LockFileName, err)
	}
	return &l, nil
}

// SetVersion rewrites the version field of the manifest in dir, and of
// the lockfile when one is present. Files are written pretty-printed
// with a trailing newline.
func SetVersion(dir, version string) error {
	if err := setVersionIn(filepath.Join(dir, FileName), version); err != nil {
		return err
	}

	lockPath := filepath.Join(dir, LockFileName)
	if _, err := os.Stat(lockPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return setVersionIn(lockPath, version)
}

func setVersionIn(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	doc["version"] = version

	// package-lock.json repeats the version under the root packages entry.
	if packages, ok := doc["packages"].(map[string]any); ok {
		if root, ok := packages[""].(map[string]any); ok {
			root["version"] = version
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	return os.WriteFile(path, out, 0644)
}

// objectKeys returns the keys of a raw JSON object in declaration order.
func objectKeys(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		key, ok := tok.(string)
		if !ok {
			break
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			break
		}
	}
	return keys
}

// Package config resolves where herd looks for modules and how it runs.
// Settings come from an optional TOML file and the HERD_PATH environment
// variable; the environment wins for roots.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvRoots names the environment variable holding a colon-delimited
// list of root paths to scan for modules.
const EnvRoots = "HERD_PATH"

const defaultJobs = 8

// Config is the resolved runtime configuration.
type Config struct {
	Roots  []string `toml:"roots"`
	Remote string   `toml:"remote"`
	Jobs   int      `toml:"jobs"`

	// HomeFallback is set when neither the environment nor the config
	// file named any roots and the user's home directory is scanned
	// instead. The CLI warns about this, scanning $HOME can be slow.
	HomeFallback bool `toml:"-"`
}

// Load resolves the configuration. It never fails: a missing or broken
// config file falls back to defaults, missing roots fall back to the
// home directory.
func Load() *Config {
	cfg := &Config{Remote: "origin", Jobs: defaultJobs}
	cfg.applyFile(filePath())
	cfg.applyEnv(os.Getenv(EnvRoots))

	if len(cfg.Roots) == 0 {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Roots = []string{home}
			cfg.HomeFallback = true
		}
	}
	if cfg.Remote == "" {
		cfg.Remote = "origin"
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = defaultJobs
	}
	return cfg
}

// filePath returns the per-user config file location.
func filePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "herd", "config.toml")
}

// applyFile overlays settings from a TOML file, best-effort.
func (c *Config) applyFile(path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return
	}
	if len(file.Roots) > 0 {
		c.Roots = expandRoots(file.Roots)
	}
	if file.Remote != "" {
		c.Remote = file.Remote
	}
	if file.Jobs > 0 {
		c.Jobs = file.Jobs
	}
}

// applyEnv overlays the colon-delimited root list from the environment.
func (c *Config) applyEnv(value string) {
	if value == "" {
		return
	}
	var roots []string
	for _, p := range strings.Split(value, ":") {
		if p != "" {
			roots = append(roots, p)
		}
	}
	if len(roots) > 0 {
		c.Roots = expandRoots(roots)
	}
}

// expandRoots resolves a leading "~" in each root path.
func expandRoots(roots []string) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return roots
	}
	out := make([]string, len(roots))
	for i, r := range roots {
		if r == "~" {
			r = home
		} else if strings.HasPrefix(r, "~/") {
			r = filepath.Join(home, r[2:])
		}
		out[i] = r
	}
	return out
}

package engine

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// cacheDirName is the module-local cache used by install so modules do
// not fight over a shared cache when installs run in parallel.
const cacheDirName = ".npm-cache"

// Runner executes package-manager commands inside one module.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "npm", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if i := strings.IndexByte(msg, '\n'); i >= 0 {
			msg = msg[:i]
		}
		if msg != "" {
			return fmt.Errorf("npm %s: %s", args[0], msg)
		}
		return fmt.Errorf("npm %s: %w", args[0], err)
	}
	return nil
}

// installArgs builds the dependency-install invocation for one module:
// a module-local cache and no lockfile output.
func installArgs(dir string) []string {
	return []string{"install", "--no-package-lock", "--cache", filepath.Join(dir, cacheDirName)}
}

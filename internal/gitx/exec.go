package gitx

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// run executes an external command inside the checkout and returns its
// combined output. On failure the first line of the output is folded
// into the error so batch reports stay single-line.
func (r *Repo) run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.path
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := firstLine(string(out)); msg != "" {
			return "", fmt.Errorf("%s %s: %s", name, args[0], msg)
		}
		return "", fmt.Errorf("%s %s: %w", name, args[0], err)
	}
	return string(out), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// FetchAll downloads refs from every configured remote.
func (r *Repo) FetchAll(ctx context.Context) error {
	_, err := r.run(ctx, "git", "fetch", "--all")
	return err
}

// MergeUpstream merges the named upstream branch into the checked out
// local branch.
func (r *Repo) MergeUpstream(ctx context.Context, upstream string) error {
	_, err := r.run(ctx, "git", "merge", upstream)
	return err
}

// Push uploads the current branch to its upstream.
func (r *Repo) Push(ctx context.Context) error {
	_, err := r.run(ctx, "git", "push")
	return err
}

// PushTag uploads one tag to the named remote.
func (r *Repo) PushTag(ctx context.Context, remote, tag string) error {
	_, err := r.run(ctx, "git", "push", remote, tag)
	return err
}

// CommitAll stages every tracked change and commits it.
func (r *Repo) CommitAll(ctx context.Context, message string) error {
	_, err := r.run(ctx, "git", "commit", "-am", message)
	return err
}

// CreateTag creates a lightweight tag at HEAD.
func (r *Repo) CreateTag(ctx context.Context, tag string) error {
	_, err := r.run(ctx, "git", "tag", tag)
	return err
}

// Clean removes untracked and ignored files from the working tree.
func (r *Repo) Clean(ctx context.Context) error {
	_, err := r.run(ctx, "git", "clean", "-fdx")
	return err
}

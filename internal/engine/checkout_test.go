package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/herd/internal/models"
)

// newCheckoutFixture initializes a real checkout with a manifest, one
// commit on master and a local "dev" branch.
func newCheckoutFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name": "alpha", "version": "1.0.0"}`), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("package.json")
	require.NoError(t, err)
	_, err = wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	require.NoError(t, wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("dev"),
		Create: true,
	}))
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("master"),
	}))
	return dir
}

func TestCheckout(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	dir := newCheckoutFixture(t)
	info := workspaceSnapshot(ctx, t, dir)
	require.Equal(t, "master", info.Branch)

	results := e.Checkout(ctx, []*models.ModuleInfo{info}, "dev")
	require.Len(t, results, 1)
	// The survivor was re-snapshotted on the new branch.
	assert.Equal(t, "dev", results[0].Info.Branch)
	assert.Equal(t, "dev", results[0].Detail)
}

func TestCheckout_FailuresSilentlySkipped(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	dir := newCheckoutFixture(t)
	info := workspaceSnapshot(ctx, t, dir)

	results := e.Checkout(ctx, []*models.ModuleInfo{info}, "no-such-branch")
	assert.Empty(t, results)

	// The module is untouched.
	fresh := workspaceSnapshot(ctx, t, dir)
	assert.Equal(t, "master", fresh.Branch)
}

// Package gitx exposes the state of one module's git checkout and the
// small set of mutations herd needs. Reads go through go-git; mutations
// that involve the network or merge machinery are delegated to the git
// executable so they use the invoking user's normal credentials.
package gitx

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/kilupskalvis/herd/internal/models"
)

// Repo is a handle to one module's checkout. All read methods return
// zero values instead of errors so that one broken module never aborts
// a batch operation.
type Repo struct {
	path string
	repo *git.Repository
}

// Open opens the checkout rooted at path.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}
	return &Repo{path: path, repo: repo}, nil
}

// Path returns the checkout root.
func (r *Repo) Path() string {
	return r.path
}

// CurrentBranch returns "<local>...<remote>/<branch>" when the checked
// out branch tracks an upstream, just "<local>" when it does not, and
// empty when HEAD is detached or unreadable.
func (r *Repo) CurrentBranch() string {
	head, err := r.repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return ""
	}
	local := head.Name().Short()

	if remote, merge, ok := r.upstreamOf(local); ok {
		return local + "..." + remote + "/" + merge
	}
	return local
}

// upstreamOf resolves the tracking configuration of a local branch.
func (r *Repo) upstreamOf(local string) (remote, merge string, ok bool) {
	cfg, err := r.repo.Config()
	if err != nil {
		return "", "", false
	}
	b, found := cfg.Branches[local]
	if !found || b.Remote == "" || b.Merge == "" {
		return "", "", false
	}
	return b.Remote, b.Merge.Short(), true
}

// AheadBehind counts the commits the local branch and its upstream have
// over each other. It returns nil unless both HEAD and the upstream
// commit resolve; callers distinguish nil from zero counts.
func (r *Repo) AheadBehind() *models.AheadBehind {
	head, err := r.repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return nil
	}

	remote, merge, ok := r.upstreamOf(head.Name().Short())
	if !ok {
		return nil
	}
	upRef, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remote, merge), true)
	if err != nil {
		return nil
	}

	local, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil
	}
	upstream, err := r.repo.CommitObject(upRef.Hash())
	if err != nil {
		return nil
	}

	ahead, err := countExclusive(local, upstream)
	if err != nil {
		return nil
	}
	behind, err := countExclusive(upstream, local)
	if err != nil {
		return nil
	}
	return &models.AheadBehind{Ahead: ahead, Behind: behind}
}

// countExclusive counts commits reachable from c but not from other.
func countExclusive(c, other *object.Commit) (int, error) {
	excluded := make(map[plumbing.Hash]bool)
	err := object.NewCommitPreorderIter(other, nil, nil).ForEach(func(a *object.Commit) error {
		excluded[a.Hash] = true
		return nil
	})
	if err != nil {
		return 0, err
	}

	count := 0
	err = object.NewCommitPreorderIter(c, excluded, nil).ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Tags returns the repository's tag names. Empty on failure.
func (r *Repo) Tags() []string {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil
	}
	var tags []string
	_ = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	return tags
}

// RemoteURL returns the first URL of the named remote with any
// credential segment before '@' removed. Empty when the remote is not
// configured.
func (r *Repo) RemoteURL(name string) string {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return stripCredentials(urls[0])
}

func stripCredentials(url string) string {
	scheme, rest := "", url
	if i := strings.Index(url, "://"); i >= 0 {
		scheme, rest = url[:i+3], url[i+3:]
	}
	if at := strings.Index(rest, "@"); at >= 0 {
		rest = rest[at+1:]
	}
	return scheme + rest
}

// IsDescendantOfHead reports whether the commit named by refName is an
// ancestor of HEAD. False when either side fails to resolve.
func (r *Repo) IsDescendantOfHead(refName string) bool {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(refName))
	if err != nil {
		return false
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return false
	}

	head, err := r.repo.Head()
	if err != nil {
		return false
	}
	headCommit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return false
	}

	ok, err := commit.IsAncestor(headCommit)
	return err == nil && ok
}

// CheckoutBranch switches the working tree to the named local branch.
// When the branch only exists on the given remote, a local branch is
// created from it and set to track it.
func (r *Repo) CheckoutBranch(branch, remote string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return err
	}

	local := plumbing.NewBranchReferenceName(branch)
	if err := wt.Checkout(&git.CheckoutOptions{Branch: local}); err == nil {
		return nil
	}

	remoteRef, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remote, branch), true)
	if err != nil {
		return err
	}
	if err := wt.Checkout(&git.CheckoutOptions{
		Hash:   remoteRef.Hash(),
		Branch: local,
		Create: true,
	}); err != nil {
		return err
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return nil
	}
	cfg.Branches[branch] = &config.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  local,
	}
	return r.repo.SetConfig(cfg)
}

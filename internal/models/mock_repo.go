package models

import (
	"context"
	"fmt"
)

// MockRepo is a mock implementation of Repo for testing.
type MockRepo struct {
	RepoPath string
	Branch   string
	Status   []StatusEntry
	AB       *AheadBehind
	TagList  []string
	Origin   string

	// Descendant controls IsDescendantOfHead per ref name.
	Descendant map[string]bool
	// Errs makes the named mutating operation fail ("merge", "push",
	// "fetch", "clean", "commit", "tag", "push-tag", "checkout").
	Errs map[string]error
	// Calls records every mutating operation in order.
	Calls []string
}

// NewMockRepo creates a MockRepo rooted at path.
func NewMockRepo(path string) *MockRepo {
	return &MockRepo{
		RepoPath:   path,
		Descendant: make(map[string]bool),
		Errs:       make(map[string]error),
	}
}

func (m *MockRepo) record(op string, args ...any) error {
	call := op
	for _, a := range args {
		call += fmt.Sprintf(" %v", a)
	}
	m.Calls = append(m.Calls, call)
	return m.Errs[op]
}

func (m *MockRepo) Path() string         { return m.RepoPath }
func (m *MockRepo) CurrentBranch() string { return m.Branch }

func (m *MockRepo) WorkingTreeStatus(ctx context.Context) []StatusEntry { return m.Status }
func (m *MockRepo) AheadBehind() *AheadBehind                           { return m.AB }
func (m *MockRepo) Tags() []string                                      { return m.TagList }
func (m *MockRepo) RemoteURL(name string) string                        { return m.Origin }

func (m *MockRepo) IsDescendantOfHead(refName string) bool { return m.Descendant[refName] }

func (m *MockRepo) CheckoutBranch(branch, remote string) error {
	if err := m.record("checkout", branch); err != nil {
		return err
	}
	m.Branch = branch + "..." + remote + "/" + branch
	return nil
}

func (m *MockRepo) FetchAll(ctx context.Context) error { return m.record("fetch") }

func (m *MockRepo) MergeUpstream(ctx context.Context, upstream string) error {
	return m.record("merge", upstream)
}

func (m *MockRepo) Push(ctx context.Context) error { return m.record("push") }

func (m *MockRepo) PushTag(ctx context.Context, remote, tag string) error {
	return m.record("push-tag", remote, tag)
}

func (m *MockRepo) CommitAll(ctx context.Context, message string) error {
	return m.record("commit", message)
}

func (m *MockRepo) CreateTag(ctx context.Context, tag string) error {
	return m.record("tag", tag)
}

func (m *MockRepo) Clean(ctx context.Context) error { return m.record("clean") }

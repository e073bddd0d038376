package models

import "context"

// Repo is the capability surface of one module's opened checkout. Read
// methods return zero values on failure; mutating methods return errors
// that callers log without aborting the batch.
type Repo interface {
	Path() string
	CurrentBranch() string
	WorkingTreeStatus(ctx context.Context) []StatusEntry
	AheadBehind() *AheadBehind
	Tags() []string
	RemoteURL(name string) string
	IsDescendantOfHead(refName string) bool

	CheckoutBranch(branch, remote string) error
	FetchAll(ctx context.Context) error
	MergeUpstream(ctx context.Context, upstream string) error
	Push(ctx context.Context) error
	PushTag(ctx context.Context, remote, tag string) error
	CommitAll(ctx context.Context, message string) error
	CreateTag(ctx context.Context, tag string) error
	Clean(ctx context.Context) error
}

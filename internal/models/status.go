package models

// StatusFlag classifies a single pending change in a module's working tree.
type StatusFlag string

const (
	FlagConflicted  StatusFlag = "C"
	FlagDeleted     StatusFlag = "D"
	FlagIgnored     StatusFlag = "I"
	FlagModified    StatusFlag = "M"
	FlagNew         StatusFlag = "??"
	FlagRenamed     StatusFlag = "R"
	FlagTypeChanged StatusFlag = "T"
)

// StatusEntry is one file with a pending change, relative to the module root.
type StatusEntry struct {
	Path string
	Flag StatusFlag
}

// AheadBehind counts commits the local branch has over its upstream and
// vice versa. A nil *AheadBehind means the pairing could not be resolved,
// which gating logic treats differently from zero counts.
type AheadBehind struct {
	Ahead  int
	Behind int
}

package gitx

import (
	"context"
	"strings"

	"github.com/kilupskalvis/herd/internal/models"
)

// WorkingTreeStatus returns one entry per file with pending changes,
// in the order git reports them. Empty on failure.
//
// Parsing the porcelain output keeps status cheap on large trees and
// gives access to the full set of XY codes.
func (r *Repo) WorkingTreeStatus(ctx context.Context) []models.StatusEntry {
	out, err := r.run(ctx, "git", "status", "--porcelain")
	if err != nil {
		return nil
	}
	return parseStatus(out)
}

func parseStatus(out string) []models.StatusEntry {
	var entries []models.StatusEntry
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		x, y := line[0], line[1]
		path := line[3:]
		// Renames carry "old -> new"; the new path is the one acted on.
		if _, after, found := strings.Cut(path, " -> "); found {
			path = after
		}

		if flag, ok := resolveFlag(x, y); ok {
			entries = append(entries, models.StatusEntry{Path: path, Flag: flag})
		}
	}
	return entries
}

// resolveFlag evaluates every flag predicate in a fixed order and keeps
// the last one that matches, so a file with several simultaneous states
// reports exactly one flag.
func resolveFlag(x, y byte) (models.StatusFlag, bool) {
	either := func(code byte) bool { return x == code || y == code }

	var flag models.StatusFlag
	ok := false
	set := func(f models.StatusFlag) { flag, ok = f, true }

	if either('U') || (x == 'D' && y == 'D') || (x == 'A' && y == 'A') {
		set(models.FlagConflicted)
	}
	if either('D') {
		set(models.FlagDeleted)
	}
	if either('!') {
		set(models.FlagIgnored)
	}
	if either('M') {
		set(models.FlagModified)
	}
	if either('?') || either('A') {
		set(models.FlagNew)
	}
	if either('R') {
		set(models.FlagRenamed)
	}
	if either('T') {
		set(models.FlagTypeChanged)
	}
	return flag, ok
}

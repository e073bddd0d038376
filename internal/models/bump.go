package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Bump selects which component of a semantic version to increment.
type Bump string

const (
	BumpMajor Bump = "major"
	BumpMinor Bump = "minor"
	BumpPatch Bump = "patch"
)

// ParseBump validates a user-supplied bump argument.
func ParseBump(s string) (Bump, error) {
	switch Bump(s) {
	case BumpMajor, BumpMinor, BumpPatch:
		return Bump(s), nil
	}
	return "", fmt.Errorf("invalid version bump %q (want major, minor or patch)", s)
}

// Apply increments one component of a "major.minor.patch" version and
// zeroes the components below it.
func (b Bump) Apply(version string) (string, error) {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) != 3 {
		return "", fmt.Errorf("version %q is not major.minor.patch", version)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("version %q is not major.minor.patch", version)
		}
		nums[i] = n
	}

	switch b {
	case BumpMajor:
		nums[0], nums[1], nums[2] = nums[0]+1, 0, 0
	case BumpMinor:
		nums[1], nums[2] = nums[1]+1, 0
	case BumpPatch:
		nums[2]++
	default:
		return "", fmt.Errorf("unknown bump %q", string(b))
	}

	return fmt.Sprintf("%d.%d.%d", nums[0], nums[1], nums[2]), nil
}

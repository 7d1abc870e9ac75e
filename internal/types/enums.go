package types

import (
	"fmt"
	"strings"
)

type DateKind string

const (
	DateKindCreated  DateKind = "created"
	DateKindModified DateKind = "modified"
	DateKindAccessed DateKind = "accessed"
)

// ParseDateKind accepts the full kind name or its single-letter form
// (c, m, a), case-insensitive.
func ParseDateKind(value string) (DateKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "c", "created":
		return DateKindCreated, nil
	case "m", "modified":
		return DateKindModified, nil
	case "a", "accessed":
		return DateKindAccessed, nil
	default:
		return "", fmt.Errorf("unsupported file date type: %q (expected created (c), modified (m), or accessed (a))", value)
	}
}

type EntryKind string

const (
	EntryKindFile    EntryKind = "file"
	EntryKindDir     EntryKind = "dir"
	EntryKindSymlink EntryKind = "symlink"
)

// AgePolicy decides how multiple enabled timestamp kinds combine when
// judging whether a file is old enough.
type AgePolicy string

const (
	// AgePolicyAll deletes only when every enabled timestamp is older
	// than the cutoff.
	AgePolicyAll AgePolicy = "all"
	// AgePolicyAny deletes when at least one enabled timestamp is
	// older than the cutoff.
	AgePolicyAny AgePolicy = "any"
)

type Outcome string

const (
	OutcomeDeleted           Outcome = "deleted"
	OutcomeWouldDelete       Outcome = "would_delete"
	OutcomeSkippedTooYoung   Outcome = "skipped_too_young"
	OutcomeSkippedIgnored    Outcome = "skipped_ignored"
	OutcomeSkippedDepthRange Outcome = "skipped_out_of_depth_range"
	OutcomeErrored           Outcome = "errored"
)

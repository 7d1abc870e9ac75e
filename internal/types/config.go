package types

import "time"

// ScanConfig is the compiled, validated form of a clean request. It is
// built once before traversal begins and never mutated afterwards.
type ScanConfig struct {
	Roots              []string
	IgnoredPaths       []string
	DateKinds          []DateKind
	AgePolicy          AgePolicy
	MinDepth           int
	// MaxDepth < 0 means unbounded.
	MaxDepth           int
	DeleteEmptyFolders bool
	FollowSymlinks     bool
	DryRun             bool
}

// WalkOptions controls a single tree traversal.
type WalkOptions struct {
	// MaxDepth < 0 means unbounded. Directories at MaxDepth are still
	// yielded but never descended into.
	MaxDepth       int
	FollowSymlinks bool
}

// Entry is one traversal step. Depth is relative to the walked root
// (the root itself is depth 0). Err is set when the entry could not be
// read (unreadable directory, broken symlink, cycle); such entries
// carry no reliable Kind.
type Entry struct {
	Path  string
	Kind  EntryKind
	Depth int
	Err   error
}

// WalkFunc receives each entry in depth-first preorder. Returning
// fs.SkipDir for a directory entry prevents descending into it.
type WalkFunc func(Entry) error

// FileTimes holds the timestamps available for an entry. Each kind is
// optional; availability depends on the platform and filesystem.
type FileTimes struct {
	Created    time.Time
	Modified   time.Time
	Accessed   time.Time
	CreatedOK  bool
	ModifiedOK bool
	AccessedOK bool
}

// Get returns the timestamp for the given kind and whether it is
// available.
func (t FileTimes) Get(kind DateKind) (time.Time, bool) {
	switch kind {
	case DateKindCreated:
		return t.Created, t.CreatedOK
	case DateKindModified:
		return t.Modified, t.ModifiedOK
	case DateKindAccessed:
		return t.Accessed, t.AccessedOK
	default:
		return time.Time{}, false
	}
}

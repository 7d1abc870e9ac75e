package ports

import (
	"context"

	"agesweep/internal/types"
)

// WalkerPort produces a lazy depth-first traversal of a directory
// tree. Entries are delivered one at a time so callers can act on them
// without the whole tree in memory; fn returning fs.SkipDir prunes a
// directory, any other error aborts the walk and is returned as-is.
// Unreadable entries are delivered with Entry.Err set rather than
// aborting the walk.
type WalkerPort interface {
	Walk(ctx context.Context, root string, opts types.WalkOptions, fn types.WalkFunc) error
}

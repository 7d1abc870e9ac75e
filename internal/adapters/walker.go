package adapters

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"agesweep/internal/ports"
	"agesweep/internal/types"
)

// FSWalker walks a directory tree depth-first using an explicit stack,
// so arbitrarily deep trees cannot exhaust the call stack and
// cancellation is observed between entries. The walked root is depth 0
// and is yielded first; directories at MaxDepth are yielded but not
// descended into.
//
// Symlinks are yielded as leaf entries unless FollowSymlinks is set,
// in which case a symlink pointing at a directory is traversed as that
// directory. When following, the resolved identities of directories
// currently open on the traversal stack are tracked; re-entering one
// yields a single errored entry instead of looping.
type FSWalker struct{}

func NewFSWalker() FSWalker {
	return FSWalker{}
}

type walkFrame struct {
	path     string
	depth    int
	realPath string
	entries  []fs.DirEntry
	next     int
}

func (w FSWalker) Walk(ctx context.Context, root string, opts types.WalkOptions, fn types.WalkFunc) error {
	root = filepath.Clean(root)

	info, err := os.Lstat(root)
	if err != nil {
		return fn(types.Entry{Path: root, Depth: 0, Err: err})
	}
	rootEntry := classifyEntry(root, 0, info.Mode().Type(), opts.FollowSymlinks)
	if err := fn(rootEntry); err != nil {
		if errors.Is(err, fs.SkipDir) {
			return nil
		}
		return err
	}
	if rootEntry.Err != nil || rootEntry.Kind != types.EntryKindDir {
		return nil
	}

	open := map[string]struct{}{}
	var stack []*walkFrame
	stack, err = pushFrame(stack, open, root, 0, opts, fn)
	if err != nil {
		return err
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame := stack[len(stack)-1]
		if frame.next >= len(frame.entries) {
			delete(open, frame.realPath)
			stack = stack[:len(stack)-1]
			continue
		}
		child := frame.entries[frame.next]
		frame.next++

		path := filepath.Join(frame.path, child.Name())
		depth := frame.depth + 1
		entry := classifyEntry(path, depth, child.Type(), opts.FollowSymlinks)
		if err := fn(entry); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
		if entry.Err != nil || entry.Kind != types.EntryKindDir {
			continue
		}
		if opts.MaxDepth >= 0 && depth >= opts.MaxDepth {
			continue
		}
		stack, err = pushFrame(stack, open, path, depth, opts, fn)
		if err != nil {
			return err
		}
	}
	return nil
}

// classifyEntry resolves the kind of a traversal step. A symlink
// pointing at a directory counts as a directory only when following
// symlinks; a broken symlink under follow mode is an errored entry.
func classifyEntry(path string, depth int, mode fs.FileMode, follow bool) types.Entry {
	entry := types.Entry{Path: path, Depth: depth}
	switch {
	case mode&fs.ModeSymlink != 0:
		if !follow {
			entry.Kind = types.EntryKindSymlink
			return entry
		}
		target, err := os.Stat(path)
		if err != nil {
			entry.Err = fmt.Errorf("resolving symlink: %w", err)
			return entry
		}
		if target.IsDir() {
			entry.Kind = types.EntryKindDir
		} else {
			entry.Kind = types.EntryKindFile
		}
	case mode.IsDir():
		entry.Kind = types.EntryKindDir
	default:
		entry.Kind = types.EntryKindFile
	}
	return entry
}

// pushFrame opens a directory for traversal. Read failures and symlink
// cycles are delivered to fn as errored entries for that subtree and
// do not abort the walk.
func pushFrame(stack []*walkFrame, open map[string]struct{}, path string, depth int, opts types.WalkOptions, fn types.WalkFunc) ([]*walkFrame, error) {
	realPath := path
	if opts.FollowSymlinks {
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return stack, fn(types.Entry{Path: path, Depth: depth, Err: fmt.Errorf("resolving directory: %w", err)})
		}
		if _, ok := open[resolved]; ok {
			return stack, fn(types.Entry{Path: path, Depth: depth, Err: fmt.Errorf("symlink cycle via %s", resolved)})
		}
		realPath = resolved
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return stack, fn(types.Entry{Path: path, Depth: depth, Err: err})
	}
	open[realPath] = struct{}{}
	return append(stack, &walkFrame{path: path, depth: depth, realPath: realPath, entries: entries}), nil
}

var _ ports.WalkerPort = FSWalker{}

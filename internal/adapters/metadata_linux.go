//go:build linux

package adapters

import (
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/sys/unix"

	"agesweep/internal/ports"
	"agesweep/internal/types"
)

// MetadataAdapter reads timestamps via statx so birth time is
// available where the kernel and filesystem expose it (STATX_BTIME).
// Symlinks are never followed; a link's own timestamps are returned.
type MetadataAdapter struct{}

func NewMetadataAdapter() MetadataAdapter {
	return MetadataAdapter{}
}

func (a MetadataAdapter) FileTimes(path string) (types.FileTimes, error) {
	var stx unix.Statx_t
	mask := unix.STATX_BTIME | unix.STATX_MTIME | unix.STATX_ATIME
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, mask, &stx); err != nil {
		return types.FileTimes{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat " + path).
			WithCause(err)
	}
	times := types.FileTimes{}
	if stx.Mask&unix.STATX_BTIME != 0 {
		times.Created = statxTime(stx.Btime)
		times.CreatedOK = true
	}
	if stx.Mask&unix.STATX_MTIME != 0 {
		times.Modified = statxTime(stx.Mtime)
		times.ModifiedOK = true
	}
	if stx.Mask&unix.STATX_ATIME != 0 {
		times.Accessed = statxTime(stx.Atime)
		times.AccessedOK = true
	}
	return times, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}

var _ ports.MetadataPort = MetadataAdapter{}

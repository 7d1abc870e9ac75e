//go:build darwin

package adapters

import (
	"os"
	"syscall"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"agesweep/internal/ports"
	"agesweep/internal/types"
)

// MetadataAdapter reads timestamps from the BSD stat structure, which
// carries a real birth time. Symlinks are never followed.
type MetadataAdapter struct{}

func NewMetadataAdapter() MetadataAdapter {
	return MetadataAdapter{}
}

func (a MetadataAdapter) FileTimes(path string) (types.FileTimes, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return types.FileTimes{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat " + path).
			WithCause(err)
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return types.FileTimes{Modified: info.ModTime(), ModifiedOK: true}, nil
	}
	return types.FileTimes{
		Created:    timespecTime(stat.Birthtimespec),
		Modified:   timespecTime(stat.Mtimespec),
		Accessed:   timespecTime(stat.Atimespec),
		CreatedOK:  true,
		ModifiedOK: true,
		AccessedOK: true,
	}, nil
}

func timespecTime(ts syscall.Timespec) time.Time {
	return time.Unix(ts.Sec, ts.Nsec)
}

var _ ports.MetadataPort = MetadataAdapter{}

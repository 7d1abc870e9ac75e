//go:build windows

package adapters

import (
	"os"
	"syscall"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"agesweep/internal/ports"
	"agesweep/internal/types"
)

// MetadataAdapter reads timestamps from the Win32 file attribute data,
// which carries creation, last-write, and last-access times.
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
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return types.FileTimes{Modified: info.ModTime(), ModifiedOK: true}, nil
	}
	return types.FileTimes{
		Created:    filetimeTime(attrs.CreationTime),
		Modified:   filetimeTime(attrs.LastWriteTime),
		Accessed:   filetimeTime(attrs.LastAccessTime),
		CreatedOK:  true,
		ModifiedOK: true,
		AccessedOK: true,
	}, nil
}

func filetimeTime(ft syscall.Filetime) time.Time {
	return time.Unix(0, ft.Nanoseconds())
}

var _ ports.MetadataPort = MetadataAdapter{}

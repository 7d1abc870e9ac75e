package ports

import "agesweep/internal/types"

// MetadataPort reads the timestamps of a path without following
// symlinks. Kinds the platform or filesystem cannot provide are
// reported as unavailable, never zero-valued.
type MetadataPort interface {
	FileTimes(path string) (types.FileTimes, error)
}

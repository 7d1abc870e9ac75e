package core

import (
	"fmt"
	"time"

	"agesweep/internal/types"
)

// OlderThan reports whether an entry qualifies as old enough for
// removal. Under AgePolicyAll every enabled timestamp kind must be
// strictly older than the cutoff; under AgePolicyAny one suffices. A
// kind that is enabled but unavailable for this entry yields an error
// in either mode, so ambiguity never resolves toward deletion.
func OlderThan(times types.FileTimes, kinds []types.DateKind, policy types.AgePolicy, cutoff time.Time) (bool, error) {
	if len(kinds) == 0 {
		return false, fmt.Errorf("no file date types enabled")
	}
	anyOld := false
	for _, kind := range kinds {
		stamp, ok := times.Get(kind)
		if !ok {
			return false, fmt.Errorf("%s timestamp unavailable", kind)
		}
		if stamp.Before(cutoff) {
			anyOld = true
			continue
		}
		if policy != types.AgePolicyAny {
			return false, nil
		}
	}
	if policy == types.AgePolicyAny {
		return anyOld, nil
	}
	return true, nil
}

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agesweep/internal/types"
)

func TestOlderThanSingleKind(t *testing.T) {
	cutoff := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	times := types.FileTimes{Modified: cutoff.AddDate(0, 0, -40), ModifiedOK: true}

	old, err := OlderThan(times, []types.DateKind{types.DateKindModified}, types.AgePolicyAll, cutoff)
	require.NoError(t, err)
	assert.True(t, old)
}

func TestOlderThanAllPolicy(t *testing.T) {
	// With created+modified enabled, an old created stamp alone is not
	// enough: the recent modified stamp must keep the file.
	cutoff := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	times := types.FileTimes{
		Created:    cutoff.AddDate(-1, 0, 0),
		Modified:   cutoff.AddDate(0, 0, 2),
		CreatedOK:  true,
		ModifiedOK: true,
	}
	kinds := []types.DateKind{types.DateKindCreated, types.DateKindModified}

	old, err := OlderThan(times, kinds, types.AgePolicyAll, cutoff)
	require.NoError(t, err)
	assert.False(t, old)

	times.Modified = cutoff.AddDate(0, 0, -2)
	old, err = OlderThan(times, kinds, types.AgePolicyAll, cutoff)
	require.NoError(t, err)
	assert.True(t, old)
}

func TestOlderThanAnyPolicy(t *testing.T) {
	cutoff := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	times := types.FileTimes{
		Created:    cutoff.AddDate(-1, 0, 0),
		Modified:   cutoff.AddDate(0, 0, 2),
		CreatedOK:  true,
		ModifiedOK: true,
	}
	kinds := []types.DateKind{types.DateKindCreated, types.DateKindModified}

	old, err := OlderThan(times, kinds, types.AgePolicyAny, cutoff)
	require.NoError(t, err)
	assert.True(t, old)

	times.Created = cutoff.AddDate(0, 0, 1)
	old, err = OlderThan(times, kinds, types.AgePolicyAny, cutoff)
	require.NoError(t, err)
	assert.False(t, old)
}

func TestOlderThanEqualToCutoffIsNotOlder(t *testing.T) {
	cutoff := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	times := types.FileTimes{Modified: cutoff, ModifiedOK: true}

	old, err := OlderThan(times, []types.DateKind{types.DateKindModified}, types.AgePolicyAll, cutoff)
	require.NoError(t, err)
	assert.False(t, old)
}

func TestOlderThanUnavailableKind(t *testing.T) {
	cutoff := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	times := types.FileTimes{Modified: cutoff.AddDate(0, 0, -40), ModifiedOK: true}

	old, err := OlderThan(times, []types.DateKind{types.DateKindCreated}, types.AgePolicyAll, cutoff)
	require.Error(t, err)
	assert.False(t, old)
	assert.Contains(t, err.Error(), "created")
}

func TestOlderThanNoKinds(t *testing.T) {
	cutoff := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	old, err := OlderThan(types.FileTimes{}, nil, types.AgePolicyAll, cutoff)
	require.Error(t, err)
	assert.False(t, old)
}

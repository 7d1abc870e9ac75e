package adapters

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
}

func TestMoveToTrashRelocatesFile(t *testing.T) {
	work := t.TempDir()
	trash := TrashAdapter{Dir: filepath.Join(work, "Trash"), Clock: fixedClock}
	victim := filepath.Join(work, "old.txt")
	require.NoError(t, os.WriteFile(victim, []byte("content"), 0644))

	require.NoError(t, trash.MoveToTrash(victim))

	_, err := os.Lstat(victim)
	assert.True(t, os.IsNotExist(err))

	moved, err := os.ReadFile(filepath.Join(work, "Trash", "files", "old.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(moved))

	info, err := os.ReadFile(filepath.Join(work, "Trash", "info", "old.txt.trashinfo"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "[Trash Info]")
	assert.Contains(t, string(info), "Path="+victim)
	assert.Contains(t, string(info), "DeletionDate=2026-08-30T10:30:00")
}

func TestMoveToTrashCollisionGetsFreshName(t *testing.T) {
	work := t.TempDir()
	trash := TrashAdapter{Dir: filepath.Join(work, "Trash"), Clock: fixedClock}

	first := filepath.Join(work, "a", "dup.txt")
	second := filepath.Join(work, "b", "dup.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(first), 0755))
	require.NoError(t, os.MkdirAll(filepath.Dir(second), 0755))
	require.NoError(t, os.WriteFile(first, []byte("1"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("2"), 0644))

	require.NoError(t, trash.MoveToTrash(first))
	require.NoError(t, trash.MoveToTrash(second))

	entries, err := os.ReadDir(filepath.Join(work, "Trash", "files"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestMoveToTrashDirectory(t *testing.T) {
	work := t.TempDir()
	trash := TrashAdapter{Dir: filepath.Join(work, "Trash"), Clock: fixedClock}
	dir := filepath.Join(work, "folder")
	require.NoError(t, os.MkdirAll(dir, 0755))

	require.NoError(t, trash.MoveToTrash(dir))

	_, err := os.Lstat(dir)
	assert.True(t, os.IsNotExist(err))
	moved, err := os.Stat(filepath.Join(work, "Trash", "files", "folder"))
	require.NoError(t, err)
	assert.True(t, moved.IsDir())
}

func TestMoveToTrashMissingFile(t *testing.T) {
	work := t.TempDir()
	trash := TrashAdapter{Dir: filepath.Join(work, "Trash"), Clock: fixedClock}

	err := trash.MoveToTrash(filepath.Join(work, "nope.txt"))
	assert.Error(t, err)
}

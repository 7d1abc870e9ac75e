// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteFileAged creates a file with the given content and backdates its
// modification and access times by the given age.
func WriteFileAged(t *testing.T, path, content string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
}

// TrashHome creates a throwaway trash directory layout and returns its
// root. Files moved to trash during a test land under it.
func TrashHome(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Trash")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	return dir
}

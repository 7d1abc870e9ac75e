package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agesweep/internal/types"
)

func validRequest(t *testing.T) CleanRequest {
	t.Helper()
	return CleanRequest{
		DeleteBefore:  30 * 24 * time.Hour,
		TargetFolders: []string{t.TempDir()},
		MaxDepth:      -1,
	}
}

func TestCompileConfigDefaults(t *testing.T) {
	cfg, err := compileConfig(validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, []types.DateKind{types.DateKindCreated, types.DateKindModified}, cfg.DateKinds)
	assert.Equal(t, 0, cfg.MinDepth)
	assert.Equal(t, -1, cfg.MaxDepth)
}

func TestCompileConfigDateKindAliases(t *testing.T) {
	req := validRequest(t)
	req.FileDateTypes = []string{"c", "M", "accessed", "modified"}

	cfg, err := compileConfig(req)
	require.NoError(t, err)
	assert.Equal(t, []types.DateKind{
		types.DateKindCreated,
		types.DateKindModified,
		types.DateKindAccessed,
	}, cfg.DateKinds)
}

func TestCompileConfigUnknownDateKind(t *testing.T) {
	req := validRequest(t)
	req.FileDateTypes = []string{"touched"}

	_, err := compileConfig(req)
	assert.Error(t, err)
}

func TestCompileConfigRequiresPositiveAge(t *testing.T) {
	req := validRequest(t)
	req.DeleteBefore = 0

	_, err := compileConfig(req)
	assert.Error(t, err)
}

func TestCompileConfigMissingRoot(t *testing.T) {
	req := validRequest(t)
	req.TargetFolders = []string{filepath.Join(t.TempDir(), "nope")}

	_, err := compileConfig(req)
	assert.Error(t, err)
}

func TestCompileConfigRootMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	req := validRequest(t)
	req.TargetFolders = []string{file}

	_, err := compileConfig(req)
	assert.Error(t, err)
}

func TestCompileConfigRejectsNestedRoots(t *testing.T) {
	outer := t.TempDir()
	inner := filepath.Join(outer, "inner")
	require.NoError(t, os.MkdirAll(inner, 0755))

	req := validRequest(t)
	req.TargetFolders = []string{outer, inner}

	_, err := compileConfig(req)
	assert.Error(t, err)
}

func TestCompileConfigRejectsDuplicateRoots(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(t)
	req.TargetFolders = []string{dir, dir}

	_, err := compileConfig(req)
	assert.Error(t, err)
}

func TestCompileConfigDepthRange(t *testing.T) {
	req := validRequest(t)
	req.MinDepth = 3
	req.MaxDepth = 2

	_, err := compileConfig(req)
	assert.Error(t, err)

	req.MinDepth = -1
	req.MaxDepth = -1
	_, err = compileConfig(req)
	assert.Error(t, err)

	req.MinDepth = 2
	req.MaxDepth = 2
	_, err = compileConfig(req)
	assert.NoError(t, err)
}

func TestCompileConfigIgnoredPathMustExist(t *testing.T) {
	req := validRequest(t)
	req.IgnoredPaths = []string{filepath.Join(t.TempDir(), "gone")}

	_, err := compileConfig(req)
	assert.Error(t, err)
}

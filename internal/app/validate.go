package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"agesweep/internal/core"
	"agesweep/internal/policies"
	"agesweep/internal/types"
)

// compileConfig validates a clean request and builds the immutable
// scan configuration. All configuration errors surface here, before
// any traversal or filesystem mutation.
func compileConfig(req CleanRequest) (types.ScanConfig, error) {
	if req.DeleteBefore <= 0 {
		return types.ScanConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("delete-before must be a positive age")
	}
	if len(req.TargetFolders) == 0 {
		return types.ScanConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one target folder is required")
	}

	roots := make([]string, 0, len(req.TargetFolders))
	for _, folder := range req.TargetFolders {
		root, err := normalizePath(folder)
		if err != nil {
			return types.ScanConfig{}, err
		}
		info, err := os.Stat(root)
		if err != nil {
			return types.ScanConfig{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("target folder does not exist: " + root).
				WithCause(err)
		}
		if !info.IsDir() {
			return types.ScanConfig{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("target folder is not a directory: " + root)
		}
		roots = append(roots, root)
	}
	if err := rejectOverlappingRoots(roots); err != nil {
		return types.ScanConfig{}, err
	}

	kinds, err := compileDateKinds(req.FileDateTypes)
	if err != nil {
		return types.ScanConfig{}, err
	}
	agePolicy, err := policies.ParseAgePolicy(req.AgePolicy)
	if err != nil {
		return types.ScanConfig{}, err
	}

	ignored := make([]string, 0, len(req.IgnoredPaths))
	for _, path := range req.IgnoredPaths {
		normalized, err := normalizePath(path)
		if err != nil {
			return types.ScanConfig{}, err
		}
		if _, err := os.Stat(normalized); err != nil {
			return types.ScanConfig{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("ignored path does not exist: " + normalized).
				WithCause(err)
		}
		ignored = append(ignored, normalized)
	}

	if req.MinDepth < 0 {
		return types.ScanConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("min-depth must not be negative")
	}
	if req.MaxDepth >= 0 && req.MinDepth > req.MaxDepth {
		return types.ScanConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("min-depth must be less than or equal to max-depth")
	}

	return types.ScanConfig{
		Roots:              roots,
		IgnoredPaths:       ignored,
		DateKinds:          kinds,
		AgePolicy:          agePolicy,
		MinDepth:           req.MinDepth,
		MaxDepth:           req.MaxDepth,
		DeleteEmptyFolders: req.DeleteEmptyFolders,
		FollowSymlinks:     req.FollowSymbolicLinks,
		DryRun:             req.DryRun,
	}, nil
}

// compileDateKinds normalizes and deduplicates the configured
// timestamp kinds, defaulting to created+modified.
func compileDateKinds(values []string) ([]types.DateKind, error) {
	if len(values) == 0 {
		return []types.DateKind{types.DateKindCreated, types.DateKindModified}, nil
	}
	seen := map[types.DateKind]struct{}{}
	kinds := make([]types.DateKind, 0, len(values))
	for _, value := range values {
		kind, err := types.ParseDateKind(value)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(err.Error())
		}
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// rejectOverlappingRoots refuses configurations where one target root
// equals or nests inside another, which would race the same files
// through two walks.
func rejectOverlappingRoots(roots []string) error {
	for i, root := range roots {
		matcher := core.NewPathMatcher([]string{root})
		for j, other := range roots {
			if i == j {
				continue
			}
			if matcher.IsIgnored(other) {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("target folders overlap: " + root + " and " + other)
			}
		}
	}
	return nil
}

func normalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("path must not be empty")
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve path " + trimmed).
			WithCause(err)
	}
	return filepath.Clean(abs), nil
}

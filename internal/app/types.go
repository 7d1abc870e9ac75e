package app

import (
	"time"

	"agesweep/internal/types"
)

type CleanRequest struct {
	DeleteBefore        time.Duration
	TargetFolders       []string
	FileDateTypes       []string
	AgePolicy           string
	IgnoredPaths        []string
	MinDepth            int
	// MaxDepth < 0 means unbounded.
	MaxDepth            int
	DeleteEmptyFolders  bool
	FollowSymbolicLinks bool
	DryRun              bool
	ReportFile          string
}

type CleanResult struct {
	Report types.Report
}

package app

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"agesweep/internal/core"
	"agesweep/internal/types"
)

type dirRecord struct {
	path  string
	depth int
}

// Clean walks each target folder, moves qualifying files to trash (or
// reports them in dry-run mode), and optionally removes directories
// that are empty afterwards. The cutoff instant is computed exactly
// once so a long scan cannot drift with wall-clock time. Per-entry
// failures are recorded and never abort the run; only configuration
// errors do, and those surface before any filesystem mutation.
func (s Service) Clean(ctx context.Context, req CleanRequest) (CleanResult, error) {
	cfg, err := compileConfig(req)
	if err != nil {
		return CleanResult{}, err
	}
	for _, root := range cfg.Roots {
		assert.NotEmpty(ctx, root, "target root must be resolved")
	}

	now := timeNow(s.Clock)
	cutoff := now.Add(-req.DeleteBefore)
	runID := uuid.NewString()
	matcher := core.NewPathMatcher(cfg.IgnoredPaths)

	log.Info().
		Str("run_id", runID).
		Time("cutoff", cutoff).
		Strs("target_folders", cfg.Roots).
		Strs("ignored_paths", cfg.IgnoredPaths).
		Str("age_policy", string(cfg.AgePolicy)).
		Int("min_depth", cfg.MinDepth).
		Int("max_depth", cfg.MaxDepth).
		Bool("delete_empty_folders", cfg.DeleteEmptyFolders).
		Bool("follow_symbolic_links", cfg.FollowSymlinks).
		Bool("dry_run", cfg.DryRun).
		Msg("starting clean")

	interrupted := false
	collectors := make([]*types.ReportCollector, 0, len(cfg.Roots))
	for _, root := range cfg.Roots {
		collector := types.NewReportCollector()
		collectors = append(collectors, collector)
		if interrupted {
			break
		}
		interrupted = s.cleanRoot(ctx, root, cfg, cutoff, matcher, collector)
	}

	merged := types.NewReportCollector()
	for _, collector := range collectors {
		merged.Merge(collector)
	}
	report := merged.Summary(runID, cfg.DryRun, interrupted)

	if req.ReportFile != "" {
		if err := s.ReportWriter.WriteReport(req.ReportFile, report); err != nil {
			return CleanResult{}, err
		}
	}
	log.Info().
		Str("run_id", runID).
		Int("deleted", report.Counts[types.OutcomeDeleted]).
		Int("would_delete", report.Counts[types.OutcomeWouldDelete]).
		Int("errored", report.Counts[types.OutcomeErrored]).
		Msg("clean finished")
	return CleanResult{Report: report}, nil
}

// cleanRoot runs the file pass and, if configured, the empty-folder
// pass for a single target root. Returns true when the run was
// interrupted by the caller's context.
func (s Service) cleanRoot(ctx context.Context, root string, cfg types.ScanConfig, cutoff time.Time, matcher core.PathMatcher, collector *types.ReportCollector) bool {
	// Paths already deleted (or simulated deleted) this run; the
	// empty-folder pass subtracts these from live listings.
	removed := map[string]struct{}{}
	var dirs []dirRecord

	opts := types.WalkOptions{MaxDepth: cfg.MaxDepth, FollowSymlinks: cfg.FollowSymlinks}
	err := s.Walker.Walk(ctx, root, opts, func(entry types.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return s.evaluate(entry, root, cfg, cutoff, matcher, collector, removed, &dirs)
	})
	if err != nil {
		// The walker only propagates the callback's error, and the
		// callback only errors on cancellation.
		return true
	}
	if !cfg.DeleteEmptyFolders {
		return false
	}
	return s.removeEmptyDirs(ctx, cfg, matcher, dirs, removed, collector)
}

// evaluate applies the ignore, depth, and age policies to one entry
// and performs (or simulates) the trash move for qualifying files.
// Ignored directories return fs.SkipDir so the walker prunes them
// instead of merely filtering their contents.
func (s Service) evaluate(entry types.Entry, root string, cfg types.ScanConfig, cutoff time.Time, matcher core.PathMatcher, collector *types.ReportCollector, removed map[string]struct{}, dirs *[]dirRecord) error {
	if entry.Err != nil {
		collector.Record(entry.Path, types.OutcomeErrored, entry.Err.Error())
		log.Warn().Str("path", entry.Path).Err(entry.Err).Msg("traversal error")
		return nil
	}
	if matcher.IsIgnored(entry.Path) {
		collector.Record(entry.Path, types.OutcomeSkippedIgnored, "")
		if entry.Kind == types.EntryKindDir {
			return fs.SkipDir
		}
		return nil
	}
	if entry.Kind == types.EntryKindDir {
		if entry.Path != root {
			*dirs = append(*dirs, dirRecord{path: entry.Path, depth: entry.Depth})
		}
		return nil
	}
	if entry.Depth < cfg.MinDepth || (cfg.MaxDepth >= 0 && entry.Depth > cfg.MaxDepth) {
		collector.Record(entry.Path, types.OutcomeSkippedDepthRange, "")
		return nil
	}
	times, err := s.Metadata.FileTimes(entry.Path)
	if err != nil {
		collector.Record(entry.Path, types.OutcomeErrored, err.Error())
		log.Warn().Str("path", entry.Path).Err(err).Msg("failed to read timestamps")
		return nil
	}
	old, err := core.OlderThan(times, cfg.DateKinds, cfg.AgePolicy, cutoff)
	if err != nil {
		collector.Record(entry.Path, types.OutcomeErrored, err.Error())
		return nil
	}
	if !old {
		collector.Record(entry.Path, types.OutcomeSkippedTooYoung, "")
		log.Debug().Str("path", entry.Path).Msg("too young")
		return nil
	}
	if cfg.DryRun {
		collector.Record(entry.Path, types.OutcomeWouldDelete, "")
		removed[entry.Path] = struct{}{}
		log.Info().Str("path", entry.Path).Msg("would delete file")
		return nil
	}
	if err := s.Trash.MoveToTrash(entry.Path); err != nil {
		collector.Record(entry.Path, types.OutcomeErrored, err.Error())
		log.Warn().Str("path", entry.Path).Err(err).Msg("failed to move file to trash")
		return nil
	}
	collector.Record(entry.Path, types.OutcomeDeleted, "")
	removed[entry.Path] = struct{}{}
	log.Info().Str("path", entry.Path).Msg("deleted file")
	return nil
}

// removeEmptyDirs walks the directories seen during the file pass in
// decreasing depth order, so removing a child can cascade into its
// parent becoming empty within the same pass. Target roots themselves
// are never removed. Returns true when interrupted.
func (s Service) removeEmptyDirs(ctx context.Context, cfg types.ScanConfig, matcher core.PathMatcher, dirs []dirRecord, removed map[string]struct{}, collector *types.ReportCollector) bool {
	sort.SliceStable(dirs, func(i, j int) bool {
		return dirs[i].depth > dirs[j].depth
	})
	for _, dir := range dirs {
		if ctx.Err() != nil {
			return true
		}
		if matcher.IsIgnored(dir.path) {
			continue
		}
		empty, err := s.dirEmpty(dir.path, cfg.DryRun, removed)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			collector.Record(dir.path, types.OutcomeErrored, err.Error())
			continue
		}
		if !empty {
			continue
		}
		if cfg.DryRun {
			collector.Record(dir.path, types.OutcomeWouldDelete, "empty folder")
			removed[dir.path] = struct{}{}
			log.Info().Str("path", dir.path).Msg("would delete empty folder")
			continue
		}
		if err := s.Trash.MoveToTrash(dir.path); err != nil {
			collector.Record(dir.path, types.OutcomeErrored, err.Error())
			log.Warn().Str("path", dir.path).Err(err).Msg("failed to move folder to trash")
			continue
		}
		collector.Record(dir.path, types.OutcomeDeleted, "empty folder")
		removed[dir.path] = struct{}{}
		log.Info().Str("path", dir.path).Msg("deleted empty folder")
	}
	return false
}

// dirEmpty re-derives emptiness by listing. In dry-run mode no real
// mutation happened, so entries already reported as removed this run
// are subtracted from the live listing instead.
func (s Service) dirEmpty(path string, dryRun bool, removed map[string]struct{}) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}
	if !dryRun {
		return len(entries) == 0, nil
	}
	for _, entry := range entries {
		if _, ok := removed[filepath.Join(path, entry.Name())]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now()
	}
	return clock()
}

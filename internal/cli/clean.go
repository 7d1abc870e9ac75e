package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"agesweep/internal/adapters"
	"agesweep/internal/app"
	"agesweep/internal/types"
)

type cleanOptions struct {
	DeleteBefore        string
	TargetFolders       []string
	FileDateTypes       []string
	AgePolicy           string
	IgnoredPaths        []string
	MinDepth            int
	MaxDepth            int
	DeleteEmptyFolders  bool
	FollowSymbolicLinks bool
	DryRun              bool
	ReportFile          string
}

func newCleanCommand() *cobra.Command {
	opts := cleanOptions{}
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Move files older than the given age to trash",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.DeleteBefore, "delete-before", "", "Delete files older than this age (e.g. 30d, 1y6M)")
	cmd.Flags().StringSliceVar(&opts.TargetFolders, "target-folder", nil, "Folder to delete files from (repeatable)")
	cmd.Flags().StringSliceVar(&opts.FileDateTypes, "file-date-type", []string{"created", "modified"}, "Timestamp kinds to compare: created (c), modified (m), accessed (a)")
	cmd.Flags().StringVar(&opts.AgePolicy, "age-policy", "all", "How multiple date types combine: all timestamps old, or any")
	cmd.Flags().StringSliceVar(&opts.IgnoredPaths, "ignored-path", nil, "Path to exclude; files inside excluded folders are never deleted")
	cmd.Flags().IntVar(&opts.MinDepth, "min-depth", 0, "Minimum depth to consider files for deletion")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", -1, "Maximum depth to search (-1 = unbounded)")
	cmd.Flags().BoolVar(&opts.DeleteEmptyFolders, "delete-empty-folders", false, "Delete folders that are empty after the file pass")
	cmd.Flags().BoolVar(&opts.FollowSymbolicLinks, "follow-symbolic-links", false, "Traverse symlinked directories")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Only report which files would be deleted")
	cmd.Flags().StringVar(&opts.ReportFile, "report-file", "", "Write the run report as YAML to this path")

	_ = viper.BindPFlag("delete_before", cmd.Flags().Lookup("delete-before"))
	_ = viper.BindPFlag("target_folders", cmd.Flags().Lookup("target-folder"))
	_ = viper.BindPFlag("file_date_types", cmd.Flags().Lookup("file-date-type"))
	_ = viper.BindPFlag("age_policy", cmd.Flags().Lookup("age-policy"))
	_ = viper.BindPFlag("ignored_paths", cmd.Flags().Lookup("ignored-path"))
	_ = viper.BindPFlag("min_depth", cmd.Flags().Lookup("min-depth"))
	_ = viper.BindPFlag("max_depth", cmd.Flags().Lookup("max-depth"))
	_ = viper.BindPFlag("delete_empty_folders", cmd.Flags().Lookup("delete-empty-folders"))
	_ = viper.BindPFlag("follow_symbolic_links", cmd.Flags().Lookup("follow-symbolic-links"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("report_file", cmd.Flags().Lookup("report-file"))

	return cmd
}

func runClean(ctx context.Context, cmd *cobra.Command, opts cleanOptions) error {
	age, err := adapters.ParseAge(resolveString(cmd, opts.DeleteBefore, "delete_before", "delete-before"))
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Clean(ctx, app.CleanRequest{
		DeleteBefore:        age,
		TargetFolders:       resolveStrings(cmd, opts.TargetFolders, "target_folders", "target-folder"),
		FileDateTypes:       resolveStrings(cmd, opts.FileDateTypes, "file_date_types", "file-date-type"),
		AgePolicy:           resolveString(cmd, opts.AgePolicy, "age_policy", "age-policy"),
		IgnoredPaths:        resolveStrings(cmd, opts.IgnoredPaths, "ignored_paths", "ignored-path"),
		MinDepth:            resolveInt(cmd, opts.MinDepth, "min_depth", "min-depth"),
		MaxDepth:            resolveInt(cmd, opts.MaxDepth, "max_depth", "max-depth"),
		DeleteEmptyFolders:  resolveBool(cmd, opts.DeleteEmptyFolders, "delete_empty_folders", "delete-empty-folders"),
		FollowSymbolicLinks: resolveBool(cmd, opts.FollowSymbolicLinks, "follow_symbolic_links", "follow-symbolic-links"),
		DryRun:              resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
		ReportFile:          resolveString(cmd, opts.ReportFile, "report_file", "report-file"),
	})
	if err != nil {
		return err
	}
	printSummary(result.Report)
	return nil
}

func printSummary(report types.Report) {
	if report.DryRun {
		fmt.Printf("dry-run: would delete %d, too young %d, ignored %d, out of depth range %d, errored %d\n",
			report.Counts[types.OutcomeWouldDelete],
			report.Counts[types.OutcomeSkippedTooYoung],
			report.Counts[types.OutcomeSkippedIgnored],
			report.Counts[types.OutcomeSkippedDepthRange],
			report.Counts[types.OutcomeErrored])
	} else {
		fmt.Printf("deleted %d, too young %d, ignored %d, out of depth range %d, errored %d\n",
			report.Counts[types.OutcomeDeleted],
			report.Counts[types.OutcomeSkippedTooYoung],
			report.Counts[types.OutcomeSkippedIgnored],
			report.Counts[types.OutcomeSkippedDepthRange],
			report.Counts[types.OutcomeErrored])
	}
	if report.Interrupted {
		fmt.Println("run was interrupted; some entries were not evaluated")
	}
	for _, record := range report.Errored {
		fmt.Printf("error: %s: %s\n", record.Path, record.Reason)
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

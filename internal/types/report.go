package types

// Record is the outcome of evaluating a single entry. Records are
// immutable once appended.
type Record struct {
	Path    string  `yaml:"path"`
	Outcome Outcome `yaml:"outcome"`
	Reason  string  `yaml:"reason,omitempty"`
}

// Report is the end-of-run summary. Dry runs and real runs produce
// structurally identical reports differing only in whether deleted or
// would_delete outcomes appear.
type Report struct {
	RunID       string          `yaml:"run_id"`
	DryRun      bool            `yaml:"dry_run"`
	Interrupted bool            `yaml:"interrupted,omitempty"`
	Counts      map[Outcome]int `yaml:"counts"`
	Records     []Record        `yaml:"records"`
	Errored     []Record        `yaml:"errored,omitempty"`
}

// ReportCollector accumulates per-entry outcomes in traversal order.
// Append-only, no deduplication. Collectors are not safe for
// concurrent use; keep one per walked root and merge afterwards.
type ReportCollector struct {
	records []Record
}

func NewReportCollector() *ReportCollector {
	return &ReportCollector{}
}

func (c *ReportCollector) Record(path string, outcome Outcome, reason string) {
	c.records = append(c.records, Record{Path: path, Outcome: outcome, Reason: reason})
}

// Merge appends another collector's records after this one's,
// preserving each collector's internal order.
func (c *ReportCollector) Merge(other *ReportCollector) {
	if other == nil {
		return
	}
	c.records = append(c.records, other.records...)
}

// Records returns the accumulated records in append order.
func (c *ReportCollector) Records() []Record {
	return c.records
}

// Summary builds the final report from the accumulated records.
func (c *ReportCollector) Summary(runID string, dryRun bool, interrupted bool) Report {
	report := Report{
		RunID:       runID,
		DryRun:      dryRun,
		Interrupted: interrupted,
		Counts:      map[Outcome]int{},
		Records:     append([]Record(nil), c.records...),
	}
	for _, record := range c.records {
		report.Counts[record.Outcome]++
		if record.Outcome == OutcomeErrored {
			report.Errored = append(report.Errored, record)
		}
	}
	return report
}

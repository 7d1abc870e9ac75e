package ports

import "agesweep/internal/types"

// ReportWriterPort persists a run report.
type ReportWriterPort interface {
	WriteReport(path string, report types.Report) error
}

package repositories

import (
	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// ReportSink renders a tabular report into a downloadable file. Implementations
// own the output format (CSV, XLSX) but not the row content or ordering, which
// the export service fixes before rendering.
type ReportSink interface {
	// Render produces the file for the given header and data rows. fileBase is
	// the file name without extension; the sink appends its own.
	Render(fileBase string, headers []string, rows [][]string) (*domain.ExportFile, error)
}

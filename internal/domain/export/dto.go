package export

import (
	"context"
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Result is a generated document ready to stream to the client.
type Result struct {
	FileName    string
	ContentType string
	Data        []byte
}

type ExportService interface {
	// ExportEmployees renders the employee directory (csv or xlsx).
	ExportEmployees(ctx context.Context, format Format) (Result, error)

	// ExportRoster renders roster entries in the filter range
	// (csv, xlsx or pdf).
	ExportRoster(ctx context.Context, filter roster.ListRosterEntriesFilter, format Format) (Result, error)

	// ExportTimesheets renders timesheets in the filter range
	// (csv, xlsx or pdf).
	ExportTimesheets(ctx context.Context, filter timesheet.ListTimesheetsFilter, format Format) (Result, error)

	// ExportAnalyticsSummary renders the dashboard numbers as a PDF.
	ExportAnalyticsSummary(ctx context.Context, startDate, endDate string) (Result, error)
}

// ContentTypeFor maps a format to its MIME type.
func ContentTypeFor(format Format) string {
	switch format {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// FileNameFor builds a timestamped unique file name like
// roster-20240610-1a2b3c4d.xlsx.
func FileNameFor(prefix string, format Format, now time.Time, unique string) string {
	return prefix + "-" + now.Format("20060102") + "-" + unique + "." + string(format)
}

package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// Generate Employee Search Report
	GenerateEmployeeSearchReport(ctx context.Context, req EmployeeSearchRequest) (EmployeeSearchReport, error)

	// Generate Employee Shift History
	GenerateEmployeeHistoryReport(ctx context.Context, req EmployeeHistoryRequest) (EmployeeHistoryReport, error)

	// Generate Shift Acceptance Report
	GenerateShiftAcceptanceReport(ctx context.Context, req ShiftAcceptanceRequest) (ShiftAcceptanceReport, error)
}

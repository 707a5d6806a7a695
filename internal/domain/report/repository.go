package report

import (
	"context"
	"time"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// Employee Search Report (with current status on the reference day)
	GetEmployeeSearchRows(ctx context.Context, req EmployeeSearchRequest, date time.Time) ([]EmployeeSearchRow, error)

	// Employee Shift History
	GetEmployeeHistoryRows(ctx context.Context, employeeID string, start, end *time.Time) ([]EmployeeHistoryRow, error)

	// Shift Acceptance Report
	GetShiftAcceptanceRows(ctx context.Context, start, end time.Time) ([]ShiftAcceptanceRow, error)
}

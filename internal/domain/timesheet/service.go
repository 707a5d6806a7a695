package timesheet

import (
	"context"
)

type TimesheetService interface {
	// GenerateTimesheets scans approved roster entries in the range and
	// creates one pending timesheet per entry that lacks one. Idempotent.
	GenerateTimesheets(ctx context.Context, req GenerateTimesheetsRequest) (GenerateTimesheetsResponse, error)

	GetTimesheet(ctx context.Context, id string) (TimesheetResponse, error)
	ListTimesheets(ctx context.Context, filter ListTimesheetsFilter) ([]TimesheetResponse, error)
	ApproveTimesheet(ctx context.Context, id string) error
	RejectTimesheet(ctx context.Context, id string) error
	AcceptTimesheet(ctx context.Context, id string, employeeID string) error
}

package timesheet

import (
	"context"
)

// TimesheetRepository - interface for timesheets table
type TimesheetRepository interface {
	Create(ctx context.Context, ts Timesheet) (Timesheet, error)
	GetByID(ctx context.Context, id string) (Timesheet, error)
	List(ctx context.Context, filter ListTimesheetsFilter) ([]Timesheet, error)
	UpdateStatus(ctx context.Context, id string, status TimesheetStatus) error
	Delete(ctx context.Context, id string) error

	// ExistsForRoster backs the generator's one-timesheet-per-roster-entry
	// invariant.
	ExistsForRoster(ctx context.Context, rosterID string) (bool, error)
}

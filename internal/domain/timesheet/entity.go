package timesheet

import "time"

type TimesheetStatus string

const (
	TimesheetStatusPending  TimesheetStatus = "pending"
	TimesheetStatusApproved TimesheetStatus = "approved"
	TimesheetStatusAccepted TimesheetStatus = "accepted"
	TimesheetStatusRejected TimesheetStatus = "rejected"
)

// Timesheet is derived from exactly one approved roster entry; at most
// one timesheet exists per roster entry.
type Timesheet struct {
	ID          string
	EmployeeID  string
	RosterID    string
	Date        time.Time
	HoursWorked float64
	Status      TimesheetStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joins (for responses)
	EmployeeName *string
	ShiftName    *string
}

package timesheet

import "errors"

var (
	ErrTimesheetNotFound   = errors.New("timesheet not found")
	ErrTimesheetNotOwned   = errors.New("timesheet belongs to another employee")
	ErrInvalidStatus       = errors.New("invalid timesheet status")
	ErrTimesheetNotPending = errors.New("timesheet is not pending")
)

package roster

import "errors"

var (
	ErrShiftNotFound          = errors.New("shift not found")
	ErrShiftNameExists        = errors.New("shift with this name already exists")
	ErrShiftInUse             = errors.New("shift is referenced by roster entries")
	ErrRosterEntryNotFound    = errors.New("roster entry not found")
	ErrRosterEntryExists      = errors.New("roster entry already exists for this employee and date")
	ErrRosterEntryNotApproved = errors.New("roster entry is not approved")
	ErrRosterEntryNotOwned    = errors.New("roster entry belongs to another employee")
	ErrInvalidEntryStatus     = errors.New("invalid roster entry status")
)

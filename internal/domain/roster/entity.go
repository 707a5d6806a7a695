package roster

import "time"

// OnLeaveShiftName is the canonical shift used when materializing
// authorised leave onto the roster.
const OnLeaveShiftName = "On Leave"

type Shift struct {
	ID        string
	Name      string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Hours     float64
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RosterEntryStatus string

const (
	RosterEntryStatusPending  RosterEntryStatus = "pending"
	RosterEntryStatusApproved RosterEntryStatus = "approved"
	RosterEntryStatusRejected RosterEntryStatus = "rejected"
	RosterEntryStatusAccepted RosterEntryStatus = "accepted"
)

// RosterEntry is a single employee/date/shift assignment. For
// leave-derived entries the intended invariant is one entry per
// (employee, date), enforced by both an existence check and a
// store-level uniqueness constraint.
type RosterEntry struct {
	ID                     string
	EmployeeID             string
	ShiftID                string
	Date                   time.Time
	Hours                  float64
	Status                 RosterEntryStatus
	AreaOfResponsibilityID *string
	Notes                  *string
	AcceptedAt             *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// Joins (for responses)
	EmployeeName *string
	ShiftName    *string
	ShiftColor   *string
}

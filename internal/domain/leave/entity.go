package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeUnpaid LeaveType = "unpaid"
	LeaveTypeSick   LeaveType = "sick"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending    LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved   LeaveRequestStatus = "approved"
	LeaveRequestStatusAuthorised LeaveRequestStatus = "authorised"
	LeaveRequestStatusRejected   LeaveRequestStatus = "rejected"
)

// IsTerminal reports whether no further transition is defined out of the status.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == LeaveRequestStatusAuthorised || s == LeaveRequestStatusRejected
}

type LeaveAction string

const (
	LeaveActionApprove   LeaveAction = "approve"
	LeaveActionReject    LeaveAction = "reject"
	LeaveActionAuthorise LeaveAction = "authorise"
)

// LeaveRequest entity. Dates are inclusive; Days is derived as
// end - start + 1 whole days. RemainingDaysSnapshot is the employee's
// computed remaining balance as of the last status-changing action;
// it is an audit artifact, never read back as authoritative.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	StartDate time.Time
	EndDate   time.Time
	Days      int

	Reason *string
	Status LeaveRequestStatus

	ApprovedBy   *string
	ApprovedAt   *time.Time
	AuthorisedBy *string
	AuthorisedAt *time.Time

	ActionComment         *string
	RemainingDaysSnapshot decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joins (for responses)
	EmployeeName *string
}

// SpanDays returns the inclusive whole-day count between two dates.
func SpanDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// EachDay returns every calendar day in the inclusive span, ascending.
func (r *LeaveRequest) EachDay() []time.Time {
	days := make([]time.Time, 0, r.Days)
	for d := r.StartDate; !d.After(r.EndDate); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// AppendComment appends an audit line to the action comment trail.
func (r *LeaveRequest) AppendComment(actorID string, action LeaveAction, comment string, at time.Time) {
	line := at.Format("2006-01-02 15:04:05") + " " + actorID + " " + string(action)
	if comment != "" {
		line += ": " + comment
	}
	if r.ActionComment == nil || *r.ActionComment == "" {
		r.ActionComment = &line
		return
	}
	joined := *r.ActionComment + "\n" + line
	r.ActionComment = &joined
}

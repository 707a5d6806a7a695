package leave

import (
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/pkg/validator"
)

type SubmitLeaveRequestRequest struct {
	EmployeeID string  `json:"-"` // From JWT
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *SubmitLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	// Leave type
	if !validator.IsInSlice(r.LeaveType, []string{string(LeaveTypePaid), string(LeaveTypeUnpaid), string(LeaveTypeSick)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of paid, unpaid, sick",
		})
	}

	// Start date
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	// End date
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TransitionLeaveRequestRequest struct {
	RequestID string `json:"-"` // From URL
	ActorID   string `json:"-"` // From JWT
	Action    string `json:"action"`
	Comment   string `json:"comment,omitempty"`
}

func (r *TransitionLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	// The action token itself is checked by the state machine so an
	// unknown value surfaces as ErrInvalidAction, not a field error.
	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListLeaveRequestsFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *time.Time
	EndDate    *time.Time
}

type LeaveRequestResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	EmployeeName          *string `json:"employee_name,omitempty"`
	LeaveType             string  `json:"leave_type"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	Days                  int     `json:"days"`
	Reason                *string `json:"reason,omitempty"`
	Status                string  `json:"status"`
	ApprovedBy            *string `json:"approved_by,omitempty"`
	ApprovedAt            *string `json:"approved_at,omitempty"`
	AuthorisedBy          *string `json:"authorised_by,omitempty"`
	AuthorisedAt          *string `json:"authorised_at,omitempty"`
	ActionComment         *string `json:"action_comment,omitempty"`
	RemainingDaysSnapshot string  `json:"remaining_days_snapshot"`
	CreatedAt             string  `json:"created_at"`
}

// TransitionLeaveRequestResponse carries the updated request plus any
// non-fatal materialization warnings (days skipped because a roster
// entry already existed).
type TransitionLeaveRequestResponse struct {
	Request  LeaveRequestResponse `json:"request"`
	Warnings []string             `json:"warnings,omitempty"`
}

type LeaveBalanceResponse struct {
	EmployeeID     string `json:"employee_id"`
	Allocation     string `json:"allocation"`
	AuthorisedDays string `json:"authorised_days"`
	Remaining      string `json:"remaining"`
}

// ToResponse converts a LeaveRequest entity to its API representation.
func (r *LeaveRequest) ToResponse() LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:                    r.ID,
		EmployeeID:            r.EmployeeID,
		EmployeeName:          r.EmployeeName,
		LeaveType:             string(r.LeaveType),
		StartDate:             r.StartDate.Format("2006-01-02"),
		EndDate:               r.EndDate.Format("2006-01-02"),
		Days:                  r.Days,
		Reason:                r.Reason,
		Status:                string(r.Status),
		ApprovedBy:            r.ApprovedBy,
		AuthorisedBy:          r.AuthorisedBy,
		ActionComment:         r.ActionComment,
		RemainingDaysSnapshot: r.RemainingDaysSnapshot.String(),
		CreatedAt:             r.CreatedAt.Format(time.RFC3339),
	}
	if r.ApprovedAt != nil {
		t := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &t
	}
	if r.AuthorisedAt != nil {
		t := r.AuthorisedAt.Format(time.RFC3339)
		resp.AuthorisedAt = &t
	}
	return resp
}

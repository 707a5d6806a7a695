package timesheet

import (
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/pkg/validator"
)

type GenerateTimesheetsRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *GenerateTimesheetsRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

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

// GenerateTimesheetsResponse reports only what was newly created;
// re-running over an overlapping range is safe.
type GenerateTimesheetsResponse struct {
	Created int `json:"created"`
}

type ListTimesheetsFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *time.Time
	EndDate    *time.Time
}

type TimesheetResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	RosterID     string  `json:"roster_id"`
	ShiftName    *string `json:"shift_name,omitempty"`
	Date         string  `json:"date"`
	HoursWorked  float64 `json:"hours_worked"`
	Status       string  `json:"status"`
}

func (t *Timesheet) ToResponse() TimesheetResponse {
	return TimesheetResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		EmployeeName: t.EmployeeName,
		RosterID:     t.RosterID,
		ShiftName:    t.ShiftName,
		Date:         t.Date.Format("2006-01-02"),
		HoursWorked:  t.HoursWorked,
		Status:       t.Status.String(),
	}
}

func (s TimesheetStatus) String() string { return string(s) }

package report

import (
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/pkg/validator"
)

// ========================================
// EMPLOYEE SEARCH REPORT
// ========================================

type EmployeeSearchRequest struct {
	Search        string  `json:"search"`
	SkillID       *string `json:"skill_id,omitempty"`
	LicenseID     *string `json:"license_id,omitempty"`
	Role          *string `json:"role,omitempty"`
	AreaID        *string `json:"area_id,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	Date          *string `json:"date,omitempty"` // current-status reference day, default today
}

func (r *EmployeeSearchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeStatus is the employee's situation on the reference day.
const (
	EmployeeStatusOnShift   = "On Shift"
	EmployeeStatusOnLeave   = "On Leave"
	EmployeeStatusAvailable = "Available"
)

type EmployeeSearchRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	Designation   *string `json:"designation,omitempty"`
	Area          *string `json:"area,omitempty"`
	CurrentStatus string  `json:"current_status"`
	ShiftName     *string `json:"shift_name,omitempty"` // set when on shift
}

type EmployeeSearchReport struct {
	Date        string              `json:"date"`
	GeneratedAt string              `json:"generated_at"`
	Employees   []EmployeeSearchRow `json:"employees"`
}

// ========================================
// EMPLOYEE SHIFT HISTORY
// ========================================

type EmployeeHistoryRequest struct {
	EmployeeID string  `json:"-"` // From URL
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

func (r *EmployeeHistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	var start, end time.Time
	var startOK, endOK bool
	if r.StartDate != nil {
		start, startOK = validator.IsValidDate(*r.StartDate)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		end, endOK = validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
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

type EmployeeHistoryRow struct {
	Date       string  `json:"date"`
	ShiftName  string  `json:"shift_name"`
	Hours      float64 `json:"hours"`
	Status     string  `json:"status"`
	AcceptedAt *string `json:"accepted_at,omitempty"`
}

type EmployeeHistoryReport struct {
	EmployeeID   string               `json:"employee_id"`
	EmployeeName string               `json:"employee_name"`
	GeneratedAt  string               `json:"generated_at"`
	TotalHours   float64              `json:"total_hours"`
	Entries      []EmployeeHistoryRow `json:"entries"`
}

// ========================================
// SHIFT ACCEPTANCE REPORT
// ========================================

type ShiftAcceptanceRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *ShiftAcceptanceRequest) Validate() error {
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

type ShiftAcceptanceRow struct {
	ShiftID      string  `json:"shift_id"`
	ShiftName    string  `json:"shift_name"`
	Assigned     int64   `json:"assigned"`
	Accepted     int64   `json:"accepted"`
	AcceptedRate float64 `json:"accepted_rate"` // 0..100
}

type ShiftAcceptanceReport struct {
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
	GeneratedAt string               `json:"generated_at"`
	Shifts      []ShiftAcceptanceRow `json:"shifts"`
}

package roster

import (
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name      string  `json:"name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Hours     float64 `json:"hours"`
	Color     string  `json:"color"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	// Times
	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	// Hours
	if r.Hours < 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}

	// Color
	if !validator.IsEmpty(r.Color) && !validator.IsValidHexColor(r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a hex color like #3498db",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID        string   `json:"-"` // From URL
	Name      *string  `json:"name,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	EndTime   *string  `json:"end_time,omitempty"`
	Hours     *float64 `json:"hours,omitempty"`
	Color     *string  `json:"color,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}
	if r.Hours != nil && (*r.Hours < 0 || *r.Hours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}
	if r.Color != nil && !validator.IsValidHexColor(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a hex color like #3498db",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateRosterEntryRequest struct {
	EmployeeID             string  `json:"employee_id"`
	ShiftID                string  `json:"shift_id"`
	Date                   string  `json:"date"`
	Hours                  float64 `json:"hours"`
	AreaOfResponsibilityID *string `json:"area_of_responsibility_id,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
}

func (r *CreateRosterEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.Hours < 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRosterEntriesFilter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *string
	AreaID     *string
}

type ShiftResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Hours     float64 `json:"hours"`
	Color     string  `json:"color"`
}

func (s *Shift) ToResponse() ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Hours:     s.Hours,
		Color:     s.Color,
	}
}

type RosterEntryResponse struct {
	ID                     string  `json:"id"`
	EmployeeID             string  `json:"employee_id"`
	EmployeeName           *string `json:"employee_name,omitempty"`
	ShiftID                string  `json:"shift_id"`
	ShiftName              *string `json:"shift_name,omitempty"`
	ShiftColor             *string `json:"shift_color,omitempty"`
	Date                   string  `json:"date"`
	Hours                  float64 `json:"hours"`
	Status                 string  `json:"status"`
	AreaOfResponsibilityID *string `json:"area_of_responsibility_id,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
	AcceptedAt             *string `json:"accepted_at,omitempty"`
}

func (e *RosterEntry) ToResponse() RosterEntryResponse {
	resp := RosterEntryResponse{
		ID:                     e.ID,
		EmployeeID:             e.EmployeeID,
		EmployeeName:           e.EmployeeName,
		ShiftID:                e.ShiftID,
		ShiftName:              e.ShiftName,
		ShiftColor:             e.ShiftColor,
		Date:                   e.Date.Format("2006-01-02"),
		Hours:                  e.Hours,
		Status:                 string(e.Status),
		AreaOfResponsibilityID: e.AreaOfResponsibilityID,
		Notes:                  e.Notes,
	}
	if e.AcceptedAt != nil {
		t := e.AcceptedAt.Format(time.RFC3339)
		resp.AcceptedAt = &t
	}
	return resp
}

package employee

import (
	"fmt"
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// licenseExpiryWindow is the lookahead used to flag licenses as
// expiring soon in responses.
const licenseExpiryWindow = 30 * 24 * time.Hour

type CreateEmployeeRequest struct {
	Email                  string  `json:"email"`
	Name                   string  `json:"name"`
	Surname                string  `json:"surname"`
	EmployeeCode           *string `json:"employee_code,omitempty"`
	ContactNo              *string `json:"contact_no,omitempty"`
	Role                   string  `json:"role"`
	DesignationID          *string `json:"designation_id,omitempty"`
	AreaOfResponsibilityID *string `json:"area_of_responsibility_id,omitempty"`
	RateType               *string `json:"rate_type,omitempty"`
	RateValue              *string `json:"rate_value,omitempty"`
	AnnualLeaveAllocation  *string `json:"annual_leave_allocation,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

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

	// Surname
	if len(r.Surname) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "surname",
			Message: "surname must not exceed 100 characters",
		})
	}

	// Role
	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleManager), string(RoleEmployee), string(RoleGuest)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, manager, employee, guest",
		})
	}

	// Rate type
	if r.RateType != nil && !validator.IsInSlice(*r.RateType, []string{string(RateTypeHourly), string(RateTypeDaily), string(RateTypeMonthly)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_type",
			Message: "rate_type must be one of hourly, daily, monthly",
		})
	}

	// Rate value
	if r.RateValue != nil {
		if v, err := decimal.NewFromString(*r.RateValue); err != nil || v.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "rate_value",
				Message: "rate_value must be a non-negative number",
			})
		}
	}

	// Annual leave allocation
	if r.AnnualLeaveAllocation != nil {
		if v, err := decimal.NewFromString(*r.AnnualLeaveAllocation); err != nil || v.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "annual_leave_allocation",
				Message: "annual_leave_allocation must be a non-negative number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name                   *string `json:"name,omitempty"`
	Surname                *string `json:"surname,omitempty"`
	EmployeeCode           *string `json:"employee_code,omitempty"`
	ContactNo              *string `json:"contact_no,omitempty"`
	Role                   *string `json:"role,omitempty"`
	DesignationID          *string `json:"designation_id,omitempty"`
	AreaOfResponsibilityID *string `json:"area_of_responsibility_id,omitempty"`
	RateType               *string `json:"rate_type,omitempty"`
	RateValue              *string `json:"rate_value,omitempty"`
	AnnualLeaveAllocation  *string `json:"annual_leave_allocation,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	// Role
	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleAdmin), string(RoleManager), string(RoleEmployee), string(RoleGuest)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of admin, manager, employee, guest",
		})
	}

	// Rate type
	if r.RateType != nil && !validator.IsInSlice(*r.RateType, []string{string(RateTypeHourly), string(RateTypeDaily), string(RateTypeMonthly)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_type",
			Message: "rate_type must be one of hourly, daily, monthly",
		})
	}

	// Rate value
	if r.RateValue != nil {
		if v, err := decimal.NewFromString(*r.RateValue); err != nil || v.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "rate_value",
				Message: "rate_value must be a non-negative number",
			})
		}
	}

	// Annual leave allocation
	if r.AnnualLeaveAllocation != nil {
		if v, err := decimal.NewFromString(*r.AnnualLeaveAllocation); err != nil || v.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "annual_leave_allocation",
				Message: "annual_leave_allocation must be a non-negative number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesFilter struct {
	Search                 string
	Role                   *string
	DesignationID          *string
	AreaOfResponsibilityID *string
	SkillID                *string
	LicenseID              *string
}

type AssignSkillRequest struct {
	SkillID     string  `json:"skill_id"`
	Proficiency *string `json:"proficiency,omitempty"`
}

func (r *AssignSkillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SkillID) {
		errs = append(errs, validator.ValidationError{
			Field:   "skill_id",
			Message: "skill_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignLicenseRequest struct {
	LicenseID  string  `json:"license_id"`
	IssueDate  *string `json:"issue_date,omitempty"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
}

func (r *AssignLicenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LicenseID) {
		errs = append(errs, validator.ValidationError{
			Field:   "license_id",
			Message: "license_id is required",
		})
	}

	if r.IssueDate != nil {
		if _, ok := validator.IsValidDate(*r.IssueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "issue_date",
				Message: "issue_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.ExpiryDate != nil {
		if _, ok := validator.IsValidDate(*r.ExpiryDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expiry_date",
				Message: "expiry_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                     string                    `json:"id"`
	Email                  string                    `json:"email"`
	Name                   string                    `json:"name"`
	Surname                string                    `json:"surname"`
	EmployeeCode           *string                   `json:"employee_code,omitempty"`
	ContactNo              *string                   `json:"contact_no,omitempty"`
	Role                   string                    `json:"role"`
	DesignationID          *string                   `json:"designation_id,omitempty"`
	DesignationName        *string                   `json:"designation_name,omitempty"`
	AreaOfResponsibilityID *string                   `json:"area_of_responsibility_id,omitempty"`
	AreaName               *string                   `json:"area_name,omitempty"`
	RateType               *string                   `json:"rate_type,omitempty"`
	RateValue              *string                   `json:"rate_value,omitempty"`
	AnnualLeaveAllocation  string                    `json:"annual_leave_allocation"`
	Skills                 []EmployeeSkillResponse   `json:"skills,omitempty"`
	Licenses               []EmployeeLicenseResponse `json:"licenses,omitempty"`
}

type EmployeeSkillResponse struct {
	SkillID     string  `json:"skill_id"`
	SkillName   string  `json:"skill_name"`
	Proficiency *string `json:"proficiency,omitempty"`
}

type EmployeeLicenseResponse struct {
	LicenseID    string  `json:"license_id"`
	LicenseName  string  `json:"license_name"`
	IssueDate    *string `json:"issue_date,omitempty"`
	ExpiryDate   *string `json:"expiry_date,omitempty"`
	Expired      bool    `json:"expired"`
	ExpiringSoon bool    `json:"expiring_soon"`
}

// ToResponse converts an Employee entity to its API representation.
func (e *Employee) ToResponse() EmployeeResponse {
	resp := EmployeeResponse{
		ID:                     e.ID,
		Email:                  e.Email,
		Name:                   e.Name,
		Surname:                e.Surname,
		EmployeeCode:           e.EmployeeCode,
		ContactNo:              e.ContactNo,
		Role:                   string(e.Role),
		DesignationID:          e.DesignationID,
		DesignationName:        e.DesignationName,
		AreaOfResponsibilityID: e.AreaOfResponsibilityID,
		AreaName:               e.AreaName,
		AnnualLeaveAllocation:  e.AnnualLeaveAllocation.String(),
	}
	if e.RateType != nil {
		rt := string(*e.RateType)
		resp.RateType = &rt
	}
	if e.RateValue != nil {
		rv := e.RateValue.String()
		resp.RateValue = &rv
	}
	for _, s := range e.Skills {
		resp.Skills = append(resp.Skills, EmployeeSkillResponse{
			SkillID:     s.SkillID,
			SkillName:   s.SkillName,
			Proficiency: s.Proficiency,
		})
	}
	now := time.Now()
	for i := range e.Licenses {
		l := e.Licenses[i]
		lr := EmployeeLicenseResponse{
			LicenseID:    l.LicenseID,
			LicenseName:  l.LicenseName,
			Expired:      l.IsExpired(now),
			ExpiringSoon: l.ExpiresWithin(now, licenseExpiryWindow),
		}
		if l.IssueDate != nil {
			d := l.IssueDate.Format("2006-01-02")
			lr.IssueDate = &d
		}
		if l.ExpiryDate != nil {
			d := l.ExpiryDate.Format("2006-01-02")
			lr.ExpiryDate = &d
		}
		resp.Licenses = append(resp.Licenses, lr)
	}
	return resp
}

// ToEntity converts a validated create request into an Employee.
func (r *CreateEmployeeRequest) ToEntity() (Employee, error) {
	emp := Employee{
		Email:                  r.Email,
		Name:                   r.Name,
		Surname:                r.Surname,
		EmployeeCode:           r.EmployeeCode,
		ContactNo:              r.ContactNo,
		Role:                   Role(r.Role),
		DesignationID:          r.DesignationID,
		AreaOfResponsibilityID: r.AreaOfResponsibilityID,
	}
	if r.RateType != nil {
		rt := RateType(*r.RateType)
		emp.RateType = &rt
	}
	if r.RateValue != nil {
		rv, err := decimal.NewFromString(*r.RateValue)
		if err != nil {
			return Employee{}, fmt.Errorf("failed to parse rate value: %w", err)
		}
		emp.RateValue = &rv
	}
	if r.AnnualLeaveAllocation != nil {
		allocation, err := decimal.NewFromString(*r.AnnualLeaveAllocation)
		if err != nil {
			return Employee{}, fmt.Errorf("failed to parse annual leave allocation: %w", err)
		}
		emp.AnnualLeaveAllocation = allocation
	}
	return emp, nil
}

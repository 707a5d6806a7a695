package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, including the authorisation stage
	RoleManager  Role = "manager"  // Can approve/authorise leave and manage the roster
	RoleEmployee Role = "employee" // Regular employee
	RoleGuest    Role = "guest"    // Authenticated but not yet onboarded
)

type RateType string

const (
	RateTypeHourly  RateType = "hourly"
	RateTypeDaily   RateType = "daily"
	RateTypeMonthly RateType = "monthly"
)

type Employee struct {
	ID                     string
	GoogleID               *string
	Email                  string
	Name                   string
	Surname                string
	EmployeeCode           *string
	ContactNo              *string
	Role                   Role
	DesignationID          *string
	AreaOfResponsibilityID *string
	RateType               *RateType
	RateValue              *decimal.Decimal
	AnnualLeaveAllocation  decimal.Decimal
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// Joins (for responses)
	DesignationName *string
	AreaName        *string
	Skills          []EmployeeSkill
	Licenses        []EmployeeLicense
}

// FullName returns the display name used in exports and reports.
func (e *Employee) FullName() string {
	if e.Surname == "" {
		return e.Name
	}
	return e.Name + " " + e.Surname
}

// IsManager checks if the employee can act on approval stages
func (e *Employee) IsManager() bool {
	return e.Role == RoleManager || e.Role == RoleAdmin
}

// IsAdmin checks if the employee has full administrative access
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// IsGuest checks if the employee is still awaiting onboarding
func (e *Employee) IsGuest() bool {
	return e.Role == RoleGuest
}

type EmployeeSkill struct {
	SkillID     string
	SkillName   string
	Proficiency *string
}

type EmployeeLicense struct {
	LicenseID   string
	LicenseName string
	IssueDate   *time.Time
	ExpiryDate  *time.Time
}

// IsExpired reports whether the license expiry date has passed.
func (l *EmployeeLicense) IsExpired(now time.Time) bool {
	return l.ExpiryDate != nil && l.ExpiryDate.Before(now)
}

// ExpiresWithin reports whether the license expires inside the given window.
func (l *EmployeeLicense) ExpiresWithin(now time.Time, window time.Duration) bool {
	if l.ExpiryDate == nil || l.IsExpired(now) {
		return false
	}
	return l.ExpiryDate.Before(now.Add(window))
}

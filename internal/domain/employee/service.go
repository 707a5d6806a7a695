package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID with skills and licenses
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee record (employee.manage)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates an existing employee (employee.manage OR same employee)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee (employee.manage; never self)
	DeleteEmployee(ctx context.Context, id string, actorID string) error

	// ListEmployees lists employees with filters
	ListEmployees(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error)

	// AssignSkill links a skill to an employee
	AssignSkill(ctx context.Context, employeeID string, req AssignSkillRequest) error

	// RemoveSkill unlinks a skill from an employee
	RemoveSkill(ctx context.Context, employeeID string, skillID string) error

	// AssignLicense links a license to an employee
	AssignLicense(ctx context.Context, employeeID string, req AssignLicenseRequest) error

	// RemoveLicense unlinks a license from an employee
	RemoveLicense(ctx context.Context, employeeID string, licenseID string) error
}

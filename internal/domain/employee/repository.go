package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByGoogleID(ctx context.Context, googleID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	AddSkill(ctx context.Context, employeeID, skillID string, proficiency *string) error
	RemoveSkill(ctx context.Context, employeeID, skillID string) error
	GetSkills(ctx context.Context, employeeID string) ([]EmployeeSkill, error)

	AddLicense(ctx context.Context, employeeID, licenseID string, issueDate, expiryDate *string) error
	RemoveLicense(ctx context.Context, employeeID, licenseID string) error
	GetLicenses(ctx context.Context, employeeID string) ([]EmployeeLicense, error)
}

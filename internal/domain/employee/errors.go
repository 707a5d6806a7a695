package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeCodeExists      = errors.New("employee code already exists")
	ErrEmailExists             = errors.New("email already registered")
	ErrGoogleIDExists          = errors.New("google account already linked to another employee")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidRateType         = errors.New("rate type must be hourly, daily or monthly")
	ErrSkillAlreadyAssigned    = errors.New("skill already assigned to employee")
	ErrSkillNotAssigned        = errors.New("skill not assigned to employee")
	ErrLicenseAlreadyAssigned  = errors.New("license already assigned to employee")
	ErrLicenseNotAssigned      = errors.New("license not assigned to employee")
	ErrCannotDeleteSelf        = errors.New("cannot delete your own employee record")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

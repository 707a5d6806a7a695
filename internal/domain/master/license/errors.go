package license

import "errors"

var (
	ErrLicenseNotFound   = errors.New("license not found")
	ErrLicenseNameExists = errors.New("license with this name already exists")
	ErrLicenseInUse      = errors.New("license is assigned to employees")
)

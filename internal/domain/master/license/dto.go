package license

import (
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/pkg/validator"
)

type License struct {
	ID           string
	Name         string
	Description  *string
	ValidityDays *int // default validity period applied when assigning
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LicenseResponse represents the response structure for a license type.
type LicenseResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	ValidityDays *int    `json:"validity_days,omitempty"`
}

func (l *License) ToResponse() LicenseResponse {
	return LicenseResponse{ID: l.ID, Name: l.Name, Description: l.Description, ValidityDays: l.ValidityDays}
}

// CreateLicenseRequest represents the request structure for creating a license type.
type CreateLicenseRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	ValidityDays *int    `json:"validity_days,omitempty"`
}

func (r *CreateLicenseRequest) Validate() error {
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

	// Validity
	if r.ValidityDays != nil && *r.ValidityDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "validity_days",
			Message: "validity_days must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateLicenseRequest represents the request structure for updating a license type.
type UpdateLicenseRequest struct {
	ID           string  `json:"-"` // From URL
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	ValidityDays *int    `json:"validity_days,omitempty"`
}

func (r *UpdateLicenseRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

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

	// Validity
	if r.ValidityDays != nil && *r.ValidityDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "validity_days",
			Message: "validity_days must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

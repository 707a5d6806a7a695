package license

import "context"

type LicenseRepository interface {
	Create(ctx context.Context, l License) (License, error)
	GetByID(ctx context.Context, id string) (License, error)
	List(ctx context.Context) ([]License, error)
	Update(ctx context.Context, req UpdateLicenseRequest) error
	Delete(ctx context.Context, id string) error
}

package auth

import (
	"context"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
)

type AuthService interface {
	// GoogleRedirectURL starts the OAuth flow.
	GoogleRedirectURL(ctx context.Context, userAgent string) string

	// GoogleCallback exchanges the code, upserts the employee by google_id
	// then email, and issues a token pair.
	GoogleCallback(ctx context.Context, req GoogleCallbackRequest) (TokenResponse, error)

	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (employee.EmployeeResponse, error)
}

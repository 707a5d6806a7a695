package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/auth"
	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/jwt"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/oauth"
	"github.com/WNVissie/BurgundyRoster/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	jwt.Service
	postgresql.JWTRepository
	oauth.GoogleService
	activity.LogRepository
}

func NewAuthService(db *database.DB, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository, googleService oauth.GoogleService, logRepository activity.LogRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		JWTRepository:      jwtRepository,
		GoogleService:      googleService,
		LogRepository:      logRepository,
	}
}

// GoogleRedirectURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleRedirectURL(ctx context.Context, userAgent string) string {
	state := a.GoogleService.GenerateState(userAgent)
	return a.GoogleService.RedirectURL(state)
}

// GoogleCallback implements auth.AuthService.
func (a *AuthServiceImpl) GoogleCallback(ctx context.Context, req auth.GoogleCallbackRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	oauthToken, err := a.GoogleService.VerifyToken(ctx, req.Code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	info, err := a.GoogleService.VerifyUser(ctx, oauthToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}

	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrEmailNotVerified
	}

	emp, err := a.resolveEmployee(ctx, info)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(emp.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, emp.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, req.UserAgent)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.Employee = emp.ToResponse()

	a.logActivity(ctx, emp.ID, "auth.login", fmt.Sprintf("signed in as %s", emp.Email))

	return tokenResponse, nil
}

// resolveEmployee finds the employee for a verified Google identity:
// by google_id first, then by email (linking the account), finally
// creating a guest record for first-time sign-ins.
func (a *AuthServiceImpl) resolveEmployee(ctx context.Context, info oauth.GoogleInformation) (employee.Employee, error) {
	emp, err := a.EmployeeRepository.GetByGoogleID(ctx, info.GoogleID)
	if err == nil {
		return emp, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get employee by google ID: %w", err)
	}

	_, err = a.EmployeeRepository.GetByEmail(ctx, info.Email)
	if err == nil {
		linked, err := a.EmployeeRepository.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to link google account: %w", err)
		}
		return linked, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	// First sign-in with no matching record: onboard as guest until an
	// admin assigns a real role.
	created, err := a.EmployeeRepository.Create(ctx, employee.Employee{
		GoogleID: &info.GoogleID,
		Email:    info.Email,
		Name:     info.GivenName,
		Surname:  info.FamilyName,
		Role:     employee.RoleGuest,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	a.logActivity(ctx, created.ID, "auth.signup", fmt.Sprintf("first sign-in for %s", created.Email))

	return created, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrEmployeeNotFound
	}

	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken)
	})
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	a.Service.RevokeToken(refreshToken)

	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	emp.Skills, err = a.EmployeeRepository.GetSkills(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee skills: %w", err)
	}
	emp.Licenses, err = a.EmployeeRepository.GetLicenses(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee licenses: %w", err)
	}

	return emp.ToResponse(), nil
}

func (a *AuthServiceImpl) logActivity(ctx context.Context, employeeID, action, details string) {
	log := activity.Log{
		EmployeeID: &employeeID,
		Action:     action,
		Details:    &details,
	}
	_ = a.LogRepository.Create(ctx, log)
}

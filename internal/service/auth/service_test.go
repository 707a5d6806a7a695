package auth

import (
	"context"
	"testing"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/auth"
	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/jwt"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byID       map[string]employee.Employee
	byEmail    map[string]employee.Employee
	byGoogleID map[string]employee.Employee
	created    []employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		byID:       map[string]employee.Employee{},
		byEmail:    map[string]employee.Employee{},
		byGoogleID: map[string]employee.Employee{},
	}
}

func (f *fakeEmployeeRepo) add(emp employee.Employee) {
	f.byID[emp.ID] = emp
	f.byEmail[emp.Email] = emp
	if emp.GoogleID != nil {
		f.byGoogleID[*emp.GoogleID] = emp
	}
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	emp, ok := f.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByGoogleID(_ context.Context, googleID string) (employee.Employee, error) {
	emp, ok := f.byGoogleID[googleID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) LinkGoogleAccount(_ context.Context, googleID string, email string) (employee.Employee, error) {
	emp, ok := f.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.GoogleID = &googleID
	f.add(emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = "emp-created"
	f.created = append(f.created, newEmployee)
	f.add(newEmployee)
	return newEmployee, nil
}

type fakeJWTRepo struct {
	revoked map[string]bool
}

func (f *fakeJWTRepo) CreateRefreshToken(_ context.Context, _ string, _ string, _ int64, _ string) error {
	return nil
}

func (f *fakeJWTRepo) IsRefreshTokenRevoked(_ context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func (f *fakeJWTRepo) RevokeRefreshToken(_ context.Context, token string) error {
	if f.revoked == nil {
		f.revoked = map[string]bool{}
	}
	f.revoked[token] = true
	return nil
}

type fakeLogRepo struct {
	activity.LogRepository
	actions []string
}

func (f *fakeLogRepo) Create(_ context.Context, log activity.Log) error {
	f.actions = append(f.actions, log.Action)
	return nil
}

func newTestService(employees *fakeEmployeeRepo, jwtRepo *fakeJWTRepo) *AuthServiceImpl {
	return &AuthServiceImpl{
		EmployeeRepository: employees,
		Service:            jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp),
		JWTRepository:      jwtRepo,
		LogRepository:      &fakeLogRepo{},
	}
}

func googleID(id string) *string { return &id }

func TestResolveEmployee_ByGoogleID(t *testing.T) {
	employees := newFakeEmployeeRepo()
	employees.add(employee.Employee{
		ID:       "emp-1",
		GoogleID: googleID("google-1"),
		Email:    "anna@example.com",
		Role:     employee.RoleEmployee,
	})
	service := newTestService(employees, &fakeJWTRepo{})

	emp, err := service.resolveEmployee(context.Background(), oauth.GoogleInformation{
		GoogleID: "google-1",
		Email:    "anna@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", emp.ID)
	assert.Empty(t, employees.created)
}

func TestResolveEmployee_LinksByEmail(t *testing.T) {
	employees := newFakeEmployeeRepo()
	employees.add(employee.Employee{
		ID:    "emp-1",
		Email: "anna@example.com",
		Role:  employee.RoleEmployee,
	})
	service := newTestService(employees, &fakeJWTRepo{})

	emp, err := service.resolveEmployee(context.Background(), oauth.GoogleInformation{
		GoogleID: "google-1",
		Email:    "anna@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", emp.ID)
	require.NotNil(t, emp.GoogleID)
	assert.Equal(t, "google-1", *emp.GoogleID)
	assert.Empty(t, employees.created)
}

func TestResolveEmployee_CreatesGuest(t *testing.T) {
	employees := newFakeEmployeeRepo()
	service := newTestService(employees, &fakeJWTRepo{})

	emp, err := service.resolveEmployee(context.Background(), oauth.GoogleInformation{
		GoogleID:  "google-9",
		Email:     "new@example.com",
		GivenName: "New",
	})

	require.NoError(t, err)
	assert.Equal(t, employee.RoleGuest, emp.Role)
	require.Len(t, employees.created, 1)
	assert.Equal(t, "new@example.com", employees.created[0].Email)
	assert.Contains(t, service.LogRepository.(*fakeLogRepo).actions, "auth.signup")
}

func TestRefreshToken(t *testing.T) {
	employees := newFakeEmployeeRepo()
	employees.add(employee.Employee{
		ID:    "emp-1",
		Email: "anna@example.com",
		Role:  employee.RoleManager,
	})
	service := newTestService(employees, &fakeJWTRepo{})

	refreshToken, _, err := service.Service.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	resp, err := service.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
}

func TestRefreshToken_Revoked(t *testing.T) {
	employees := newFakeEmployeeRepo()
	employees.add(employee.Employee{ID: "emp-1", Email: "anna@example.com", Role: employee.RoleEmployee})
	jwtRepo := &fakeJWTRepo{}
	service := newTestService(employees, jwtRepo)

	refreshToken, _, err := service.Service.GenerateRefreshToken("emp-1")
	require.NoError(t, err)
	require.NoError(t, jwtRepo.RevokeRefreshToken(context.Background(), refreshToken))

	_, err = service.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})

	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	employees := newFakeEmployeeRepo()
	employees.add(employee.Employee{ID: "emp-1", Email: "anna@example.com", Role: employee.RoleEmployee})
	service := newTestService(employees, &fakeJWTRepo{})

	// an access token is not acceptable where a refresh token is expected
	accessToken, _, err := service.Service.GenerateAccessToken("emp-1", "anna@example.com", employee.RoleEmployee)
	require.NoError(t, err)

	_, err = service.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: accessToken})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_UnknownEmployee(t *testing.T) {
	service := newTestService(newFakeEmployeeRepo(), &fakeJWTRepo{})

	refreshToken, _, err := service.Service.GenerateRefreshToken("ghost")
	require.NoError(t, err)

	_, err = service.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})

	assert.ErrorIs(t, err, auth.ErrEmployeeNotFound)
}

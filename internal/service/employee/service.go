package employee

import (
	"context"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
)

type Service struct {
	db *database.DB
	employee.EmployeeRepository
	activity.LogRepository
}

func NewService(db *database.DB, employeeRepository employee.EmployeeRepository, logRepository activity.LogRepository) *Service {
	return &Service{
		db:                 db,
		EmployeeRepository: employeeRepository,
		LogRepository:      logRepository,
	}
}

// GetEmployee returns the employee with skills and licenses attached.
func (s *Service) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.loadWithAssociations(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

func (s *Service) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	newEmployee, err := req.ToEntity()
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logActivity(ctx, created.ID, "employee.create", fmt.Sprintf("created employee %s", created.Email))

	return created.ToResponse(), nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	if err := s.EmployeeRepository.Update(ctx, id, req); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	emp, err := s.loadWithAssociations(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id string, actorID string) error {
	if id == actorID {
		return employee.ErrCannotDeleteSelf
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get employee by ID: %w", err)
	}

	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.logActivity(ctx, actorID, "employee.delete", fmt.Sprintf("deleted employee %s", id))

	return nil
}

func (s *Service) ListEmployees(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, employees[i].ToResponse())
	}
	return responses, nil
}

func (s *Service) AssignSkill(ctx context.Context, employeeID string, req employee.AssignSkillRequest) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to get employee by ID: %w", err)
	}

	if err := s.EmployeeRepository.AddSkill(ctx, employeeID, req.SkillID, req.Proficiency); err != nil {
		return fmt.Errorf("failed to assign skill: %w", err)
	}
	return nil
}

func (s *Service) RemoveSkill(ctx context.Context, employeeID string, skillID string) error {
	if err := s.EmployeeRepository.RemoveSkill(ctx, employeeID, skillID); err != nil {
		return fmt.Errorf("failed to remove skill: %w", err)
	}
	return nil
}

func (s *Service) AssignLicense(ctx context.Context, employeeID string, req employee.AssignLicenseRequest) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to get employee by ID: %w", err)
	}

	if err := s.EmployeeRepository.AddLicense(ctx, employeeID, req.LicenseID, req.IssueDate, req.ExpiryDate); err != nil {
		return fmt.Errorf("failed to assign license: %w", err)
	}
	return nil
}

func (s *Service) RemoveLicense(ctx context.Context, employeeID string, licenseID string) error {
	if err := s.EmployeeRepository.RemoveLicense(ctx, employeeID, licenseID); err != nil {
		return fmt.Errorf("failed to remove license: %w", err)
	}
	return nil
}

func (s *Service) loadWithAssociations(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	emp.Skills, err = s.EmployeeRepository.GetSkills(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee skills: %w", err)
	}

	emp.Licenses, err = s.EmployeeRepository.GetLicenses(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee licenses: %w", err)
	}

	return emp, nil
}

func (s *Service) logActivity(ctx context.Context, employeeID, action, details string) {
	log := activity.Log{
		EmployeeID: &employeeID,
		Action:     action,
		Details:    &details,
	}
	_ = s.LogRepository.Create(ctx, log)
}

package master

import (
	"context"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/master/area"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/designation"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/license"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/skill"
)

type MasterService interface {
	// Skill operations
	CreateSkill(ctx context.Context, req skill.CreateSkillRequest) (skill.SkillResponse, error)
	GetSkill(ctx context.Context, id string) (skill.SkillResponse, error)
	ListSkills(ctx context.Context) ([]skill.SkillResponse, error)
	UpdateSkill(ctx context.Context, req skill.UpdateSkillRequest) error
	DeleteSkill(ctx context.Context, id string) error

	// Area of responsibility operations
	CreateArea(ctx context.Context, req area.CreateAreaRequest) (area.AreaResponse, error)
	GetArea(ctx context.Context, id string) (area.AreaResponse, error)
	ListAreas(ctx context.Context) ([]area.AreaResponse, error)
	UpdateArea(ctx context.Context, req area.UpdateAreaRequest) error
	DeleteArea(ctx context.Context, id string) error

	// Designation operations
	CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error)
	GetDesignation(ctx context.Context, id string) (designation.DesignationResponse, error)
	ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error)
	UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest) error
	DeleteDesignation(ctx context.Context, id string) error

	// License type operations
	CreateLicense(ctx context.Context, req license.CreateLicenseRequest) (license.LicenseResponse, error)
	GetLicense(ctx context.Context, id string) (license.LicenseResponse, error)
	ListLicenses(ctx context.Context) ([]license.LicenseResponse, error)
	UpdateLicense(ctx context.Context, req license.UpdateLicenseRequest) error
	DeleteLicense(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	skillRepo       skill.SkillRepository
	areaRepo        area.AreaRepository
	designationRepo designation.DesignationRepository
	licenseRepo     license.LicenseRepository
}

func NewMasterService(
	skillRepo skill.SkillRepository,
	areaRepo area.AreaRepository,
	designationRepo designation.DesignationRepository,
	licenseRepo license.LicenseRepository,
) MasterService {
	return &masterServiceImpl{
		skillRepo:       skillRepo,
		areaRepo:        areaRepo,
		designationRepo: designationRepo,
		licenseRepo:     licenseRepo,
	}
}

// ==================== SKILL OPERATIONS ====================

func (s *masterServiceImpl) CreateSkill(ctx context.Context, req skill.CreateSkillRequest) (skill.SkillResponse, error) {
	if err := req.Validate(); err != nil {
		return skill.SkillResponse{}, err
	}

	created, err := s.skillRepo.Create(ctx, skill.Skill{Name: req.Name, Description: req.Description})
	if err != nil {
		return skill.SkillResponse{}, fmt.Errorf("failed to create skill: %w", err)
	}
	return created.ToResponse(), nil
}

func (s *masterServiceImpl) GetSkill(ctx context.Context, id string) (skill.SkillResponse, error) {
	found, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return skill.SkillResponse{}, fmt.Errorf("failed to get skill by ID: %w", err)
	}
	return found.ToResponse(), nil
}

func (s *masterServiceImpl) ListSkills(ctx context.Context) ([]skill.SkillResponse, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	responses := make([]skill.SkillResponse, 0, len(skills))
	for i := range skills {
		responses = append(responses, skills[i].ToResponse())
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateSkill(ctx context.Context, req skill.UpdateSkillRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.skillRepo.Update(ctx, req); err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteSkill(ctx context.Context, id string) error {
	if err := s.skillRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

// ==================== AREA OPERATIONS ====================

func (s *masterServiceImpl) CreateArea(ctx context.Context, req area.CreateAreaRequest) (area.AreaResponse, error) {
	if err := req.Validate(); err != nil {
		return area.AreaResponse{}, err
	}

	created, err := s.areaRepo.Create(ctx, area.Area{Name: req.Name, Description: req.Description})
	if err != nil {
		return area.AreaResponse{}, fmt.Errorf("failed to create area of responsibility: %w", err)
	}
	return created.ToResponse(), nil
}

func (s *masterServiceImpl) GetArea(ctx context.Context, id string) (area.AreaResponse, error) {
	found, err := s.areaRepo.GetByID(ctx, id)
	if err != nil {
		return area.AreaResponse{}, fmt.Errorf("failed to get area of responsibility by ID: %w", err)
	}
	return found.ToResponse(), nil
}

func (s *masterServiceImpl) ListAreas(ctx context.Context) ([]area.AreaResponse, error) {
	areas, err := s.areaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas of responsibility: %w", err)
	}

	responses := make([]area.AreaResponse, 0, len(areas))
	for i := range areas {
		responses = append(responses, areas[i].ToResponse())
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateArea(ctx context.Context, req area.UpdateAreaRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.areaRepo.Update(ctx, req); err != nil {
		return fmt.Errorf("failed to update area of responsibility: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteArea(ctx context.Context, id string) error {
	if err := s.areaRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete area of responsibility: %w", err)
	}
	return nil
}

// ==================== DESIGNATION OPERATIONS ====================

func (s *masterServiceImpl) CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}

	created, err := s.designationRepo.Create(ctx, designation.Designation{Name: req.Name, Description: req.Description})
	if err != nil {
		return designation.DesignationResponse{}, fmt.Errorf("failed to create designation: %w", err)
	}
	return created.ToResponse(), nil
}

func (s *masterServiceImpl) GetDesignation(ctx context.Context, id string) (designation.DesignationResponse, error) {
	found, err := s.designationRepo.GetByID(ctx, id)
	if err != nil {
		return designation.DesignationResponse{}, fmt.Errorf("failed to get designation by ID: %w", err)
	}
	return found.ToResponse(), nil
}

func (s *masterServiceImpl) ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error) {
	designations, err := s.designationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}

	responses := make([]designation.DesignationResponse, 0, len(designations))
	for i := range designations {
		responses = append(responses, designations[i].ToResponse())
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.designationRepo.Update(ctx, req); err != nil {
		return fmt.Errorf("failed to update designation: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteDesignation(ctx context.Context, id string) error {
	if err := s.designationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	return nil
}

// ==================== LICENSE OPERATIONS ====================

func (s *masterServiceImpl) CreateLicense(ctx context.Context, req license.CreateLicenseRequest) (license.LicenseResponse, error) {
	if err := req.Validate(); err != nil {
		return license.LicenseResponse{}, err
	}

	created, err := s.licenseRepo.Create(ctx, license.License{Name: req.Name, Description: req.Description, ValidityDays: req.ValidityDays})
	if err != nil {
		return license.LicenseResponse{}, fmt.Errorf("failed to create license type: %w", err)
	}
	return created.ToResponse(), nil
}

func (s *masterServiceImpl) GetLicense(ctx context.Context, id string) (license.LicenseResponse, error) {
	found, err := s.licenseRepo.GetByID(ctx, id)
	if err != nil {
		return license.LicenseResponse{}, fmt.Errorf("failed to get license type by ID: %w", err)
	}
	return found.ToResponse(), nil
}

func (s *masterServiceImpl) ListLicenses(ctx context.Context) ([]license.LicenseResponse, error) {
	licenses, err := s.licenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list license types: %w", err)
	}

	responses := make([]license.LicenseResponse, 0, len(licenses))
	for i := range licenses {
		responses = append(responses, licenses[i].ToResponse())
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateLicense(ctx context.Context, req license.UpdateLicenseRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.licenseRepo.Update(ctx, req); err != nil {
		return fmt.Errorf("failed to update license type: %w", err)
	}
	return nil
}

func (s *masterServiceImpl) DeleteLicense(ctx context.Context, id string) error {
	if err := s.licenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete license type: %w", err)
	}
	return nil
}

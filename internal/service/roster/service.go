package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
)

type Service struct {
	db *database.DB
	roster.ShiftRepository
	roster.RosterEntryRepository
	employee.EmployeeRepository
	activity.LogRepository
}

func NewService(db *database.DB, shiftRepository roster.ShiftRepository, rosterEntryRepository roster.RosterEntryRepository, employeeRepository employee.EmployeeRepository, logRepository activity.LogRepository) *Service {
	return &Service{
		db:                    db,
		ShiftRepository:       shiftRepository,
		RosterEntryRepository: rosterEntryRepository,
		EmployeeRepository:    employeeRepository,
		LogRepository:         logRepository,
	}
}

// ===== SHIFTS =====

func (s *Service) CreateShift(ctx context.Context, req roster.CreateShiftRequest) (roster.ShiftResponse, error) {
	shift := roster.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Hours:     req.Hours,
		Color:     req.Color,
	}

	created, err := s.ShiftRepository.Create(ctx, shift)
	if err != nil {
		return roster.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return created.ToResponse(), nil
}

func (s *Service) UpdateShift(ctx context.Context, req roster.UpdateShiftRequest) error {
	shift, err := s.ShiftRepository.GetByID(ctx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to get shift by ID: %w", err)
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.Hours != nil {
		shift.Hours = *req.Hours
	}
	if req.Color != nil {
		shift.Color = *req.Color
	}

	if err := s.ShiftRepository.Update(ctx, shift); err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

func (s *Service) GetShift(ctx context.Context, id string) (roster.ShiftResponse, error) {
	shift, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return roster.ShiftResponse{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}
	return shift.ToResponse(), nil
}

func (s *Service) ListShifts(ctx context.Context) ([]roster.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]roster.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		responses = append(responses, shifts[i].ToResponse())
	}
	return responses, nil
}

func (s *Service) DeleteShift(ctx context.Context, id string) error {
	if err := s.ShiftRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// ===== ROSTER ENTRIES =====

func (s *Service) CreateRosterEntry(ctx context.Context, req roster.CreateRosterEntryRequest) (roster.RosterEntryResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return roster.RosterEntryResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID); err != nil {
		return roster.RosterEntryResponse{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return roster.RosterEntryResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	exists, err := s.RosterEntryRepository.ExistsForEmployeeOnDate(ctx, req.EmployeeID, date)
	if err != nil {
		return roster.RosterEntryResponse{}, fmt.Errorf("failed to check roster entry existence: %w", err)
	}
	if exists {
		return roster.RosterEntryResponse{}, roster.ErrRosterEntryExists
	}

	entry := roster.RosterEntry{
		EmployeeID:             req.EmployeeID,
		ShiftID:                req.ShiftID,
		Date:                   date,
		Hours:                  req.Hours,
		Status:                 roster.RosterEntryStatusPending,
		AreaOfResponsibilityID: req.AreaOfResponsibilityID,
		Notes:                  req.Notes,
	}

	created, err := s.RosterEntryRepository.Create(ctx, entry)
	if err != nil {
		return roster.RosterEntryResponse{}, fmt.Errorf("failed to create roster entry: %w", err)
	}

	s.logActivity(ctx, req.EmployeeID, "roster.create", fmt.Sprintf("rostered for %s", req.Date))

	return created.ToResponse(), nil
}

func (s *Service) GetRosterEntry(ctx context.Context, id string) (roster.RosterEntryResponse, error) {
	entry, err := s.RosterEntryRepository.GetByID(ctx, id)
	if err != nil {
		return roster.RosterEntryResponse{}, fmt.Errorf("failed to get roster entry by ID: %w", err)
	}
	return entry.ToResponse(), nil
}

func (s *Service) ListRosterEntries(ctx context.Context, filter roster.ListRosterEntriesFilter) ([]roster.RosterEntryResponse, error) {
	entries, err := s.RosterEntryRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster entries: %w", err)
	}

	responses := make([]roster.RosterEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, entries[i].ToResponse())
	}
	return responses, nil
}

func (s *Service) ApproveRosterEntry(ctx context.Context, id string) error {
	return s.setEntryStatusFromPending(ctx, id, roster.RosterEntryStatusApproved)
}

func (s *Service) RejectRosterEntry(ctx context.Context, id string) error {
	return s.setEntryStatusFromPending(ctx, id, roster.RosterEntryStatusRejected)
}

// AcceptRosterEntry lets the rostered employee acknowledge an approved
// assignment.
func (s *Service) AcceptRosterEntry(ctx context.Context, id string, employeeID string) error {
	entry, err := s.RosterEntryRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get roster entry by ID: %w", err)
	}

	if entry.EmployeeID != employeeID {
		return roster.ErrRosterEntryNotOwned
	}

	if entry.Status != roster.RosterEntryStatusApproved {
		return roster.ErrRosterEntryNotApproved
	}

	acceptedAt := time.Now()
	if err := s.RosterEntryRepository.UpdateStatus(ctx, id, roster.RosterEntryStatusAccepted, &acceptedAt); err != nil {
		return fmt.Errorf("failed to update roster entry status: %w", err)
	}

	s.logActivity(ctx, employeeID, "roster.accept", fmt.Sprintf("accepted roster entry %s", id))

	return nil
}

func (s *Service) DeleteRosterEntry(ctx context.Context, id string) error {
	if err := s.RosterEntryRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete roster entry: %w", err)
	}
	return nil
}

func (s *Service) setEntryStatusFromPending(ctx context.Context, id string, status roster.RosterEntryStatus) error {
	entry, err := s.RosterEntryRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get roster entry by ID: %w", err)
	}

	if entry.Status != roster.RosterEntryStatusPending {
		return roster.ErrInvalidEntryStatus
	}

	if err := s.RosterEntryRepository.UpdateStatus(ctx, id, status, nil); err != nil {
		return fmt.Errorf("failed to update roster entry status: %w", err)
	}

	return nil
}

func (s *Service) logActivity(ctx context.Context, employeeID, action, details string) {
	log := activity.Log{
		EmployeeID: &employeeID,
		Action:     action,
		Details:    &details,
	}
	_ = s.LogRepository.Create(ctx, log)
}

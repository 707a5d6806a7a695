package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/WNVissie/BurgundyRoster/internal/repository/postgresql"
)

type Service struct {
	db *database.DB
	timesheet.TimesheetRepository
	roster.RosterEntryRepository
	activity.LogRepository
}

func NewService(db *database.DB, timesheetRepository timesheet.TimesheetRepository, rosterEntryRepository roster.RosterEntryRepository, logRepository activity.LogRepository) *Service {
	return &Service{
		db:                    db,
		TimesheetRepository:   timesheetRepository,
		RosterEntryRepository: rosterEntryRepository,
		LogRepository:         logRepository,
	}
}

func (s *Service) GenerateTimesheets(ctx context.Context, req timesheet.GenerateTimesheetsRequest) (timesheet.GenerateTimesheetsResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return timesheet.GenerateTimesheetsResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return timesheet.GenerateTimesheetsResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	var created int
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.generate(txCtx, startDate, endDate, req.EmployeeID)
		return err
	})
	if err != nil {
		return timesheet.GenerateTimesheetsResponse{}, err
	}

	details := fmt.Sprintf("generated %d timesheets for %s to %s", created, req.StartDate, req.EndDate)
	s.logActivity(ctx, nil, "timesheet.generate", details)

	return timesheet.GenerateTimesheetsResponse{Created: created}, nil
}

// generate creates one pending timesheet per approved roster entry in
// the range that does not already have one. Re-running over an
// overlapping range only fills the gaps.
func (s *Service) generate(ctx context.Context, startDate, endDate time.Time, employeeID *string) (int, error) {
	entries, err := s.RosterEntryRepository.ListApprovedInRange(ctx, startDate, endDate, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to list approved roster entries: %w", err)
	}

	var created int
	for _, entry := range entries {
		exists, err := s.TimesheetRepository.ExistsForRoster(ctx, entry.ID)
		if err != nil {
			return 0, fmt.Errorf("failed to check timesheet existence: %w", err)
		}
		if exists {
			continue
		}

		ts := timesheet.Timesheet{
			EmployeeID:  entry.EmployeeID,
			RosterID:    entry.ID,
			Date:        entry.Date,
			HoursWorked: entry.Hours,
			Status:      timesheet.TimesheetStatusPending,
		}
		if _, err := s.TimesheetRepository.Create(ctx, ts); err != nil {
			return 0, fmt.Errorf("failed to create timesheet: %w", err)
		}
		created++
	}
	return created, nil
}

func (s *Service) GetTimesheet(ctx context.Context, id string) (timesheet.TimesheetResponse, error) {
	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, fmt.Errorf("failed to get timesheet by ID: %w", err)
	}
	return ts.ToResponse(), nil
}

func (s *Service) ListTimesheets(ctx context.Context, filter timesheet.ListTimesheetsFilter) ([]timesheet.TimesheetResponse, error) {
	timesheets, err := s.TimesheetRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(timesheets))
	for i := range timesheets {
		responses = append(responses, timesheets[i].ToResponse())
	}
	return responses, nil
}

func (s *Service) ApproveTimesheet(ctx context.Context, id string) error {
	return s.setStatusFromPending(ctx, id, timesheet.TimesheetStatusApproved)
}

func (s *Service) RejectTimesheet(ctx context.Context, id string) error {
	return s.setStatusFromPending(ctx, id, timesheet.TimesheetStatusRejected)
}

// AcceptTimesheet lets the owning employee acknowledge an approved
// timesheet.
func (s *Service) AcceptTimesheet(ctx context.Context, id string, employeeID string) error {
	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get timesheet by ID: %w", err)
	}

	if ts.EmployeeID != employeeID {
		return timesheet.ErrTimesheetNotOwned
	}

	if ts.Status != timesheet.TimesheetStatusApproved {
		return timesheet.ErrInvalidStatus
	}

	if err := s.TimesheetRepository.UpdateStatus(ctx, id, timesheet.TimesheetStatusAccepted); err != nil {
		return fmt.Errorf("failed to update timesheet status: %w", err)
	}

	s.logActivity(ctx, &employeeID, "timesheet.accept", fmt.Sprintf("accepted timesheet %s", id))

	return nil
}

func (s *Service) setStatusFromPending(ctx context.Context, id string, status timesheet.TimesheetStatus) error {
	ts, err := s.TimesheetRepository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get timesheet by ID: %w", err)
	}

	if ts.Status != timesheet.TimesheetStatusPending {
		return timesheet.ErrTimesheetNotPending
	}

	if err := s.TimesheetRepository.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update timesheet status: %w", err)
	}

	return nil
}

func (s *Service) logActivity(ctx context.Context, employeeID *string, action, details string) {
	log := activity.Log{
		EmployeeID: employeeID,
		Action:     action,
		Details:    &details,
	}
	_ = s.LogRepository.Create(ctx, log)
}

package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/leave"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/WNVissie/BurgundyRoster/internal/repository/postgresql"
)

type Service struct {
	db *database.DB
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	roster.ShiftRepository
	roster.RosterEntryRepository
	activity.LogRepository
}

func NewService(db *database.DB, leaveRequestRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository, shiftRepository roster.ShiftRepository, rosterEntryRepository roster.RosterEntryRepository, logRepository activity.LogRepository) *Service {
	return &Service{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		ShiftRepository:        shiftRepository,
		RosterEntryRepository:  rosterEntryRepository,
		LogRepository:          logRepository,
	}
}

func (s *Service) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	days := leave.SpanDays(startDate, endDate)

	balance, err := s.loadBalance(ctx, emp)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request := leave.LeaveRequest{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,

		// Informational until authorised; the balance is recomputed from
		// the authorised history at every status change.
		RemainingDaysSnapshot: balance.Prospective(days),
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.logActivity(ctx, emp.ID, "leave.submit", fmt.Sprintf("submitted %s leave %s to %s (%d days)", req.LeaveType, req.StartDate, req.EndDate, days))

	return created.ToResponse(), nil
}

func (s *Service) TransitionLeaveRequest(ctx context.Context, req leave.TransitionLeaveRequestRequest) (leave.TransitionLeaveRequestResponse, error) {
	actor, err := s.EmployeeRepository.GetByID(ctx, req.ActorID)
	if err != nil {
		return leave.TransitionLeaveRequestResponse{}, fmt.Errorf("failed to get actor by ID: %w", err)
	}

	var result leave.TransitionLeaveRequestResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		transitioned, warnings, err := s.transition(txCtx, actor, req)
		if err != nil {
			return err
		}

		result = leave.TransitionLeaveRequestResponse{
			Request:  transitioned.ToResponse(),
			Warnings: warnings,
		}
		return nil
	})
	if err != nil {
		return leave.TransitionLeaveRequestResponse{}, err
	}

	s.logActivity(ctx, actor.ID, "leave."+req.Action, fmt.Sprintf("%s leave request %s", req.Action, req.RequestID))

	return result, nil
}

func (s *Service) DeleteLeaveRequest(ctx context.Context, requestID string, actorID string) error {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	if request.EmployeeID != actorID {
		return leave.ErrPermissionDenied
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ErrInvalidState
	}

	if err := s.LeaveRequestRepository.Delete(ctx, requestID); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	s.logActivity(ctx, actorID, "leave.delete", fmt.Sprintf("withdrew leave request %s", requestID))

	return nil
}

func (s *Service) GetLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}
	return request.ToResponse(), nil
}

func (s *Service) ListLeaveRequests(ctx context.Context, filter leave.ListLeaveRequestsFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].ToResponse())
	}
	return responses, nil
}

func (s *Service) ListMyLeaveRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	return s.ListLeaveRequests(ctx, leave.ListLeaveRequestsFilter{EmployeeID: &employeeID})
}

// logActivity records an audit row; failures never affect the outcome
// of the operation being logged.
func (s *Service) logActivity(ctx context.Context, employeeID, action, details string) {
	log := activity.Log{
		EmployeeID: &employeeID,
		Action:     action,
		Details:    &details,
	}
	_ = s.LogRepository.Create(ctx, log)
}

package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/leave"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
)

// transition applies a single approve/reject/authorise action inside the
// caller's transaction. It returns the updated request plus any
// non-fatal roster materialization warnings.
func (s *Service) transition(ctx context.Context, actor employee.Employee, req leave.TransitionLeaveRequestRequest) (leave.LeaveRequest, []string, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, nil, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	action := leave.LeaveAction(req.Action)
	switch action {
	case leave.LeaveActionApprove, leave.LeaveActionReject, leave.LeaveActionAuthorise:
	default:
		return leave.LeaveRequest{}, nil, leave.ErrInvalidAction
	}

	expected := request.Status
	now := time.Now()

	var warnings []string
	switch {
	case action == leave.LeaveActionApprove && request.Status == leave.LeaveRequestStatusPending:
		if !employee.HasPermission(actor.Role, employee.PermissionLeaveApprove) {
			return leave.LeaveRequest{}, nil, leave.ErrPermissionDenied
		}
		request.Status = leave.LeaveRequestStatusApproved
		request.ApprovedBy = &actor.ID
		request.ApprovedAt = &now

	case action == leave.LeaveActionReject && !request.Status.IsTerminal():
		perm := employee.PermissionLeaveApprove
		if request.Status == leave.LeaveRequestStatusApproved {
			perm = employee.PermissionLeaveAuthorise
		}
		if !employee.HasPermission(actor.Role, perm) {
			return leave.LeaveRequest{}, nil, leave.ErrPermissionDenied
		}
		if request.Status == leave.LeaveRequestStatusApproved {
			request.AuthorisedBy = &actor.ID
			request.AuthorisedAt = &now
		} else {
			request.ApprovedBy = &actor.ID
			request.ApprovedAt = &now
		}
		request.Status = leave.LeaveRequestStatusRejected

		owner, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
		if err != nil {
			return leave.LeaveRequest{}, nil, fmt.Errorf("failed to get leave request owner: %w", err)
		}

		// Nothing is deducted on rejection: the snapshot becomes the
		// current remaining balance, replacing the submit-time
		// prospective value.
		balance, err := s.loadBalance(ctx, owner)
		if err != nil {
			return leave.LeaveRequest{}, nil, err
		}
		request.RemainingDaysSnapshot = balance.Remaining

	case action == leave.LeaveActionAuthorise && request.Status == leave.LeaveRequestStatusApproved:
		if !employee.HasPermission(actor.Role, employee.PermissionLeaveAuthorise) {
			return leave.LeaveRequest{}, nil, leave.ErrPermissionDenied
		}
		request.Status = leave.LeaveRequestStatusAuthorised
		request.AuthorisedBy = &actor.ID
		request.AuthorisedAt = &now

		owner, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
		if err != nil {
			return leave.LeaveRequest{}, nil, fmt.Errorf("failed to get leave request owner: %w", err)
		}

		// The request is not authorised in the store yet, so the sum
		// excludes it; Prospective folds its own days in.
		balance, err := s.loadBalance(ctx, owner)
		if err != nil {
			return leave.LeaveRequest{}, nil, err
		}
		request.RemainingDaysSnapshot = balance.Prospective(request.Days)

		warnings, err = s.materializeOnRoster(ctx, request)
		if err != nil {
			return leave.LeaveRequest{}, nil, err
		}

	default:
		return leave.LeaveRequest{}, nil, leave.ErrInvalidState
	}

	request.AppendComment(actor.ID, action, req.Comment, now)

	ok, err := s.LeaveRequestRepository.UpdateStatusFrom(ctx, request, expected)
	if err != nil {
		return leave.LeaveRequest{}, nil, fmt.Errorf("failed to update leave request status: %w", err)
	}
	if !ok {
		// The guard failed: either the row is gone or another actor won
		// the race. Re-read to tell the two apart.
		if _, err := s.LeaveRequestRepository.GetByID(ctx, req.RequestID); err != nil {
			if errors.Is(err, leave.ErrLeaveRequestNotFound) {
				return leave.LeaveRequest{}, nil, leave.ErrLeaveRequestNotFound
			}
			return leave.LeaveRequest{}, nil, fmt.Errorf("failed to re-read leave request: %w", err)
		}
		return leave.LeaveRequest{}, nil, leave.ErrConcurrentModification
	}

	return request, warnings, nil
}

// materializeOnRoster creates one approved zero-hour "On Leave" roster
// entry per day of the authorised span, skipping days where the employee
// already has an entry. Skips are reported as warnings, never errors.
func (s *Service) materializeOnRoster(ctx context.Context, request leave.LeaveRequest) ([]string, error) {
	shift, err := s.ShiftRepository.GetByName(ctx, roster.OnLeaveShiftName)
	if err != nil {
		return nil, fmt.Errorf("failed to get %q shift: %w", roster.OnLeaveShiftName, err)
	}

	var warnings []string
	for _, day := range request.EachDay() {
		exists, err := s.RosterEntryRepository.ExistsForEmployeeOnDate(ctx, request.EmployeeID, day)
		if err != nil {
			return nil, fmt.Errorf("failed to check roster entry existence: %w", err)
		}
		if exists {
			warnings = append(warnings, fmt.Sprintf("roster entry already exists for %s, skipped", day.Format("2006-01-02")))
			continue
		}

		entry := roster.RosterEntry{
			EmployeeID: request.EmployeeID,
			ShiftID:    shift.ID,
			Date:       day,
			Hours:      0,
			Status:     roster.RosterEntryStatusApproved,
		}
		if _, err := s.RosterEntryRepository.Create(ctx, entry); err != nil {
			// The store-level uniqueness constraint can still fire under
			// concurrent writes; treat it like the existence check.
			if errors.Is(err, roster.ErrRosterEntryExists) {
				warnings = append(warnings, fmt.Sprintf("roster entry already exists for %s, skipped", day.Format("2006-01-02")))
				continue
			}
			return nil, fmt.Errorf("failed to create roster entry: %w", err)
		}
	}

	return warnings, nil
}

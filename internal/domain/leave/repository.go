package leave

import (
	"context"

	"github.com/shopspring/decimal"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter ListLeaveRequestsFilter) ([]LeaveRequest, error)

	// SumAuthorisedDays returns the total days of all authorised requests
	// for the employee. This is the authoritative input to the balance
	// calculation; nothing is cached on the employee record.
	SumAuthorisedDays(ctx context.Context, employeeID string) (decimal.Decimal, error)

	// UpdateStatusFrom writes the request's status-transition fields with a
	// conditional update guarded on the expected prior status. It returns
	// false when zero rows matched, which means the guard failed: the caller
	// re-reads to distinguish a missing row from a lost optimistic race.
	UpdateStatusFrom(ctx context.Context, request LeaveRequest, expected LeaveRequestStatus) (bool, error)

	Delete(ctx context.Context, id string) error
}

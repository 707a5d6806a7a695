package leave

import (
	"context"
)

type LeaveService interface {
	// SubmitLeaveRequest creates a pending request with a prospective
	// balance snapshot (informational until authorised).
	SubmitLeaveRequest(ctx context.Context, req SubmitLeaveRequestRequest) (LeaveRequestResponse, error)

	// TransitionLeaveRequest applies approve/reject/authorise. Authorising
	// deducts balance and materializes roster entries in one transaction.
	TransitionLeaveRequest(ctx context.Context, req TransitionLeaveRequestRequest) (TransitionLeaveRequestResponse, error)

	// DeleteLeaveRequest removes a request; only the owner may delete, and
	// only while the request is still pending.
	DeleteLeaveRequest(ctx context.Context, requestID string, actorID string) error

	GetLeaveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter ListLeaveRequestsFilter) ([]LeaveRequestResponse, error)
	ListMyLeaveRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)

	// GetLeaveBalance recomputes the remaining balance from the authorised
	// request history.
	GetLeaveBalance(ctx context.Context, employeeID string) (LeaveBalanceResponse, error)
}

package leave

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/leave"
)

// Balance is the computed leave position for one employee. Remaining is
// always derived as Allocation - AuthorisedDays; it is never stored.
type Balance struct {
	Allocation     decimal.Decimal
	AuthorisedDays decimal.Decimal
	Remaining      decimal.Decimal
}

// ComputeBalance derives the balance from an allocation and the summed
// authorised days. Negative remainders are allowed; going negative is a
// policy matter for the authoriser, not a hard stop.
func ComputeBalance(allocation, authorisedDays decimal.Decimal) Balance {
	return Balance{
		Allocation:     allocation,
		AuthorisedDays: authorisedDays,
		Remaining:      allocation.Sub(authorisedDays),
	}
}

// Prospective returns the remaining balance as if the given number of
// days were also authorised. Used for the snapshot written at submit
// and authorise time.
func (b Balance) Prospective(days int) decimal.Decimal {
	return b.Remaining.Sub(decimal.NewFromInt(int64(days)))
}

func (s *Service) loadBalance(ctx context.Context, emp employee.Employee) (Balance, error) {
	authorised, err := s.LeaveRequestRepository.SumAuthorisedDays(ctx, emp.ID)
	if err != nil {
		return Balance{}, fmt.Errorf("failed to sum authorised leave days: %w", err)
	}
	return ComputeBalance(emp.AnnualLeaveAllocation, authorised), nil
}

func (s *Service) GetLeaveBalance(ctx context.Context, employeeID string) (leave.LeaveBalanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveBalanceResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	balance, err := s.loadBalance(ctx, emp)
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	return leave.LeaveBalanceResponse{
		EmployeeID:     emp.ID,
		Allocation:     balance.Allocation.String(),
		AuthorisedDays: balance.AuthorisedDays.String(),
		Remaining:      balance.Remaining.String(),
	}, nil
}

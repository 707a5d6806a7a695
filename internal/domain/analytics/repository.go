package analytics

import (
	"context"
	"time"
)

// EmployeeSummaryStats combines headcount-by-role counts in a single query
type EmployeeSummaryStats struct {
	Total    int64
	Admins   int64
	Managers int64
	Regular  int64
}

// TodayRosterStats combines on-shift/on-leave counts for a day
type TodayRosterStats struct {
	OnShift int64
	OnLeave int64
}

// PendingApprovalStats combines pending counts across the three workflows
type PendingApprovalStats struct {
	LeaveRequests int64
	RosterEntries int64
	Timesheets    int64
}

// HoursStats combines scheduled and worked hour sums over a range
type HoursStats struct {
	Scheduled float64
	Worked    float64
}

// AnalyticsRepository defines the interface for dashboard data access
type AnalyticsRepository interface {
	// GetEmployeeSummary returns headcount by role in a single query
	GetEmployeeSummary(ctx context.Context) (*EmployeeSummaryStats, error)

	// GetTodayRosterStats returns on-shift/on-leave counts for a day
	GetTodayRosterStats(ctx context.Context, date time.Time) (*TodayRosterStats, error)

	// GetPendingApprovals returns pending counts across workflows in a single query
	GetPendingApprovals(ctx context.Context) (*PendingApprovalStats, error)

	// GetHoursStats returns scheduled and worked hour sums over a range
	GetHoursStats(ctx context.Context, start, end time.Time) (*HoursStats, error)

	// GetSkillDistribution returns employee counts per skill
	GetSkillDistribution(ctx context.Context) ([]SkillDistributionItem, error)

	// GetLeaveTypeDistribution returns request counts and total days per leave type
	GetLeaveTypeDistribution(ctx context.Context, start, end time.Time) ([]LeaveTypeDistributionItem, error)
}

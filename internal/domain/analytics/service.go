package analytics

import "context"

// AnalyticsService defines the interface for dashboard operations
type AnalyticsService interface {
	// GetDashboard returns combined dashboard data using goroutines
	GetDashboard(ctx context.Context, startDate, endDate string) (*DashboardResponse, error)

	// GetSkillDistribution returns employee counts per skill
	GetSkillDistribution(ctx context.Context) ([]SkillDistributionItem, error)

	// GetLeaveTypeDistribution returns leave request stats per type over a range
	GetLeaveTypeDistribution(ctx context.Context, startDate, endDate string) ([]LeaveTypeDistributionItem, error)
}

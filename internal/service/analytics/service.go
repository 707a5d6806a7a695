package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/analytics"
)

const recentActivityLimit = 10

type AnalyticsServiceImpl struct {
	analytics.AnalyticsRepository
	activity.LogRepository
}

func NewAnalyticsService(repo analytics.AnalyticsRepository, logRepository activity.LogRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		AnalyticsRepository: repo,
		LogRepository:       logRepository,
	}
}

// parseDate parses YYYY-MM-DD format, defaults to today
func parseDate(date string) time.Time {
	now := time.Now()
	if date == "" {
		return now
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return now
	}
	return parsed
}

// GetDashboard returns combined dashboard data using parallel goroutines,
// one per query.
func (s *AnalyticsServiceImpl) GetDashboard(ctx context.Context, startDate, endDate string) (*analytics.DashboardResponse, error) {
	now := time.Now()
	start := parseDate(startDate)
	end := parseDate(endDate)
	if startDate == "" {
		start = now.AddDate(0, 0, -30)
	}

	var (
		employeeSummary  analytics.EmployeeSummaryResponse
		todayRoster      analytics.TodayRosterResponse
		pendingApprovals analytics.PendingApprovalsResponse
		hoursSummary     analytics.HoursSummaryResponse
		recentActivities []analytics.ActivityItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headcount by role (1 query)
	g.Go(func() error {
		stats, err := s.GetEmployeeSummary(gCtx)
		if err != nil {
			return err
		}
		employeeSummary = analytics.EmployeeSummaryResponse{
			TotalEmployees: stats.Total,
			Admins:         stats.Admins,
			Managers:       stats.Managers,
			Employees:      stats.Regular,
		}
		return nil
	})

	// 2. Today's roster split (1 query); available is filled in after the
	// headcount arrives.
	g.Go(func() error {
		stats, err := s.GetTodayRosterStats(gCtx, now)
		if err != nil {
			return err
		}
		todayRoster = analytics.TodayRosterResponse{
			OnShift: stats.OnShift,
			OnLeave: stats.OnLeave,
			Date:    now.Format("2006-01-02"),
		}
		return nil
	})

	// 3. Pending approvals across the three workflows (1 query)
	g.Go(func() error {
		stats, err := s.GetPendingApprovals(gCtx)
		if err != nil {
			return err
		}
		pendingApprovals = analytics.PendingApprovalsResponse{
			LeaveRequests: stats.LeaveRequests,
			RosterEntries: stats.RosterEntries,
			Timesheets:    stats.Timesheets,
		}
		return nil
	})

	// 4. Scheduled vs worked hours over the range (1 query)
	g.Go(func() error {
		stats, err := s.GetHoursStats(gCtx, start, end)
		if err != nil {
			return err
		}
		hoursSummary = analytics.HoursSummaryResponse{
			ScheduledHours: stats.Scheduled,
			WorkedHours:    stats.Worked,
			StartDate:      start.Format("2006-01-02"),
			EndDate:        end.Format("2006-01-02"),
		}
		return nil
	})

	// 5. Recent activity feed
	g.Go(func() error {
		logs, err := s.LogRepository.ListRecent(gCtx, recentActivityLimit)
		if err != nil {
			return err
		}
		for i, log := range logs {
			item := analytics.ActivityItem{
				No:        i + 1,
				Action:    log.Action,
				Timestamp: log.CreatedAt.Format(time.RFC3339),
			}
			if log.EmployeeName != nil {
				item.EmployeeName = *log.EmployeeName
			}
			if log.Details != nil {
				item.Details = *log.Details
			}
			recentActivities = append(recentActivities, item)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	todayRoster.Available = employeeSummary.TotalEmployees - todayRoster.OnShift - todayRoster.OnLeave

	return &analytics.DashboardResponse{
		EmployeeSummary:  employeeSummary,
		TodayRoster:      todayRoster,
		PendingApprovals: pendingApprovals,
		HoursSummary:     hoursSummary,
		RecentActivities: recentActivities,
	}, nil
}

// GetSkillDistribution implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetSkillDistribution(ctx context.Context) ([]analytics.SkillDistributionItem, error) {
	items, err := s.AnalyticsRepository.GetSkillDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill distribution: %w", err)
	}
	return items, nil
}

// GetLeaveTypeDistribution implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetLeaveTypeDistribution(ctx context.Context, startDate, endDate string) ([]analytics.LeaveTypeDistributionItem, error) {
	now := time.Now()
	start := parseDate(startDate)
	end := parseDate(endDate)
	if startDate == "" {
		start = now.AddDate(0, 0, -365)
	}

	items, err := s.AnalyticsRepository.GetLeaveTypeDistribution(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave type distribution: %w", err)
	}
	return items, nil
}

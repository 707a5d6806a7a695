package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/domain/analytics"
	"github.com/WNVissie/BurgundyRoster/internal/domain/leave"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

// GetEmployeeSummary returns headcount by role in single query
func (r *analyticsRepositoryImpl) GetEmployeeSummary(ctx context.Context) (*analytics.EmployeeSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN role = 'admin' THEN 1 ELSE 0 END), 0) as admins,
			COALESCE(SUM(CASE WHEN role = 'manager' THEN 1 ELSE 0 END), 0) as managers,
			COALESCE(SUM(CASE WHEN role = 'employee' THEN 1 ELSE 0 END), 0) as regular
		FROM employees
	`

	var stats analytics.EmployeeSummaryStats
	err := q.QueryRow(ctx, query).Scan(
		&stats.Total, &stats.Admins, &stats.Managers, &stats.Regular,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee summary: %w", err)
	}
	return &stats, nil
}

// GetTodayRosterStats returns on-shift and on-leave counts for a day in single query
func (r *analyticsRepositoryImpl) GetTodayRosterStats(ctx context.Context, date time.Time) (*analytics.TodayRosterStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN s.name <> $2 THEN 1 ELSE 0 END), 0) as on_shift,
			COALESCE(SUM(CASE WHEN s.name = $2 THEN 1 ELSE 0 END), 0) as on_leave
		FROM roster_entries re
		JOIN shifts s ON re.shift_id = s.id
		WHERE re.date = $1 AND re.status IN ('approved', 'accepted')
	`

	var stats analytics.TodayRosterStats
	err := q.QueryRow(ctx, query, date, roster.OnLeaveShiftName).Scan(&stats.OnShift, &stats.OnLeave)
	if err != nil {
		return nil, fmt.Errorf("failed to get today roster stats: %w", err)
	}
	return &stats, nil
}

// GetPendingApprovals returns pending counts across workflows in single query
func (r *analyticsRepositoryImpl) GetPendingApprovals(ctx context.Context) (*analytics.PendingApprovalStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM leave_requests WHERE status IN ($1, $2)) as leave_requests,
			(SELECT COUNT(*) FROM roster_entries WHERE status = 'pending') as roster_entries,
			(SELECT COUNT(*) FROM timesheets WHERE status = 'pending') as timesheets
	`

	var stats analytics.PendingApprovalStats
	err := q.QueryRow(ctx, query,
		leave.LeaveRequestStatusPending, leave.LeaveRequestStatusApproved,
	).Scan(&stats.LeaveRequests, &stats.RosterEntries, &stats.Timesheets)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending approvals: %w", err)
	}
	return &stats, nil
}

// GetHoursStats returns scheduled and worked hour sums over a range in single query
func (r *analyticsRepositoryImpl) GetHoursStats(ctx context.Context, start, end time.Time) (*analytics.HoursStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COALESCE(SUM(hours), 0) FROM roster_entries
			 WHERE date >= $1 AND date <= $2 AND status IN ('approved', 'accepted')) as scheduled,
			(SELECT COALESCE(SUM(hours_worked), 0) FROM timesheets
			 WHERE date >= $1 AND date <= $2 AND status IN ('approved', 'accepted')) as worked
	`

	var stats analytics.HoursStats
	err := q.QueryRow(ctx, query, start, end).Scan(&stats.Scheduled, &stats.Worked)
	if err != nil {
		return nil, fmt.Errorf("failed to get hours stats: %w", err)
	}
	return &stats, nil
}

// GetSkillDistribution returns employee counts per skill
func (r *analyticsRepositoryImpl) GetSkillDistribution(ctx context.Context) ([]analytics.SkillDistributionItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, COUNT(es.employee_id) as count
		FROM skills s
		LEFT JOIN employee_skills es ON s.id = es.skill_id
		GROUP BY s.id, s.name
		ORDER BY count DESC, s.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill distribution: %w", err)
	}
	defer rows.Close()

	var items []analytics.SkillDistributionItem
	for rows.Next() {
		var item analytics.SkillDistributionItem
		if err := rows.Scan(&item.SkillID, &item.SkillName, &item.Count); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetLeaveTypeDistribution returns request counts and total days per leave type
func (r *analyticsRepositoryImpl) GetLeaveTypeDistribution(ctx context.Context, start, end time.Time) ([]analytics.LeaveTypeDistributionItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, COUNT(*) as count, COALESCE(SUM(days), 0) as total_days
		FROM leave_requests
		WHERE start_date >= $1 AND end_date <= $2
		GROUP BY leave_type
		ORDER BY count DESC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave type distribution: %w", err)
	}
	defer rows.Close()

	var items []analytics.LeaveTypeDistributionItem
	for rows.Next() {
		var item analytics.LeaveTypeDistributionItem
		if err := rows.Scan(&item.LeaveType, &item.Count, &item.TotalDays); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

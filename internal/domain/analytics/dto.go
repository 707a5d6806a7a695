package analytics

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	EmployeeSummary  EmployeeSummaryResponse  `json:"employee_summary"`
	TodayRoster      TodayRosterResponse      `json:"today_roster"`
	PendingApprovals PendingApprovalsResponse `json:"pending_approvals"`
	HoursSummary     HoursSummaryResponse     `json:"hours_summary"`
	RecentActivities []ActivityItem           `json:"recent_activities"`
}

// ========== EMPLOYEE SUMMARY ==========

// EmployeeSummaryResponse contains headcount broken down by role
type EmployeeSummaryResponse struct {
	TotalEmployees int64 `json:"total_employees"`
	Admins         int64 `json:"admins"`
	Managers       int64 `json:"managers"`
	Employees      int64 `json:"employees"`
}

// ========== TODAY ROSTER ==========

// TodayRosterResponse breaks today's workforce into on-shift, on-leave
// and unassigned employees
type TodayRosterResponse struct {
	OnShift   int64  `json:"on_shift"`
	OnLeave   int64  `json:"on_leave"`
	Available int64  `json:"available"`
	Date      string `json:"date"` // Format: "YYYY-MM-DD"
}

// ========== PENDING APPROVALS ==========

type PendingApprovalsResponse struct {
	LeaveRequests int64 `json:"leave_requests"` // status = pending or approved (awaiting authorisation)
	RosterEntries int64 `json:"roster_entries"` // status = pending
	Timesheets    int64 `json:"timesheets"`     // status = pending
}

// ========== HOURS SUMMARY ==========

// HoursSummaryResponse totals scheduled and worked hours over a range
type HoursSummaryResponse struct {
	ScheduledHours float64 `json:"scheduled_hours"`
	WorkedHours    float64 `json:"worked_hours"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
}

// ========== ACTIVITY ==========

type ActivityItem struct {
	No           int    `json:"no"`
	EmployeeName string `json:"employee_name"`
	Action       string `json:"action"`
	Details      string `json:"details,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// ========== SKILL DISTRIBUTION ==========

type SkillDistributionItem struct {
	SkillID   string `json:"skill_id"`
	SkillName string `json:"skill_name"`
	Count     int64  `json:"count"`
}

// ========== LEAVE TYPE DISTRIBUTION ==========

type LeaveTypeDistributionItem struct {
	LeaveType string `json:"leave_type"`
	Count     int64  `json:"count"`
	TotalDays int64  `json:"total_days"`
}

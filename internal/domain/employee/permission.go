package employee

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Master Data
	PermissionMasterManage Permission = "master.manage"

	// Roster Management
	PermissionRosterViewOwn Permission = "roster.view_own"
	PermissionRosterViewAll Permission = "roster.view_all"
	PermissionRosterManage  Permission = "roster.manage"
	PermissionRosterApprove Permission = "roster.approve"
	PermissionRosterAccept  Permission = "roster.accept"

	// Leave Management
	PermissionLeaveViewOwn   Permission = "leave.view_own"
	PermissionLeaveCreate    Permission = "leave.create"
	PermissionLeaveViewAll   Permission = "leave.view_all"
	PermissionLeaveApprove   Permission = "leave.approve"
	PermissionLeaveAuthorise Permission = "leave.authorise"

	// Timesheet Management
	PermissionTimesheetViewOwn  Permission = "timesheet.view_own"
	PermissionTimesheetViewAll  Permission = "timesheet.view_all"
	PermissionTimesheetGenerate Permission = "timesheet.generate"
	PermissionTimesheetApprove  Permission = "timesheet.approve"
	PermissionTimesheetAccept   Permission = "timesheet.accept"

	// Analytics & Reports
	PermissionAnalyticsView Permission = "analytics.view"
	PermissionReportsView   Permission = "reports.view"

	// Export
	PermissionExportRun Permission = "export.run"
)

// RolePermissions maps roles to their permissions. Resolved once at
// startup; handlers check against this table, never a stored bag.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionMasterManage,
		PermissionRosterViewOwn,
		PermissionRosterViewAll,
		PermissionRosterManage,
		PermissionRosterApprove,
		PermissionRosterAccept,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionLeaveAuthorise,
		PermissionTimesheetViewOwn,
		PermissionTimesheetViewAll,
		PermissionTimesheetGenerate,
		PermissionTimesheetApprove,
		PermissionTimesheetAccept,
		PermissionAnalyticsView,
		PermissionReportsView,
		PermissionExportRun,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionEmployeeViewAll,
		PermissionRosterViewOwn,
		PermissionRosterViewAll,
		PermissionRosterManage,
		PermissionRosterApprove,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionLeaveAuthorise,
		PermissionTimesheetViewOwn,
		PermissionTimesheetViewAll,
		PermissionTimesheetGenerate,
		PermissionTimesheetApprove,
		PermissionAnalyticsView,
		PermissionReportsView,
		PermissionExportRun,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionRosterViewOwn,
		PermissionRosterAccept,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionTimesheetViewOwn,
		PermissionTimesheetAccept,
	},
	RoleGuest: {
		// Guest has no permissions until onboarded
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

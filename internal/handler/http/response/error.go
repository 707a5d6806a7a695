package response

import (
	"errors"
	"net/http"

	"github.com/WNVissie/BurgundyRoster/internal/domain/auth"
	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/export"
	"github.com/WNVissie/BurgundyRoster/internal/domain/leave"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/area"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/designation"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/license"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/skill"
	"github.com/WNVissie/BurgundyRoster/internal/domain/report"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "Invalid OAuth state")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Google account email not verified")
	case errors.Is(err, auth.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrGoogleIDExists):
		Conflict(w, "Google account already linked to another employee")
	case errors.Is(err, employee.ErrSkillAlreadyAssigned):
		Conflict(w, "Skill already assigned to employee")
	case errors.Is(err, employee.ErrSkillNotAssigned):
		NotFound(w, "Skill not assigned to employee")
	case errors.Is(err, employee.ErrLicenseAlreadyAssigned):
		Conflict(w, "License already assigned to employee")
	case errors.Is(err, employee.ErrLicenseNotAssigned):
		NotFound(w, "License not assigned to employee")
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, "You cannot delete your own employee record", nil)
	case errors.Is(err, employee.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidState):
		Conflict(w, "Leave request is not in a state that allows this action")
	case errors.Is(err, leave.ErrInvalidAction):
		BadRequest(w, "Unknown leave action", nil)
	case errors.Is(err, leave.ErrPermissionDenied):
		Forbidden(w, "You are not allowed to perform this action")
	case errors.Is(err, leave.ErrConcurrentModification):
		Conflict(w, "Leave request was modified concurrently, retry")

	// Roster domain errors
	case errors.Is(err, roster.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, roster.ErrShiftNameExists):
		Conflict(w, "Shift with this name already exists")
	case errors.Is(err, roster.ErrShiftInUse):
		Conflict(w, "Shift is referenced by roster entries")
	case errors.Is(err, roster.ErrRosterEntryNotFound):
		NotFound(w, "Roster entry not found")
	case errors.Is(err, roster.ErrRosterEntryExists):
		Conflict(w, "Roster entry already exists for this employee and date")
	case errors.Is(err, roster.ErrRosterEntryNotApproved):
		Conflict(w, "Roster entry is not approved")
	case errors.Is(err, roster.ErrRosterEntryNotOwned):
		Forbidden(w, "Roster entry belongs to another employee")
	case errors.Is(err, roster.ErrInvalidEntryStatus):
		Conflict(w, "Roster entry is not in a state that allows this action")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrTimesheetNotOwned):
		Forbidden(w, "Timesheet belongs to another employee")
	case errors.Is(err, timesheet.ErrInvalidStatus):
		Conflict(w, "Timesheet is not in a state that allows this action")
	case errors.Is(err, timesheet.ErrTimesheetNotPending):
		Conflict(w, "Timesheet is not pending")

	// Master data errors
	case errors.Is(err, skill.ErrSkillNotFound):
		NotFound(w, "Skill not found")
	case errors.Is(err, skill.ErrSkillNameExists):
		Conflict(w, "Skill with this name already exists")
	case errors.Is(err, skill.ErrSkillInUse):
		Conflict(w, "Skill is assigned to employees")
	case errors.Is(err, area.ErrAreaNotFound):
		NotFound(w, "Area of responsibility not found")
	case errors.Is(err, area.ErrAreaNameExists):
		Conflict(w, "Area with this name already exists")
	case errors.Is(err, area.ErrAreaInUse):
		Conflict(w, "Area is still referenced")
	case errors.Is(err, designation.ErrDesignationNotFound):
		NotFound(w, "Designation not found")
	case errors.Is(err, designation.ErrDesignationNameExists):
		Conflict(w, "Designation with this name already exists")
	case errors.Is(err, designation.ErrDesignationInUse):
		Conflict(w, "Designation is still referenced")
	case errors.Is(err, license.ErrLicenseNotFound):
		NotFound(w, "License not found")
	case errors.Is(err, license.ErrLicenseNameExists):
		Conflict(w, "License with this name already exists")
	case errors.Is(err, license.ErrLicenseInUse):
		Conflict(w, "License is assigned to employees")

	// Report and export errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "End date must be after start date", nil)
	case errors.Is(err, report.ErrNoDataFound):
		NotFound(w, "No data found for the specified criteria")
	case errors.Is(err, export.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

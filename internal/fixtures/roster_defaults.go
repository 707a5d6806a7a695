package fixtures

import (
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/area"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/designation"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/license"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/skill"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

// ==========================================
// DEFAULT SHIFTS
// ==========================================

// GetDefaultShifts returns the canonical shift catalogue for a fresh
// installation. The "On Leave" shift is required: approved leave is
// materialized on the roster against it with zero hours.
func GetDefaultShifts() []roster.Shift {
	return []roster.Shift{
		{Name: "Morning", StartTime: "06:00", EndTime: "14:00", Hours: 8, Color: "#3498db"},
		{Name: "Afternoon", StartTime: "14:00", EndTime: "22:00", Hours: 8, Color: "#e67e22"},
		{Name: "Night", StartTime: "22:00", EndTime: "06:00", Hours: 8, Color: "#34495e"},
		{Name: "Standby", StartTime: "00:00", EndTime: "23:59", Hours: 0, Color: "#95a5a6"},
		{Name: roster.OnLeaveShiftName, StartTime: "00:00", EndTime: "00:00", Hours: 0, Color: "#7f8c8d"},
	}
}

// ==========================================
// DEFAULT SKILLS
// ==========================================

func GetDefaultSkills() []skill.Skill {
	return []skill.Skill{
		{Name: "Forklift Operation", Description: strPtr("Certified forklift operator")},
		{Name: "First Aid", Description: strPtr("First aid and CPR trained")},
		{Name: "Crane Operation"},
		{Name: "Welding"},
		{Name: "Electrical Maintenance"},
		{Name: "Quality Inspection"},
	}
}

// ==========================================
// DEFAULT AREAS OF RESPONSIBILITY
// ==========================================

func GetDefaultAreas() []area.Area {
	return []area.Area{
		{Name: "Production", Description: strPtr("Main production floor")},
		{Name: "Warehouse"},
		{Name: "Maintenance"},
		{Name: "Dispatch"},
		{Name: "Administration"},
	}
}

// ==========================================
// DEFAULT DESIGNATIONS
// ==========================================

func GetDefaultDesignations() []designation.Designation {
	return []designation.Designation{
		{Name: "Operator"},
		{Name: "Senior Operator"},
		{Name: "Team Lead"},
		{Name: "Supervisor"},
		{Name: "Shift Manager"},
		{Name: "Administrator"},
	}
}

// ==========================================
// DEFAULT LICENSE TYPES
// ==========================================

func GetDefaultLicenses() []license.License {
	return []license.License{
		{Name: "Forklift License", ValidityDays: intPtr(1095)},
		{Name: "Crane License", ValidityDays: intPtr(1825)},
		{Name: "Driver's License", ValidityDays: intPtr(1825)},
		{Name: "First Aid Certificate", ValidityDays: intPtr(1095)},
		{Name: "Safety Induction", Description: strPtr("Annual site safety induction"), ValidityDays: intPtr(365)},
	}
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/domain/report"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetEmployeeSearchRows returns employees matching the filters with their
// situation on the reference day (On Shift / On Leave / Available).
func (r *reportRepositoryImpl) GetEmployeeSearchRows(ctx context.Context, req report.EmployeeSearchRequest, date time.Time) ([]report.EmployeeSearchRow, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{date, roster.OnLeaveShiftName}
	argIndex := 3

	if req.Search != "" {
		whereClause += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.surname ILIKE $%d OR e.email ILIKE $%d)", argIndex, argIndex, argIndex)
		args = append(args, "%"+req.Search+"%")
		argIndex++
	}
	if req.Role != nil {
		whereClause += fmt.Sprintf(" AND e.role = $%d", argIndex)
		args = append(args, *req.Role)
		argIndex++
	}
	if req.AreaID != nil {
		whereClause += fmt.Sprintf(" AND e.area_of_responsibility_id = $%d", argIndex)
		args = append(args, *req.AreaID)
		argIndex++
	}
	if req.DesignationID != nil {
		whereClause += fmt.Sprintf(" AND e.designation_id = $%d", argIndex)
		args = append(args, *req.DesignationID)
		argIndex++
	}
	if req.SkillID != nil {
		whereClause += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM employee_skills es WHERE es.employee_id = e.id AND es.skill_id = $%d)", argIndex)
		args = append(args, *req.SkillID)
		argIndex++
	}
	if req.LicenseID != nil {
		whereClause += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM employee_licenses el WHERE el.employee_id = e.id AND el.license_id = $%d)", argIndex)
		args = append(args, *req.LicenseID)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.name || ' ' || e.surname as employee_name, e.email, e.role,
			   d.name as designation, a.name as area,
			   s.name as shift_name
		FROM employees e
		LEFT JOIN designations d ON e.designation_id = d.id
		LEFT JOIN areas_of_responsibility a ON e.area_of_responsibility_id = a.id
		LEFT JOIN roster_entries re ON re.employee_id = e.id AND re.date = $1 AND re.status IN ('approved', 'accepted')
		LEFT JOIN shifts s ON re.shift_id = s.id
		%s
		ORDER BY employee_name
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.EmployeeSearchRow
	for rows.Next() {
		var row report.EmployeeSearchRow
		var shiftName *string
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &row.Email, &row.Role, &row.Designation, &row.Area, &shiftName); err != nil {
			return nil, err
		}
		switch {
		case shiftName == nil:
			row.CurrentStatus = report.EmployeeStatusAvailable
		case *shiftName == roster.OnLeaveShiftName:
			row.CurrentStatus = report.EmployeeStatusOnLeave
		default:
			row.CurrentStatus = report.EmployeeStatusOnShift
			row.ShiftName = shiftName
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepositoryImpl) GetEmployeeHistoryRows(ctx context.Context, employeeID string, start, end *time.Time) ([]report.EmployeeHistoryRow, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE re.employee_id = $1"
	args := []interface{}{employeeID}
	argIndex := 2

	if start != nil {
		whereClause += fmt.Sprintf(" AND re.date >= $%d", argIndex)
		args = append(args, *start)
		argIndex++
	}
	if end != nil {
		whereClause += fmt.Sprintf(" AND re.date <= $%d", argIndex)
		args = append(args, *end)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT re.date, s.name, re.hours, re.status, re.accepted_at
		FROM roster_entries re
		JOIN shifts s ON re.shift_id = s.id
		%s
		ORDER BY re.date
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.EmployeeHistoryRow
	for rows.Next() {
		var row report.EmployeeHistoryRow
		var date time.Time
		var acceptedAt *time.Time
		if err := rows.Scan(&date, &row.ShiftName, &row.Hours, &row.Status, &acceptedAt); err != nil {
			return nil, err
		}
		row.Date = date.Format("2006-01-02")
		if acceptedAt != nil {
			t := acceptedAt.Format(time.RFC3339)
			row.AcceptedAt = &t
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepositoryImpl) GetShiftAcceptanceRows(ctx context.Context, start, end time.Time) ([]report.ShiftAcceptanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name,
			   COUNT(re.id) as assigned,
			   COALESCE(SUM(CASE WHEN re.status = 'accepted' THEN 1 ELSE 0 END), 0) as accepted
		FROM shifts s
		LEFT JOIN roster_entries re ON re.shift_id = s.id AND re.date >= $1 AND re.date <= $2
		GROUP BY s.id, s.name
		ORDER BY s.name
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []report.ShiftAcceptanceRow
	for rows.Next() {
		var row report.ShiftAcceptanceRow
		if err := rows.Scan(&row.ShiftID, &row.ShiftName, &row.Assigned, &row.Accepted); err != nil {
			return nil, err
		}
		if row.Assigned > 0 {
			row.AcceptedRate = float64(row.Accepted) / float64(row.Assigned) * 100
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

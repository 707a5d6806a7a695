package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

func (r *timesheetRepositoryImpl) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			id, employee_id, roster_id, date, hours_worked, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ts.EmployeeID, ts.RosterID, ts.Date, ts.HoursWorked, ts.Status,
	).Scan(&ts.ID, &ts.CreatedAt, &ts.UpdatedAt)

	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return ts, nil
}

func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.roster_id, t.date, t.hours_worked, t.status,
			   t.created_at, t.updated_at,
			   e.name || ' ' || e.surname as employee_name,
			   s.name as shift_name
		FROM timesheets t
		JOIN employees e ON t.employee_id = e.id
		JOIN roster_entries re ON t.roster_id = re.id
		JOIN shifts s ON re.shift_id = s.id
		WHERE t.id = $1
	`

	var ts timesheet.Timesheet
	var employeeName, shiftName string

	err := q.QueryRow(ctx, query, id).Scan(
		&ts.ID, &ts.EmployeeID, &ts.RosterID, &ts.Date, &ts.HoursWorked, &ts.Status,
		&ts.CreatedAt, &ts.UpdatedAt,
		&employeeName, &shiftName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}

	ts.EmployeeName = &employeeName
	ts.ShiftName = &shiftName

	return ts, nil
}

func (r *timesheetRepositoryImpl) List(ctx context.Context, filter timesheet.ListTimesheetsFilter) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND t.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND t.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.StartDate != nil {
		whereClause += fmt.Sprintf(" AND t.date >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		whereClause += fmt.Sprintf(" AND t.date <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.employee_id, t.roster_id, t.date, t.hours_worked, t.status,
			   t.created_at, t.updated_at,
			   e.name || ' ' || e.surname as employee_name,
			   s.name as shift_name
		FROM timesheets t
		JOIN employees e ON t.employee_id = e.id
		JOIN roster_entries re ON t.roster_id = re.id
		JOIN shifts s ON re.shift_id = s.id
		%s
		ORDER BY t.date DESC, employee_name
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		var ts timesheet.Timesheet
		var employeeName, shiftName string
		err := rows.Scan(
			&ts.ID, &ts.EmployeeID, &ts.RosterID, &ts.Date, &ts.HoursWorked, &ts.Status,
			&ts.CreatedAt, &ts.UpdatedAt,
			&employeeName, &shiftName,
		)
		if err != nil {
			return nil, err
		}
		ts.EmployeeName = &employeeName
		ts.ShiftName = &shiftName
		timesheets = append(timesheets, ts)
	}
	return timesheets, rows.Err()
}

func (r *timesheetRepositoryImpl) UpdateStatus(ctx context.Context, id string, status timesheet.TimesheetStatus) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE timesheets SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM timesheets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

func (r *timesheetRepositoryImpl) ExistsForRoster(ctx context.Context, rosterID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM timesheets WHERE roster_id = $1)`, rosterID).Scan(&exists)
	return exists, err
}

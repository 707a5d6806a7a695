package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type rosterEntryRepositoryImpl struct {
	db *database.DB
}

func NewRosterEntryRepository(db *database.DB) roster.RosterEntryRepository {
	return &rosterEntryRepositoryImpl{db: db}
}

const rosterEntryColumns = `
	re.id, re.employee_id, re.shift_id, re.date, re.hours, re.status,
	re.area_of_responsibility_id, re.notes, re.accepted_at,
	re.created_at, re.updated_at,
	e.name || ' ' || e.surname as employee_name,
	s.name as shift_name, s.color as shift_color`

const rosterEntryJoins = `
	FROM roster_entries re
	JOIN employees e ON re.employee_id = e.id
	JOIN shifts s ON re.shift_id = s.id`

func scanRosterEntry(row pgx.Row) (roster.RosterEntry, error) {
	var entry roster.RosterEntry
	var employeeName, shiftName, shiftColor string
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.ShiftID, &entry.Date, &entry.Hours, &entry.Status,
		&entry.AreaOfResponsibilityID, &entry.Notes, &entry.AcceptedAt,
		&entry.CreatedAt, &entry.UpdatedAt,
		&employeeName, &shiftName, &shiftColor,
	)
	if err != nil {
		return roster.RosterEntry{}, err
	}
	entry.EmployeeName = &employeeName
	entry.ShiftName = &shiftName
	entry.ShiftColor = &shiftColor
	return entry, nil
}

func (r *rosterEntryRepositoryImpl) Create(ctx context.Context, entry roster.RosterEntry) (roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roster_entries (
			id, employee_id, shift_id, date, hours, status,
			area_of_responsibility_id, notes, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.ShiftID, entry.Date, entry.Hours, entry.Status,
		entry.AreaOfResponsibilityID, entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return roster.RosterEntry{}, roster.ErrRosterEntryExists
		}
		return roster.RosterEntry{}, fmt.Errorf("failed to create roster entry: %w", err)
	}

	return entry, nil
}

func (r *rosterEntryRepositoryImpl) GetByID(ctx context.Context, id string) (roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + rosterEntryColumns + rosterEntryJoins + ` WHERE re.id = $1`

	entry, err := scanRosterEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.RosterEntry{}, roster.ErrRosterEntryNotFound
		}
		return roster.RosterEntry{}, err
	}
	return entry, nil
}

func (r *rosterEntryRepositoryImpl) List(ctx context.Context, filter roster.ListRosterEntriesFilter) ([]roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND re.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.StartDate != nil {
		whereClause += fmt.Sprintf(" AND re.date >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		whereClause += fmt.Sprintf(" AND re.date <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND re.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.AreaID != nil {
		whereClause += fmt.Sprintf(" AND re.area_of_responsibility_id = $%d", argIndex)
		args = append(args, *filter.AreaID)
		argIndex++
	}

	query := `SELECT` + rosterEntryColumns + rosterEntryJoins + `
	` + whereClause + `
	ORDER BY re.date, employee_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []roster.RosterEntry
	for rows.Next() {
		entry, err := scanRosterEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *rosterEntryRepositoryImpl) Update(ctx context.Context, entry roster.RosterEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roster_entries
		SET employee_id = $1, shift_id = $2, date = $3, hours = $4,
			area_of_responsibility_id = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`

	commandTag, err := q.Exec(ctx, query,
		entry.EmployeeID, entry.ShiftID, entry.Date, entry.Hours,
		entry.AreaOfResponsibilityID, entry.Notes, entry.ID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return roster.ErrRosterEntryNotFound
	}
	return nil
}

func (r *rosterEntryRepositoryImpl) UpdateStatus(ctx context.Context, id string, status roster.RosterEntryStatus, acceptedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roster_entries
		SET status = $1, accepted_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, status, acceptedAt, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return roster.ErrRosterEntryNotFound
	}
	return nil
}

func (r *rosterEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM roster_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return roster.ErrRosterEntryNotFound
	}
	return nil
}

func (r *rosterEntryRepositoryImpl) ExistsForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM roster_entries WHERE employee_id = $1 AND date = $2)`
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists)
	return exists, err
}

func (r *rosterEntryRepositoryImpl) ListApprovedInRange(ctx context.Context, start, end time.Time, employeeID *string) ([]roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE re.status = $1 AND re.date >= $2 AND re.date <= $3"
	args := []interface{}{roster.RosterEntryStatusApproved, start, end}

	if employeeID != nil {
		whereClause += " AND re.employee_id = $4"
		args = append(args, *employeeID)
	}

	query := `SELECT` + rosterEntryColumns + rosterEntryJoins + `
	` + whereClause + `
	ORDER BY re.date, re.employee_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []roster.RosterEntry
	for rows.Next() {
		entry, err := scanRosterEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

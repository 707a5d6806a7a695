package postgresql

import (
	"context"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
)

type activityLogRepositoryImpl struct {
	db *database.DB
}

func NewActivityLogRepository(db *database.DB) activity.LogRepository {
	return &activityLogRepositoryImpl{db: db}
}

func (r *activityLogRepositoryImpl) Create(ctx context.Context, log activity.Log) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_logs (id, employee_id, action, details, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
	`
	_, err := q.Exec(ctx, query, log.EmployeeID, log.Action, log.Details)
	if err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}
	return nil
}

func (r *activityLogRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]activity.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT al.id, al.employee_id, al.action, al.details, al.created_at,
			   e.name || ' ' || e.surname as employee_name
		FROM activity_logs al
		LEFT JOIN employees e ON al.employee_id = e.id
		ORDER BY al.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []activity.Log
	for rows.Next() {
		var l activity.Log
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Action, &l.Details, &l.CreatedAt, &l.EmployeeName); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *activityLogRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]activity.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT al.id, al.employee_id, al.action, al.details, al.created_at,
			   e.name || ' ' || e.surname as employee_name
		FROM activity_logs al
		LEFT JOIN employees e ON al.employee_id = e.id
		WHERE al.employee_id = $1
		ORDER BY al.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []activity.Log
	for rows.Next() {
		var l activity.Log
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Action, &l.Details, &l.CreatedAt, &l.EmployeeName); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

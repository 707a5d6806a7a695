package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/leave"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type,
			start_date, end_date, days,
			reason, status, action_comment, remaining_days_snapshot,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5,
			$6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType,
		request.StartDate, request.EndDate, request.Days,
		request.Reason, request.Status, request.ActionComment, request.RemainingDaysSnapshot,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type,
			   lr.start_date, lr.end_date, lr.days,
			   lr.reason, lr.status,
			   lr.approved_by, lr.approved_at, lr.authorised_by, lr.authorised_at,
			   lr.action_comment, lr.remaining_days_snapshot,
			   lr.created_at, lr.updated_at,
			   e.name || ' ' || e.surname as employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	var employeeName string

	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType,
		&req.StartDate, &req.EndDate, &req.Days,
		&req.Reason, &req.Status,
		&req.ApprovedBy, &req.ApprovedAt, &req.AuthorisedBy, &req.AuthorisedAt,
		&req.ActionComment, &req.RemainingDaysSnapshot,
		&req.CreatedAt, &req.UpdatedAt,
		&employeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	req.EmployeeName = &employeeName

	return req, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListLeaveRequestsFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND lr.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND lr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.StartDate != nil {
		whereClause += fmt.Sprintf(" AND lr.start_date >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		whereClause += fmt.Sprintf(" AND lr.end_date <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.leave_type,
			   lr.start_date, lr.end_date, lr.days,
			   lr.reason, lr.status,
			   lr.approved_by, lr.approved_at, lr.authorised_by, lr.authorised_at,
			   lr.action_comment, lr.remaining_days_snapshot,
			   lr.created_at, lr.updated_at,
			   e.name || ' ' || e.surname as employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		%s
		ORDER BY lr.created_at DESC
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var employeeName string
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType,
			&req.StartDate, &req.EndDate, &req.Days,
			&req.Reason, &req.Status,
			&req.ApprovedBy, &req.ApprovedAt, &req.AuthorisedBy, &req.AuthorisedAt,
			&req.ActionComment, &req.RemainingDaysSnapshot,
			&req.CreatedAt, &req.UpdatedAt,
			&employeeName,
		)
		if err != nil {
			return nil, err
		}
		req.EmployeeName = &employeeName
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) SumAuthorisedDays(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM leave_requests
		WHERE employee_id = $1 AND status = $2
	`

	var sum decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID, leave.LeaveRequestStatusAuthorised).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// UpdateStatusFrom applies the transition with an optimistic guard on the
// prior status. Zero rows affected means the guard failed.
func (r *leaveRequestRepositoryImpl) UpdateStatusFrom(ctx context.Context, request leave.LeaveRequest, expected leave.LeaveRequestStatus) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			approved_by = $2, approved_at = $3,
			authorised_by = $4, authorised_at = $5,
			action_comment = $6, remaining_days_snapshot = $7,
			updated_at = NOW()
		WHERE id = $8 AND status = $9
	`

	commandTag, err := q.Exec(ctx, query,
		request.Status,
		request.ApprovedBy, request.ApprovedAt,
		request.AuthorisedBy, request.AuthorisedAt,
		request.ActionComment, request.RemainingDaysSnapshot,
		request.ID, expected,
	)
	if err != nil {
		return false, err
	}
	return commandTag.RowsAffected() == 1, nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

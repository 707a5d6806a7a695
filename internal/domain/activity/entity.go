package activity

import (
	"context"
	"time"
)

// Log is an append-only audit row for auth and workflow actions.
type Log struct {
	ID         string
	EmployeeID *string
	Action     string
	Details    *string
	CreatedAt  time.Time

	// Joins (for responses)
	EmployeeName *string
}

type LogRepository interface {
	Create(ctx context.Context, log Log) error
	ListRecent(ctx context.Context, limit int) ([]Log, error)
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Log, error)
}

type LogResponse struct {
	ID           string  `json:"id"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Action       string  `json:"action"`
	Details      *string `json:"details,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func (l *Log) ToResponse() LogResponse {
	return LogResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Action:       l.Action,
		Details:      l.Details,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
	}
}

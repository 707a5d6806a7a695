package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) roster.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, shift roster.Shift) (roster.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, name, start_time, end_time, hours, color, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.Name, shift.StartTime, shift.EndTime, shift.Hours, shift.Color,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return roster.Shift{}, roster.ErrShiftNameExists
		}
		return roster.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (roster.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, hours, color, created_at, updated_at
		FROM shifts WHERE id = $1
	`

	var s roster.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.Hours, &s.Color, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.Shift{}, roster.ErrShiftNotFound
		}
		return roster.Shift{}, err
	}
	return s, nil
}

func (r *shiftRepositoryImpl) GetByName(ctx context.Context, name string) (roster.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, hours, color, created_at, updated_at
		FROM shifts WHERE name = $1
	`

	var s roster.Shift
	err := q.QueryRow(ctx, query, name).Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.Hours, &s.Color, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.Shift{}, roster.ErrShiftNotFound
		}
		return roster.Shift{}, err
	}
	return s, nil
}

func (r *shiftRepositoryImpl) List(ctx context.Context) ([]roster.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, hours, color, created_at, updated_at
		FROM shifts ORDER BY start_time, name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []roster.Shift
	for rows.Next() {
		var s roster.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.Hours, &s.Color, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, shift roster.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, hours = $4, color = $5, updated_at = NOW()
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query,
		shift.Name, shift.StartTime, shift.EndTime, shift.Hours, shift.Color, shift.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return roster.ErrShiftNameExists
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return roster.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return roster.ErrShiftInUse
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return roster.ErrShiftNotFound
	}
	return nil
}

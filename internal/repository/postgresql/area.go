package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/master/area"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type areaRepositoryImpl struct {
	db *database.DB
}

func NewAreaRepository(db *database.DB) area.AreaRepository {
	return &areaRepositoryImpl{db: db}
}

func (r *areaRepositoryImpl) Create(ctx context.Context, a area.Area) (area.Area, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO areas_of_responsibility (id, name, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.Name, a.Description).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return area.Area{}, area.ErrAreaNameExists
		}
		return area.Area{}, fmt.Errorf("failed to create area: %w", err)
	}
	return a, nil
}

func (r *areaRepositoryImpl) GetByID(ctx context.Context, id string) (area.Area, error) {
	q := GetQuerier(ctx, r.db)

	var a area.Area
	err := q.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM areas_of_responsibility WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return area.Area{}, area.ErrAreaNotFound
		}
		return area.Area{}, err
	}
	return a, nil
}

func (r *areaRepositoryImpl) List(ctx context.Context) ([]area.Area, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM areas_of_responsibility ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []area.Area
	for rows.Next() {
		var a area.Area
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func (r *areaRepositoryImpl) Update(ctx context.Context, req area.UpdateAreaRequest) error {
	q := GetQuerier(ctx, r.db)

	setClause := "SET updated_at = NOW()"
	args := []interface{}{}
	argIndex := 1

	if req.Name != nil {
		setClause += fmt.Sprintf(", name = $%d", argIndex)
		args = append(args, *req.Name)
		argIndex++
	}
	if req.Description != nil {
		setClause += fmt.Sprintf(", description = $%d", argIndex)
		args = append(args, *req.Description)
		argIndex++
	}

	query := fmt.Sprintf("UPDATE areas_of_responsibility %s WHERE id = $%d", setClause, argIndex)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return area.ErrAreaNameExists
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return area.ErrAreaNotFound
	}
	return nil
}

func (r *areaRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM areas_of_responsibility WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return area.ErrAreaInUse
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return area.ErrAreaNotFound
	}
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/master/designation"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepositoryImpl{db: db}
}

func (r *designationRepositoryImpl) Create(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO designations (id, name, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.Name, d.Description).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return designation.Designation{}, designation.ErrDesignationNameExists
		}
		return designation.Designation{}, fmt.Errorf("failed to create designation: %w", err)
	}
	return d, nil
}

func (r *designationRepositoryImpl) GetByID(ctx context.Context, id string) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	var d designation.Designation
	err := q.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM designations WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return designation.Designation{}, designation.ErrDesignationNotFound
		}
		return designation.Designation{}, err
	}
	return d, nil
}

func (r *designationRepositoryImpl) List(ctx context.Context) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM designations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designations []designation.Designation
	for rows.Next() {
		var d designation.Designation
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		designations = append(designations, d)
	}
	return designations, rows.Err()
}

func (r *designationRepositoryImpl) Update(ctx context.Context, req designation.UpdateDesignationRequest) error {
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

	query := fmt.Sprintf("UPDATE designations %s WHERE id = $%d", setClause, argIndex)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return designation.ErrDesignationNameExists
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}
	return nil
}

func (r *designationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return designation.ErrDesignationInUse
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}
	return nil
}

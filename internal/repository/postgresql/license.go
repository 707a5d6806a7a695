package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/master/license"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type licenseRepositoryImpl struct {
	db *database.DB
}

func NewLicenseRepository(db *database.DB) license.LicenseRepository {
	return &licenseRepositoryImpl{db: db}
}

func (r *licenseRepositoryImpl) Create(ctx context.Context, l license.License) (license.License, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO licenses (id, name, description, validity_days, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, l.Name, l.Description, l.ValidityDays).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return license.License{}, license.ErrLicenseNameExists
		}
		return license.License{}, fmt.Errorf("failed to create license: %w", err)
	}
	return l, nil
}

func (r *licenseRepositoryImpl) GetByID(ctx context.Context, id string) (license.License, error) {
	q := GetQuerier(ctx, r.db)

	var l license.License
	err := q.QueryRow(ctx,
		`SELECT id, name, description, validity_days, created_at, updated_at FROM licenses WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Description, &l.ValidityDays, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return license.License{}, license.ErrLicenseNotFound
		}
		return license.License{}, err
	}
	return l, nil
}

func (r *licenseRepositoryImpl) List(ctx context.Context) ([]license.License, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, validity_days, created_at, updated_at FROM licenses ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var licenses []license.License
	for rows.Next() {
		var l license.License
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.ValidityDays, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		licenses = append(licenses, l)
	}
	return licenses, rows.Err()
}

func (r *licenseRepositoryImpl) Update(ctx context.Context, req license.UpdateLicenseRequest) error {
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
	if req.ValidityDays != nil {
		setClause += fmt.Sprintf(", validity_days = $%d", argIndex)
		args = append(args, *req.ValidityDays)
		argIndex++
	}

	query := fmt.Sprintf("UPDATE licenses %s WHERE id = $%d", setClause, argIndex)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return license.ErrLicenseNameExists
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return license.ErrLicenseNotFound
	}
	return nil
}

func (r *licenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM licenses WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return license.ErrLicenseInUse
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return license.ErrLicenseNotFound
	}
	return nil
}

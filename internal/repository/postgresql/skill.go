package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/master/skill"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type skillRepositoryImpl struct {
	db *database.DB
}

func NewSkillRepository(db *database.DB) skill.SkillRepository {
	return &skillRepositoryImpl{db: db}
}

func (r *skillRepositoryImpl) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO skills (id, name, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.Name, s.Description).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return skill.Skill{}, skill.ErrSkillNameExists
		}
		return skill.Skill{}, fmt.Errorf("failed to create skill: %w", err)
	}
	return s, nil
}

func (r *skillRepositoryImpl) GetByID(ctx context.Context, id string) (skill.Skill, error) {
	q := GetQuerier(ctx, r.db)

	var s skill.Skill
	err := q.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM skills WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, skill.ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *skillRepositoryImpl) List(ctx context.Context) ([]skill.Skill, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM skills ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []skill.Skill
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepositoryImpl) Update(ctx context.Context, req skill.UpdateSkillRequest) error {
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

	query := fmt.Sprintf("UPDATE skills %s WHERE id = $%d", setClause, argIndex)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return skill.ErrSkillNameExists
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return skill.ErrSkillNotFound
	}
	return nil
}

func (r *skillRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return skill.ErrSkillInUse
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return skill.ErrSkillNotFound
	}
	return nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.google_id, e.email, e.name, e.surname, e.employee_code, e.contact_no,
	e.role, e.designation_id, e.area_of_responsibility_id,
	e.rate_type, e.rate_value, e.annual_leave_allocation,
	e.created_at, e.updated_at,
	d.name as designation_name, a.name as area_name`

const employeeJoins = `
	FROM employees e
	LEFT JOIN designations d ON e.designation_id = d.id
	LEFT JOIN areas_of_responsibility a ON e.area_of_responsibility_id = a.id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.GoogleID, &e.Email, &e.Name, &e.Surname, &e.EmployeeCode, &e.ContactNo,
		&e.Role, &e.DesignationID, &e.AreaOfResponsibilityID,
		&e.RateType, &e.RateValue, &e.AnnualLeaveAllocation,
		&e.CreatedAt, &e.UpdatedAt,
		&e.DesignationName, &e.AreaName,
	)
	return e, err
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + employeeJoins + ` WHERE e.id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + employeeJoins + ` WHERE e.email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByGoogleID(ctx context.Context, googleID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + employeeJoins + ` WHERE e.google_id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, googleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, google_id, email, name, surname, employee_code, contact_no,
			role, designation_id, area_of_responsibility_id,
			rate_type, rate_value, annual_leave_allocation,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.GoogleID, newEmployee.Email, newEmployee.Name, newEmployee.Surname,
		newEmployee.EmployeeCode, newEmployee.ContactNo,
		newEmployee.Role, newEmployee.DesignationID, newEmployee.AreaOfResponsibilityID,
		newEmployee.RateType, newEmployee.RateValue, newEmployee.AnnualLeaveAllocation,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "employees_email_key":
				return employee.Employee{}, employee.ErrEmailExists
			case "employees_google_id_key":
				return employee.Employee{}, employee.ErrGoogleIDExists
			case "employees_employee_code_key":
				return employee.Employee{}, employee.ErrEmployeeCodeExists
			}
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Search != "" {
		whereClause += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.surname ILIKE $%d OR e.email ILIKE $%d)", argIndex, argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.Role != nil {
		whereClause += fmt.Sprintf(" AND e.role = $%d", argIndex)
		args = append(args, *filter.Role)
		argIndex++
	}
	if filter.DesignationID != nil {
		whereClause += fmt.Sprintf(" AND e.designation_id = $%d", argIndex)
		args = append(args, *filter.DesignationID)
		argIndex++
	}
	if filter.AreaOfResponsibilityID != nil {
		whereClause += fmt.Sprintf(" AND e.area_of_responsibility_id = $%d", argIndex)
		args = append(args, *filter.AreaOfResponsibilityID)
		argIndex++
	}
	if filter.SkillID != nil {
		whereClause += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM employee_skills es WHERE es.employee_id = e.id AND es.skill_id = $%d)", argIndex)
		args = append(args, *filter.SkillID)
		argIndex++
	}
	if filter.LicenseID != nil {
		whereClause += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM employee_licenses el WHERE el.employee_id = e.id AND el.license_id = $%d)", argIndex)
		args = append(args, *filter.LicenseID)
		argIndex++
	}

	query := `SELECT` + employeeColumns + employeeJoins + `
	` + whereClause + `
	ORDER BY e.surname, e.name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClause := "SET updated_at = NOW()"
	args := []interface{}{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		setClause += fmt.Sprintf(", %s = $%d", column, argIndex)
		args = append(args, value)
		argIndex++
	}

	if req.Name != nil {
		appendSet("name", *req.Name)
	}
	if req.Surname != nil {
		appendSet("surname", *req.Surname)
	}
	if req.EmployeeCode != nil {
		appendSet("employee_code", *req.EmployeeCode)
	}
	if req.ContactNo != nil {
		appendSet("contact_no", *req.ContactNo)
	}
	if req.Role != nil {
		appendSet("role", *req.Role)
	}
	if req.DesignationID != nil {
		appendSet("designation_id", *req.DesignationID)
	}
	if req.AreaOfResponsibilityID != nil {
		appendSet("area_of_responsibility_id", *req.AreaOfResponsibilityID)
	}
	if req.RateType != nil {
		appendSet("rate_type", *req.RateType)
	}
	if req.RateValue != nil {
		appendSet("rate_value", *req.RateValue)
	}
	if req.AnnualLeaveAllocation != nil {
		appendSet("annual_leave_allocation", *req.AnnualLeaveAllocation)
	}

	query := fmt.Sprintf("UPDATE employees %s WHERE id = $%d", setClause, argIndex)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET google_id = $1, updated_at = NOW()
		WHERE email = $2
		RETURNING id
	`

	var id string
	if err := q.QueryRow(ctx, query, googleID, email).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *employeeRepositoryImpl) AddSkill(ctx context.Context, employeeID, skillID string, proficiency *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_skills (employee_id, skill_id, proficiency)
		VALUES ($1, $2, $3)
	`
	_, err := q.Exec(ctx, query, employeeID, skillID, proficiency)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrSkillAlreadyAssigned
		}
		return err
	}
	return nil
}

func (r *employeeRepositoryImpl) RemoveSkill(ctx context.Context, employeeID, skillID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employee_skills WHERE employee_id = $1 AND skill_id = $2`, employeeID, skillID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrSkillNotAssigned
	}
	return nil
}

func (r *employeeRepositoryImpl) GetSkills(ctx context.Context, employeeID string) ([]employee.EmployeeSkill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT es.skill_id, s.name, es.proficiency
		FROM employee_skills es
		JOIN skills s ON es.skill_id = s.id
		WHERE es.employee_id = $1
		ORDER BY s.name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []employee.EmployeeSkill
	for rows.Next() {
		var s employee.EmployeeSkill
		if err := rows.Scan(&s.SkillID, &s.SkillName, &s.Proficiency); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *employeeRepositoryImpl) AddLicense(ctx context.Context, employeeID, licenseID string, issueDate, expiryDate *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_licenses (employee_id, license_id, issue_date, expiry_date)
		VALUES ($1, $2, $3, $4)
	`
	_, err := q.Exec(ctx, query, employeeID, licenseID, issueDate, expiryDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrLicenseAlreadyAssigned
		}
		return err
	}
	return nil
}

func (r *employeeRepositoryImpl) RemoveLicense(ctx context.Context, employeeID, licenseID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employee_licenses WHERE employee_id = $1 AND license_id = $2`, employeeID, licenseID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrLicenseNotAssigned
	}
	return nil
}

func (r *employeeRepositoryImpl) GetLicenses(ctx context.Context, employeeID string) ([]employee.EmployeeLicense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT el.license_id, l.name, el.issue_date, el.expiry_date
		FROM employee_licenses el
		JOIN licenses l ON el.license_id = l.id
		WHERE el.employee_id = $1
		ORDER BY l.name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var licenses []employee.EmployeeLicense
	for rows.Next() {
		var l employee.EmployeeLicense
		if err := rows.Scan(&l.LicenseID, &l.LicenseName, &l.IssueDate, &l.ExpiryDate); err != nil {
			return nil, err
		}
		licenses = append(licenses, l)
	}
	return licenses, rows.Err()
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const employeeColumns = `
	employee_id, name, password_hash, department, position, email, phone_number,
	hire_date, status, role, total_leave_days, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var status string
	err := row.Scan(
		&e.EmployeeID, &e.Name, &e.PasswordHash, &e.Department, &e.Position, &e.Email, &e.PhoneNumber,
		&e.HireDate, &status, &e.Role, &e.TotalLeaveDays, &e.CreatedAt, &e.UpdatedAt,
	)
	e.Status = employee.Status(status)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if newEmployee.Status == "" {
		newEmployee.Status = employee.StatusActive
	}

	query := `
		INSERT INTO employees (
			employee_id, name, password_hash, department, position, email, phone_number,
			hire_date, status, role, total_leave_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeID,
		newEmployee.Name,
		newEmployee.PasswordHash,
		newEmployee.Department,
		newEmployee.Position,
		newEmployee.Email,
		newEmployee.PhoneNumber,
		newEmployee.HireDate,
		string(newEmployee.Status),
		newEmployee.Role,
		newEmployee.TotalLeaveDays,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// ExistsByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByID(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`, employeeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee id: %w", err)
	}
	return exists, nil
}

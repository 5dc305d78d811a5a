package postgresql

import (
	"context"
	"fmt"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository. The Present count is derived
// per employee in the same query; the attendance collection may move between
// this read and any other, which the callers tolerate.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.EmployeeWithStats, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.employee_id, e.full_name, e.email, e.department, e.created_at,
			COUNT(a.id) FILTER (WHERE a.status = 'Present') AS total_present
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.employee_id
		GROUP BY e.employee_id
		ORDER BY e.created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.EmployeeWithStats
	for rows.Next() {
		var emp employee.EmployeeWithStats
		err := rows.Scan(
			&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department,
			&emp.CreatedAt, &emp.TotalPresent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository. Unique violations come back
// unwrapped so the service can tell the two constraints apart.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (employee_id, full_name, email, department, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING employee_id, full_name, email, department, created_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeID, newEmployee.FullName, newEmployee.Email,
		newEmployee.Department, newEmployee.CreatedAt,
	).Scan(
		&created.EmployeeID, &created.FullName, &created.Email,
		&created.Department, &created.CreatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.EmployeeWithStats, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.employee_id, e.full_name, e.email, e.department, e.created_at,
			COUNT(a.id) FILTER (WHERE a.status = 'Present') AS total_present
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.employee_id
		WHERE e.employee_id = $1
		GROUP BY e.employee_id
	`

	var emp employee.EmployeeWithStats
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department,
		&emp.CreatedAt, &emp.TotalPresent,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeWithStats{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeWithStats{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Exists implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Exists(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

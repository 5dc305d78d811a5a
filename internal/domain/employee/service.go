package employee

import "context"

// EmployeeService defines the interface for employee operations
type EmployeeService interface {
	// ListEmployees returns all employees with their Present-day counts
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// CreateEmployee validates, stamps created_at and inserts a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee returns one employee with its Present-day count
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// DeleteEmployee removes the employee and all of its attendance records
	DeleteEmployee(ctx context.Context, employeeID string) error
}

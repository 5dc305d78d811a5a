package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]EmployeeWithStats, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeWithStats, error)
	Exists(ctx context.Context, employeeID string) (bool, error)
	Delete(ctx context.Context, employeeID string) error
}

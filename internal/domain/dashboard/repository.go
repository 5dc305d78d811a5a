package dashboard

import (
	"context"
	"time"
)

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountEmployees returns the total number of employees
	CountEmployees(ctx context.Context) (int64, error)

	// CountAttendanceByStatus returns how many records exist for a date and status
	CountAttendanceByStatus(ctx context.Context, date time.Time, status string) (int64, error)

	// DepartmentDistribution returns employee counts per department in use
	DepartmentDistribution(ctx context.Context) (map[string]int64, error)
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, d.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, nil
}

// CountAttendanceByStatus implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) CountAttendanceByStatus(ctx context.Context, date time.Time, status string) (int64, error) {
	q := GetQuerier(ctx, d.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`,
		date, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	return count, nil
}

// DepartmentDistribution implements dashboard.DashboardRepository.
// Departments with no employees do not appear in the result.
func (d *dashboardRepositoryImpl) DepartmentDistribution(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, d.db)

	rows, err := q.Query(ctx, `SELECT department, COUNT(*) FROM employees GROUP BY department`)
	if err != nil {
		return nil, fmt.Errorf("failed to get department distribution: %w", err)
	}
	defer rows.Close()

	distribution := make(map[string]int64)
	for rows.Next() {
		var department string
		var count int64
		if err := rows.Scan(&department, &count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		distribution[department] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return distribution, nil
}

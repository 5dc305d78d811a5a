package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE conditions
	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, date, status, marked_at
		FROM attendance
		%s
		ORDER BY date DESC
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.MarkedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Upsert implements attendance.AttendanceRepository. The conflict target is
// the (employee_id, date) natural key; xmax = 0 distinguishes a fresh insert
// from an overwrite of an existing row.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record, preserveID bool) (attendance.Record, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (id, employee_id, date, status, marked_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT attendance_employee_date_key DO UPDATE
		SET id        = CASE WHEN $6 THEN attendance.id ELSE excluded.id END,
			status    = excluded.status,
			marked_at = excluded.marked_at
		RETURNING id, employee_id, date, status, marked_at, (xmax = 0) AS inserted
	`

	var stored attendance.Record
	var inserted bool
	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.Status, rec.MarkedAt, preserveID,
	).Scan(
		&stored.ID, &stored.EmployeeID, &stored.Date, &stored.Status,
		&stored.MarkedAt, &inserted,
	)
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return stored, inserted, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1 AND date = $2`, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// DeleteByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for employee %s: %w", employeeID, err)
	}

	return tag.RowsAffected(), nil
}

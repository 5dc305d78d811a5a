package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// List returns records matching the filter, newest date first.
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// Upsert inserts the record or, when the (employee_id, date) key already
	// exists, overwrites status and marked_at. With preserveID the stored id
	// survives the overwrite, otherwise it is replaced by rec.ID. The bool
	// result reports whether a new row was created.
	Upsert(ctx context.Context, rec Record, preserveID bool) (Record, bool, error)

	// Delete removes the record for the natural key.
	Delete(ctx context.Context, employeeID string, date time.Time) error

	// DeleteByEmployee removes every record owned by the employee and
	// returns how many rows went away.
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
}

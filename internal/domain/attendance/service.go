package attendance

import "context"

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	// ListAttendance returns matching records sorted by date descending
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]RecordResponse, error)

	// MarkAttendance upserts a record on (employee_id, date); the bool
	// reports whether a new record was created rather than updated
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (RecordResponse, bool, error)

	// DeleteAttendance removes the record for (employee_id, date)
	DeleteAttendance(ctx context.Context, employeeID, date string) error
}

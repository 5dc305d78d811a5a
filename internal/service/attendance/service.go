package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	// preserveID keeps the stored record id across upserts. Off by default:
	// the deployed behavior regenerates the id on every mark, and callers
	// may rely on that. See DESIGN.md.
	preserveID bool
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	preserveID bool,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		preserveID:     preserveID,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter.ToListFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

// MarkAttendance implements attendance.AttendanceService. The bool result
// reports whether a new record was created rather than an existing one
// overwritten.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.RecordResponse, bool, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, false, err
	}

	// Ensure employee exists; the reference is only checked at marking time
	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, false, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return attendance.RecordResponse{}, false, employee.ErrEmployeeNotFound
	}

	date, _ := validator.IsValidDate(req.Date)

	rec := attendance.Record{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		MarkedAt:   time.Now().UTC(),
	}

	stored, created, err := s.attendanceRepo.Upsert(ctx, rec, s.preserveID)
	if err != nil {
		return attendance.RecordResponse{}, false, err
	}

	return attendance.ToResponse(stored), created, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, employeeID, date string) error {
	parsed, valid := validator.IsValidDate(date)
	if !valid {
		// An unparseable date cannot match any stored record
		return attendance.ErrAttendanceNotFound
	}

	return s.attendanceRepo.Delete(ctx, employeeID, parsed)
}

package attendance

import (
	"strings"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`   // YYYY-MM-DD
	Status     string `json:"status"` // "Present" | "Absent"
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status must be 'Present' or 'Absent'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter is the repository-level filter with the date already parsed.
type ListFilter struct {
	EmployeeID *string
	Date       *time.Time
}

type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	MarkedAt   string `json:"marked_at"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     string(rec.Status),
		MarkedAt:   rec.MarkedAt.UTC().Format(time.RFC3339),
	}
}

// normalize repository filter from the validated request filter
func (f *AttendanceFilter) ToListFilter() ListFilter {
	out := ListFilter{}
	if f.EmployeeID != nil && strings.TrimSpace(*f.EmployeeID) != "" {
		id := strings.TrimSpace(*f.EmployeeID)
		out.EmployeeID = &id
	}
	if f.Date != nil && *f.Date != "" {
		if d, valid := validator.IsValidDate(*f.Date); valid {
			out.Date = &d
		}
	}
	return out
}

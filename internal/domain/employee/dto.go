package employee

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Validate normalizes the request in place (trims, lowercases the email) and
// reports every failing field at once.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "Employee ID cannot be empty",
		})
	}

	r.FullName = strings.TrimSpace(r.FullName)
	if utf8.RuneCountInString(r.FullName) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "Full name must be at least 2 characters",
		})
	}

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Invalid email address",
		})
	}

	if !validator.IsInSlice(r.Department, Departments) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "Department must be one of: " + strings.Join(Departments, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	EmployeeID   string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	CreatedAt    string `json:"created_at"`
	TotalPresent int64  `json:"total_present"`
}

func ToResponse(emp Employee, totalPresent int64) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   emp.EmployeeID,
		FullName:     emp.FullName,
		Email:        emp.Email,
		Department:   emp.Department,
		CreatedAt:    emp.CreatedAt.UTC().Format(time.RFC3339),
		TotalPresent: totalPresent,
	}
}

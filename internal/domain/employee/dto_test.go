package employee

import (
	"errors"
	"testing"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeID: "E1",
		FullName:   "Ann Lee",
		Email:      "ann@x.com",
		Department: "Engineering",
	}
}

func TestCreateEmployeeRequest_Validate_Success(t *testing.T) {
	req := validCreateRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestCreateEmployeeRequest_Validate_Normalizes(t *testing.T) {
	req := CreateEmployeeRequest{
		EmployeeID: "  E1  ",
		FullName:   " Ann Lee ",
		Email:      "  ANN@X.COM ",
		Department: "Engineering",
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if req.EmployeeID != "E1" {
		t.Errorf("EmployeeID = %q, want %q", req.EmployeeID, "E1")
	}
	if req.FullName != "Ann Lee" {
		t.Errorf("FullName = %q, want %q", req.FullName, "Ann Lee")
	}
	if req.Email != "ann@x.com" {
		t.Errorf("Email = %q, want %q", req.Email, "ann@x.com")
	}
}

func TestCreateEmployeeRequest_Validate_FieldFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateEmployeeRequest)
		field  string
	}{
		{"empty employee id", func(r *CreateEmployeeRequest) { r.EmployeeID = "   " }, "employee_id"},
		{"short full name", func(r *CreateEmployeeRequest) { r.FullName = " A " }, "full_name"},
		{"email without at", func(r *CreateEmployeeRequest) { r.Email = "ann.x.com" }, "email"},
		{"email without domain dot", func(r *CreateEmployeeRequest) { r.Email = "ann@xcom" }, "email"},
		{"unknown department", func(r *CreateEmployeeRequest) { r.Department = "Legal" }, "department"},
		{"lowercase department", func(r *CreateEmployeeRequest) { r.Department = "engineering" }, "department"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)
			err := req.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
			}
			if _, ok := errs.ToMap()[c.field]; !ok {
				t.Errorf("ValidationErrors missing field %q: %v", c.field, errs)
			}
		})
	}
}

func TestCreateEmployeeRequest_Validate_CollectsAllFailures(t *testing.T) {
	req := CreateEmployeeRequest{}
	err := req.Validate()
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
	}
	if len(errs) != 4 {
		t.Errorf("len(errs) = %d, want 4: %v", len(errs), errs)
	}
}

package attendance

import (
	"errors"
	"testing"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
)

func TestMarkAttendanceRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     MarkAttendanceRequest
		wantErr []string // failing fields, empty means valid
	}{
		{
			name: "valid present",
			req:  MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-05", Status: "Present"},
		},
		{
			name: "valid absent",
			req:  MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-05", Status: "Absent"},
		},
		{
			name:    "bad date format",
			req:     MarkAttendanceRequest{EmployeeID: "E1", Date: "05-01-2024", Status: "Present"},
			wantErr: []string{"date"},
		},
		{
			name:    "nonexistent date",
			req:     MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-02-30", Status: "Present"},
			wantErr: []string{"date"},
		},
		{
			name:    "lowercase status",
			req:     MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-05", Status: "present"},
			wantErr: []string{"status"},
		},
		{
			name:    "both invalid",
			req:     MarkAttendanceRequest{EmployeeID: "E1", Date: "not-a-date", Status: "Late"},
			wantErr: []string{"date", "status"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if len(c.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
			}
			got := errs.ToMap()
			for _, field := range c.wantErr {
				if _, ok := got[field]; !ok {
					t.Errorf("ValidationErrors missing field %q: %v", field, errs)
				}
			}
			if len(got) != len(c.wantErr) {
				t.Errorf("got %d validation errors, want %d: %v", len(got), len(c.wantErr), errs)
			}
		})
	}
}

func TestAttendanceFilter_Validate(t *testing.T) {
	good := "2024-01-05"
	bad := "2024/01/05"

	f := AttendanceFilter{Date: &good}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	f = AttendanceFilter{Date: &bad}
	if err := f.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error")
	}

	f = AttendanceFilter{}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate() with no filters = %v, want nil", err)
	}
}

func TestAttendanceFilter_ToListFilter(t *testing.T) {
	id := "  E1  "
	date := "2024-01-05"
	f := AttendanceFilter{EmployeeID: &id, Date: &date}

	lf := f.ToListFilter()
	if lf.EmployeeID == nil || *lf.EmployeeID != "E1" {
		t.Errorf("EmployeeID = %v, want E1", lf.EmployeeID)
	}
	if lf.Date == nil || lf.Date.Format("2006-01-02") != "2024-01-05" {
		t.Errorf("Date = %v, want 2024-01-05", lf.Date)
	}

	empty := "  "
	f = AttendanceFilter{EmployeeID: &empty}
	lf = f.ToListFilter()
	if lf.EmployeeID != nil {
		t.Errorf("EmployeeID = %v, want nil for blank input", lf.EmployeeID)
	}
}

package employee

import "time"

type Employee struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
}

// EmployeeWithStats carries the derived Present-day count computed at read
// time; it is never stored.
type EmployeeWithStats struct {
	Employee
	TotalPresent int64
}

// Departments is the fixed set of valid department names.
var Departments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"HR",
	"Finance",
	"Operations",
	"Design",
	"Product",
}

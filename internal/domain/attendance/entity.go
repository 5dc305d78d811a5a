package attendance

import "time"

type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	MarkedAt   time.Time
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

var Statuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
}

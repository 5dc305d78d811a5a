package dashboard

type SummaryResponse struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	AbsentToday    int64 `json:"absent_today"`
	// NotMarkedToday is total - present - absent, left unclamped so skewed
	// data shows up as a negative number instead of being hidden.
	NotMarkedToday         int64            `json:"not_marked_today"`
	DepartmentDistribution map[string]int64 `json:"department_distribution"`
	Today                  string           `json:"today"`
	Departments            []string         `json:"departments"`
}

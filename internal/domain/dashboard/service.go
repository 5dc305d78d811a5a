package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSummary composes today's counts from the employee and attendance
	// collections at call time; reads are not transactionally consistent
	GetSummary(ctx context.Context) (*SummaryResponse, error)
}

package dashboard

import (
	"context"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetSummary returns today's aggregate view using parallel goroutines, one
// query each. The four reads are not atomic with each other; a mark landing
// mid-flight can skew the arithmetic, which is why not_marked_today is not
// clamped.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (*dashboard.SummaryResponse, error) {
	now := time.Now()
	todayStr := now.Format("2006-01-02")
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		totalEmployees int64
		presentToday   int64
		absentToday    int64
		distribution   map[string]int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.CountEmployees(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		presentToday, err = s.CountAttendanceByStatus(gCtx, today, string(attendance.StatusPresent))
		return err
	})

	g.Go(func() error {
		var err error
		absentToday, err = s.CountAttendanceByStatus(gCtx, today, string(attendance.StatusAbsent))
		return err
	})

	g.Go(func() error {
		var err error
		distribution, err = s.DepartmentDistribution(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.SummaryResponse{
		TotalEmployees:         totalEmployees,
		PresentToday:           presentToday,
		AbsentToday:            absentToday,
		NotMarkedToday:         totalEmployees - presentToday - absentToday,
		DepartmentDistribution: distribution,
		Today:                  todayStr,
		Departments:            employee.Departments,
	}, nil
}

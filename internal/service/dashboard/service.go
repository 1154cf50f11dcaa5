package dashboard

import (
	"context"
	"time"

	"github.com/retailops/timeclock-backend-go/internal/domain/dashboard"
	"github.com/retailops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "2006-01-02 15:04:05"
)

type DashboardServiceImpl struct {
	loc *time.Location
	dashboard.DashboardRepository
}

func NewDashboardService(loc *time.Location, repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		loc:                 loc,
		DashboardRepository: repo,
	}
}

func (s *DashboardServiceImpl) today() string {
	return time.Now().In(s.loc).Format(dateFormat)
}

// GetSummary returns today's headline statistics. The three counts are
// independent single-statement reads, so they run in parallel goroutines.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.SummaryResponse, error) {
	dateLocal := s.today()

	var (
		totalEmployees  int64
		clockedInToday  int64
		totalHoursToday decimal.Decimal
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		totalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountOpenRecords(gCtx, dateLocal)
		if err != nil {
			return err
		}
		clockedInToday = count
		return nil
	})

	g.Go(func() error {
		total, err := s.SumHoursWorked(gCtx, dateLocal)
		if err != nil {
			return err
		}
		totalHoursToday = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.SummaryResponse{}, err
	}

	return dashboard.SummaryResponse{
		TotalEmployees:  totalEmployees,
		ClockedInToday:  clockedInToday,
		TotalHoursToday: totalHoursToday,
	}, nil
}

// GetTodayRecords implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTodayRecords(ctx context.Context) ([]dashboard.TodayRecordResponse, error) {
	records, err := s.ListRecordsByDate(ctx, s.today())
	if err != nil {
		return nil, err
	}

	responses := make([]dashboard.TodayRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.toTodayRecordResponse(rec))
	}
	return responses, nil
}

func (s *DashboardServiceImpl) toTodayRecordResponse(rec timeclock.ClockRecord) dashboard.TodayRecordResponse {
	item := dashboard.TodayRecordResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Date:        rec.Date.Format(dateFormat),
		ClockIn:     rec.ClockIn.In(s.loc).Format(timeFormat),
		HoursWorked: rec.HoursWorked,
	}
	if rec.ClockOut != nil {
		formatted := rec.ClockOut.In(s.loc).Format(timeFormat)
		item.ClockOut = &formatted
	}
	if rec.EmployeeName != nil {
		item.Name = *rec.EmployeeName
	}
	if rec.EmployeePosition != nil {
		item.Position = *rec.EmployeePosition
	}
	return item
}

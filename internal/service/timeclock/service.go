package timeclock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/timeclock-backend-go/internal/domain/employee"
	"github.com/retailops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/retailops/timeclock-backend-go/internal/pkg/database"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "2006-01-02 15:04:05"
)

type TimeclockServiceImpl struct {
	db  *database.DB
	loc *time.Location
	timeclock.ClockRecordRepository
	employee.EmployeeRepository
}

func NewTimeclockService(
	db *database.DB,
	loc *time.Location,
	clockRecordRepo timeclock.ClockRecordRepository,
	employeeRepo employee.EmployeeRepository,
) timeclock.TimeclockService {
	return &TimeclockServiceImpl{
		db:                    db,
		loc:                   loc,
		ClockRecordRepository: clockRecordRepo,
		EmployeeRepository:    employeeRepo,
	}
}

// now returns the current wall-clock time in the configured location. The
// calendar day derived from it is the record's date bucket.
func (s *TimeclockServiceImpl) now() (time.Time, string) {
	nowLocal := time.Now().In(s.loc)
	return nowLocal, nowLocal.Format(dateFormat)
}

// formatTimePtr safely converts a *time.Time to a display string.
func (s *TimeclockServiceImpl) formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(s.loc).Format(timeFormat)
	return &formatted
}

func (s *TimeclockServiceImpl) toRecordResponse(rec timeclock.ClockRecord) timeclock.ClockRecordResponse {
	return timeclock.ClockRecordResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Date:        rec.Date.Format(dateFormat),
		ClockIn:     rec.ClockIn.In(s.loc).Format(timeFormat),
		ClockOut:    s.formatTimePtr(rec.ClockOut),
		HoursWorked: rec.HoursWorked,
	}
}

// ClockIn implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) ClockIn(ctx context.Context, req timeclock.ClockInRequest) (timeclock.ClockInResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.ClockInResponse{}, err
	}

	nowLocal, dateLocal := s.now()

	// Surfaces ErrEmployeeNotFound before touching the record store. A
	// concurrent employee deletion is caught again by the FK on insert.
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return timeclock.ClockInResponse{}, err
	}

	rec := timeclock.ClockRecord{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		ClockIn:    nowLocal,
	}

	created, err := s.ClockRecordRepository.CreateOpen(ctx, rec, dateLocal)
	if err != nil {
		return timeclock.ClockInResponse{}, err
	}

	return timeclock.ClockInResponse{
		RecordID: created.ID,
		ClockIn:  created.ClockIn.In(s.loc).Format(timeFormat),
	}, nil
}

// ClockOut implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) ClockOut(ctx context.Context, req timeclock.ClockOutRequest) (timeclock.ClockOutResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.ClockOutResponse{}, err
	}

	nowLocal, dateLocal := s.now()

	open, err := s.ClockRecordRepository.GetOpenByEmployeeAndDate(ctx, req.EmployeeID, dateLocal)
	if err != nil {
		return timeclock.ClockOutResponse{}, err
	}

	hoursWorked := timeclock.Hours(open.ClockIn, nowLocal)

	// Close is guarded by clock_out IS NULL, so a concurrent clock-out for
	// the same record loses here with ErrNotClockedIn.
	closed, err := s.ClockRecordRepository.Close(ctx, open.ID, nowLocal, hoursWorked)
	if err != nil {
		return timeclock.ClockOutResponse{}, err
	}

	if closed.HoursWorked == nil {
		return timeclock.ClockOutResponse{}, fmt.Errorf("closed record has no hours worked")
	}

	return timeclock.ClockOutResponse{
		ClockOut:    closed.ClockOut.In(s.loc).Format(timeFormat),
		HoursWorked: *closed.HoursWorked,
	}, nil
}

// GetStatus implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) GetStatus(ctx context.Context, employeeID string) (timeclock.StatusResponse, error) {
	_, dateLocal := s.now()

	rec, err := s.ClockRecordRepository.GetLatestByEmployeeAndDate(ctx, employeeID, dateLocal)
	if err != nil {
		return timeclock.StatusResponse{}, err
	}

	if rec == nil {
		return timeclock.StatusResponse{IsClockedIn: false}, nil
	}

	current := s.toRecordResponse(*rec)
	return timeclock.StatusResponse{
		IsClockedIn:   rec.IsOpen(),
		CurrentRecord: &current,
	}, nil
}

// GetEmployeeHours implements timeclock.TimeclockService.
func (s *TimeclockServiceImpl) GetEmployeeHours(ctx context.Context, employeeID string, filter timeclock.HoursFilter) ([]timeclock.ClockRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.ClockRecordRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]timeclock.ClockRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.toRecordResponse(rec))
	}
	return responses, nil
}

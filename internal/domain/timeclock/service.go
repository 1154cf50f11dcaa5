package timeclock

import (
	"context"
)

// TimeclockService defines business logic for the clock record lifecycle
type TimeclockService interface {
	// ClockIn opens a new record for today. Fails with ErrAlreadyClockedIn
	// when the employee already has an open record for the current day.
	ClockIn(ctx context.Context, req ClockInRequest) (ClockInResponse, error)

	// ClockOut closes today's open record and derives hours worked. Fails
	// with ErrNotClockedIn when no open record exists.
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockOutResponse, error)

	// GetStatus reports whether the employee is clocked in today, together
	// with today's most recent record when one exists. Pure read.
	GetStatus(ctx context.Context, employeeID string) (StatusResponse, error)

	// GetEmployeeHours retrieves an employee's records, optionally bounded by
	// an inclusive date range. Pure read.
	GetEmployeeHours(ctx context.Context, employeeID string, filter HoursFilter) ([]ClockRecordResponse, error)
}

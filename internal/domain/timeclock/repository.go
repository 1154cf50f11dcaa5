package timeclock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ClockRecordRepository defines data access methods for clock records.
// dateLocal is the calendar day in the server's configured timezone,
// formatted as YYYY-MM-DD.
type ClockRecordRepository interface {
	// CreateOpen inserts a new open record in a single conditional statement.
	// Returns ErrAlreadyClockedIn when an open record already exists for the
	// same employee and day.
	CreateOpen(ctx context.Context, rec ClockRecord, dateLocal string) (ClockRecord, error)

	// GetOpenByEmployeeAndDate retrieves the open record for an employee on a
	// specific day. Returns ErrNotClockedIn when there is none.
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, dateLocal string) (ClockRecord, error)

	// GetLatestByEmployeeAndDate retrieves the most recent record (open or
	// closed) for an employee on a specific day, or nil when there is none.
	GetLatestByEmployeeAndDate(ctx context.Context, employeeID string, dateLocal string) (*ClockRecord, error)

	// Close sets clock_out and hours_worked on an open record. The update is
	// guarded by clock_out IS NULL so a record can only be closed once.
	Close(ctx context.Context, id string, clockOut time.Time, hoursWorked decimal.Decimal) (ClockRecord, error)

	// ListByEmployee retrieves records for an employee ordered by date
	// descending, bounded by the filter when both bounds are present
	ListByEmployee(ctx context.Context, employeeID string, filter HoursFilter) ([]ClockRecord, error)

	// CountByEmployee returns how many clock records reference an employee.
	// Used by the employee-deletion guard.
	CountByEmployee(ctx context.Context, employeeID string) (int64, error)
}

package dashboard

import (
	"context"

	"github.com/retailops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/shopspring/decimal"
)

// DashboardRepository defines read-only aggregation queries over both stores.
// Each method is a single statement, so every result is a point-in-time
// consistent snapshot even while lifecycle writes are in flight.
type DashboardRepository interface {
	// CountEmployees returns the total number of employees
	CountEmployees(ctx context.Context) (int64, error)

	// CountOpenRecords returns the number of open records for a day
	CountOpenRecords(ctx context.Context, dateLocal string) (int64, error)

	// SumHoursWorked returns the hours_worked sum over a day's closed
	// records, zero when there are none
	SumHoursWorked(ctx context.Context, dateLocal string) (decimal.Decimal, error)

	// ListRecordsByDate returns a day's records joined with employee
	// name/position, most recent clock-in first
	ListRecordsByDate(ctx context.Context, dateLocal string) ([]timeclock.ClockRecord, error)
}

package timeclock

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClockRecord is a single time punch. ClockIn is set once at creation;
// ClockOut and HoursWorked are set once when the shift is closed and never
// touched again. A record with ClockOut == nil is an open shift.
type ClockRecord struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	ClockIn     time.Time
	ClockOut    *time.Time
	HoursWorked *decimal.Decimal
	CreatedAt   time.Time

	// DTO
	EmployeeName     *string
	EmployeePosition *string
}

// IsOpen reports whether the record represents an in-progress shift.
func (r ClockRecord) IsOpen() bool {
	return r.ClockOut == nil
}

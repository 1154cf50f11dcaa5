package timeclock

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hours returns the fractional hours between clockIn and clockOut, rounded to
// two decimal places. Computed once at clock-out and stored; never recomputed.
// Negative durations clamp to zero so wall-clock skew cannot persist a
// negative shift.
func Hours(clockIn, clockOut time.Time) decimal.Decimal {
	hours := clockOut.Sub(clockIn).Hours()
	if hours < 0 {
		hours = 0
	}
	return decimal.NewFromFloat(hours).Round(2)
}

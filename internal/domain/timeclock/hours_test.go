package timeclock

import (
	"testing"
	"time"
)

func TestHours(t *testing.T) {
	base := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		clockIn  time.Time
		clockOut time.Time
		want     string
	}{
		{"full day shift", base, base.Add(8*time.Hour + 30*time.Minute), "8.5"},
		{"one hour", base, base.Add(time.Hour), "1"},
		{"quarter hour", base, base.Add(15 * time.Minute), "0.25"},
		{"rounds to two decimals", base, base.Add(10 * time.Minute), "0.17"},
		{"zero duration", base, base, "0"},
		{"clock skew clamps to zero", base, base.Add(-time.Minute), "0"},
		{"spans midnight", base.Add(13 * time.Hour), base.Add(27 * time.Hour), "14"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Hours(c.clockIn, c.clockOut)
			if got.String() != c.want {
				t.Errorf("Hours(%v, %v) = %s, want %s", c.clockIn, c.clockOut, got, c.want)
			}
		})
	}
}

func TestHoursNonNegative(t *testing.T) {
	base := time.Date(2024, 3, 11, 17, 0, 0, 0, time.UTC)
	for _, d := range []time.Duration{-24 * time.Hour, -time.Second, 0, time.Second, 12 * time.Hour} {
		if got := Hours(base, base.Add(d)); got.IsNegative() {
			t.Errorf("Hours with duration %v = %s, want non-negative", d, got)
		}
	}
}

package timeclock

import "errors"

// Timeclock domain errors
var (
	ErrAlreadyClockedIn = errors.New("already clocked in today")
	ErrNotClockedIn     = errors.New("no active clock in record found")
	ErrRecordNotFound   = errors.New("clock record not found")
)

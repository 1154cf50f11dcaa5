package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrHasClockRecords  = errors.New("cannot delete employee with existing clock records")
)

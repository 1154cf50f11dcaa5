package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Create adds a new employee to the directory
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update mutates name, email and position of an existing employee
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee; fails with ErrHasClockRecords while any
	// clock record still references the employee
	Delete(ctx context.Context, id string) error
}

package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]Employee, error)

	// Update replaces name, email and position of an existing employee
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete removes an employee; the referential guard against clock
	// records lives in the service layer
	Delete(ctx context.Context, id string) error
}

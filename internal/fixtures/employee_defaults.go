package fixtures

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/retailops/timeclock-backend-go/internal/domain/employee"
)

// defaultEmployees seeds a fresh install so the client has names to select.
var defaultEmployees = []employee.Employee{
	{Name: "John Doe", Email: "john@store.com", Position: "Cashier"},
	{Name: "Jane Smith", Email: "jane@store.com", Position: "Manager"},
	{Name: "Mike Johnson", Email: "mike@store.com", Position: "Stock Clerk"},
}

// SeedDefaultEmployees inserts the sample employees when the directory is
// empty. A non-empty directory is left untouched.
func SeedDefaultEmployees(ctx context.Context, repo employee.EmployeeRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, emp := range defaultEmployees {
		emp.ID = uuid.NewString()
		if _, err := repo.Create(ctx, emp); err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", emp.Name, err)
		}
	}
	return nil
}

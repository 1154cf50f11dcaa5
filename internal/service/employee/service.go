package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/retailops/timeclock-backend-go/internal/domain/employee"
	"github.com/retailops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/retailops/timeclock-backend-go/internal/pkg/database"
	"github.com/retailops/timeclock-backend-go/internal/repository/postgresql"
)

const timeFormat = "2006-01-02 15:04:05"

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	timeclock.ClockRecordRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	clockRecordRepo timeclock.ClockRecordRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                    db,
		EmployeeRepository:    employeeRepo,
		ClockRecordRepository: clockRecordRepo,
	}
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		Email:     emp.Email,
		Position:  emp.Position,
		CreatedAt: emp.CreatedAt.Format(timeFormat),
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, employee.Employee{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
// The referential guard and the delete run inside one transaction so a clock
// record created between the two cannot orphan itself; the FK constraint is
// the final backstop.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		count, err := s.ClockRecordRepository.CountByEmployee(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to check clock records: %w", err)
		}
		if count > 0 {
			return employee.ErrHasClockRecords
		}

		return s.EmployeeRepository.Delete(txCtx, id)
	})
}

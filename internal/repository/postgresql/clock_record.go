package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/retailops/timeclock-backend-go/internal/domain/employee"
	"github.com/retailops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/retailops/timeclock-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type clockRecordRepositoryImpl struct {
	db *database.DB
}

func NewClockRecordRepository(db *database.DB) timeclock.ClockRecordRepository {
	return &clockRecordRepositoryImpl{db: db}
}

// CreateOpen implements timeclock.ClockRecordRepository.
// The INSERT ... SELECT ... WHERE NOT EXISTS form makes the open-record check
// and the insert one atomic statement, so two concurrent clock-ins for the
// same employee cannot both succeed. The partial unique index on
// (employee_id, date) WHERE clock_out IS NULL backs this up.
func (c *clockRecordRepositoryImpl) CreateOpen(ctx context.Context, rec timeclock.ClockRecord, dateLocal string) (timeclock.ClockRecord, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO clock_records (id, employee_id, date, clock_in)
		SELECT $1, $2, $3, $4
		WHERE NOT EXISTS (
			SELECT 1 FROM clock_records
			WHERE employee_id = $2
			  AND date = $3
			  AND clock_out IS NULL
		)
		RETURNING id, employee_id, date, clock_in, clock_out, hours_worked, created_at
	`

	var created timeclock.ClockRecord
	err := q.QueryRow(ctx, query, rec.ID, rec.EmployeeID, dateLocal, rec.ClockIn).Scan(
		&created.ID, &created.EmployeeID, &created.Date,
		&created.ClockIn, &created.ClockOut, &created.HoursWorked, &created.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return timeclock.ClockRecord{}, timeclock.ErrAlreadyClockedIn
		}
		if isForeignKeyViolation(err) {
			return timeclock.ClockRecord{}, employee.ErrEmployeeNotFound
		}
		return timeclock.ClockRecord{}, fmt.Errorf("failed to create clock record: %w", err)
	}

	return created, nil
}

// GetOpenByEmployeeAndDate implements timeclock.ClockRecordRepository.
func (c *clockRecordRepositoryImpl) GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, dateLocal string) (timeclock.ClockRecord, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, hours_worked, created_at
		FROM clock_records
		WHERE employee_id = $1
		  AND date = $2
		  AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var rec timeclock.ClockRecord
	err := q.QueryRow(ctx, query, employeeID, dateLocal).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut, &rec.HoursWorked, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.ClockRecord{}, timeclock.ErrNotClockedIn
		}
		return timeclock.ClockRecord{}, fmt.Errorf("failed to get open clock record: %w", err)
	}

	return rec, nil
}

// GetLatestByEmployeeAndDate implements timeclock.ClockRecordRepository.
func (c *clockRecordRepositoryImpl) GetLatestByEmployeeAndDate(ctx context.Context, employeeID string, dateLocal string) (*timeclock.ClockRecord, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, hours_worked, created_at
		FROM clock_records
		WHERE employee_id = $1
		  AND date = $2
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var rec timeclock.ClockRecord
	err := q.QueryRow(ctx, query, employeeID, dateLocal).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut, &rec.HoursWorked, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get latest clock record: %w", err)
	}

	return &rec, nil
}

// Close implements timeclock.ClockRecordRepository.
func (c *clockRecordRepositoryImpl) Close(ctx context.Context, id string, clockOut time.Time, hoursWorked decimal.Decimal) (timeclock.ClockRecord, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE clock_records
		SET clock_out = $1, hours_worked = $2
		WHERE id = $3
		  AND clock_out IS NULL
		RETURNING id, employee_id, date, clock_in, clock_out, hours_worked, created_at
	`

	var rec timeclock.ClockRecord
	err := q.QueryRow(ctx, query, clockOut, hoursWorked, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut, &rec.HoursWorked, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the record does not exist or it was already closed.
			return timeclock.ClockRecord{}, timeclock.ErrNotClockedIn
		}
		return timeclock.ClockRecord{}, fmt.Errorf("failed to close clock record: %w", err)
	}

	return rec, nil
}

// ListByEmployee implements timeclock.ClockRecordRepository.
func (c *clockRecordRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter timeclock.HoursFilter) ([]timeclock.ClockRecord, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, hours_worked, created_at
		FROM clock_records
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}

	if filter.Bounded() {
		query += ` AND date BETWEEN $2 AND $3`
		args = append(args, *filter.StartDate, *filter.EndDate)
	}

	query += ` ORDER BY date DESC, clock_in DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clock records: %w", err)
	}
	defer rows.Close()

	var records []timeclock.ClockRecord
	for rows.Next() {
		var rec timeclock.ClockRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date,
			&rec.ClockIn, &rec.ClockOut, &rec.HoursWorked, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read clock records: %w", err)
	}

	return records, nil
}

// CountByEmployee implements timeclock.ClockRecordRepository.
func (c *clockRecordRepositoryImpl) CountByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT COUNT(*) FROM clock_records WHERE employee_id = $1`

	var count int64
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clock records: %w", err)
	}

	return count, nil
}

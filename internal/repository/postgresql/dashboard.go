package postgresql

import (
	"context"
	"fmt"

	"github.com/retailops/timeclock-backend-go/internal/domain/dashboard"
	"github.com/retailops/timeclock-backend-go/internal/domain/timeclock"
	"github.com/retailops/timeclock-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountOpenRecords implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountOpenRecords(ctx context.Context, dateLocal string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM clock_records
		WHERE date = $1
		  AND clock_out IS NULL
	`

	var count int64
	if err := q.QueryRow(ctx, query, dateLocal).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open clock records: %w", err)
	}
	return count, nil
}

// SumHoursWorked implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) SumHoursWorked(ctx context.Context, dateLocal string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours_worked), 0)
		FROM clock_records
		WHERE date = $1
		  AND clock_out IS NOT NULL
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, dateLocal).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum hours worked: %w", err)
	}
	return total, nil
}

// ListRecordsByDate implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) ListRecordsByDate(ctx context.Context, dateLocal string) ([]timeclock.ClockRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT cr.id, cr.employee_id, cr.date, cr.clock_in, cr.clock_out, cr.hours_worked, cr.created_at,
		       e.name AS employee_name,
		       e.position AS employee_position
		FROM clock_records cr
		JOIN employees e ON e.id = cr.employee_id
		WHERE cr.date = $1
		ORDER BY cr.clock_in DESC
	`

	rows, err := q.Query(ctx, query, dateLocal)
	if err != nil {
		return nil, fmt.Errorf("failed to query today's clock records: %w", err)
	}
	defer rows.Close()

	var records []timeclock.ClockRecord
	for rows.Next() {
		var rec timeclock.ClockRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date,
			&rec.ClockIn, &rec.ClockOut, &rec.HoursWorked, &rec.CreatedAt,
			&rec.EmployeeName, &rec.EmployeePosition,
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

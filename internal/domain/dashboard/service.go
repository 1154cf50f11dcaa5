package dashboard

import "context"

// DashboardService defines the read-only aggregation operations
type DashboardService interface {
	// GetSummary returns today's headline statistics
	GetSummary(ctx context.Context) (SummaryResponse, error)

	// GetTodayRecords returns today's clock records with employee identity,
	// most recent clock-in first
	GetTodayRecords(ctx context.Context) ([]TodayRecordResponse, error)
}

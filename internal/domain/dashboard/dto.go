package dashboard

import (
	"github.com/shopspring/decimal"
)

// SummaryResponse is the headline view for the dashboard: directory size,
// open shifts today and total hours closed out today.
type SummaryResponse struct {
	TotalEmployees  int64           `json:"total_employees"`
	ClockedInToday  int64           `json:"clocked_in_today"`
	TotalHoursToday decimal.Decimal `json:"total_hours_today"`
}

// TodayRecordResponse is a clock record joined with employee identity for the
// daily activity list.
type TodayRecordResponse struct {
	ID          string           `json:"id"`
	EmployeeID  string           `json:"employee_id"`
	Name        string           `json:"name"`
	Position    string           `json:"position"`
	Date        string           `json:"date"`
	ClockIn     string           `json:"clock_in"`
	ClockOut    *string          `json:"clock_out"`
	HoursWorked *decimal.Decimal `json:"hours_worked"`
}

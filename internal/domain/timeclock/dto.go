package timeclock

import (
	"github.com/retailops/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "invalid employee_id"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "invalid employee_id"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockInResponse struct {
	RecordID string `json:"record_id"`
	ClockIn  string `json:"clock_in"`
}

type ClockOutResponse struct {
	ClockOut    string          `json:"clock_out"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
}

type ClockRecordResponse struct {
	ID          string           `json:"id"`
	EmployeeID  string           `json:"employee_id"`
	Date        string           `json:"date"`
	ClockIn     string           `json:"clock_in"`
	ClockOut    *string          `json:"clock_out"`
	HoursWorked *decimal.Decimal `json:"hours_worked"`
}

type StatusResponse struct {
	IsClockedIn   bool                 `json:"is_clocked_in"`
	CurrentRecord *ClockRecordResponse `json:"current_record"`
}

// HoursFilter bounds GetEmployeeHours. The range applies only when both
// bounds are present; otherwise all records for the employee are returned.
type HoursFilter struct {
	StartDate *string
	EndDate   *string
}

func (f HoursFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bounded reports whether both range bounds are present.
func (f HoursFilter) Bounded() bool {
	return f.StartDate != nil && *f.StartDate != "" && f.EndDate != nil && *f.EndDate != ""
}

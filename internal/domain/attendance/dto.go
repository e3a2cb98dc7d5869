package attendance

import (
	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
	"github.com/hrapp/hr-backend-go/internal/pkg/validator"
)

// DefaultLocation is stored when the client sends no location.
const DefaultLocation = "-"

type ClockRequest struct {
	EmployeeID string `json:"employee_id"`
	Location   string `json:"location,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if len(r.Location) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LocationOrDefault returns the trimmed location or DefaultLocation.
func (r *ClockRequest) LocationOrDefault() string {
	if validator.IsEmpty(r.Location) {
		return DefaultLocation
	}
	return r.Location
}

type MonthlyFilter struct {
	EmployeeID string
	Year       int
	Month      int
}

func (f *MonthlyFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidYearMonth(f.Year, f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "year and month must describe a valid calendar month",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlyStats struct {
	Total       int `json:"total"`
	Normal      int `json:"normal"`
	Unprocessed int `json:"unprocessed"`
	Actual      int `json:"actual"`
}

type MonthlyResponse struct {
	UserName string                       `json:"userName"`
	Stats    MonthlyStats                 `json:"stats"`
	Records  []viewmodel.AttendanceRecord `json:"records"`
}

type RosterFilter struct {
	// Date is YYYY-MM-DD; empty means today
	Date string
}

func (f *RosterFilter) Validate() error {
	if f.Date == "" {
		return nil
	}
	if _, ok := validator.IsValidDate(f.Date); !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return nil
}

// RosterRow is one employee's clock record for the manager roster.
type RosterRow struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	Dept        string `json:"dept"`
	Rank        string `json:"rank"`
	In          string `json:"in"`
	InLocation  string `json:"inLoc"`
	Out         string `json:"out"`
	OutLocation string `json:"outLoc"`
	Status      string `json:"status"`
}

package application

import (
	"time"

	"github.com/hrapp/hr-backend-go/internal/pkg/validator"
)

type CreateApplicationRequest struct {
	EmployeeID      string `json:"employee_id"`
	ApplicationType string `json:"application_type"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Reason          string `json:"reason"`

	// Parsed by Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

// Validate checks the request and parses its dates in loc.
func (r *CreateApplicationRequest) Validate(loc *time.Location) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ApplicationType) {
		errs = append(errs, validator.ValidationError{
			Field:   "application_type",
			Message: "application_type is required",
		})
	} else if len(r.ApplicationType) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "application_type",
			Message: "application_type must not exceed 50 characters",
		})
	}

	start, startOK := validator.ParseDateTime(r.StartDate, loc)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD, YYYY-MM-DD HH:MM or YYYY-MM-DD HH:MM:SS",
		})
	}
	end, endOK := validator.ParseDateTime(r.EndDate, loc)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD, YYYY-MM-DD HH:MM or YYYY-MM-DD HH:MM:SS",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.Start, r.End = start, end
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of 대기, 승인, 반려",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Start string
	End   string
	Query string
}

// ToSearch validates the filter and converts it for the repository.
// The window only applies when both ends are given; the end day is inclusive.
func (f *ListFilter) ToSearch(loc *time.Location) (SearchFilter, error) {
	search := SearchFilter{Query: f.Query}
	if f.Start == "" || f.End == "" {
		return search, nil
	}

	start, okStart := validator.IsValidDate(f.Start)
	end, okEnd := validator.IsValidDate(f.End)
	if !okStart || !okEnd {
		return SearchFilter{}, validator.ValidationErrors{{
			Field:   "start",
			Message: "start and end must be in YYYY-MM-DD format",
		}}
	}

	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, loc)
	search.From, search.To = &from, &to
	return search, nil
}

// ApplicationResponse is the raw application payload.
type ApplicationResponse struct {
	ApplicationID   string    `json:"application_id"`
	EmployeeID      string    `json:"employee_id"`
	ApplicationType string    `json:"application_type"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Reason          *string   `json:"reason,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewApplicationResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID:   a.ID,
		EmployeeID:      a.EmployeeID,
		ApplicationType: a.Type,
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
		Reason:          a.Reason,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
	}
}

// ListRow is a row of the manager application list.
type ListRow struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Dept      string `json:"dept"`
	Rank      string `json:"rank"`
	Category  string `json:"category"`
	Type      string `json:"type"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Status    string `json:"status"`
}

// StatusEvent is pushed to the applicant when a manager changes a status.
type StatusEvent struct {
	ApplicationID   string `json:"application_id"`
	ApplicationType string `json:"application_type"`
	Status          string `json:"status"`
}

package employee

import "time"

// EmployeeResponse is the employee detail payload.
type EmployeeResponse struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	JoinDate       string  `json:"join_date"`
	TotalLeaveDays float64 `json:"total_leave_days"`
}

// NewEmployeeResponse maps an employee to its detail payload.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	joinDate := "-"
	if e.HireDate != nil {
		joinDate = e.HireDate.Format("2006-01-02")
	}
	return EmployeeResponse{
		EmployeeID:     e.EmployeeID,
		Name:           e.Name,
		Department:     valueOrDash(e.Department),
		Position:       valueOrDash(e.Position),
		Email:          valueOrDash(e.Email),
		Phone:          valueOrDash(e.PhoneNumber),
		JoinDate:       joinDate,
		TotalLeaveDays: e.AnnualLeaveDays(),
	}
}

// PlaceholderResponse is returned for unknown ids so the front-end can still render.
func PlaceholderResponse(employeeID string, today time.Time) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:     employeeID,
		Name:           UnknownName,
		Department:     "-",
		Position:       "-",
		Email:          "-",
		Phone:          "-",
		JoinDate:       today.Format("2006-01-02"),
		TotalLeaveDays: DefaultAnnualLeaveDays,
	}
}

func valueOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

package employee

import (
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/user"
)

// DefaultAnnualLeaveDays is granted when an employee has no explicit allowance.
const DefaultAnnualLeaveDays = 15.0

// UnknownName is shown in place of an employee that does not exist.
const UnknownName = "알 수 없음"

type Status string

const (
	StatusActive   Status = "재직"
	StatusOnLeave  Status = "휴직"
	StatusResigned Status = "퇴사"
)

type Employee struct {
	EmployeeID     string
	Name           string
	PasswordHash   string
	Department     *string
	Position       *string
	Email          *string
	PhoneNumber    *string
	HireDate       *time.Time
	Status         Status
	Role           *string
	TotalLeaveDays *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AnnualLeaveDays returns the leave allowance, falling back to the default.
func (e Employee) AnnualLeaveDays() float64 {
	if e.TotalLeaveDays == nil || *e.TotalLeaveDays == 0 {
		return DefaultAnnualLeaveDays
	}
	return *e.TotalLeaveDays
}

// SessionUser projects the employee onto the principal clients keep in their session.
func (e Employee) SessionUser() user.User {
	u := user.User{ID: e.EmployeeID, Name: e.Name}
	if e.Role != nil && *e.Role != "" {
		role := *e.Role
		u.Role = &role
	}
	return u
}

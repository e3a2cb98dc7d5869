package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	loc *time.Location
	now func() time.Time
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, loc *time.Location, now func() time.Time) employee.EmployeeService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository, loc: loc, now: now}
}

// GetDetail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetDetail(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.PlaceholderResponse(employeeID, s.now().In(s.loc)), nil
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

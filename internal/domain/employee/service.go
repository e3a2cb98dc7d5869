package employee

import "context"

type EmployeeService interface {
	// GetDetail returns the detail payload, or a placeholder for unknown ids
	GetDetail(ctx context.Context, employeeID string) (EmployeeResponse, error)
}

package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ExistsByID(ctx context.Context, employeeID string) (bool, error)
}

package application

import (
	"context"
	"time"
)

type ApplicationRepository interface {
	Create(ctx context.Context, newApplication Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	UpdateStatus(ctx context.Context, id string, status string) error

	// ListAll returns every application joined with employee details, newest first
	ListAll(ctx context.Context) ([]Application, error)

	// Search filters by start date window and employee name/department, newest first
	Search(ctx context.Context, filter SearchFilter) ([]Application, error)

	// ListByEmployeeSince returns an employee's applications created at or after since, newest first
	ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]Application, error)

	// ListApprovedByEmployee returns every approved application of an employee
	ListApprovedByEmployee(ctx context.Context, employeeID string) ([]Application, error)

	// CountByEmployeeSince counts applications created at or after since; empty types count all
	CountByEmployeeSince(ctx context.Context, employeeID string, since time.Time, types []string) (int64, error)

	// ListLeaveOverlapping returns leave-type applications overlapping [from, to], joined with employee details
	ListLeaveOverlapping(ctx context.Context, from, to time.Time) ([]Application, error)
}

// SearchFilter is the repository form of a list query.
type SearchFilter struct {
	From  *time.Time
	To    *time.Time
	Query string
}

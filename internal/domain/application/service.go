package application

import (
	"context"

	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
)

type ApplicationService interface {
	Create(ctx context.Context, req CreateApplicationRequest) (ApplicationResponse, error)
	ListAll(ctx context.Context) ([]ApplicationResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ListRow, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	// Recent returns the employee's applications of the last 30 days
	Recent(ctx context.Context, employeeID string) ([]viewmodel.Application, error)
}

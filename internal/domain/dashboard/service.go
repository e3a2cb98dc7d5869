package dashboard

import "context"

type DashboardService interface {
	GetSummary(ctx context.Context, employeeID string) (SummaryResponse, error)
	GetWork(ctx context.Context, employeeID string) (WorkResponse, error)
}

package leave

import "context"

type LeaveService interface {
	// GetMyStatus summarises approved leave usage for an employee
	GetMyStatus(ctx context.Context, employeeID string) (LeaveStatusResponse, error)
	// GetSchedule lists leave applications overlapping the filter window, earliest first
	GetSchedule(ctx context.Context, filter ScheduleFilter) ([]ScheduleRow, error)
}

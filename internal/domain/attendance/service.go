package attendance

import (
	"context"

	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn records today's clock-in
	ClockIn(ctx context.Context, req ClockRequest) error

	// ClockOut records today's clock-out
	ClockOut(ctx context.Context, req ClockRequest) error

	// GetWeekly returns Monday..Sunday of the current week
	GetWeekly(ctx context.Context, employeeID string) ([]viewmodel.WeeklyStatus, error)

	// GetMonthly returns one record per calendar day of the month
	GetMonthly(ctx context.Context, filter MonthlyFilter) (MonthlyResponse, error)

	// ListRoster returns every clock record of a day (manager)
	ListRoster(ctx context.Context, filter RosterFilter) ([]RosterRow, error)

	// CountStaleOpenSessions counts past records still missing a clock-out
	CountStaleOpenSessions(ctx context.Context) (int64, error)
}

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/application"
	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
	"github.com/hrapp/hr-backend-go/internal/domain/dashboard"
	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
	"github.com/hrapp/hr-backend-go/internal/pkg/utils"
	"github.com/hrapp/hr-backend-go/internal/service/leave"
)

type Options struct {
	Location          *time.Location
	StandardCloseHour int
	Now               func() time.Time
}

type DashboardServiceImpl struct {
	attendanceRepository  attendance.AttendanceRepository
	applicationRepository application.ApplicationRepository
	employeeRepository    employee.EmployeeRepository
	calculator            *leave.QuotaCalculator
	loc                   *time.Location
	closeHour             int
	now                   func() time.Time
}

func NewDashboardService(
	attendanceRepository attendance.AttendanceRepository,
	applicationRepository application.ApplicationRepository,
	employeeRepository employee.EmployeeRepository,
	calculator *leave.QuotaCalculator,
	opts Options,
) dashboard.DashboardService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &DashboardServiceImpl{
		attendanceRepository:  attendanceRepository,
		applicationRepository: applicationRepository,
		employeeRepository:    employeeRepository,
		calculator:            calculator,
		loc:                   opts.Location,
		closeHour:             opts.StandardCloseHour,
		now:                   opts.Now,
	}
}

// workTotals sums complete records after moving them into the business zone.
func (s *DashboardServiceImpl) workTotals(att attendance.Attendance) (work, overtime time.Duration) {
	att.ClockIn = utils.InLocation(att.ClockIn, s.loc)
	att.ClockOut = utils.InLocation(att.ClockOut, s.loc)
	return att.WorkDuration(), att.OvertimeDuration(s.closeHour)
}

// GetSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, employeeID string) (dashboard.SummaryResponse, error) {
	monthStart := utils.MonthStart(s.now(), s.loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	requestCount, err := s.applicationRepository.CountByEmployeeSince(ctx, employeeID, monthStart, nil)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count applications: %w", err)
	}

	records, err := s.attendanceRepository.ListByEmployee(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	var totalWork, totalOvertime time.Duration
	for _, rec := range records {
		work, overtime := s.workTotals(rec)
		totalWork += work
		totalOvertime += overtime
	}

	totalLeave := employee.DefaultAnnualLeaveDays
	emp, err := s.employeeRepository.GetByID(ctx, employeeID)
	switch {
	case err == nil:
		totalLeave = emp.AnnualLeaveDays()
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	approved, err := s.applicationRepository.ListApprovedByEmployee(ctx, employeeID)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to list approved applications: %w", err)
	}
	usage := s.calculator.CalculateUsage(approved)

	outingCount, err := s.applicationRepository.CountByEmployeeSince(ctx, employeeID, monthStart, application.OutingTypes)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count outings: %w", err)
	}

	return dashboard.SummaryResponse{
		MyRequestCount:  requestCount,
		WorkTimeSummary: fmt.Sprintf("%dh / %dh", int(totalWork.Hours()), int(totalOvertime.Hours())),
		LeaveBalance:    s.calculator.RemainingAnnual(totalLeave, usage),
		OutingCount:     outingCount,
	}, nil
}

// GetWork implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetWork(ctx context.Context, employeeID string) (dashboard.WorkResponse, error) {
	start := utils.WeekStart(s.now(), s.loc)
	end := start.AddDate(0, 0, 6)

	records, err := s.attendanceRepository.ListByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return dashboard.WorkResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	byDay := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byDay[rec.Date.Format(utils.DateKey)] = rec
	}

	var totalWork, totalOvertime time.Duration
	weekly := make([]viewmodel.WeeklyWorkData, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		var work, overtime time.Duration
		if rec, ok := byDay[day.Format(utils.DateKey)]; ok {
			work, overtime = s.workTotals(rec)
		}
		totalWork += work
		totalOvertime += overtime

		color := dashboard.ColorWorkday
		switch {
		case utils.IsWeekend(day):
			color = dashboard.ColorWeekend
		case overtime > 0:
			color = dashboard.ColorOvertime
		}
		weekly = append(weekly, viewmodel.WeeklyWorkData{
			Day:   viewmodel.WeekdayLabel(day.Weekday()),
			Work:  viewmodel.Hours(work),
			Color: color,
		})
	}

	return dashboard.WorkResponse{
		Summary: viewmodel.NewWorkSummary(totalWork, totalOvertime),
		Weekly:  weekly,
	}, nil
}

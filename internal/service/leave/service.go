package leave

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/application"
	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/domain/leave"
	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
)

// Calendar item labels.
const (
	itemLeave        = "휴가"
	itemCancellation = "휴가취소"
	halfDayDuration  = "04:00"
)

type Options struct {
	Location *time.Location
	Now      func() time.Time
}

type LeaveServiceImpl struct {
	application.ApplicationRepository
	employee.EmployeeRepository
	calculator *QuotaCalculator
	loc        *time.Location
	now        func() time.Time
}

func NewLeaveService(applicationRepository application.ApplicationRepository, employeeRepository employee.EmployeeRepository, calculator *QuotaCalculator, opts Options) leave.LeaveService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &LeaveServiceImpl{
		ApplicationRepository: applicationRepository,
		EmployeeRepository:    employeeRepository,
		calculator:            calculator,
		loc:                   opts.Location,
		now:                   opts.Now,
	}
}

// GetMyStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyStatus(ctx context.Context, employeeID string) (leave.LeaveStatusResponse, error) {
	emp, err := l.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveStatusResponse{}, err
	}

	approved, err := l.ApplicationRepository.ListApprovedByEmployee(ctx, employeeID)
	if err != nil {
		return leave.LeaveStatusResponse{}, fmt.Errorf("failed to list approved applications: %w", err)
	}

	usage := l.calculator.CalculateUsage(approved)
	total := emp.AnnualLeaveDays()

	return leave.LeaveStatusResponse{
		TotalUsedAll: usage.Annual,
		Leaves: []leave.LeaveItem{
			{
				ID:            leave.KindAnnual,
				Name:          leave.KindName(leave.KindAnnual),
				TotalDays:     total,
				UsedDays:      usage.Annual,
				RemainingDays: l.calculator.RemainingAnnual(total, usage),
			},
			{ID: leave.KindFamilyEvent, Name: leave.KindName(leave.KindFamilyEvent), UsedDays: usage.FamilyEvent},
			{ID: leave.KindSick, Name: leave.KindName(leave.KindSick), UsedDays: usage.Sick},
			{ID: leave.KindPublic, Name: leave.KindName(leave.KindPublic), UsedDays: usage.Public},
		},
	}, nil
}

// GetSchedule implements leave.LeaveService.
func (l *LeaveServiceImpl) GetSchedule(ctx context.Context, filter leave.ScheduleFilter) ([]leave.ScheduleRow, error) {
	from, to, err := filter.Window(l.now(), l.loc)
	if err != nil {
		return nil, err
	}

	apps, err := l.ApplicationRepository.ListLeaveOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave schedule: %w", err)
	}

	leaves := make([]application.Application, 0, len(apps))
	for _, app := range apps {
		if app.IsLeave() {
			leaves = append(leaves, app)
		}
	}
	sort.SliceStable(leaves, func(i, j int) bool { return leaves[i].StartDate.Before(leaves[j].StartDate) })

	rows := make([]leave.ScheduleRow, 0, len(leaves))
	for _, app := range leaves {
		start, end := app.StartDate.In(l.loc), app.EndDate.In(l.loc)
		name, dept, rank := app.Applicant()

		item := itemLeave
		if app.IsCancellation() {
			item = itemCancellation
		}

		rows = append(rows, leave.ScheduleRow{
			ID:        app.ID,
			Date:      viewmodel.CalendarDate(start),
			Name:      name,
			Dept:      dept,
			Rank:      rank,
			Item:      item,
			Type:      app.Type,
			StartTime: start.Format("15:04"),
			EndTime:   end.Format("15:04"),
			Duration:  scheduleDuration(app),
			Status:    app.DisplayStatus(),
		})
	}
	return rows, nil
}

// scheduleDuration shows hours for partial days only; full days render empty.
func scheduleDuration(app application.Application) string {
	span := app.Span()
	switch {
	case app.IsHalfDay():
		return halfDayDuration
	case span >= 8*time.Hour:
		return ""
	default:
		return viewmodel.FormatHM(span)
	}
}

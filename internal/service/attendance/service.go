package attendance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
	"github.com/hrapp/hr-backend-go/internal/pkg/utils"
	"github.com/hrapp/hr-backend-go/internal/pkg/validator"
)

// Options carries the working-time policy.
type Options struct {
	Location          *time.Location
	StandardCloseHour int
	Now               func() time.Time
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	loc       *time.Location
	closeHour int
	now       func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository, opts Options) attendance.AttendanceService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		loc:                  opts.Location,
		closeHour:            opts.StandardCloseHour,
		now:                  opts.Now,
	}
}

// localize moves clock times into the business time zone so that
// overtime is measured against the local closing hour.
func (a *AttendanceServiceImpl) localize(att attendance.Attendance) attendance.Attendance {
	att.ClockIn = utils.InLocation(att.ClockIn, a.loc)
	att.ClockOut = utils.InLocation(att.ClockOut, a.loc)
	return att
}

func (a *AttendanceServiceImpl) byDay(records []attendance.Attendance) map[string]attendance.Attendance {
	m := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		m[r.Date.Format(utils.DateKey)] = a.localize(r)
	}
	return m
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	exists, err := a.EmployeeRepository.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return employee.ErrEmployeeNotFound
	}

	now := a.now().In(a.loc)
	today := utils.StartOfDay(now, a.loc)

	_, err = a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err == nil {
		return attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return fmt.Errorf("failed to get today's attendance: %w", err)
	}

	location := req.LocationOrDefault()
	_, err = a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID:      req.EmployeeID,
		Date:            today,
		ClockIn:         &now,
		ClockInLocation: &location,
		Method:          attendance.MethodPC,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return err
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	now := a.now().In(a.loc)
	today := utils.StartOfDay(now, a.loc)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrNotCheckedIn
		}
		return fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record.ClockOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}

	if err := a.AttendanceRepository.UpdateClockOut(ctx, record.ID, now, req.LocationOrDefault()); err != nil {
		return fmt.Errorf("failed to record clock-out: %w", err)
	}
	return nil
}

// GetWeekly implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetWeekly(ctx context.Context, employeeID string) ([]viewmodel.WeeklyStatus, error) {
	start := utils.WeekStart(a.now(), a.loc)
	end := start.AddDate(0, 0, 6)

	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly attendance: %w", err)
	}
	recordsByDay := a.byDay(records)

	result := make([]viewmodel.WeeklyStatus, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		row := viewmodel.WeeklyStatus{
			Date:      viewmodel.ShortDate(day),
			WorkTime:  viewmodel.Placeholder,
			Overtime:  viewmodel.Placeholder,
			TotalTime: viewmodel.Placeholder,
			Status:    attendance.StatusNone,
		}
		if rec, ok := recordsByDay[day.Format(utils.DateKey)]; ok {
			row.Status = rec.Status()
			if rec.IsComplete() {
				work := rec.WorkDuration()
				overtime := rec.OvertimeDuration(a.closeHour)
				row.WorkTime = viewmodel.FormatHM(work)
				row.Overtime = viewmodel.FormatHM(overtime)
				row.TotalTime = viewmodel.FormatHM(work + overtime)
			}
		}
		result = append(result, row)
	}
	return result, nil
}

// GetMonthly implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMonthly(ctx context.Context, filter attendance.MonthlyFilter) (attendance.MonthlyResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MonthlyResponse{}, err
	}

	userName := employee.UnknownName
	emp, err := a.EmployeeRepository.GetByID(ctx, filter.EmployeeID)
	switch {
	case err == nil:
		userName = emp.Name
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return attendance.MonthlyResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	month := time.Month(filter.Month)
	lastDay := utils.DaysInMonth(filter.Year, month)
	first := time.Date(filter.Year, month, 1, 0, 0, 0, 0, a.loc)
	last := time.Date(filter.Year, month, lastDay, 0, 0, 0, 0, a.loc)

	records, err := a.AttendanceRepository.ListByEmployee(ctx, filter.EmployeeID, first, last)
	if err != nil {
		return attendance.MonthlyResponse{}, fmt.Errorf("failed to list monthly attendance: %w", err)
	}
	recordsByDay := a.byDay(records)
	today := utils.StartOfDay(a.now(), a.loc)

	stats := attendance.MonthlyStats{Total: lastDay, Actual: len(records)}
	rows := make([]viewmodel.AttendanceRecord, 0, lastDay)
	ordinal := 0

	for d := 1; d <= lastDay; d++ {
		day := time.Date(filter.Year, month, d, 0, 0, 0, 0, a.loc)
		row := viewmodel.AttendanceRecord{
			Date:             viewmodel.DotDate(day),
			DayOfWeek:        viewmodel.WeekdayLabel(day.Weekday()),
			ClockInTime:      viewmodel.Placeholder,
			ClockInLocation:  viewmodel.Placeholder,
			ClockOutTime:     viewmodel.Placeholder,
			ClockOutLocation: viewmodel.Placeholder,
			Count:            viewmodel.Placeholder,
			TotalWorkTime:    viewmodel.Placeholder,
			Status:           attendance.StatusUnprocessed,
		}

		rec, ok := recordsByDay[day.Format(utils.DateKey)]
		switch {
		case ok:
			ordinal++
			row.Count = strconv.Itoa(ordinal)
			if rec.ClockIn != nil {
				row.ClockInTime = viewmodel.ClockTime(rec.ClockIn)
				row.ClockInLocation = simpleLocation(rec.ClockInLocation)
			}
			if rec.ClockOut != nil {
				row.ClockOutTime = viewmodel.ClockTime(rec.ClockOut)
				row.ClockOutLocation = simpleLocation(rec.ClockOutLocation)
			}
			switch {
			case rec.IsComplete():
				row.TotalWorkTime = viewmodel.FormatHM(rec.WorkDuration())
				row.Status = attendance.StatusNormal
				stats.Normal++
			case rec.ClockIn != nil:
				row.Status = attendance.StatusMissingClockOut
				stats.Unprocessed++
			}
		case utils.IsWeekend(day):
			row.Status = attendance.StatusNone
		case day.Before(today):
			row.Status = attendance.StatusAbsent
			stats.Unprocessed++
		default:
			row.Status = attendance.StatusNone
		}

		rows = append(rows, row)
	}

	return attendance.MonthlyResponse{UserName: userName, Stats: stats, Records: rows}, nil
}

func simpleLocation(loc *string) string {
	if loc == nil {
		return viewmodel.Placeholder
	}
	return attendance.SimplifyLocation(*loc)
}

// ListRoster implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRoster(ctx context.Context, filter attendance.RosterFilter) ([]attendance.RosterRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	day := utils.StartOfDay(a.now(), a.loc)
	if filter.Date != "" {
		parsed, _ := validator.IsValidDate(filter.Date)
		day = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, a.loc)
	}

	records, err := a.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}

	rows := make([]attendance.RosterRow, 0, len(records))
	for _, rec := range records {
		rec = a.localize(rec)
		name := rec.EmployeeID
		if rec.EmployeeName != nil {
			name = *rec.EmployeeName
		}
		rows = append(rows, attendance.RosterRow{
			Date:        day.Format("01/02"),
			Name:        name,
			Dept:        orPlaceholder(rec.EmployeeDept),
			Rank:        orPlaceholder(rec.EmployeePosition),
			In:          viewmodel.ClockTime(rec.ClockIn),
			InLocation:  orPlaceholder(rec.ClockInLocation),
			Out:         viewmodel.ClockTime(rec.ClockOut),
			OutLocation: orPlaceholder(rec.ClockOutLocation),
			Status:      rec.Status(),
		})
	}
	return rows, nil
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return viewmodel.Placeholder
	}
	return *s
}

// CountStaleOpenSessions implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CountStaleOpenSessions(ctx context.Context) (int64, error) {
	count, err := a.AttendanceRepository.CountOpenBefore(ctx, utils.StartOfDay(a.now(), a.loc))
	if err != nil {
		return 0, fmt.Errorf("failed to count open sessions: %w", err)
	}
	return count, nil
}

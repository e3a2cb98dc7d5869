package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/application"
	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
	"github.com/hrapp/hr-backend-go/internal/domain/dashboard"
	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
	"github.com/hrapp/hr-backend-go/internal/repository/memory"
	"github.com/hrapp/hr-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*3600)

// Friday 2026-10-16 10:00 KST
func fixedNow() time.Time { return time.Date(2026, 10, 16, 10, 0, 0, 0, kst) }

type fixture struct {
	svc     dashboard.DashboardService
	records *memory.AttendanceRepository
	apps    *memory.ApplicationRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	employees := memory.NewEmployeeRepository()
	_, err := employees.Create(context.Background(), employee.Employee{EmployeeID: "E001", Name: "김철수", PasswordHash: "x"})
	require.NoError(t, err)

	records := memory.NewAttendanceRepository(employees)
	apps := memory.NewApplicationRepository(employees)
	svc := NewDashboardService(records, apps, employees, leave.NewQuotaCalculator(kst), Options{
		Location:          kst,
		StandardCloseHour: 18,
		Now:               fixedNow,
	})
	return fixture{svc: svc, records: records, apps: apps}
}

func (f fixture) clock(t *testing.T, day, inHour, outHour, outMinute int) {
	t.Helper()
	in := time.Date(2026, 10, day, inHour, 0, 0, 0, kst)
	att, err := f.records.Create(context.Background(), attendance.Attendance{
		EmployeeID: "E001",
		Date:       time.Date(2026, 10, day, 0, 0, 0, 0, kst),
		ClockIn:    &in,
	})
	require.NoError(t, err)
	out := time.Date(2026, 10, day, outHour, outMinute, 0, 0, kst)
	require.NoError(t, f.records.UpdateClockOut(context.Background(), att.ID, out, "-"))
}

func (f fixture) apply(t *testing.T, typ string, days int, status string, created time.Time) {
	t.Helper()
	start := time.Date(2026, 10, 20, 9, 0, 0, 0, kst)
	_, err := f.apps.Create(context.Background(), application.Application{
		EmployeeID: "E001",
		Type:       typ,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, days-1),
		Status:     status,
		CreatedAt:  created,
	})
	require.NoError(t, err)
}

func TestDashboardService_GetSummary(t *testing.T) {
	f := newFixture(t)
	f.clock(t, 12, 9, 20, 0)
	f.clock(t, 13, 9, 18, 0)
	f.apply(t, application.TypeAnnualLeave, 2, application.StatusApproved, fixedNow())
	f.apply(t, application.TypeOuting, 1, application.StatusPending, fixedNow())
	f.apply(t, application.TypeBusinessTrip, 1, application.StatusPending, time.Date(2026, 9, 30, 9, 0, 0, 0, kst))

	resp, err := f.svc.GetSummary(context.Background(), "E001")
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.MyRequestCount)
	assert.Equal(t, "20h / 2h", resp.WorkTimeSummary)
	assert.Equal(t, 13.0, resp.LeaveBalance)
	assert.Equal(t, int64(1), resp.OutingCount)
}

func TestDashboardService_GetSummary_UnknownEmployeeUsesDefaultLeave(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.GetSummary(context.Background(), "E404")
	require.NoError(t, err)
	assert.Equal(t, employee.DefaultAnnualLeaveDays, resp.LeaveBalance)
	assert.Equal(t, "0h / 0h", resp.WorkTimeSummary)
}

func TestDashboardService_GetWork(t *testing.T) {
	f := newFixture(t)
	f.clock(t, 12, 9, 20, 0)
	f.clock(t, 13, 9, 17, 30)

	resp, err := f.svc.GetWork(context.Background(), "E001")
	require.NoError(t, err)
	require.Len(t, resp.Weekly, 7)

	assert.Equal(t, viewmodel.WeeklyWorkData{Day: "월", Work: 11, Color: dashboard.ColorOvertime}, resp.Weekly[0])
	assert.Equal(t, viewmodel.WeeklyWorkData{Day: "화", Work: 8.5, Color: dashboard.ColorWorkday}, resp.Weekly[1])
	assert.Equal(t, viewmodel.WeeklyWorkData{Day: "토", Work: 0, Color: dashboard.ColorWeekend}, resp.Weekly[5])
	assert.Equal(t, "일", resp.Weekly[6].Day)

	assert.Equal(t, viewmodel.NewWorkSummary(19*time.Hour+30*time.Minute, 2*time.Hour), resp.Summary)
	assert.Equal(t, "21:30", resp.Summary.TotalString)
}

type failingEmployees struct {
	employee.EmployeeRepository
	err error
}

func (r failingEmployees) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return employee.Employee{}, r.err
}

func TestDashboardService_GetSummary_EmployeeLookupError(t *testing.T) {
	employees := memory.NewEmployeeRepository()
	dbErr := errors.New("connection reset")
	svc := NewDashboardService(
		memory.NewAttendanceRepository(employees),
		memory.NewApplicationRepository(employees),
		failingEmployees{err: dbErr},
		leave.NewQuotaCalculator(kst),
		Options{Location: kst, StandardCloseHour: 18, Now: fixedNow},
	)

	_, err := svc.GetSummary(context.Background(), "E001")
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestDashboardService_GetSummary_LeaveDaysUseBusinessZone(t *testing.T) {
	f := newFixture(t)
	// 2026-10-20 00:00..18:00 KST spans two UTC dates.
	start := time.Date(2026, 10, 20, 0, 0, 0, 0, kst)
	_, err := f.apps.Create(context.Background(), application.Application{
		EmployeeID: "E001",
		Type:       application.TypeAnnualLeave,
		StartDate:  start.UTC(),
		EndDate:    start.Add(18 * time.Hour).UTC(),
		Status:     application.StatusApproved,
		CreatedAt:  fixedNow().UTC(),
	})
	require.NoError(t, err)

	resp, err := f.svc.GetSummary(context.Background(), "E001")
	require.NoError(t, err)
	assert.Equal(t, 14.0, resp.LeaveBalance)
}

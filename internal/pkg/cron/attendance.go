package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
)

// ReportHour is the local hour at which open attendance is reported.
const ReportHour = 0

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	loc               *time.Location
	now               func() time.Time
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService, loc *time.Location, now func() time.Time) *AttendanceJobs {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &AttendanceJobs{
		attendanceService: attendanceService,
		loc:               loc,
		now:               now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("report_open_attendances", 1*time.Hour, j.ReportOpenAttendances)
}

// ReportOpenAttendances logs how many past weekdays are still missing a
// clock-out. Those days show as 퇴근미처리 until someone corrects them.
func (j *AttendanceJobs) ReportOpenAttendances(ctx context.Context) error {
	if j.now().In(j.loc).Hour() != ReportHour {
		return nil
	}

	count, err := j.attendanceService.CountStaleOpenSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to count open attendance: %w", err)
	}

	if count == 0 {
		slog.Info("Cron: No open attendance from previous days")
		return nil
	}
	slog.Warn("Cron: Attendance still missing clock-out", "count", count)
	return nil
}

package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

type stubAttendanceService struct {
	attendance.AttendanceService
	count int64
	err   error
	calls int
}

func (s *stubAttendanceService) CountStaleOpenSessions(ctx context.Context) (int64, error) {
	s.calls++
	return s.count, s.err
}

func TestReportOpenAttendances_OnlyAtReportHour(t *testing.T) {
	kst := time.FixedZone("KST", 9*3600)
	stub := &stubAttendanceService{count: 3}

	midday := NewAttendanceJobs(stub, kst, func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, kst) })
	assert.NoError(t, midday.ReportOpenAttendances(context.Background()))
	assert.Equal(t, 0, stub.calls)

	// 15:10 UTC is 00:10 in Seoul
	midnight := NewAttendanceJobs(stub, kst, func() time.Time { return time.Date(2026, 10, 16, 15, 10, 0, 0, time.UTC) })
	assert.NoError(t, midnight.ReportOpenAttendances(context.Background()))
	assert.Equal(t, 1, stub.calls)
}

func TestReportOpenAttendances_PropagatesError(t *testing.T) {
	stub := &stubAttendanceService{err: errors.New("db down")}
	jobs := NewAttendanceJobs(stub, time.UTC, func() time.Time { return time.Date(2026, 10, 16, 0, 5, 0, 0, time.UTC) })

	assert.Error(t, jobs.ReportOpenAttendances(context.Background()))
}

func TestAttendanceJobs_Register(t *testing.T) {
	s := NewScheduler(context.Background())
	NewAttendanceJobs(&stubAttendanceService{}, time.UTC, nil).RegisterJobs(s)

	assert.Equal(t, []string{"report_open_attendances"}, s.Jobs())
}

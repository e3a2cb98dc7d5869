package attendance

import (
	"time"
)

// Display statuses shared with the front-end.
const (
	StatusNormal          = "정상처리"
	StatusMissingClockOut = "퇴근미처리"
	StatusAbsent          = "결근"
	StatusUnprocessed     = "미처리"
	StatusNone            = "-"
)

// MethodPC is recorded for clock events coming from the web client.
const MethodPC = "PC"

type Attendance struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	ClockIn          *time.Time
	ClockOut         *time.Time
	ClockInLocation  *string
	ClockOutLocation *string
	Method           string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	EmployeeName     *string
	EmployeeDept     *string
	EmployeePosition *string
}

// IsComplete reports whether both clock events are recorded.
func (a Attendance) IsComplete() bool {
	return a.ClockIn != nil && a.ClockOut != nil
}

// WorkDuration is the time between clock-in and clock-out, zero when incomplete.
func (a Attendance) WorkDuration() time.Duration {
	if !a.IsComplete() {
		return 0
	}
	d := a.ClockOut.Sub(*a.ClockIn)
	if d < 0 {
		return 0
	}
	return d
}

// OvertimeDuration is the part of the shift after closeHour on the attendance day.
func (a Attendance) OvertimeDuration(closeHour int) time.Duration {
	if !a.IsComplete() {
		return 0
	}
	in := *a.ClockIn
	closing := time.Date(in.Year(), in.Month(), in.Day(), closeHour, 0, 0, 0, in.Location())
	if !a.ClockOut.After(closing) {
		return 0
	}
	start := closing
	if in.After(closing) {
		start = in
	}
	return a.ClockOut.Sub(start)
}

// Status classifies a recorded day.
func (a Attendance) Status() string {
	switch {
	case a.IsComplete():
		return StatusNormal
	case a.ClockIn != nil:
		return StatusMissingClockOut
	default:
		return StatusNone
	}
}

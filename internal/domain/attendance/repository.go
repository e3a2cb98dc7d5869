package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns ErrAttendanceNotFound when the employee has no record that day
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// UpdateClockOut records the clock-out of an existing attendance
	UpdateClockOut(ctx context.Context, id string, clockOut time.Time, location string) error

	// ListByEmployee returns records with from <= date <= to, oldest first
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// ListByDate returns every record of a day joined with employee details
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// CountOpenBefore counts records before date that never clocked out
	CountOpenBefore(ctx context.Context, date time.Time) (int64, error)
}

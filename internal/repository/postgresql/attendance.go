package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
	"github.com/hrapp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const dateLayout = "2006-01-02"

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.clock_in, a.clock_out,
	a.clock_in_location, a.clock_out_location, a.method, a.created_at, a.updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row, joined bool) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []interface{}{
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.ClockInLocation, &att.ClockOutLocation, &att.Method, &att.CreatedAt, &att.UpdatedAt,
	}
	if joined {
		dest = append(dest, &att.EmployeeName, &att.EmployeeDept, &att.EmployeePosition)
	}
	err := row.Scan(dest...)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if newAttendance.ID == "" {
		newAttendance.ID = "ATT-" + uuid.NewString()
	}
	if newAttendance.Method == "" {
		newAttendance.Method = attendance.MethodPC
	}

	query := `
		INSERT INTO attendance (
			id, employee_id, date, clock_in, clock_in_location, method
		) VALUES ($1, $2, $3::date, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date.Format(dateLayout),
		newAttendance.ClockIn,
		newAttendance.ClockInLocation,
		newAttendance.Method,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance a
		WHERE a.employee_id = $1
		  AND a.date = $2::date
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date.Format(dateLayout)), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// UpdateClockOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateClockOut(ctx context.Context, id string, clockOut time.Time, location string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET clock_out = $1, clock_out_location = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, clockOut, location, id)
	if err != nil {
		return fmt.Errorf("failed to update clock-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance a
		WHERE a.employee_id = $1
		  AND a.date BETWEEN $2::date AND $3::date
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows, false)
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `, e.name, e.department, e.position
		FROM attendance a
		LEFT JOIN employees e ON e.employee_id = a.employee_id
		WHERE a.date = $1::date
		ORDER BY a.clock_in ASC NULLS LAST, e.name ASC
	`

	rows, err := q.Query(ctx, query, date.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows, true)
}

// CountOpenBefore implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountOpenBefore(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendance
		WHERE date < $1::date
		  AND clock_in IS NOT NULL
		  AND clock_out IS NULL
		  AND EXTRACT(ISODOW FROM date) < 6
	`

	var count int64
	if err := q.QueryRow(ctx, query, date.Format(dateLayout)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open attendance: %w", err)
	}
	return count, nil
}

func collectAttendance(rows pgx.Rows, joined bool) ([]attendance.Attendance, error) {
	var list []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, joined)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		list = append(list, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return list, nil
}

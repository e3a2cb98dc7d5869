// Package memory provides in-process implementations of the repository
// interfaces. Services and handlers use them in tests; they follow the same
// error contract as the PostgreSQL repositories.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hrapp/hr-backend-go/internal/domain/application"
	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/repository/postgresql"
	"github.com/oklog/ulid/v2"
)

var (
	_ employee.EmployeeRepository       = (*EmployeeRepository)(nil)
	_ attendance.AttendanceRepository   = (*AttendanceRepository)(nil)
	_ application.ApplicationRepository = (*ApplicationRepository)(nil)
	_ postgresql.Transactor             = Transactor{}
)

const dateLayout = "2006-01-02"

// Transactor runs fn directly; memory repositories have no rollback.
type Transactor struct{}

func (Transactor) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
	Now       func() time.Time
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee), Now: time.Now}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[newEmployee.EmployeeID]; ok {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	if newEmployee.Status == "" {
		newEmployee.Status = employee.StatusActive
	}
	newEmployee.CreatedAt = r.Now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	r.employees[newEmployee.EmployeeID] = newEmployee
	return newEmployee, nil
}

func (r *EmployeeRepository) ExistsByID(ctx context.Context, employeeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.employees[employeeID]
	return ok, nil
}

// lookup returns join columns for an employee id.
func (r *EmployeeRepository) lookup(employeeID string) (name, dept, position *string) {
	if r == nil {
		return nil, nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.employees[employeeID]
	if !ok {
		return nil, nil, nil
	}
	n := e.Name
	return &n, e.Department, e.Position
}

type AttendanceRepository struct {
	mu        sync.RWMutex
	records   []attendance.Attendance
	employees *EmployeeRepository
	Now       func() time.Time
}

// NewAttendanceRepository joins employee details from employees, which may be nil.
func NewAttendanceRepository(employees *EmployeeRepository) *AttendanceRepository {
	return &AttendanceRepository{employees: employees, Now: time.Now}
}

func sameDay(a, b time.Time) bool {
	return a.Format(dateLayout) == b.Format(dateLayout)
}

func (r *AttendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.EmployeeID == att.EmployeeID && sameDay(existing.Date, att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	if att.ID == "" {
		att.ID = "ATT-" + uuid.NewString()
	}
	if att.Method == "" {
		att.Method = attendance.MethodPC
	}
	att.CreatedAt = r.Now()
	att.UpdatedAt = att.CreatedAt
	r.records = append(r.records, att)
	return att, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, att := range r.records {
		if att.EmployeeID == employeeID && sameDay(att.Date, date) {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) UpdateClockOut(ctx context.Context, id string, clockOut time.Time, location string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			out := clockOut
			loc := location
			r.records[i].ClockOut = &out
			r.records[i].ClockOutLocation = &loc
			r.records[i].UpdatedAt = r.Now()
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lo, hi := from.Format(dateLayout), to.Format(dateLayout)
	var list []attendance.Attendance
	for _, att := range r.records {
		d := att.Date.Format(dateLayout)
		if att.EmployeeID == employeeID && d >= lo && d <= hi {
			list = append(list, att)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	return list, nil
}

func (r *AttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	var list []attendance.Attendance
	for _, att := range r.records {
		if sameDay(att.Date, date) {
			list = append(list, att)
		}
	}
	r.mu.RUnlock()
	for i := range list {
		list[i].EmployeeName, list[i].EmployeeDept, list[i].EmployeePosition = r.employees.lookup(list[i].EmployeeID)
	}
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].ClockIn, list[j].ClockIn
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.Before(*b)
	})
	return list, nil
}

func (r *AttendanceRepository) CountOpenBefore(ctx context.Context, date time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cutoff := date.Format(dateLayout)
	var count int64
	for _, att := range r.records {
		wd := att.Date.Weekday()
		if att.Date.Format(dateLayout) < cutoff && att.ClockIn != nil && att.ClockOut == nil &&
			wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count, nil
}

type ApplicationRepository struct {
	mu           sync.RWMutex
	applications []application.Application
	employees    *EmployeeRepository
	Now          func() time.Time
}

// NewApplicationRepository joins employee details from employees, which may be nil.
func NewApplicationRepository(employees *EmployeeRepository) *ApplicationRepository {
	return &ApplicationRepository{employees: employees, Now: time.Now}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if app.ID == "" {
		app.ID = "APP-" + ulid.Make().String()
	}
	if app.Status == "" {
		app.Status = application.StatusPending
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = r.Now()
	}
	r.applications = append(r.applications, app)
	return app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, app := range r.applications {
		if app.ID == id {
			return app, nil
		}
	}
	return application.Application{}, application.ErrApplicationNotFound
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.applications {
		if r.applications[i].ID == id {
			r.applications[i].Status = status
			return nil
		}
	}
	return application.ErrApplicationNotFound
}

// filter copies the matching applications with join columns filled in.
func (r *ApplicationRepository) filter(match func(application.Application) bool) []application.Application {
	r.mu.RLock()
	var list []application.Application
	for _, app := range r.applications {
		if match(app) {
			list = append(list, app)
		}
	}
	r.mu.RUnlock()
	for i := range list {
		list[i].EmployeeName, list[i].EmployeeDept, list[i].EmployeePosition = r.employees.lookup(list[i].EmployeeID)
	}
	return list
}

func newestFirst(list []application.Application) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]application.Application, error) {
	list := r.filter(func(application.Application) bool { return true })
	newestFirst(list)
	return list, nil
}

func (r *ApplicationRepository) Search(ctx context.Context, f application.SearchFilter) ([]application.Application, error) {
	list := r.filter(func(app application.Application) bool {
		if f.From != nil && app.StartDate.Before(*f.From) {
			return false
		}
		if f.To != nil && app.StartDate.After(*f.To) {
			return false
		}
		return true
	})
	if f.Query != "" {
		matched := list[:0]
		for _, app := range list {
			if contains(app.EmployeeName, f.Query) || contains(app.EmployeeDept, f.Query) {
				matched = append(matched, app)
			}
		}
		list = matched
	}
	newestFirst(list)
	return list, nil
}

func contains(s *string, sub string) bool {
	return s != nil && strings.Contains(strings.ToLower(*s), strings.ToLower(sub))
}

func (r *ApplicationRepository) ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]application.Application, error) {
	list := r.filter(func(app application.Application) bool {
		return app.EmployeeID == employeeID && !app.CreatedAt.Before(since)
	})
	for i := range list {
		list[i].EmployeeName, list[i].EmployeeDept, list[i].EmployeePosition = nil, nil, nil
	}
	newestFirst(list)
	return list, nil
}

func (r *ApplicationRepository) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]application.Application, error) {
	list := r.filter(func(app application.Application) bool {
		return app.EmployeeID == employeeID && app.Status == application.StatusApproved
	})
	for i := range list {
		list[i].EmployeeName, list[i].EmployeeDept, list[i].EmployeePosition = nil, nil, nil
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].StartDate.Before(list[j].StartDate) })
	return list, nil
}

func (r *ApplicationRepository) CountByEmployeeSince(ctx context.Context, employeeID string, since time.Time, types []string) (int64, error) {
	list := r.filter(func(app application.Application) bool {
		if app.EmployeeID != employeeID || app.CreatedAt.Before(since) {
			return false
		}
		if len(types) == 0 {
			return true
		}
		for _, t := range types {
			if app.Type == t {
				return true
			}
		}
		return false
	})
	return int64(len(list)), nil
}

func (r *ApplicationRepository) ListLeaveOverlapping(ctx context.Context, from, to time.Time) ([]application.Application, error) {
	list := r.filter(func(app application.Application) bool {
		return app.IsLeave() && !app.StartDate.After(to) && !app.EndDate.Before(from)
	})
	sort.SliceStable(list, func(i, j int) bool { return list[i].StartDate.Before(list[j].StartDate) })
	return list, nil
}

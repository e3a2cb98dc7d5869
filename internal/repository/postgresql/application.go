package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/application"
	"github.com/hrapp/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
)

const applicationColumns = `
	ap.application_id, ap.employee_id, ap.application_type, ap.start_date, ap.end_date,
	ap.reason, ap.status, ap.created_at`

const applicationJoinColumns = applicationColumns + `, e.name, e.department, e.position`

// leaveTypePatterns mirrors application.Application.IsLeave.
var leaveTypePatterns = []string{"%휴가%", "%연차%", "%반차%", "%병가%"}

type applicationRepository struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.ApplicationRepository {
	return &applicationRepository{db: db}
}

func scanApplication(row pgx.Row, joined bool) (application.Application, error) {
	var app application.Application
	dest := []interface{}{
		&app.ID, &app.EmployeeID, &app.Type, &app.StartDate, &app.EndDate,
		&app.Reason, &app.Status, &app.CreatedAt,
	}
	if joined {
		dest = append(dest, &app.EmployeeName, &app.EmployeeDept, &app.EmployeePosition)
	}
	err := row.Scan(dest...)
	return app, err
}

func collectApplications(rows pgx.Rows, joined bool) ([]application.Application, error) {
	var list []application.Application
	for rows.Next() {
		app, err := scanApplication(rows, joined)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		list = append(list, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return list, nil
}

// Create implements application.ApplicationRepository.
// Ids are ULIDs so they sort by creation time.
func (r *applicationRepository) Create(ctx context.Context, newApplication application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	if newApplication.ID == "" {
		newApplication.ID = "APP-" + ulid.Make().String()
	}
	if newApplication.Status == "" {
		newApplication.Status = application.StatusPending
	}

	query := `
		INSERT INTO applications (
			application_id, employee_id, application_type, start_date, end_date, reason, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newApplication.ID,
		newApplication.EmployeeID,
		newApplication.Type,
		newApplication.StartDate,
		newApplication.EndDate,
		newApplication.Reason,
		newApplication.Status,
	).Scan(&newApplication.CreatedAt)
	if err != nil {
		return application.Application{}, fmt.Errorf("failed to create application: %w", err)
	}

	return newApplication, nil
}

// GetByID implements application.ApplicationRepository.
func (r *applicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + ` FROM applications ap WHERE ap.application_id = $1`

	app, err := scanApplication(q.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// UpdateStatus implements application.ApplicationRepository.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE applications SET status = $1 WHERE application_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrApplicationNotFound
	}
	return nil
}

// ListAll implements application.ApplicationRepository.
func (r *applicationRepository) ListAll(ctx context.Context) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationJoinColumns + `
		FROM applications ap
		LEFT JOIN employees e ON e.employee_id = ap.employee_id
		ORDER BY ap.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows, true)
}

// Search implements application.ApplicationRepository.
func (r *applicationRepository) Search(ctx context.Context, filter application.SearchFilter) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationJoinColumns + `
		FROM applications ap
		LEFT JOIN employees e ON e.employee_id = ap.employee_id
		WHERE ($1::timestamptz IS NULL OR ap.start_date >= $1)
		  AND ($2::timestamptz IS NULL OR ap.start_date <= $2)
		  AND ($3 = '' OR e.name ILIKE '%' || $3 || '%' OR e.department ILIKE '%' || $3 || '%')
		ORDER BY ap.created_at DESC
	`

	rows, err := q.Query(ctx, query, filter.From, filter.To, filter.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to search applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows, true)
}

// ListByEmployeeSince implements application.ApplicationRepository.
func (r *applicationRepository) ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + `
		FROM applications ap
		WHERE ap.employee_id = $1
		  AND ap.created_at >= $2
		ORDER BY ap.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows, false)
}

// ListApprovedByEmployee implements application.ApplicationRepository.
func (r *applicationRepository) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationColumns + `
		FROM applications ap
		WHERE ap.employee_id = $1
		  AND ap.status = $2
		ORDER BY ap.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, application.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows, false)
}

// CountByEmployeeSince implements application.ApplicationRepository.
func (r *applicationRepository) CountByEmployeeSince(ctx context.Context, employeeID string, since time.Time, types []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM applications
		WHERE employee_id = $1
		  AND created_at >= $2
		  AND ($3::text[] IS NULL OR application_type = ANY($3))
	`

	var count int64
	if err := q.QueryRow(ctx, query, employeeID, since, types).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// ListLeaveOverlapping implements application.ApplicationRepository.
func (r *applicationRepository) ListLeaveOverlapping(ctx context.Context, from, to time.Time) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + applicationJoinColumns + `
		FROM applications ap
		LEFT JOIN employees e ON e.employee_id = ap.employee_id
		WHERE ap.application_type LIKE ANY($1::text[])
		  AND ap.start_date <= $3
		  AND ap.end_date >= $2
		ORDER BY ap.start_date ASC
	`

	rows, err := q.Query(ctx, query, leaveTypePatterns, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave schedule: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows, true)
}

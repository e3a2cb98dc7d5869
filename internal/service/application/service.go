package application

import (
	"context"
	"fmt"
	"time"

	"github.com/hrapp/hr-backend-go/internal/domain/application"
	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/domain/notification"
	"github.com/hrapp/hr-backend-go/internal/domain/viewmodel"
	"golang.org/x/text/unicode/norm"
)

// RecentWindow bounds the personal recent-requests table.
const RecentWindow = 30 * 24 * time.Hour

type Options struct {
	Location *time.Location
	Now      func() time.Time
}

type ApplicationServiceImpl struct {
	application.ApplicationRepository
	employeeRepository employee.EmployeeRepository
	notifier           notification.Service
	loc                *time.Location
	now                func() time.Time
}

func NewApplicationService(applicationRepository application.ApplicationRepository, employeeRepository employee.EmployeeRepository, notifier notification.Service, opts Options) application.ApplicationService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ApplicationServiceImpl{
		ApplicationRepository: applicationRepository,
		employeeRepository:    employeeRepository,
		notifier:              notifier,
		loc:                   opts.Location,
		now:                   opts.Now,
	}
}

// Create implements application.ApplicationService.
func (s *ApplicationServiceImpl) Create(ctx context.Context, req application.CreateApplicationRequest) (application.ApplicationResponse, error) {
	if err := req.Validate(s.loc); err != nil {
		return application.ApplicationResponse{}, err
	}

	exists, err := s.employeeRepository.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return application.ApplicationResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return application.ApplicationResponse{}, employee.ErrEmployeeNotFound
	}

	newApplication := application.Application{
		EmployeeID: req.EmployeeID,
		Type:       norm.NFC.String(req.ApplicationType),
		StartDate:  req.Start,
		EndDate:    req.End,
		Status:     application.StatusPending,
		CreatedAt:  s.now(),
	}
	if req.Reason != "" {
		reason := req.Reason
		newApplication.Reason = &reason
	}

	created, err := s.ApplicationRepository.Create(ctx, newApplication)
	if err != nil {
		return application.ApplicationResponse{}, fmt.Errorf("failed to create application: %w", err)
	}
	return application.NewApplicationResponse(created), nil
}

// ListAll implements application.ApplicationService.
func (s *ApplicationServiceImpl) ListAll(ctx context.Context) ([]application.ApplicationResponse, error) {
	apps, err := s.ApplicationRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	result := make([]application.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		result = append(result, application.NewApplicationResponse(app))
	}
	return result, nil
}

// List implements application.ApplicationService.
func (s *ApplicationServiceImpl) List(ctx context.Context, filter application.ListFilter) ([]application.ListRow, error) {
	search, err := filter.ToSearch(s.loc)
	if err != nil {
		return nil, err
	}

	apps, err := s.ApplicationRepository.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to search applications: %w", err)
	}

	rows := make([]application.ListRow, 0, len(apps))
	for _, app := range apps {
		start, end := app.StartDate.In(s.loc), app.EndDate.In(s.loc)
		name, dept, rank := app.Applicant()
		rows = append(rows, application.ListRow{
			ID:        app.ID,
			Date:      viewmodel.CalendarDate(start),
			Name:      name,
			Dept:      dept,
			Rank:      rank,
			Category:  app.Category(),
			Type:      app.Type,
			StartTime: start.Format("15:04"),
			EndTime:   end.Format("15:04"),
			Duration:  viewmodel.FormatHM(app.Span()),
			Status:    app.DisplayStatus(),
		})
	}
	return rows, nil
}

// UpdateStatus implements application.ApplicationService.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, req application.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	app, err := s.ApplicationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if err := s.ApplicationRepository.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		return err
	}

	s.notifier.Publish(app.EmployeeID, notification.EventApplicationStatus, application.StatusEvent{
		ApplicationID:   app.ID,
		ApplicationType: app.Type,
		Status:          req.Status,
	})
	return nil
}

// Recent implements application.ApplicationService.
func (s *ApplicationServiceImpl) Recent(ctx context.Context, employeeID string) ([]viewmodel.Application, error) {
	apps, err := s.ApplicationRepository.ListByEmployeeSince(ctx, employeeID, s.now().Add(-RecentWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent applications: %w", err)
	}

	result := make([]viewmodel.Application, 0, len(apps))
	for _, app := range apps {
		duration := viewmodel.FormatHM(app.Span())
		if app.IsHalfDay() || app.IsDayBased() {
			duration = app.DayDuration(s.loc)
		}
		result = append(result, viewmodel.Application{
			Type:        app.Type,
			StartDate:   viewmodel.DotDate(app.StartDate.In(s.loc)),
			EndDate:     viewmodel.DotDate(app.EndDate.In(s.loc)),
			Duration:    duration,
			RequestDate: viewmodel.DotDate(app.CreatedAt.In(s.loc)),
			Status:      app.Status,
		})
	}
	return result, nil
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrapp/hr-backend-go/internal/domain/application"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/handler/http/response"
)

type ApplicationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Recent(w http.ResponseWriter, r *http.Request)
}

type applicationHandlerImpl struct {
	applicationService application.ApplicationService
}

func NewApplicationHandler(applicationService application.ApplicationService) ApplicationHandler {
	return &applicationHandlerImpl{
		applicationService: applicationService,
	}
}

// Create implements ApplicationHandler.
func (h *applicationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req application.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateApplication decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	employeeID, err := resolveEmployeeID(r, req.EmployeeID, user.PermissionApplicationViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = employeeID

	created, err := h.applicationService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateApplication service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Application submitted", "application_id", created.ApplicationID, "employee_id", created.EmployeeID)
	response.Created(w, "Application submitted", created)
}

// ListAll implements ApplicationHandler.
func (h *applicationHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationService.ListAll(r.Context())
	if err != nil {
		slog.Error("ListAllApplications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, apps)
}

// List implements ApplicationHandler.
func (h *applicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := application.ListFilter{
		Start: query.Get("start"),
		End:   query.Get("end"),
		Query: query.Get("query"),
	}

	rows, err := h.applicationService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListApplications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// UpdateStatus implements ApplicationHandler.
func (h *applicationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateApplicationStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.applicationService.UpdateStatus(r.Context(), req); err != nil {
		slog.Error("UpdateApplicationStatus service error", "error", err, "application_id", req.ID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Application status updated", "application_id", req.ID, "status", req.Status)
	response.SuccessWithMessage(w, "Application status updated", nil)
}

// Recent implements ApplicationHandler.
func (h *applicationHandlerImpl) Recent(w http.ResponseWriter, r *http.Request) {
	employeeID, err := resolveEmployeeID(r, chi.URLParam(r, "employee_id"), user.PermissionApplicationViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	apps, err := h.applicationService.Recent(r.Context(), employeeID)
	if err != nil {
		slog.Error("RecentApplications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, apps)
}

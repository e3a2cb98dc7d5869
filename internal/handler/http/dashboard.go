package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrapp/hr-backend-go/internal/domain/dashboard"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Work(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Summary implements DashboardHandler.
func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := resolveEmployeeID(r, chi.URLParam(r, "employee_id"), user.PermissionAttendanceViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Work implements DashboardHandler.
func (h *dashboardHandlerImpl) Work(w http.ResponseWriter, r *http.Request) {
	employeeID, err := resolveEmployeeID(r, chi.URLParam(r, "employee_id"), user.PermissionAttendanceViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	work, err := h.dashboardService.GetWork(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetWork service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, work)
}

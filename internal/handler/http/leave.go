package http

import (
	"log/slog"
	"net/http"

	"github.com/hrapp/hr-backend-go/internal/domain/leave"
	"github.com/hrapp/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrapp/hr-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	MyStatus(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// MyStatus implements LeaveHandler.
func (h *leaveHandlerImpl) MyStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.leaveService.GetMyStatus(r.Context(), middleware.EmployeeIDFromContext(r.Context()))
	if err != nil {
		slog.Error("GetMyStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// Schedule implements LeaveHandler.
func (h *leaveHandlerImpl) Schedule(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := leave.ScheduleFilter{
		Year:  getIntQueryParam(r, "year", 0),
		Month: getIntQueryParam(r, "month", 0),
		Start: query.Get("start"),
		End:   query.Get("end"),
	}

	rows, err := h.leaveService.GetSchedule(r.Context(), filter)
	if err != nil {
		slog.Error("GetSchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	Roster(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func (h *attendanceHandlerImpl) decodeClock(w http.ResponseWriter, r *http.Request) (attendance.ClockRequest, bool) {
	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Clock decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return req, false
	}

	employeeID, err := resolveEmployeeID(r, req.EmployeeID, user.PermissionAttendanceViewAll)
	if err != nil {
		response.HandleError(w, err)
		return req, false
	}
	req.EmployeeID = employeeID
	return req, true
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeClock(w, r)
	if !ok {
		return
	}

	if err := h.attendanceService.ClockIn(r.Context(), req); err != nil {
		slog.Error("ClockIn service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock-in recorded", nil)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeClock(w, r)
	if !ok {
		return
	}

	if err := h.attendanceService.ClockOut(r.Context(), req); err != nil {
		slog.Error("ClockOut service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock-out recorded", nil)
}

// Weekly implements AttendanceHandler.
func (h *attendanceHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	employeeID, err := resolveEmployeeID(r, chi.URLParam(r, "employee_id"), user.PermissionAttendanceViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.attendanceService.GetWeekly(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetWeekly service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Monthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID, err := resolveEmployeeID(r, chi.URLParam(r, "employee_id"), user.PermissionAttendanceViewAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.MonthlyFilter{
		EmployeeID: employeeID,
		Year:       getIntQueryParam(r, "year", 0),
		Month:      getIntQueryParam(r, "month", 0),
	}

	result, err := h.attendanceService.GetMonthly(r.Context(), filter)
	if err != nil {
		slog.Error("GetMonthly service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Roster implements AttendanceHandler.
func (h *attendanceHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RosterFilter{Date: r.URL.Query().Get("date")}

	rows, err := h.attendanceService.ListRoster(r.Context(), filter)
	if err != nil {
		slog.Error("ListRoster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

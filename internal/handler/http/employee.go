package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.employeeService.GetDetail(r.Context(), chi.URLParam(r, "employee_id"))
	if err != nil {
		slog.Error("GetEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

package response

import (
	"errors"
	"net/http"

	"github.com/hrapp/hr-backend-go/internal/domain/application"
	"github.com/hrapp/hr-backend-go/internal/domain/attendance"
	"github.com/hrapp/hr-backend-go/internal/domain/auth"
	"github.com/hrapp/hr-backend-go/internal/domain/employee"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/pkg/validator"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// errorMappings is checked in order. An empty message echoes err.Error().
var errorMappings = []errorMapping{
	{auth.ErrInvalidCredentials, http.StatusUnauthorized, CodeUnauthorized, ""},
	{auth.ErrInvalidToken, http.StatusUnauthorized, CodeUnauthorized, "Invalid or expired token"},
	{auth.ErrSignupDisabled, http.StatusForbidden, CodeForbidden, "Test signup is disabled"},

	{user.ErrManagerAccessRequired, http.StatusForbidden, CodeForbidden, "Manager access required"},
	{user.ErrInsufficientPermissions, http.StatusForbidden, CodeForbidden, "Insufficient permissions"},

	{employee.ErrEmployeeNotFound, http.StatusNotFound, CodeNotFound, "Employee not found"},
	{employee.ErrEmployeeIDExists, http.StatusConflict, CodeConflict, "Employee ID already exists"},

	{attendance.ErrAlreadyCheckedIn, http.StatusBadRequest, CodeBadRequest, "Already clocked in today"},
	{attendance.ErrAlreadyCheckedOut, http.StatusBadRequest, CodeBadRequest, "Already clocked out today"},
	{attendance.ErrNotCheckedIn, http.StatusNotFound, CodeNotFound, "No clock-in record for today"},
	{attendance.ErrAttendanceNotFound, http.StatusNotFound, CodeNotFound, "Attendance record not found"},

	{application.ErrApplicationNotFound, http.StatusNotFound, CodeNotFound, "Application not found"},
	{application.ErrInvalidStatus, http.StatusBadRequest, CodeBadRequest, "Invalid application status"},
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Fail(w, http.StatusUnprocessableEntity, CodeValidation, "Validation failed", validationErrs.ToMap())
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			message := m.message
			if message == "" {
				message = err.Error()
			}
			Fail(w, m.status, m.code, message, nil)
			return
		}
	}
	InternalServerError(w, "An unexpected error occurred")
}

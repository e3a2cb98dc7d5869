package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error codes carried in ErrorDetail.Code.
const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeValidation     = "VALIDATION_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInternal       = "INTERNAL_SERVER_ERROR"
	codeEncodingFailed = "ENCODING_ERROR"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err, "status", statusCode)
		_ = json.NewEncoder(w).Encode(Response{
			Error: &ErrorDetail{Code: codeEncodingFailed, Message: "Failed to encode response"},
		})
	}
}

// Success writes 200 with data.
func Success(w http.ResponseWriter, data interface{}) {
	SuccessWithMessage(w, "", data)
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// Fail writes a failed envelope with the given status and code.
func Fail(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	writeJSON(w, status, Response{
		Error: &ErrorDetail{Code: code, Message: message, Details: details},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	Fail(w, http.StatusBadRequest, CodeBadRequest, message, nil)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Fail(w, http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Fail(w, http.StatusInternalServerError, CodeInternal, message, nil)
}

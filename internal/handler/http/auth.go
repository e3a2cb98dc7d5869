package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrapp/hr-backend-go/internal/domain/auth"
	"github.com/hrapp/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrapp/hr-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	SignupTest(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee logged in successfully", "employee_id", loginReq.EmployeeID)
	response.SuccessWithMessage(w, "Logged in successfully", tokenResponse)
}

// SignupTest implements AuthHandler.
func (a *AuthHandlerImpl) SignupTest(w http.ResponseWriter, r *http.Request) {
	var signupReq auth.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
		slog.Error("Signup decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := signupReq.Validate(); err != nil {
		slog.Error("Signup validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	signupResponse, err := a.authService.Signup(r.Context(), signupReq)
	if err != nil {
		slog.Error("Signup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Test employee created", "employee_id", signupResponse.EmployeeID)
	response.Created(w, "Employee created successfully", signupResponse)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	current, err := a.authService.CurrentUser(r.Context(), middleware.EmployeeIDFromContext(r.Context()))
	if err != nil {
		slog.Error("Me service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, current)
}

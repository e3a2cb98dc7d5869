package auth

import (
	"context"

	"github.com/hrapp/hr-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Signup(ctx context.Context, req SignupRequest) (SignupResponse, error)
	// CurrentUser resolves the session principal for an authenticated employee id
	CurrentUser(ctx context.Context, employeeID string) (user.User, error)
}

package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrapp/hr-backend-go/internal/domain/auth"
	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/handler/http/response"
)

// AuthRequired accepts only verified access tokens carrying an employee id.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if employeeID, _ := claims["employee_id"].(string); employeeID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// EmployeeIDFromContext returns the employee id of the token holder.
func EmployeeIDFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	employeeID, _ := claims["employee_id"].(string)
	return employeeID
}

// RoleFromContext returns the role of the token holder.
func RoleFromContext(ctx context.Context) user.Role {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return user.Role(role)
}

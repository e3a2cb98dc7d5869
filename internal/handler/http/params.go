package http

import (
	"net/http"
	"strconv"

	"github.com/hrapp/hr-backend-go/internal/domain/user"
	"github.com/hrapp/hr-backend-go/internal/handler/http/middleware"
)

// resolveEmployeeID picks the employee a request acts on. An empty or own id
// resolves to the token holder; another employee's id needs viewAll.
func resolveEmployeeID(r *http.Request, requested string, viewAll user.Permission) (string, error) {
	self := middleware.EmployeeIDFromContext(r.Context())
	if requested == "" || requested == self {
		return self, nil
	}
	if !user.HasPermission(middleware.RoleFromContext(r.Context()), viewAll) {
		return "", user.ErrInsufficientPermissions
	}
	return requested, nil
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

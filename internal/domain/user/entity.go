package user

type Role string

const (
	RoleAdmin    Role = "admin"    // HR administrator - full access
	RoleManager  Role = "manager"  // Can approve applications and view rosters
	RoleEmployee Role = "employee" // Regular employee
)

// User is the signed-in principal as seen by clients.
// A nil Role means the role is unspecified, not that the user has no role.
type User struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Role *string `json:"role,omitempty"`
}

// New builds a User; an empty role leaves Role unset.
func New(id, name, role string) User {
	u := User{ID: id, Name: name}
	if role != "" {
		u.Role = &role
	}
	return u
}

// EffectiveRole resolves an unspecified role to RoleEmployee.
func (u User) EffectiveRole() Role {
	if u.Role == nil || *u.Role == "" {
		return RoleEmployee
	}
	return Role(*u.Role)
}

// CanApprove checks if user can approve applications
func (u User) CanApprove() bool {
	return HasPermission(u.EffectiveRole(), PermissionApplicationApprove)
}

// Equal reports whether both users carry the same id, name and role.
func (u User) Equal(o User) bool {
	if u.ID != o.ID || u.Name != o.Name {
		return false
	}
	switch {
	case u.Role == nil && o.Role == nil:
		return true
	case u.Role == nil || o.Role == nil:
		return false
	}
	return *u.Role == *o.Role
}

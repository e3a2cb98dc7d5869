package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Applications
	PermissionApplicationCreate  Permission = "application.create"
	PermissionApplicationViewOwn Permission = "application.view_own"
	PermissionApplicationViewAll Permission = "application.view_all"
	PermissionApplicationApprove Permission = "application.approve"

	// Leave
	PermissionLeaveViewOwn      Permission = "leave.view_own"
	PermissionLeaveViewSchedule Permission = "leave.view_schedule"

	// Employees
	PermissionEmployeeView Permission = "employee.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionApplicationCreate,
		PermissionApplicationViewOwn,
		PermissionApplicationViewAll,
		PermissionApplicationApprove,
		PermissionLeaveViewOwn,
		PermissionLeaveViewSchedule,
		PermissionEmployeeView,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionApplicationCreate,
		PermissionApplicationViewOwn,
		PermissionApplicationViewAll,
		PermissionApplicationApprove,
		PermissionLeaveViewOwn,
		PermissionLeaveViewSchedule,
		PermissionEmployeeView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionApplicationCreate,
		PermissionApplicationViewOwn,
		PermissionLeaveViewOwn,
		PermissionEmployeeView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// IsValidRole reports whether s names a known role.
func IsValidRole(s string) bool {
	_, ok := RolePermissions[Role(s)]
	return ok
}

package user

type Permission string

const (
	// Clock widget
	PermissionCalendarView   Permission = "calendar.view"
	PermissionCalendarManage Permission = "calendar.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSaaSAdmin: {
		PermissionCalendarView,
		PermissionCalendarManage,
	},
	RoleOwner: {
		PermissionCalendarView,
		PermissionCalendarManage,
	},
	RoleAdmin: {
		PermissionCalendarView,
		PermissionCalendarManage,
	},
	RoleWorker: {
		PermissionCalendarView,
	},
	RolePending: {
		// Pending role has no permissions
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceApprove Permission = "attendance.approve"
	PermissionAttendanceExport  Permission = "attendance.export"

	// Task Management
	PermissionTaskViewOwn    Permission = "task.view_own"
	PermissionTaskUpdateOwn  Permission = "task.update_own"
	PermissionTaskViewAll    Permission = "task.view_all"
	PermissionTaskAssign     Permission = "task.assign"
	PermissionProjectView    Permission = "project.view"
	PermissionProjectManage  Permission = "project.manage"
	PermissionEmployeeManage Permission = "employee.manage"

	// Announcements
	PermissionAnnouncementView    Permission = "announcement.view"
	PermissionAnnouncementPublish Permission = "announcement.publish"
)

var managerPermissions = []Permission{
	PermissionViewOwnProfile,
	PermissionLeaveViewOwn,
	PermissionLeaveCreate,
	PermissionLeaveViewAll,
	PermissionLeaveApprove,
	PermissionAttendanceViewOwn,
	PermissionAttendanceCreate,
	PermissionAttendanceViewAll,
	PermissionAttendanceApprove,
	PermissionAttendanceExport,
	PermissionTaskViewOwn,
	PermissionTaskUpdateOwn,
	PermissionTaskViewAll,
	PermissionTaskAssign,
	PermissionProjectView,
	PermissionProjectManage,
	PermissionEmployeeManage,
	PermissionAnnouncementView,
	PermissionAnnouncementPublish,
}

// RolePermissions maps roles to their permissions.
// ADMIN and HR share the management tier.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: managerPermissions,
	RoleHR:    managerPermissions,
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionTaskViewOwn,
		PermissionTaskUpdateOwn,
		PermissionProjectView,
		PermissionAnnouncementView,
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

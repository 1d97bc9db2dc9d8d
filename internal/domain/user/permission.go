package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceExport  Permission = "attendance.export"

	// Leave permits
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"

	// Field commissions
	PermissionCommissionViewOwn Permission = "commission.view_own"
	PermissionCommissionCreate  Permission = "commission.create"
	PermissionCommissionViewAll Permission = "commission.view_all"

	// Employees
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Schedule
	PermissionScheduleView   Permission = "schedule.view"
	PermissionScheduleManage Permission = "schedule.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSupervisor: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionAttendanceExport,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionCommissionViewOwn,
		PermissionCommissionCreate,
		PermissionCommissionViewAll,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionScheduleView,
		PermissionScheduleManage,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionCommissionViewOwn,
		PermissionCommissionCreate,
		PermissionScheduleView,
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

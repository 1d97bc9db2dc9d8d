package user

type Role string

const (
	RoleSupervisor Role = "supervisor" // Sees and exports everyone's attendance
	RoleEmployee   Role = "employee"   // Punches and reads own records
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleSupervisor || r == RoleEmployee
}

// IsSupervisor checks if role has supervisor access
func (r Role) IsSupervisor() bool {
	return r == RoleSupervisor
}

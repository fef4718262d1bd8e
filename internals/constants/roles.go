package constants

// Admin roles stored on gym_admins.gym_admin_role.
const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

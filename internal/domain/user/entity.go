package user

type Role string

const (
	RoleSaaSAdmin Role = "saas_admin" // Platform operator across tenants
	RoleOwner     Role = "owner"      // Company owner - full access
	RoleAdmin     Role = "admin"      // Company admin portal
	RoleWorker    Role = "worker"     // Worker portal
	RolePending   Role = "pending"    // Still in onboarding
)


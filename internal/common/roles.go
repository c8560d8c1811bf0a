package common

// Platform roles. A user's role is fixed at signup and never changes
// through this codebase.
const (
	RoleRefugee  = "refugee"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// ValidRole reports whether r is one of the known platform roles.
func ValidRole(r string) bool {
	switch r {
	case RoleRefugee, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

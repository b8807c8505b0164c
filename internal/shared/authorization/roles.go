// Package authorization implements the service's two-role model: regular
// users act on their own complaints and feedback, admins triage everything.
package authorization

// UserRole is the role string carried in JWT claims and the request context.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseUserRole maps an untrusted role string to a known role. Unknown
// values fall back to the regular user role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

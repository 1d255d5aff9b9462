package identity

// Role is one of the access levels a user can hold. Roles are assigned in
// the user_roles table and resolved per request, never cached.
type Role string

const (
	// RoleAdmin may create and update directory content.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin may additionally delete directory content.
	RoleSuperAdmin Role = "superadmin"
	// RoleAny is a sentinel: any authenticated caller passes, whatever
	// roles they hold (including none). It is never stored.
	RoleAny Role = "any"
)

// RoleSet is the set of roles resolved for a user. Order is irrelevant and
// duplicates are harmless; only membership is ever checked.
type RoleSet []Role

// Contains reports whether the set holds the given role.
func (s RoleSet) Contains(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// Intersects reports whether the set shares at least one role with required.
// The RoleAny sentinel in required admits any caller.
func (s RoleSet) Intersects(required ...Role) bool {
	for _, req := range required {
		if req == RoleAny {
			return true
		}
		if s.Contains(req) {
			return true
		}
	}
	return false
}

// Strings returns the role names for serialization.
func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}

// UserRole is one role assignment row for a user.
type UserRole struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;index" json:"user_id"`
	Role   string `gorm:"column:role" json:"role"`
}

// TableName returns the table name for UserRole
func (UserRole) TableName() string { return "user_roles" }

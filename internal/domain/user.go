package domain

import "time"

// Role is a closed enumeration ordered by privilege.
type Role string

const (
	RoleSuperadmin Role = "SUPERADMIN"
	RoleStaff      Role = "STAFF"
	RoleGuest      Role = "GUEST"
)

// StaffTier reports whether the role is globally privileged across all boards.
func (r Role) StaffTier() bool {
	return r == RoleSuperadmin || r == RoleStaff
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleSuperadmin || r == RoleStaff || r == RoleGuest
}

type User struct {
	Id        UserId    `json:"user_id"`
	Email     Email     `json:"email"`
	Username  Username  `json:"username"`
	PassHash  string    `json:"-"`
	Role      Role      `json:"user_role"`
	CreatedAt time.Time `json:"date_created"`
}

type Credentials struct {
	Username Username
	Password Password
}

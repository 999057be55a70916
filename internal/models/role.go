package models

// Role is the single role carried by a user account and embedded in tokens.
type Role string

const (
	RoleUser   Role = "USER"
	RoleAdmin  Role = "ADMIN"
	RoleFarmer Role = "FARMER"
)

// roleAuthorities maps each role to the authority string consumed by the
// role-checking middleware. Lookups go through this table rather than
// concatenating strings at request time.
var roleAuthorities = map[Role]string{
	RoleUser:   "ROLE_USER",
	RoleAdmin:  "ROLE_ADMIN",
	RoleFarmer: "ROLE_FARMER",
}

// Authority returns the authority string for the role, or an empty string
// for an unknown role.
func (r Role) Authority() string {
	return roleAuthorities[r]
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleAuthorities[r]
	return ok
}

// Gender of a user profile.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

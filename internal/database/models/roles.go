package models

// Roles is the global capability bitmask carried by a registry token.
type Roles uint32

const (
	RoleOwner Roles = 1 << iota
	RoleAdmin
	RoleMod
	RoleVerifier
	RoleMapper
	RoleBot
)

// Has reports whether all bits of the given role set are present
func (r Roles) Has(want Roles) bool {
	return r&want == want
}

// With returns the role set with the given bits added
func (r Roles) With(add Roles) Roles {
	return r | add
}

// TeamRoles is the team-scoped role bitmask. It is a distinct, smaller set
// than the global Roles and the two must never be mixed.
type TeamRoles uint32

const (
	TeamRoleOwner TeamRoles = 1 << iota
	TeamRoleAdmin
	TeamRoleMod
)

// Has reports whether all bits of the given role set are present
func (r TeamRoles) Has(want TeamRoles) bool {
	return r&want == want
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesHas(t *testing.T) {
	roles := RoleAdmin | RoleVerifier

	assert.True(t, roles.Has(RoleAdmin))
	assert.True(t, roles.Has(RoleVerifier))
	assert.True(t, roles.Has(RoleAdmin|RoleVerifier))

	assert.False(t, roles.Has(RoleOwner))
	assert.False(t, roles.Has(RoleBot))
	assert.False(t, roles.Has(RoleAdmin|RoleBot), "Has requires every bit, not any")
}

func TestRolesWith(t *testing.T) {
	roles := Roles(0).With(RoleMapper)
	assert.True(t, roles.Has(RoleMapper))

	roles = roles.With(RoleVerifier)
	assert.True(t, roles.Has(RoleMapper))
	assert.True(t, roles.Has(RoleVerifier))

	// Adding an already-present bit changes nothing
	assert.Equal(t, roles, roles.With(RoleMapper))
}

func TestRolesDistinctBits(t *testing.T) {
	all := []Roles{RoleOwner, RoleAdmin, RoleMod, RoleVerifier, RoleMapper, RoleBot}
	seen := Roles(0)
	for _, role := range all {
		assert.Zero(t, seen&role, "role bits must not overlap")
		seen |= role
	}
}

func TestTeamRolesHas(t *testing.T) {
	member := TeamRoles(0)
	assert.True(t, member.Has(0), "zero role set is always satisfied")
	assert.False(t, member.Has(TeamRoleOwner))

	owner := TeamRoleOwner
	assert.True(t, owner.Has(TeamRoleOwner))
	assert.False(t, owner.Has(TeamRoleAdmin))
	assert.False(t, owner.Has(TeamRoleOwner|TeamRoleAdmin))
}

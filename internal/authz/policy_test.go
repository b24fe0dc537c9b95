package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicyMatrix(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		name     string
		resource string
		role     string
		action   Action
		want     bool
	}{
		{"admin can delete bookings", ResourceBookings, RoleAdmin, ActionDelete, true},
		{"admin wildcard covers create", ResourceBookings, RoleAdmin, ActionCreate, true},
		{"customer can request bookings", ResourceBookings, RoleCustomer, ActionCreate, true},
		{"customer can read bookings", ResourceBookings, RoleCustomer, ActionRead, true},
		{"customer cannot respond to bookings", ResourceBookings, RoleCustomer, ActionUpdate, false},
		{"talent can respond to bookings", ResourceBookings, RoleTalent, ActionUpdate, true},
		{"talent cannot create bookings", ResourceBookings, RoleTalent, ActionCreate, false},
		{"customer can browse talents", ResourceTalents, RoleCustomer, ActionRead, true},
		{"customer cannot create talents", ResourceTalents, RoleCustomer, ActionCreate, false},
		{"talent can create talent profile", ResourceTalents, RoleTalent, ActionCreate, true},
		{"talent cannot delete talent profile", ResourceTalents, RoleTalent, ActionDelete, false},
		{"only admin manages user types", ResourceUserTypes, RoleCustomer, ActionRead, false},
		{"admin manages user types", ResourceUserTypes, RoleAdmin, ActionUpdate, true},
		{"unknown role denied", ResourceBookings, "ghost", ActionRead, false},
		{"unknown resource falls back to default", "payments", RoleAdmin, ActionRead, true},
		{"unknown resource denies non-admin", "payments", RoleCustomer, ActionRead, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Allows(tc.resource, tc.role, tc.action))
		})
	}
}

func TestPolicyOverride(t *testing.T) {
	// Deployments can hand the middleware their own table.
	p := Policy{
		ResourceBookings: {
			RoleCustomer: {ActionAll},
		},
	}

	assert.True(t, p.Allows(ResourceBookings, RoleCustomer, ActionDelete))
	assert.False(t, p.Allows(ResourceBookings, RoleAdmin, ActionRead))
	assert.False(t, p.Allows(ResourceTalents, RoleCustomer, ActionRead))
}

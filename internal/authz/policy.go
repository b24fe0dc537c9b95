package authz

// Action is a permission verb on a resource.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionRead   Action = "READ"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"

	// ActionAll is a wildcard matching any action.
	ActionAll Action = "ALL"
)

// Resource names used by route declarations. Routes pass these explicitly to
// RequirePermission instead of deriving them from the request path.
const (
	ResourceUsers     = "users"
	ResourceTalents   = "talents"
	ResourceBookings  = "bookings"
	ResourceUserTypes = "user-types"
	ResourceFiles     = "files"
)

// Policy maps resource -> role -> allowed actions. It is plain data so
// deployments and tests can construct their own instead of relying on a
// package-level table.
type Policy map[string]map[string][]Action

// Allows reports whether the role may perform the action on the resource.
// Unknown resources fall back to the "default" entry when present.
func (p Policy) Allows(resource, role string, action Action) bool {
	perms, ok := p[resource]
	if !ok {
		perms, ok = p["default"]
		if !ok {
			return false
		}
	}

	for _, a := range perms[role] {
		if a == ActionAll || a == action {
			return true
		}
	}
	return false
}

// DefaultPolicy returns the built-in permission table.
func DefaultPolicy() Policy {
	return Policy{
		ResourceUsers: {
			RoleAdmin:    {ActionAll},
			RoleCustomer: {ActionRead, ActionUpdate, ActionDelete},
			RoleTalent:   {ActionRead, ActionUpdate, ActionDelete},
		},
		ResourceTalents: {
			RoleAdmin:    {ActionAll},
			RoleCustomer: {ActionRead},
			RoleTalent:   {ActionCreate, ActionRead, ActionUpdate},
		},
		ResourceBookings: {
			RoleAdmin:    {ActionAll},
			RoleCustomer: {ActionCreate, ActionRead},
			RoleTalent:   {ActionRead, ActionUpdate},
		},
		ResourceUserTypes: {
			RoleAdmin: {ActionAll},
		},
		ResourceFiles: {
			RoleAdmin:    {ActionAll},
			RoleCustomer: {ActionRead},
			RoleTalent:   {ActionCreate, ActionRead},
		},
		"default": {
			RoleAdmin: {ActionAll},
		},
	}
}

// Role names as stored in the user_types catalog.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleTalent   = "talent"
)

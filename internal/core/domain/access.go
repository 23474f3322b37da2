package domain

// RequirementKind selects how an AccessRequirement is evaluated.
type RequirementKind int

const (
	// RequireAuthenticated passes for any verified identity.
	RequireAuthenticated RequirementKind = iota
	// RequireRole passes when the identity's role is in the requirement's set.
	RequireRole
	// RequireRoleOrOwner passes when the role check passes or the identity
	// owns the target resource.
	RequireRoleOrOwner
)

// AccessRequirement is the policy descriptor attached to an operation.
type AccessRequirement struct {
	Kind  RequirementKind
	Roles []Role
}

// Authenticated requires only a verified identity.
func Authenticated() AccessRequirement {
	return AccessRequirement{Kind: RequireAuthenticated}
}

// AnyOf requires the identity's role to be one of roles.
func AnyOf(roles ...Role) AccessRequirement {
	return AccessRequirement{Kind: RequireRole, Roles: roles}
}

// AnyOfOrOwner requires one of roles, or ownership of the target resource.
func AnyOfOrOwner(roles ...Role) AccessRequirement {
	return AccessRequirement{Kind: RequireRoleOrOwner, Roles: roles}
}

// Permits evaluates whether identity satisfies req. ownerID is the target
// resource's owner and only consulted for the ownership branch; pass "" when
// no resource is in play. Pure and deterministic: no side effects, same
// inputs always yield the same answer.
func Permits(identity *Identity, req AccessRequirement, ownerID string) bool {
	if identity == nil {
		return false
	}
	switch req.Kind {
	case RequireAuthenticated:
		return true
	case RequireRole:
		return roleIn(identity.Role, req.Roles)
	case RequireRoleOrOwner:
		if roleIn(identity.Role, req.Roles) {
			return true
		}
		return ownerID != "" && identity.UserID == ownerID
	default:
		return false
	}
}

func roleIn(role Role, set []Role) bool {
	for _, r := range set {
		if r == role {
			return true
		}
	}
	return false
}

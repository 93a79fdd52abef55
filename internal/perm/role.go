// Package perm implements the permission and entitlement resolution engine.
// It combines ownership, time-scoped sharing grants, consent-based
// observation links and archival state into a single access decision, and is
// the sole authority consulted by every mutating or reading operation.
package perm

// Role is a sharing role on an entity. Ordering matters:
// owner > editor > commenter > viewer.
type Role string

// Grantable roles plus the synthetic observer role produced by observation
// links. Observer never appears in grant rows.
const (
	RoleOwner     Role = "owner"
	RoleEditor    Role = "editor"
	RoleCommenter Role = "commenter"
	RoleViewer    Role = "viewer"
	RoleObserver  Role = "observer"
)

var roleRank = map[Role]int{
	RoleOwner:     4,
	RoleEditor:    3,
	RoleCommenter: 2,
	RoleViewer:    1,
}

// Rank returns the precedence of a role; unknown roles (and observer) rank 0.
func (r Role) Rank() int { return roleRank[r] }

// Valid reports whether r is a grantable role.
func (r Role) Valid() bool { return roleRank[r] > 0 }

// MaxRole returns the highest-ranked role, or "" when none rank above zero.
func MaxRole(roles ...Role) Role {
	var best Role
	for _, r := range roles {
		if r.Rank() > best.Rank() {
			best = r
		}
	}
	return best
}

// MinRole returns the lower-ranked of two roles.
func MinRole(a, b Role) Role {
	if a.Rank() < b.Rank() {
		return a
	}
	return b
}

// ParseRole converts a stored string to a Role, reporting whether it is a
// known grantable role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

package perm

// EntityDecision is the outcome of the project-scoped entity resolver. Clamped
// records whether the project-role ceiling actually reduced the candidate
// role, for audit and debugging surfaces.
type EntityDecision struct {
	Role    Role `json:"role,omitempty"`
	Clamped bool `json:"clamped"`
}

// ResolveEntityRole blends a project-level role with creator rights and
// entity-level grants for project-scoped entities:
//
//	final = min(max(projectRole, creatorRole, highestGrantRole), projectRole)
//
// Project membership is both the gate (no project role means no access, no
// matter what the entity grants say) and the ceiling (creator rights and
// grants can never exceed it). Candidate roles are computed independently,
// maxed, then clamped.
func ResolveEntityRole(projectRole, creatorRole Role, grantRoles ...Role) EntityDecision {
	if !projectRole.Valid() {
		return EntityDecision{}
	}
	candidate := MaxRole(append([]Role{projectRole, creatorRole}, grantRoles...)...)
	final := MinRole(candidate, projectRole)
	return EntityDecision{Role: final, Clamped: candidate.Rank() > final.Rank()}
}

// CreatorDefaultRole is the role the original creator of a project-scoped
// entity holds unless explicitly revoked.
const CreatorDefaultRole = RoleEditor

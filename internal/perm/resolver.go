package perm

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessSource names the resolution step that produced a decision.
type AccessSource string

// Access sources in precedence order.
const (
	SourceOwnership   AccessSource = "ownership"
	SourceGrant       AccessSource = "grant"
	SourceObservation AccessSource = "observation"
	SourceNone        AccessSource = "none"
)

// Permissions is the single access decision for one (entity, principal,
// optional context) tuple.
type Permissions struct {
	CanView   bool         `json:"can_view"`
	CanEdit   bool         `json:"can_edit"`
	CanManage bool         `json:"can_manage"`
	IsOwner   bool         `json:"is_owner"`
	Role      Role         `json:"role,omitempty"`
	Source    AccessSource `json:"access_source"`
}

// NoAccess is the default-deny decision.
var NoAccess = Permissions{Source: SourceNone}

// SubjectType distinguishes grant subjects.
type SubjectType string

// Grant subject types.
const (
	SubjectUser  SubjectType = "user"
	SubjectGroup SubjectType = "group"
)

// Grant is an active (non-revoked) sharing grant row as returned by the
// entitlement store.
type Grant struct {
	ID          uuid.UUID
	EntityType  string
	EntityID    uuid.UUID
	SubjectType SubjectType
	SubjectID   uuid.UUID
	Role        Role
	GrantedBy   uuid.UUID
	RevokedAt   *time.Time
	CreatedAt   time.Time
}

// Active reports whether the grant has not been revoked.
func (g Grant) Active() bool { return g.RevokedAt == nil }

// ContextType scopes an observation link.
type ContextType string

// Observation context types.
const (
	ContextGuardrailsProject ContextType = "guardrails_project"
	ContextTeam              ContextType = "team"
	ContextHousehold         ContextType = "household"
)

// ObservationContext is the caller-supplied context an observation link must
// match. Without one, observation links are never consulted.
type ObservationContext struct {
	Type ContextType
	ID   uuid.UUID
}

// ObservationLink is an active consent-based read-only link row.
type ObservationLink struct {
	ID          uuid.UUID
	TrackerID   uuid.UUID
	ObserverID  uuid.UUID
	ContextType ContextType
	ContextID   uuid.UUID
	GrantedBy   uuid.UUID
	RevokedAt   *time.Time
	CreatedAt   time.Time
}

// Active reports whether the link has not been revoked.
func (l ObservationLink) Active() bool { return l.RevokedAt == nil }

// EntitlementStore supplies the persisted entitlement rows. Implementations
// must return only non-revoked rows as of call time.
type EntitlementStore interface {
	// GetOwner returns the entity's owner, or ok=false when the entity does
	// not exist or is ownerless (global templates).
	GetOwner(ctx context.Context, entityID uuid.UUID) (owner uuid.UUID, ok bool, err error)
	// GetArchivalState returns the archival timestamp, nil when live.
	GetArchivalState(ctx context.Context, entityID uuid.UUID) (*time.Time, error)
	// ListActiveGrants returns active grants addressed to the principal
	// directly or to any of the given groups.
	ListActiveGrants(ctx context.Context, entityID, principalID uuid.UUID, groupIDs []uuid.UUID) ([]Grant, error)
	// ListActiveObservationLinks returns active links matching the exact
	// (entity, principal, context) tuple.
	ListActiveObservationLinks(ctx context.Context, entityID, principalID uuid.UUID, obs ObservationContext) ([]ObservationLink, error)
}

// GroupDirectory resolves the groups a principal belongs to.
type GroupDirectory interface {
	ResolveGroupsFor(ctx context.Context, principalID uuid.UUID) ([]uuid.UUID, error)
}

// Resolver computes access decisions. It performs read lookups only and never
// mutates anything.
type Resolver struct {
	store EntitlementStore
	dir   GroupDirectory
}

// NewResolver builds a Resolver over the given store and directory.
func NewResolver(store EntitlementStore, dir GroupDirectory) *Resolver {
	return &Resolver{store: store, dir: dir}
}

// Resolve returns the access decision for principalID on entityID. obs may be
// nil; observation links are only consulted when a context is supplied and no
// grant matched. Resolution order, first match wins:
//
//  1. archival gate: archived entities are readable by the owner only
//  2. ownership: full rights
//  3. highest active grant (direct or via groups)
//  4. observation link matching the supplied context
//  5. default deny
//
// An unknown entity resolves to no access rather than an error.
func (r *Resolver) Resolve(ctx context.Context, entityID, principalID uuid.UUID, obs *ObservationContext) (Permissions, error) {
	owner, ok, err := r.store.GetOwner(ctx, entityID)
	if err != nil {
		return NoAccess, err
	}
	isOwner := ok && owner == principalID

	archivedAt, err := r.store.GetArchivalState(ctx, entityID)
	if err != nil {
		return NoAccess, err
	}
	if archivedAt != nil {
		if !isOwner {
			return NoAccess, nil
		}
		return Permissions{
			CanView:   true,
			CanManage: true,
			IsOwner:   true,
			Role:      RoleOwner,
			Source:    SourceOwnership,
		}, nil
	}

	if isOwner {
		return Permissions{
			CanView:   true,
			CanEdit:   true,
			CanManage: true,
			IsOwner:   true,
			Role:      RoleOwner,
			Source:    SourceOwnership,
		}, nil
	}

	groupIDs, err := r.dir.ResolveGroupsFor(ctx, principalID)
	if err != nil {
		return NoAccess, err
	}
	grants, err := r.store.ListActiveGrants(ctx, entityID, principalID, groupIDs)
	if err != nil {
		return NoAccess, err
	}
	var best Role
	for _, g := range grants {
		if !g.Active() {
			continue
		}
		if g.Role.Rank() > best.Rank() {
			best = g.Role
		}
	}
	if best.Valid() {
		return Permissions{
			CanView: true,
			// commenter and viewer cannot edit tracker data
			CanEdit: best == RoleEditor || best == RoleOwner,
			Role:    best,
			Source:  SourceGrant,
		}, nil
	}

	if obs != nil {
		links, err := r.store.ListActiveObservationLinks(ctx, entityID, principalID, *obs)
		if err != nil {
			return NoAccess, err
		}
		for _, l := range links {
			if l.Active() {
				return Permissions{
					CanView: true,
					Role:    RoleObserver,
					Source:  SourceObservation,
				}, nil
			}
		}
	}

	return NoAccess, nil
}

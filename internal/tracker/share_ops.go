package tracker

import (
	"context"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/perm"
)

// CreateGrantInput shares an entity with a user or group at a given role.
type CreateGrantInput struct {
	EntityType  string // tracker | template
	EntityID    uuid.UUID
	SubjectType perm.SubjectType
	SubjectID   uuid.UUID
	Role        perm.Role
}

// CreateGrant creates a sharing grant. Only a principal with manage rights on
// the entity (the owner) may share it; grants themselves never confer manage,
// so shared-with users cannot re-share.
func (s *Service) CreateGrant(ctx context.Context, p Principal, in CreateGrantInput) (*perm.Grant, error) {
	if !in.Role.Valid() {
		return nil, apperr.Validation("unknown role", apperr.FieldError{Field: "role", Value: string(in.Role), Message: "must be one of owner, editor, commenter, viewer"})
	}
	if in.SubjectType != perm.SubjectUser && in.SubjectType != perm.SubjectGroup {
		return nil, apperr.Validation("unknown subject type", apperr.FieldError{Field: "subject_type", Value: string(in.SubjectType), Message: "must be user or group"})
	}
	if err := s.requireManage(ctx, p, in.EntityID); err != nil {
		return nil, err
	}
	if in.SubjectType == perm.SubjectUser && in.SubjectID == p.ID {
		return nil, apperr.Validation("cannot share an entity with yourself")
	}
	g := &perm.Grant{
		ID:          uuid.New(),
		EntityType:  in.EntityType,
		EntityID:    in.EntityID,
		SubjectType: in.SubjectType,
		SubjectID:   in.SubjectID,
		Role:        in.Role,
		GrantedBy:   p.ID,
		CreatedAt:   s.now(),
	}
	if err := s.grants.Create(ctx, g); err != nil {
		return nil, apperr.Wrap("create grant", err)
	}
	return g, nil
}

// RevokeGrant soft-revokes a grant; the row remains for audit.
func (s *Service) RevokeGrant(ctx context.Context, p Principal, grantID uuid.UUID) error {
	g, err := s.grants.Get(ctx, grantID)
	if err != nil {
		return apperr.Wrap("load grant", err)
	}
	if g == nil {
		return apperr.NotFound("grant")
	}
	if err := s.requireManage(ctx, p, g.EntityID); err != nil {
		return err
	}
	if g.RevokedAt != nil {
		return nil
	}
	if err := s.grants.Revoke(ctx, grantID, s.now()); err != nil {
		return apperr.Wrap("revoke grant", err)
	}
	return nil
}

// ListGrants returns all grants (including revoked ones) on an entity the
// principal manages.
func (s *Service) ListGrants(ctx context.Context, p Principal, entityID uuid.UUID) ([]perm.Grant, error) {
	if err := s.requireManage(ctx, p, entityID); err != nil {
		return nil, err
	}
	items, err := s.grants.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, apperr.Wrap("list grants", err)
	}
	return items, nil
}

// CreateObservationLinkInput consents to context-scoped read-only observation
// of a tracker.
type CreateObservationLinkInput struct {
	TrackerID  uuid.UUID
	ObserverID uuid.UUID
	Context    perm.ObservationContext
}

// CreateObservationLink creates (or restores) an observation link.
// Self-observation is rejected here, at creation time, not silently dropped
// during resolution. Re-granting a revoked (tracker, observer, context) tuple
// restores the existing row.
func (s *Service) CreateObservationLink(ctx context.Context, p Principal, in CreateObservationLinkInput) (*perm.ObservationLink, error) {
	t, err := s.trackers.Get(ctx, in.TrackerID)
	if err != nil {
		return nil, apperr.Wrap("load tracker", err)
	}
	if t == nil || t.OwnerID != p.ID {
		return nil, apperr.NotFound("tracker")
	}
	if in.ObserverID == t.OwnerID {
		return nil, apperr.Validation("the owner cannot observe their own tracker")
	}

	existing, err := s.observations.FindTuple(ctx, in.TrackerID, in.ObserverID, in.Context)
	if err != nil {
		return nil, apperr.Wrap("find observation link", err)
	}
	if existing != nil {
		if existing.RevokedAt == nil {
			return existing, nil
		}
		if err := s.observations.Restore(ctx, existing.ID); err != nil {
			return nil, apperr.Wrap("restore observation link", err)
		}
		existing.RevokedAt = nil
		return existing, nil
	}

	l := &perm.ObservationLink{
		ID:          uuid.New(),
		TrackerID:   in.TrackerID,
		ObserverID:  in.ObserverID,
		ContextType: in.Context.Type,
		ContextID:   in.Context.ID,
		GrantedBy:   p.ID,
		CreatedAt:   s.now(),
	}
	if err := s.observations.Create(ctx, l); err != nil {
		return nil, apperr.Wrap("create observation link", err)
	}
	return l, nil
}

// RevokeObservationLink soft-revokes a link; the row is kept so a later
// re-grant restores it.
func (s *Service) RevokeObservationLink(ctx context.Context, p Principal, linkID uuid.UUID) error {
	l, err := s.observations.Get(ctx, linkID)
	if err != nil {
		return apperr.Wrap("load observation link", err)
	}
	if l == nil {
		return apperr.NotFound("observation link")
	}
	t, err := s.trackers.Get(ctx, l.TrackerID)
	if err != nil {
		return apperr.Wrap("load tracker", err)
	}
	if t == nil || t.OwnerID != p.ID {
		return apperr.NotFound("observation link")
	}
	if l.RevokedAt != nil {
		return nil
	}
	if err := s.observations.Revoke(ctx, linkID, s.now()); err != nil {
		return apperr.Wrap("revoke observation link", err)
	}
	return nil
}

// ListObservationLinks returns all links on a tracker the principal owns.
func (s *Service) ListObservationLinks(ctx context.Context, p Principal, trackerID uuid.UUID) ([]perm.ObservationLink, error) {
	t, err := s.trackers.Get(ctx, trackerID)
	if err != nil {
		return nil, apperr.Wrap("load tracker", err)
	}
	if t == nil || t.OwnerID != p.ID {
		return nil, apperr.NotFound("tracker")
	}
	items, err := s.observations.ListByTracker(ctx, trackerID)
	if err != nil {
		return nil, apperr.Wrap("list observation links", err)
	}
	return items, nil
}

// requireManage resolves permissions fresh (never cached) and demands manage
// capability.
func (s *Service) requireManage(ctx context.Context, p Principal, entityID uuid.UUID) error {
	pm, err := s.resolver.Resolve(ctx, entityID, p.ID, nil)
	if err != nil {
		return apperr.Wrap("resolve permissions", err)
	}
	if !pm.CanView {
		return apperr.NotFound("entity")
	}
	if !pm.CanManage {
		return apperr.Permission("only the owner may manage sharing")
	}
	return nil
}

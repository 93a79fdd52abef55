package entstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	entgrant "tracker-studio-api/ent/grant"
	entlink "tracker-studio-api/ent/observationlink"
	enttemplate "tracker-studio-api/ent/template"
	enttracker "tracker-studio-api/ent/tracker"
	"tracker-studio-api/internal/perm"
)

// EntitlementStore implements perm.EntitlementStore. Entity ids are resolved
// across trackers first, then templates; the two id spaces never collide
// because both are random UUIDs.
type EntitlementStore struct {
	client *ent.Client
}

func (s *EntitlementStore) GetOwner(ctx context.Context, entityID uuid.UUID) (uuid.UUID, bool, error) {
	owner, err := s.client.Tracker.Query().
		Where(enttracker.ID(entityID)).
		QueryOwner().
		OnlyID(ctx)
	if err == nil {
		return owner, true, nil
	}
	if !ent.IsNotFound(err) {
		return uuid.Nil, false, err
	}
	owner, err = s.client.Template.Query().
		Where(enttemplate.ID(entityID)).
		QueryOwner().
		OnlyID(ctx)
	if err == nil {
		return owner, true, nil
	}
	if ent.IsNotFound(err) {
		// unknown entity or ownerless global template
		return uuid.Nil, false, nil
	}
	return uuid.Nil, false, err
}

func (s *EntitlementStore) GetArchivalState(ctx context.Context, entityID uuid.UUID) (*time.Time, error) {
	row, err := s.client.Tracker.Query().Where(enttracker.ID(entityID)).Only(ctx)
	if err == nil {
		return row.ArchivedAt, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	tpl, err := s.client.Template.Query().Where(enttemplate.ID(entityID)).Only(ctx)
	if err == nil {
		return tpl.ArchivedAt, nil
	}
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return nil, err
}

func (s *EntitlementStore) ListActiveGrants(ctx context.Context, entityID, principalID uuid.UUID, groupIDs []uuid.UUID) ([]perm.Grant, error) {
	subject := entgrant.And(
		entgrant.SubjectTypeEQ(entgrant.SubjectTypeUser),
		entgrant.SubjectID(principalID),
	)
	if len(groupIDs) > 0 {
		subject = entgrant.Or(subject, entgrant.And(
			entgrant.SubjectTypeEQ(entgrant.SubjectTypeGroup),
			entgrant.SubjectIDIn(groupIDs...),
		))
	}
	rows, err := s.client.Grant.Query().
		Where(
			entgrant.EntityID(entityID),
			entgrant.RevokedAtIsNil(),
			subject,
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]perm.Grant, 0, len(rows))
	for _, row := range rows {
		out = append(out, grantFromRow(row))
	}
	return out, nil
}

func (s *EntitlementStore) ListActiveObservationLinks(ctx context.Context, entityID, principalID uuid.UUID, obs perm.ObservationContext) ([]perm.ObservationLink, error) {
	rows, err := s.client.ObservationLink.Query().
		Where(
			entlink.TrackerID(entityID),
			entlink.ObserverUserID(principalID),
			entlink.ContextTypeEQ(entlink.ContextType(obs.Type)),
			entlink.ContextID(obs.ID),
			entlink.RevokedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]perm.ObservationLink, 0, len(rows))
	for _, row := range rows {
		out = append(out, linkFromRow(row))
	}
	return out, nil
}

package entstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	entlink "tracker-studio-api/ent/observationlink"
	"tracker-studio-api/internal/perm"
)

// ObservationStore implements tracker.ObservationStore.
type ObservationStore struct {
	client *ent.Client
}

func (s *ObservationStore) Create(ctx context.Context, l *perm.ObservationLink) error {
	_, err := s.client.ObservationLink.Create().
		SetID(l.ID).
		SetTrackerID(l.TrackerID).
		SetObserverUserID(l.ObserverID).
		SetContextType(entlink.ContextType(l.ContextType)).
		SetContextID(l.ContextID).
		SetGrantedBy(l.GrantedBy).
		SetCreatedAt(l.CreatedAt).
		Save(ctx)
	return mapErr(err)
}

func (s *ObservationStore) Get(ctx context.Context, id uuid.UUID) (*perm.ObservationLink, error) {
	row, err := s.client.ObservationLink.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	l := linkFromRow(row)
	return &l, nil
}

func (s *ObservationStore) FindTuple(ctx context.Context, trackerID, observerID uuid.UUID, obs perm.ObservationContext) (*perm.ObservationLink, error) {
	row, err := s.client.ObservationLink.Query().
		Where(
			entlink.TrackerID(trackerID),
			entlink.ObserverUserID(observerID),
			entlink.ContextTypeEQ(entlink.ContextType(obs.Type)),
			entlink.ContextID(obs.ID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	l := linkFromRow(row)
	return &l, nil
}

func (s *ObservationStore) Restore(ctx context.Context, id uuid.UUID) error {
	_, err := s.client.ObservationLink.UpdateOneID(id).ClearRevokedAt().Save(ctx)
	return mapErr(err)
}

func (s *ObservationStore) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.client.ObservationLink.UpdateOneID(id).SetRevokedAt(at).Save(ctx)
	return mapErr(err)
}

func (s *ObservationStore) ListByTracker(ctx context.Context, trackerID uuid.UUID) ([]perm.ObservationLink, error) {
	rows, err := s.client.ObservationLink.Query().
		Where(entlink.TrackerID(trackerID)).
		Order(ent.Asc(entlink.FieldCreatedAt)).
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

func linkFromRow(row *ent.ObservationLink) perm.ObservationLink {
	return perm.ObservationLink{
		ID:          row.ID,
		TrackerID:   row.TrackerID,
		ObserverID:  row.ObserverUserID,
		ContextType: perm.ContextType(row.ContextType),
		ContextID:   row.ContextID,
		GrantedBy:   row.GrantedBy,
		RevokedAt:   row.RevokedAt,
		CreatedAt:   row.CreatedAt,
	}
}

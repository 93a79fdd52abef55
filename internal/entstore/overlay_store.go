package entstore

import (
	"context"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	entevent "tracker-studio-api/ent/contextevent"
	entinterp "tracker-studio-api/ent/interpretation"
	enttracker "tracker-studio-api/ent/tracker"
	"tracker-studio-api/internal/tracker"
)

// OverlayStore implements tracker.OverlayStore for context events and
// interpretations.
type OverlayStore struct {
	client *ent.Client
}

func (s *OverlayStore) CreateContextEvent(ctx context.Context, e *tracker.ContextEvent) error {
	b := s.client.ContextEvent.Create().
		SetID(e.ID).
		SetOwnerID(e.OwnerID).
		SetLabel(e.Label).
		SetKind(e.Kind).
		SetStartDate(e.StartDate).
		SetEndDate(e.EndDate).
		SetCreatedAt(e.CreatedAt)
	if e.TrackerID != nil {
		b.SetTrackerID(*e.TrackerID)
	}
	_, err := b.Save(ctx)
	return mapErr(err)
}

func (s *OverlayStore) GetContextEvent(ctx context.Context, id uuid.UUID) (*tracker.ContextEvent, error) {
	row, err := s.client.ContextEvent.Query().
		Where(entevent.ID(id)).
		WithTracker().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return eventFromRow(row), nil
}

func (s *OverlayStore) ListContextEvents(ctx context.Context, owner uuid.UUID) ([]*tracker.ContextEvent, error) {
	rows, err := s.client.ContextEvent.Query().
		Where(entevent.OwnerID(owner)).
		WithTracker().
		Order(ent.Asc(entevent.FieldStartDate)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*tracker.ContextEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func (s *OverlayStore) DeleteContextEvent(ctx context.Context, id uuid.UUID) error {
	err := s.client.ContextEvent.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	return mapErr(err)
}

func (s *OverlayStore) CreateInterpretation(ctx context.Context, i *tracker.Interpretation) error {
	_, err := s.client.Interpretation.Create().
		SetID(i.ID).
		SetOwnerID(i.OwnerID).
		SetTrackerID(i.TrackerID).
		SetStartDate(i.StartDate).
		SetEndDate(i.EndDate).
		SetBody(i.Body).
		SetCreatedAt(i.CreatedAt).
		SetUpdatedAt(i.UpdatedAt).
		Save(ctx)
	return mapErr(err)
}

func (s *OverlayStore) GetInterpretation(ctx context.Context, id uuid.UUID) (*tracker.Interpretation, error) {
	row, err := s.client.Interpretation.Query().
		Where(entinterp.ID(id)).
		WithTracker().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return interpFromRow(row), nil
}

func (s *OverlayStore) UpdateInterpretation(ctx context.Context, i *tracker.Interpretation) error {
	_, err := s.client.Interpretation.UpdateOneID(i.ID).
		SetBody(i.Body).
		SetUpdatedAt(i.UpdatedAt).
		Save(ctx)
	return mapErr(err)
}

func (s *OverlayStore) ListInterpretations(ctx context.Context, owner uuid.UUID, trackerID *uuid.UUID) ([]*tracker.Interpretation, error) {
	q := s.client.Interpretation.Query().
		Where(entinterp.OwnerID(owner)).
		WithTracker().
		Order(ent.Asc(entinterp.FieldStartDate))
	if trackerID != nil {
		q = q.Where(entinterp.HasTrackerWith(enttracker.ID(*trackerID)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*tracker.Interpretation, 0, len(rows))
	for _, row := range rows {
		out = append(out, interpFromRow(row))
	}
	return out, nil
}

func (s *OverlayStore) DeleteInterpretation(ctx context.Context, id uuid.UUID) error {
	err := s.client.Interpretation.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	return mapErr(err)
}

func eventFromRow(row *ent.ContextEvent) *tracker.ContextEvent {
	e := &tracker.ContextEvent{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Label:     row.Label,
		Kind:      row.Kind,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		CreatedAt: row.CreatedAt,
	}
	if row.Edges.Tracker != nil {
		id := row.Edges.Tracker.ID
		e.TrackerID = &id
	}
	return e
}

func interpFromRow(row *ent.Interpretation) *tracker.Interpretation {
	i := &tracker.Interpretation{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Edges.Tracker != nil {
		i.TrackerID = row.Edges.Tracker.ID
	}
	return i
}

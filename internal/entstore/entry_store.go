package entstore

import (
	"context"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	enttracker "tracker-studio-api/ent/tracker"
	ententry "tracker-studio-api/ent/trackerentry"
	"tracker-studio-api/internal/tracker"
)

// EntryStore implements tracker.EntryStore. The unique index on
// (tracker, owner_id, entry_date, slot) is the duplicate-entry guard; its
// violation surfaces as a ConflictError via mapErr.
type EntryStore struct {
	client *ent.Client
}

func (s *EntryStore) Create(ctx context.Context, e *tracker.Entry) error {
	_, err := s.client.TrackerEntry.Create().
		SetID(e.ID).
		SetTrackerID(e.TrackerID).
		SetOwnerID(e.OwnerID).
		SetEntryDate(e.Date).
		SetGranularity(ententry.Granularity(e.Granularity)).
		SetSlot(e.Slot).
		SetFieldValues(e.Values).
		SetNotes(e.Notes).
		SetCreatedAt(e.CreatedAt).
		SetUpdatedAt(e.UpdatedAt).
		Save(ctx)
	return mapErr(err)
}

func (s *EntryStore) Get(ctx context.Context, id uuid.UUID) (*tracker.Entry, error) {
	row, err := s.client.TrackerEntry.Query().
		Where(ententry.ID(id)).
		WithTracker().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entryFromRow(row), nil
}

func (s *EntryStore) GetByDate(ctx context.Context, trackerID, owner uuid.UUID, date string) (*tracker.Entry, error) {
	row, err := s.client.TrackerEntry.Query().
		Where(
			ententry.HasTrackerWith(enttracker.ID(trackerID)),
			ententry.OwnerID(owner),
			ententry.EntryDate(date),
		).
		WithTracker().
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entryFromRow(row), nil
}

func (s *EntryStore) Update(ctx context.Context, e *tracker.Entry) error {
	_, err := s.client.TrackerEntry.UpdateOneID(e.ID).
		SetFieldValues(e.Values).
		SetNotes(e.Notes).
		SetUpdatedAt(e.UpdatedAt).
		Save(ctx)
	return mapErr(err)
}

func (s *EntryStore) List(ctx context.Context, trackerID uuid.UUID, from, to string, limit, offset int) ([]*tracker.Entry, error) {
	q := s.client.TrackerEntry.Query().
		Where(ententry.HasTrackerWith(enttracker.ID(trackerID))).
		WithTracker().
		Order(ent.Asc(ententry.FieldEntryDate), ent.Asc(ententry.FieldSlot))
	if from != "" {
		q = q.Where(ententry.EntryDateGTE(from))
	}
	if to != "" {
		q = q.Where(ententry.EntryDateLTE(to))
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*tracker.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entryFromRow(row))
	}
	return out, nil
}

func entryFromRow(row *ent.TrackerEntry) *tracker.Entry {
	e := &tracker.Entry{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Date:        row.EntryDate,
		Granularity: tracker.Granularity(row.Granularity),
		Slot:        row.Slot,
		Values:      row.FieldValues,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Edges.Tracker != nil {
		e.TrackerID = row.Edges.Tracker.ID
	}
	return e
}

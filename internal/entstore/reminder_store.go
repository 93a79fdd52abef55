package entstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	entreminder "tracker-studio-api/ent/reminder"
	"tracker-studio-api/internal/reminder"
)

// ReminderStore implements reminder.Store.
type ReminderStore struct {
	client *ent.Client
}

func (s *ReminderStore) Create(ctx context.Context, r *reminder.Reminder) error {
	_, err := s.client.Reminder.Create().
		SetID(r.ID).
		SetOwnerID(r.OwnerID).
		SetTrackerID(r.TrackerID).
		SetKind(entreminder.Kind(r.Kind)).
		SetTimeOfDay(r.TimeOfDay).
		SetDaysOfWeek(r.DaysOfWeek).
		SetEnabled(r.Enabled).
		SetCreatedAt(r.CreatedAt).
		SetUpdatedAt(r.UpdatedAt).
		Save(ctx)
	return mapErr(err)
}

func (s *ReminderStore) Get(ctx context.Context, id uuid.UUID) (*reminder.Reminder, error) {
	row, err := s.client.Reminder.Query().
		Where(entreminder.ID(id)).
		WithTracker().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reminderFromRow(row), nil
}

func (s *ReminderStore) Update(ctx context.Context, r *reminder.Reminder) error {
	_, err := s.client.Reminder.UpdateOneID(r.ID).
		SetTimeOfDay(r.TimeOfDay).
		SetDaysOfWeek(r.DaysOfWeek).
		SetEnabled(r.Enabled).
		SetUpdatedAt(r.UpdatedAt).
		Save(ctx)
	return mapErr(err)
}

func (s *ReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.client.Reminder.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	return mapErr(err)
}

func (s *ReminderStore) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*reminder.Reminder, error) {
	rows, err := s.client.Reminder.Query().
		Where(entreminder.OwnerID(owner)).
		WithTracker().
		Order(ent.Asc(entreminder.FieldTimeOfDay)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return remindersFromRows(rows), nil
}

func (s *ReminderStore) ListEnabled(ctx context.Context) ([]*reminder.Reminder, error) {
	rows, err := s.client.Reminder.Query().
		Where(entreminder.Enabled(true)).
		WithTracker().
		All(ctx)
	if err != nil {
		return nil, err
	}
	return remindersFromRows(rows), nil
}

func (s *ReminderStore) MarkFired(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := s.client.Reminder.UpdateOneID(id).SetLastFiredAt(at).Save(ctx)
	return mapErr(err)
}

func remindersFromRows(rows []*ent.Reminder) []*reminder.Reminder {
	out := make([]*reminder.Reminder, 0, len(rows))
	for _, row := range rows {
		out = append(out, reminderFromRow(row))
	}
	return out
}

func reminderFromRow(row *ent.Reminder) *reminder.Reminder {
	r := &reminder.Reminder{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Kind:        reminder.Kind(row.Kind),
		TimeOfDay:   row.TimeOfDay,
		DaysOfWeek:  row.DaysOfWeek,
		Enabled:     row.Enabled,
		LastFiredAt: row.LastFiredAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Edges.Tracker != nil {
		r.TrackerID = row.Edges.Tracker.ID
	}
	return r
}

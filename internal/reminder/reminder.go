// Package reminder evaluates and fires owner-scheduled prompts: entry_prompt
// nudges when today's entry is missing, reflection nudges when today's entry
// exists but carries no notes. Reminders only ever target the tracker owner;
// grantees and observers are never prompted.
package reminder

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/tracker"
)

// Kind selects the reminder trigger rule.
type Kind string

// Reminder kinds.
const (
	KindEntryPrompt Kind = "entry_prompt"
	KindReflection  Kind = "reflection"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k == KindEntryPrompt || k == KindReflection }

// Reminder is one owner-configured schedule for one tracker.
type Reminder struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	TrackerID uuid.UUID  `json:"tracker_id"`
	Kind      Kind       `json:"kind"`
	// TimeOfDay is minutes since midnight in the owner's local time.
	TimeOfDay int `json:"time_of_day"`
	// DaysOfWeek holds ISO weekdays (1=Monday..7=Sunday); empty means daily.
	DaysOfWeek  []int      `json:"days_of_week,omitempty"`
	Enabled     bool       `json:"enabled"`
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Store persists reminders. ListEnabled returns every enabled reminder; the
// sweep decides which are due.
type Store interface {
	Create(ctx context.Context, r *Reminder) error
	Get(ctx context.Context, id uuid.UUID) (*Reminder, error)
	Update(ctx context.Context, r *Reminder) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*Reminder, error)
	ListEnabled(ctx context.Context) ([]*Reminder, error)
	MarkFired(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Service manages reminder CRUD. All operations are owner-scoped: a reminder
// can only be attached to a tracker the principal owns.
type Service struct {
	store    Store
	trackers tracker.TrackerStore
	now      func() time.Time
}

// NewService builds the reminder service.
func NewService(store Store, trackers tracker.TrackerStore) *Service {
	return &Service{store: store, trackers: trackers, now: time.Now}
}

// CreateInput carries a new reminder schedule.
type CreateInput struct {
	TrackerID  uuid.UUID
	Kind       Kind
	TimeOfDay  int
	DaysOfWeek []int
}

// Create attaches a reminder to a tracker the principal owns.
func (s *Service) Create(ctx context.Context, p tracker.Principal, in CreateInput) (*Reminder, error) {
	if !in.Kind.Valid() {
		return nil, apperr.Validation("unknown reminder kind", apperr.FieldError{Field: "kind", Value: string(in.Kind), Message: "must be entry_prompt or reflection"})
	}
	if in.TimeOfDay < 0 || in.TimeOfDay >= 24*60 {
		return nil, apperr.Validation("time_of_day out of range", apperr.FieldError{Field: "time_of_day", Value: in.TimeOfDay, Message: "minutes since midnight, 0..1439"})
	}
	for _, d := range in.DaysOfWeek {
		if d < 1 || d > 7 {
			return nil, apperr.Validation("invalid weekday", apperr.FieldError{Field: "days_of_week", Value: d, Message: "ISO weekday, 1=Monday..7=Sunday"})
		}
	}
	t, err := s.trackers.Get(ctx, in.TrackerID)
	if err != nil {
		return nil, apperr.Wrap("load tracker", err)
	}
	if t == nil || t.OwnerID != p.ID {
		return nil, apperr.NotFound("tracker")
	}
	if t.Archived() {
		return nil, apperr.Validation("cannot attach a reminder to an archived tracker")
	}
	now := s.now()
	r := &Reminder{
		ID:         uuid.New(),
		OwnerID:    p.ID,
		TrackerID:  in.TrackerID,
		Kind:       in.Kind,
		TimeOfDay:  in.TimeOfDay,
		DaysOfWeek: in.DaysOfWeek,
		Enabled:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.Create(ctx, r); err != nil {
		return nil, apperr.Wrap("create reminder", err)
	}
	return r, nil
}

// UpdateInput carries optional reminder mutations.
type UpdateInput struct {
	TimeOfDay  *int
	DaysOfWeek []int
	Enabled    *bool
}

// Update mutates a reminder the principal owns.
func (s *Service) Update(ctx context.Context, p tracker.Principal, id uuid.UUID, in UpdateInput) (*Reminder, error) {
	r, err := s.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if in.TimeOfDay != nil {
		if *in.TimeOfDay < 0 || *in.TimeOfDay >= 24*60 {
			return nil, apperr.Validation("time_of_day out of range", apperr.FieldError{Field: "time_of_day", Value: *in.TimeOfDay, Message: "minutes since midnight, 0..1439"})
		}
		r.TimeOfDay = *in.TimeOfDay
	}
	if in.DaysOfWeek != nil {
		for _, d := range in.DaysOfWeek {
			if d < 1 || d > 7 {
				return nil, apperr.Validation("invalid weekday", apperr.FieldError{Field: "days_of_week", Value: d, Message: "ISO weekday, 1=Monday..7=Sunday"})
			}
		}
		r.DaysOfWeek = in.DaysOfWeek
	}
	if in.Enabled != nil {
		r.Enabled = *in.Enabled
	}
	r.UpdatedAt = s.now()
	if err := s.store.Update(ctx, r); err != nil {
		return nil, apperr.Wrap("update reminder", err)
	}
	return r, nil
}

// Delete removes a reminder the principal owns.
func (s *Service) Delete(ctx context.Context, p tracker.Principal, id uuid.UUID) error {
	if _, err := s.owned(ctx, p, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return apperr.Wrap("delete reminder", err)
	}
	return nil
}

// List returns the principal's reminders.
func (s *Service) List(ctx context.Context, p tracker.Principal) ([]*Reminder, error) {
	items, err := s.store.ListByOwner(ctx, p.ID)
	if err != nil {
		return nil, apperr.Wrap("list reminders", err)
	}
	return items, nil
}

func (s *Service) owned(ctx context.Context, p tracker.Principal, id uuid.UUID) (*Reminder, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrap("load reminder", err)
	}
	if r == nil || r.OwnerID != p.ID {
		return nil, apperr.NotFound("reminder")
	}
	return r, nil
}

// DateOf formats t as the entry-date string reminders compare against.
func DateOf(t time.Time) string {
	return strings.TrimSpace(t.Format("2006-01-02"))
}

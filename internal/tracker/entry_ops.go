package tracker

import (
	"context"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/perm"
)

// slotAttempts bounds the retries when concurrent creates race to the same
// auto-assigned slot.
const slotAttempts = 3

// CreateEntryInput carries a new entry for a tracker.
type CreateEntryInput struct {
	Date   string
	Values map[string]any
	Notes  string
	// Slot disambiguates multiple same-date entries for non-daily
	// granularities. Zero means auto-assign the next free slot; ignored
	// (forced to 0) for daily trackers.
	Slot int
}

// CreateEntry records a new entry. Pipeline: resolve permissions, validate
// against the schema snapshot, persist. Daily granularity permits one entry
// per (tracker, owner, date); the persistence layer's unique constraint is
// the real guard, surfaced as a ConflictError directing callers to update.
// Session, event and range granularities permit many entries per date: slots
// are auto-assigned unless the caller pins one.
func (s *Service) CreateEntry(ctx context.Context, p Principal, trackerID uuid.UUID, in CreateEntryInput) (*Entry, error) {
	t, pm, err := s.loadTracker(ctx, p, trackerID, nil)
	if err != nil {
		return nil, err
	}
	if t == nil || !pm.CanView {
		return nil, apperr.NotFound("tracker")
	}
	if !pm.CanEdit {
		return nil, apperr.Permission("you cannot add entries to this tracker")
	}

	if !ValidDate(in.Date) {
		return nil, apperr.Validation("invalid entry date", apperr.FieldError{Field: "entry_date", Value: in.Date, Message: "expected YYYY-MM-DD"})
	}
	if err := ValidateEntryValues(t.SchemaSnapshot, in.Values); err != nil {
		return nil, err
	}

	slot := in.Slot
	if t.Granularity == GranularityDaily {
		slot = 0
	}
	autoSlot := t.Granularity != GranularityDaily && in.Slot == 0
	now := s.now()
	for attempt := 0; ; attempt++ {
		if autoSlot {
			next, err := s.nextSlot(ctx, t.ID, p.ID, in.Date)
			if err != nil {
				return nil, err
			}
			slot = next
		}
		e := &Entry{
			ID:          uuid.New(),
			TrackerID:   t.ID,
			OwnerID:     p.ID,
			Date:        in.Date,
			Granularity: t.Granularity,
			Slot:        slot,
			Values:      in.Values,
			Notes:       in.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		err := s.entries.Create(ctx, e)
		if err == nil {
			s.invalidateInsights(ctx, t.ID)
			s.publish(ctx, "entry.created", map[string]any{"entry_id": e.ID, "tracker_id": t.ID, "entry_date": e.Date})
			return e, nil
		}
		if !apperr.IsConflict(err) {
			return nil, apperr.Wrap("create entry", err)
		}
		// lost the race for an auto-assigned slot: re-read and retry
		if autoSlot && attempt+1 < slotAttempts {
			continue
		}
		if t.Granularity == GranularityDaily {
			return nil, apperr.Conflict("an entry already exists for this date; update it instead")
		}
		return nil, apperr.Conflict("an entry already occupies this slot for this date")
	}
}

// nextSlot returns one past the highest slot the owner has used on the date.
// Concurrent creates can race to the same answer; the unique constraint
// settles it and the caller retries.
func (s *Service) nextSlot(ctx context.Context, trackerID, owner uuid.UUID, date string) (int, error) {
	items, err := s.entries.List(ctx, trackerID, date, date, 0, 0)
	if err != nil {
		return 0, apperr.Wrap("scan entry slots", err)
	}
	next := 0
	for _, e := range items {
		if e.OwnerID == owner && e.Slot >= next {
			next = e.Slot + 1
		}
	}
	return next, nil
}

// UpdateEntryInput carries a partial entry update. Values are shallow-merged
// into the existing map; Notes replaces when non-nil.
type UpdateEntryInput struct {
	Values map[string]any
	Notes  *string
}

// UpdateEntry merges the update into the stored values and revalidates the
// merged result against the schema snapshot before persisting. The
// merge-then-revalidate order is what keeps a partial update from
// unsatisfying a required field or dodging validation by omission.
func (s *Service) UpdateEntry(ctx context.Context, p Principal, entryID uuid.UUID, in UpdateEntryInput) (*Entry, error) {
	e, err := s.entries.Get(ctx, entryID)
	if err != nil {
		return nil, apperr.Wrap("load entry", err)
	}
	if e == nil {
		return nil, apperr.NotFound("entry")
	}
	t, pm, err := s.loadTracker(ctx, p, e.TrackerID, nil)
	if err != nil {
		return nil, err
	}
	if t == nil || !pm.CanView {
		return nil, apperr.NotFound("entry")
	}
	if !pm.CanEdit {
		return nil, apperr.Permission("you cannot modify entries on this tracker")
	}

	merged := MergeValues(e.Values, in.Values)
	if err := ValidateEntryValues(t.SchemaSnapshot, merged); err != nil {
		return nil, err
	}
	e.Values = merged
	if in.Notes != nil {
		e.Notes = *in.Notes
	}
	e.UpdatedAt = s.now()
	if err := s.entries.Update(ctx, e); err != nil {
		return nil, apperr.Wrap("update entry", err)
	}
	s.invalidateInsights(ctx, t.ID)
	s.publish(ctx, "entry.updated", map[string]any{"entry_id": e.ID, "tracker_id": t.ID, "entry_date": e.Date})
	return e, nil
}

// GetEntry returns an entry the principal can view, or nil.
func (s *Service) GetEntry(ctx context.Context, p Principal, entryID uuid.UUID, obs *perm.ObservationContext) (*Entry, error) {
	e, err := s.entries.Get(ctx, entryID)
	if err != nil {
		return nil, apperr.Wrap("load entry", err)
	}
	if e == nil {
		return nil, nil
	}
	pm, err := s.resolver.Resolve(ctx, e.TrackerID, p.ID, obs)
	if err != nil {
		return nil, apperr.Wrap("resolve permissions", err)
	}
	if !pm.CanView {
		return nil, nil
	}
	return e, nil
}

// ListEntries returns a tracker's entries within [from, to] (either may be
// empty) for principals with view access; an empty list otherwise, so callers
// cannot probe for existence.
func (s *Service) ListEntries(ctx context.Context, p Principal, trackerID uuid.UUID, from, to string, limit, offset int, obs *perm.ObservationContext) ([]*Entry, error) {
	pm, err := s.resolver.Resolve(ctx, trackerID, p.ID, obs)
	if err != nil {
		return nil, apperr.Wrap("resolve permissions", err)
	}
	if !pm.CanView {
		return []*Entry{}, nil
	}
	items, err := s.entries.List(ctx, trackerID, from, to, limit, offset)
	if err != nil {
		return nil, apperr.Wrap("list entries", err)
	}
	return items, nil
}

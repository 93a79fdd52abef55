package tracker

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
)

// CreateContextEventInput annotates a date range with a life-state event.
type CreateContextEventInput struct {
	TrackerID *uuid.UUID
	Label     string
	Kind      string
	StartDate string
	EndDate   string
}

// CreateContextEvent records an owner-scoped annotation. Overlays never gate
// permissions and never touch tracker data.
func (s *Service) CreateContextEvent(ctx context.Context, p Principal, in CreateContextEventInput) (*ContextEvent, error) {
	if strings.TrimSpace(in.Label) == "" {
		return nil, apperr.Validation("context event label must not be blank")
	}
	if !ValidDate(in.StartDate) {
		return nil, apperr.Validation("invalid start date", apperr.FieldError{Field: "start_date", Value: in.StartDate, Message: "expected YYYY-MM-DD"})
	}
	if in.EndDate != "" && !ValidDate(in.EndDate) {
		return nil, apperr.Validation("invalid end date", apperr.FieldError{Field: "end_date", Value: in.EndDate, Message: "expected YYYY-MM-DD"})
	}
	if in.TrackerID != nil {
		t, err := s.trackers.Get(ctx, *in.TrackerID)
		if err != nil {
			return nil, apperr.Wrap("load tracker", err)
		}
		if t == nil || t.OwnerID != p.ID {
			return nil, apperr.NotFound("tracker")
		}
	}
	e := &ContextEvent{
		ID:        uuid.New(),
		OwnerID:   p.ID,
		TrackerID: in.TrackerID,
		Label:     strings.TrimSpace(in.Label),
		Kind:      in.Kind,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: s.now(),
	}
	if err := s.overlays.CreateContextEvent(ctx, e); err != nil {
		return nil, apperr.Wrap("create context event", err)
	}
	return e, nil
}

// ListContextEvents returns the principal's own annotations.
func (s *Service) ListContextEvents(ctx context.Context, p Principal) ([]*ContextEvent, error) {
	items, err := s.overlays.ListContextEvents(ctx, p.ID)
	if err != nil {
		return nil, apperr.Wrap("list context events", err)
	}
	return items, nil
}

// DeleteContextEvent removes an annotation the principal owns.
func (s *Service) DeleteContextEvent(ctx context.Context, p Principal, id uuid.UUID) error {
	e, err := s.overlays.GetContextEvent(ctx, id)
	if err != nil {
		return apperr.Wrap("load context event", err)
	}
	if e == nil || e.OwnerID != p.ID {
		return apperr.NotFound("context event")
	}
	if err := s.overlays.DeleteContextEvent(ctx, id); err != nil {
		return apperr.Wrap("delete context event", err)
	}
	return nil
}

// CreateInterpretationInput is a reflection note over a tracker date range.
type CreateInterpretationInput struct {
	TrackerID uuid.UUID
	StartDate string
	EndDate   string
	Body      string
}

// CreateInterpretation records an owner-authored reflection note. Owner only:
// interpretations are private journaling, not shared with grantees.
func (s *Service) CreateInterpretation(ctx context.Context, p Principal, in CreateInterpretationInput) (*Interpretation, error) {
	if strings.TrimSpace(in.Body) == "" {
		return nil, apperr.Validation("interpretation body must not be blank")
	}
	if !ValidDate(in.StartDate) {
		return nil, apperr.Validation("invalid start date", apperr.FieldError{Field: "start_date", Value: in.StartDate, Message: "expected YYYY-MM-DD"})
	}
	if in.EndDate != "" && !ValidDate(in.EndDate) {
		return nil, apperr.Validation("invalid end date", apperr.FieldError{Field: "end_date", Value: in.EndDate, Message: "expected YYYY-MM-DD"})
	}
	t, err := s.trackers.Get(ctx, in.TrackerID)
	if err != nil {
		return nil, apperr.Wrap("load tracker", err)
	}
	if t == nil || t.OwnerID != p.ID {
		return nil, apperr.NotFound("tracker")
	}
	now := s.now()
	i := &Interpretation{
		ID:        uuid.New(),
		OwnerID:   p.ID,
		TrackerID: in.TrackerID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Body:      in.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.overlays.CreateInterpretation(ctx, i); err != nil {
		return nil, apperr.Wrap("create interpretation", err)
	}
	s.publish(ctx, "interpretation.created", map[string]any{"interpretation_id": i.ID, "tracker_id": i.TrackerID})
	return i, nil
}

// UpdateInterpretation rewrites the body of a note the principal owns.
func (s *Service) UpdateInterpretation(ctx context.Context, p Principal, id uuid.UUID, body string) (*Interpretation, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.Validation("interpretation body must not be blank")
	}
	i, err := s.overlays.GetInterpretation(ctx, id)
	if err != nil {
		return nil, apperr.Wrap("load interpretation", err)
	}
	if i == nil || i.OwnerID != p.ID {
		return nil, apperr.NotFound("interpretation")
	}
	i.Body = body
	i.UpdatedAt = s.now()
	if err := s.overlays.UpdateInterpretation(ctx, i); err != nil {
		return nil, apperr.Wrap("update interpretation", err)
	}
	return i, nil
}

// ListInterpretations returns the principal's notes, optionally filtered to
// one tracker.
func (s *Service) ListInterpretations(ctx context.Context, p Principal, trackerID *uuid.UUID) ([]*Interpretation, error) {
	items, err := s.overlays.ListInterpretations(ctx, p.ID, trackerID)
	if err != nil {
		return nil, apperr.Wrap("list interpretations", err)
	}
	return items, nil
}

// DeleteInterpretation removes a note the principal owns.
func (s *Service) DeleteInterpretation(ctx context.Context, p Principal, id uuid.UUID) error {
	i, err := s.overlays.GetInterpretation(ctx, id)
	if err != nil {
		return apperr.Wrap("load interpretation", err)
	}
	if i == nil || i.OwnerID != p.ID {
		return apperr.NotFound("interpretation")
	}
	if err := s.overlays.DeleteInterpretation(ctx, id); err != nil {
		return apperr.Wrap("delete interpretation", err)
	}
	return nil
}

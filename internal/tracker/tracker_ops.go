package tracker

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/perm"
)

// CreateTrackerInput creates a tracker either from a template (TemplateID
// set, schema copied from it) or from a raw schema.
type CreateTrackerInput struct {
	Name        string
	Description string
	TemplateID  *uuid.UUID
	FieldSchema []FieldDef // used when TemplateID is nil
	Granularity Granularity
	ChartConfig map[string]any
	Icon        string
	Color       string
}

// CreateTracker creates a tracker owned by the principal. The field schema is
// snapshotted by value at this moment; template edits never propagate to it.
func (s *Service) CreateTracker(ctx context.Context, p Principal, in CreateTrackerInput) (*Tracker, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("tracker name must not be blank")
	}
	gran := in.Granularity
	if gran == "" {
		gran = GranularityDaily
	}
	if !gran.Valid() {
		return nil, apperr.Validation("unknown granularity", apperr.FieldError{Field: "granularity", Value: string(gran), Message: "must be one of daily, session, event, range"})
	}

	var schema []FieldDef
	if in.TemplateID != nil {
		tpl, err := s.templates.Get(ctx, *in.TemplateID)
		if err != nil {
			return nil, apperr.Wrap("load template", err)
		}
		if tpl == nil || tpl.ArchivedAt != nil {
			return nil, apperr.NotFound("template")
		}
		visible, err := s.templateVisible(ctx, tpl, p)
		if err != nil {
			return nil, err
		}
		if !visible {
			return nil, apperr.NotFound("template")
		}
		schema = CloneSchema(tpl.FieldSchema)
	} else {
		if err := ValidateFieldSchema(in.FieldSchema); err != nil {
			return nil, err
		}
		schema = CloneSchema(in.FieldSchema)
	}

	now := s.now()
	t := &Tracker{
		ID:             uuid.New(),
		OwnerID:        p.ID,
		TemplateID:     in.TemplateID,
		Name:           name,
		Description:    in.Description,
		Granularity:    gran,
		SchemaSnapshot: schema,
		ChartConfig:    in.ChartConfig,
		Icon:           in.Icon,
		Color:          in.Color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.trackers.Create(ctx, t); err != nil {
		return nil, apperr.Wrap("create tracker", err)
	}
	s.publish(ctx, "tracker.created", map[string]any{"tracker_id": t.ID, "owner_id": t.OwnerID})
	return t, nil
}

// UpdateTrackerInput carries optional tracker mutations; the schema snapshot
// is deliberately not among them.
type UpdateTrackerInput struct {
	Name        *string
	Description *string
	ChartConfig map[string]any
	Icon        *string
	Color       *string
}

// UpdateTracker mutates name/description/config. Requires edit capability;
// archived trackers are read-only even for the owner.
func (s *Service) UpdateTracker(ctx context.Context, p Principal, id uuid.UUID, in UpdateTrackerInput) (*Tracker, error) {
	t, pm, err := s.loadTracker(ctx, p, id, nil)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("tracker")
	}
	if !pm.CanEdit {
		return nil, apperr.Permission("you cannot modify this tracker")
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Validation("tracker name must not be blank")
		}
		t.Name = name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.ChartConfig != nil {
		t.ChartConfig = in.ChartConfig
	}
	if in.Icon != nil {
		t.Icon = *in.Icon
	}
	if in.Color != nil {
		t.Color = *in.Color
	}
	t.UpdatedAt = s.now()
	if err := s.trackers.Update(ctx, t); err != nil {
		return nil, apperr.Wrap("update tracker", err)
	}
	return t, nil
}

// ArchiveTracker soft-deletes a tracker. Manage capability required, which
// grants never confer, so effectively owner only. Irreversible through this
// API: archived trackers become read-only even to the owner.
func (s *Service) ArchiveTracker(ctx context.Context, p Principal, id uuid.UUID) error {
	t, pm, err := s.loadTracker(ctx, p, id, nil)
	if err != nil {
		return err
	}
	if t == nil {
		return apperr.NotFound("tracker")
	}
	if !pm.CanManage {
		return apperr.Permission("only the owner may archive a tracker")
	}
	if t.Archived() {
		return nil
	}
	now := s.now()
	t.ArchivedAt = &now
	t.UpdatedAt = now
	if err := s.trackers.Update(ctx, t); err != nil {
		return apperr.Wrap("archive tracker", err)
	}
	s.invalidateInsights(ctx, t.ID)
	s.publish(ctx, "tracker.archived", map[string]any{"tracker_id": t.ID, "owner_id": t.OwnerID})
	return nil
}

// ReorderTrackers sets the display order of the owner's trackers to the given
// id sequence. Owner-controlled list ordering only.
func (s *Service) ReorderTrackers(ctx context.Context, p Principal, ids []uuid.UUID) error {
	for pos, id := range ids {
		t, err := s.trackers.Get(ctx, id)
		if err != nil {
			return apperr.Wrap("load tracker", err)
		}
		if t == nil || t.OwnerID != p.ID {
			return apperr.NotFound("tracker")
		}
		if t.DisplayOrder == pos {
			continue
		}
		t.DisplayOrder = pos
		t.UpdatedAt = s.now()
		if err := s.trackers.Update(ctx, t); err != nil {
			return apperr.Wrap("reorder tracker", err)
		}
	}
	return nil
}

// GetTracker returns a tracker the principal can view, or nil. Supplying an
// observation context allows consented observers through.
func (s *Service) GetTracker(ctx context.Context, p Principal, id uuid.UUID, obs *perm.ObservationContext) (*Tracker, error) {
	t, pm, err := s.loadTracker(ctx, p, id, obs)
	if err != nil {
		return nil, err
	}
	if t == nil || !pm.CanView {
		return nil, nil
	}
	return t, nil
}

// ListTrackers returns the principal's own trackers ordered for display.
func (s *Service) ListTrackers(ctx context.Context, p Principal, includeArchived bool) ([]*Tracker, error) {
	items, err := s.trackers.ListByOwner(ctx, p.ID, includeArchived)
	if err != nil {
		return nil, apperr.Wrap("list trackers", err)
	}
	return items, nil
}

// loadTracker fetches a tracker and resolves the principal's permissions on
// it in one step. Returns (nil, NoAccess, nil) when absent.
func (s *Service) loadTracker(ctx context.Context, p Principal, id uuid.UUID, obs *perm.ObservationContext) (*Tracker, perm.Permissions, error) {
	t, err := s.trackers.Get(ctx, id)
	if err != nil {
		return nil, perm.Permissions{}, apperr.Wrap("load tracker", err)
	}
	if t == nil {
		return nil, perm.Permissions{}, nil
	}
	pm, err := s.resolver.Resolve(ctx, id, p.ID, obs)
	if err != nil {
		return nil, perm.Permissions{}, apperr.Wrap("resolve permissions", err)
	}
	return t, pm, nil
}

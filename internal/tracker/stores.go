package tracker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tracker-studio-api/internal/perm"
)

// TemplateStore persists templates. Get returns (nil, nil) when absent.
type TemplateStore interface {
	Create(ctx context.Context, t *Template) error
	Get(ctx context.Context, id uuid.UUID) (*Template, error)
	Update(ctx context.Context, t *Template) error
	// List returns templates owned by owner, plus global templates when
	// includeGlobal is set. Archived templates are excluded.
	List(ctx context.Context, owner uuid.UUID, includeGlobal bool) ([]*Template, error)
	// NameExists reports whether owner already has a live template named name.
	NameExists(ctx context.Context, owner uuid.UUID, name string) (bool, error)
}

// TrackerStore persists trackers. Get returns (nil, nil) when absent.
type TrackerStore interface {
	Create(ctx context.Context, t *Tracker) error
	Get(ctx context.Context, id uuid.UUID) (*Tracker, error)
	// Update persists mutable tracker fields; the schema snapshot is never
	// written after creation.
	Update(ctx context.Context, t *Tracker) error
	ListByOwner(ctx context.Context, owner uuid.UUID, includeArchived bool) ([]*Tracker, error)
}

// EntryStore persists entries. Create must surface the persistence-layer
// uniqueness constraint on (tracker, owner, date, slot) as a ConflictError;
// the service never relies on check-then-insert.
type EntryStore interface {
	Create(ctx context.Context, e *Entry) error
	Get(ctx context.Context, id uuid.UUID) (*Entry, error)
	GetByDate(ctx context.Context, trackerID, owner uuid.UUID, date string) (*Entry, error)
	Update(ctx context.Context, e *Entry) error
	List(ctx context.Context, trackerID uuid.UUID, from, to string, limit, offset int) ([]*Entry, error)
}

// GrantStore persists sharing grants. Revocation is soft.
type GrantStore interface {
	Create(ctx context.Context, g *perm.Grant) error
	Get(ctx context.Context, id uuid.UUID) (*perm.Grant, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
	ListByEntity(ctx context.Context, entityID uuid.UUID) ([]perm.Grant, error)
}

// ObservationStore persists observation links. FindTuple returns the row for
// the exact (tracker, observer, context) tuple whether revoked or not, so a
// re-grant can restore it instead of inserting a duplicate.
type ObservationStore interface {
	Create(ctx context.Context, l *perm.ObservationLink) error
	Get(ctx context.Context, id uuid.UUID) (*perm.ObservationLink, error)
	FindTuple(ctx context.Context, trackerID, observerID uuid.UUID, obs perm.ObservationContext) (*perm.ObservationLink, error)
	Restore(ctx context.Context, id uuid.UUID) error
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
	ListByTracker(ctx context.Context, trackerID uuid.UUID) ([]perm.ObservationLink, error)
}

// OverlayStore persists context events and interpretations.
type OverlayStore interface {
	CreateContextEvent(ctx context.Context, e *ContextEvent) error
	GetContextEvent(ctx context.Context, id uuid.UUID) (*ContextEvent, error)
	ListContextEvents(ctx context.Context, owner uuid.UUID) ([]*ContextEvent, error)
	DeleteContextEvent(ctx context.Context, id uuid.UUID) error

	CreateInterpretation(ctx context.Context, i *Interpretation) error
	GetInterpretation(ctx context.Context, id uuid.UUID) (*Interpretation, error)
	UpdateInterpretation(ctx context.Context, i *Interpretation) error
	ListInterpretations(ctx context.Context, owner uuid.UUID, trackerID *uuid.UUID) ([]*Interpretation, error)
	DeleteInterpretation(ctx context.Context, id uuid.UUID) error
}

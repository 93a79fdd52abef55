package tracker

import (
	"time"

	"github.com/google/uuid"
)

// TemplateScope distinguishes user-owned templates from admin-curated global
// ones.
type TemplateScope string

// Template scopes.
const (
	ScopeUser   TemplateScope = "user"
	ScopeGlobal TemplateScope = "global"
)

// Granularity controls how many entries a tracker accepts per date.
type Granularity string

// Entry granularities. Daily permits one entry per (tracker, owner, date);
// the rest permit several.
const (
	GranularityDaily   Granularity = "daily"
	GranularitySession Granularity = "session"
	GranularityEvent   Granularity = "event"
	GranularityRange   Granularity = "range"
)

var granularities = map[Granularity]bool{
	GranularityDaily:   true,
	GranularitySession: true,
	GranularityEvent:   true,
	GranularityRange:   true,
}

// Valid reports whether g is a known granularity.
func (g Granularity) Valid() bool { return granularities[g] }

// Template is a structure-only field definition set. It never holds data.
type Template struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     *uuid.UUID    `json:"owner_id,omitempty"` // nil for global templates
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Scope       TemplateScope `json:"scope"`
	Locked      bool          `json:"locked"`
	FieldSchema []FieldDef    `json:"field_schema"`
	ArchivedAt  *time.Time    `json:"archived_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Tracker is a live instance owned by exactly one principal. SchemaSnapshot is
// frozen at creation time.
type Tracker struct {
	ID             uuid.UUID      `json:"id"`
	OwnerID        uuid.UUID      `json:"owner_id"`
	TemplateID     *uuid.UUID     `json:"template_id,omitempty"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Granularity    Granularity    `json:"granularity"`
	SchemaSnapshot []FieldDef     `json:"field_schema_snapshot"`
	DisplayOrder   int            `json:"display_order"`
	ChartConfig    map[string]any `json:"chart_config,omitempty"`
	Icon           string         `json:"icon,omitempty"`
	Color          string         `json:"color,omitempty"`
	ArchivedAt     *time.Time     `json:"archived_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Archived reports whether the tracker has been soft-deleted.
func (t *Tracker) Archived() bool { return t.ArchivedAt != nil }

// Entry is one data record for a tracker. Append-mostly: created once per
// (tracker, owner, date) under daily granularity, then updated in place.
type Entry struct {
	ID          uuid.UUID      `json:"id"`
	TrackerID   uuid.UUID      `json:"tracker_id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Date        string         `json:"entry_date"` // YYYY-MM-DD
	Granularity Granularity    `json:"granularity"`
	Slot        int            `json:"slot"`
	Values      map[string]any `json:"field_values"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ContextEvent is a life-state annotation over a date range. Descriptive
// overlay only: it never gates permissions and never mutates tracker data.
type ContextEvent struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	TrackerID *uuid.UUID `json:"tracker_id,omitempty"`
	Label     string     `json:"label"`
	Kind      string     `json:"kind,omitempty"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Interpretation is a user-authored reflection note anchored to a tracker and
// date range.
type Interpretation struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	TrackerID uuid.UUID `json:"tracker_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Principal is the acting identity for an operation.
type Principal struct {
	ID    uuid.UUID
	Admin bool
}

// Package entstore implements the domain store interfaces over the generated
// ent client. Each store maps between domain types and ent rows; constraint
// violations surface as apperr.ConflictError so services never inspect driver
// errors.
package entstore

import (
	"encoding/json"
	"fmt"

	"tracker-studio-api/ent"
	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/tracker"
)

// Stores bundles every ent-backed store over one client.
type Stores struct {
	Templates    *TemplateStore
	Trackers     *TrackerStore
	Entries      *EntryStore
	Grants       *GrantStore
	Observations *ObservationStore
	Overlays     *OverlayStore
	Reminders    *ReminderStore
	ShareLinks   *ShareLinkStore
	Users        *UserStore
	Entitlements *EntitlementStore
	Groups       *GroupDirectory
}

// New wires all stores over a shared client.
func New(client *ent.Client) *Stores {
	return &Stores{
		Templates:    &TemplateStore{client: client},
		Trackers:     &TrackerStore{client: client},
		Entries:      &EntryStore{client: client},
		Grants:       &GrantStore{client: client},
		Observations: &ObservationStore{client: client},
		Overlays:     &OverlayStore{client: client},
		Reminders:    &ReminderStore{client: client},
		ShareLinks:   &ShareLinkStore{client: client},
		Users:        &UserStore{client: client},
		Entitlements: &EntitlementStore{client: client},
		Groups:       &GroupDirectory{client: client},
	}
}

// mapErr translates ent errors into the application taxonomy. Unique-index
// violations (the daily-entry guard, duplicate usernames, duplicate link
// tokens) become conflicts.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if ent.IsConstraintError(err) {
		return apperr.Conflict(err.Error())
	}
	if ent.IsNotFound(err) {
		return apperr.NotFound("record")
	}
	return err
}

// schemaToRows converts a typed field schema to the JSON column shape.
func schemaToRows(schema []tracker.FieldDef) ([]map[string]any, error) {
	b, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("encode field schema: %w", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("encode field schema: %w", err)
	}
	return rows, nil
}

// schemaFromRows converts the JSON column shape back to the typed schema.
func schemaFromRows(rows []map[string]any) ([]tracker.FieldDef, error) {
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("decode field schema: %w", err)
	}
	var schema []tracker.FieldDef
	if err := json.Unmarshal(b, &schema); err != nil {
		return nil, fmt.Errorf("decode field schema: %w", err)
	}
	return schema, nil
}

package tracker_test

import (
	"errors"
	"strings"
	"testing"

	"tracker-studio-api/internal/apperr"
	"tracker-studio-api/internal/tracker"
)

func ptrF(f float64) *float64 { return &f }
func ptrI(i int) *int         { return &i }

func moodSchema() []tracker.FieldDef {
	return []tracker.FieldDef{
		{ID: "mood", Label: "Mood", Type: tracker.FieldRating, Required: true},
		{ID: "hours", Label: "Hours slept", Type: tracker.FieldNumber, Validation: &tracker.FieldValidation{Min: ptrF(0), Max: ptrF(24)}},
		{ID: "note", Label: "Note", Type: tracker.FieldText, Validation: &tracker.FieldValidation{MaxLength: ptrI(200)}},
		{ID: "caffeinated", Label: "Caffeinated", Type: tracker.FieldBoolean},
	}
}

func TestValidateFieldSchema(t *testing.T) {
	cases := []struct {
		name    string
		schema  []tracker.FieldDef
		wantErr string
	}{
		{"valid", moodSchema(), ""},
		{"empty", nil, "at least one field"},
		{"blank id", []tracker.FieldDef{{ID: "", Label: "X", Type: tracker.FieldText}}, "field id must not be blank"},
		{"duplicate id", []tracker.FieldDef{
			{ID: "a", Label: "A", Type: tracker.FieldText},
			{ID: "a", Label: "A again", Type: tracker.FieldNumber},
		}, "duplicate field id"},
		{"unknown type", []tracker.FieldDef{{ID: "a", Label: "A", Type: "slider"}}, "unknown field type"},
		{"min over max", []tracker.FieldDef{
			{ID: "a", Label: "A", Type: tracker.FieldNumber, Validation: &tracker.FieldValidation{Min: ptrF(10), Max: ptrF(1)}},
		}, "min must not exceed max"},
		{"rating bound out of range", []tracker.FieldDef{
			{ID: "a", Label: "A", Type: tracker.FieldRating, Validation: &tracker.FieldValidation{MaxRating: ptrI(9)}},
		}, "max_rating must be within"},
		{"bad pattern", []tracker.FieldDef{
			{ID: "a", Label: "A", Type: tracker.FieldText, Validation: &tracker.FieldValidation{Pattern: "("}},
		}, "pattern does not compile"},
		{"default type mismatch", []tracker.FieldDef{
			{ID: "a", Label: "A", Type: tracker.FieldNumber, Default: "lots"},
		}, "default value invalid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tracker.ValidateFieldSchema(tc.schema)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateFieldSchema: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !apperr.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if !strings.Contains(errDetail(err), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", errDetail(err), tc.wantErr)
			}
		})
	}
}

// errDetail flattens a validation error and its field details for substring
// checks.
func errDetail(err error) string {
	var v *apperr.ValidationError
	if !errors.As(err, &v) {
		return err.Error()
	}
	parts := []string{v.Message}
	for _, f := range v.Fields {
		parts = append(parts, f.Message)
	}
	return strings.Join(parts, "; ")
}

func TestValidateEntryValues(t *testing.T) {
	schema := moodSchema()

	cases := []struct {
		name    string
		values  map[string]any
		wantErr string
	}{
		{"valid full", map[string]any{"mood": 3, "hours": 7.5, "note": "fine", "caffeinated": true}, ""},
		{"valid minimal", map[string]any{"mood": 5}, ""},
		{"required missing", map[string]any{"hours": 8.0}, "required field missing"},
		{"required null", map[string]any{"mood": nil}, "required field missing"},
		{"optional null ok", map[string]any{"mood": 2, "hours": nil}, ""},
		{"unknown key", map[string]any{"mood": 3, "steps": 9000}, "unknown field"},
		{"rating above five", map[string]any{"mood": 6}, "rating must be within"},
		{"rating fractional", map[string]any{"mood": 3.5}, "whole number"},
		{"number above max", map[string]any{"mood": 3, "hours": 30.0}, "must be at most 24"},
		{"text too long", map[string]any{"mood": 3, "note": strings.Repeat("x", 201)}, "at most 200 characters"},
		{"wrong type", map[string]any{"mood": 3, "caffeinated": "yes"}, "expected a boolean"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tracker.ValidateEntryValues(schema, tc.values)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateEntryValues: %v", err)
				}
				return
			}
			if !apperr.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if !strings.Contains(errDetail(err), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", errDetail(err), tc.wantErr)
			}
		})
	}
}

func TestValidateEntryValuesDateField(t *testing.T) {
	schema := []tracker.FieldDef{{ID: "woke", Label: "Woke at", Type: tracker.FieldDate}}
	if err := tracker.ValidateEntryValues(schema, map[string]any{"woke": "2026-02-01"}); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	if err := tracker.ValidateEntryValues(schema, map[string]any{"woke": "2026-02-30"}); err == nil {
		t.Fatal("impossible date accepted")
	}
	if err := tracker.ValidateEntryValues(schema, map[string]any{"woke": "01/02/2026"}); err == nil {
		t.Fatal("non-ISO date accepted")
	}
}

func TestCloneSchemaIsDeep(t *testing.T) {
	orig := moodSchema()
	cp := tracker.CloneSchema(orig)

	orig[0].Label = "Mutated"
	*orig[1].Validation.Max = 99

	if cp[0].Label != "Mood" {
		t.Fatalf("clone label changed with original: %q", cp[0].Label)
	}
	if *cp[1].Validation.Max != 24 {
		t.Fatalf("clone validation shares pointer with original: max=%g", *cp[1].Validation.Max)
	}
}

func TestMergeValues(t *testing.T) {
	base := map[string]any{"mood": 3, "note": "ok"}
	got := tracker.MergeValues(base, map[string]any{"note": "better", "hours": 8.0})

	if got["mood"] != 3 {
		t.Fatalf("retained key lost: %v", got["mood"])
	}
	if got["note"] != "better" {
		t.Fatalf("updated key not overwritten: %v", got["note"])
	}
	if got["hours"] != 8.0 {
		t.Fatalf("new key missing: %v", got["hours"])
	}
	if base["note"] != "ok" {
		t.Fatal("merge mutated the base map")
	}
}

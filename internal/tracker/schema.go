// Package tracker implements the generic tracker engine: field-schema and
// entry-value validation, the template → tracker → entry lifecycle, and the
// enforcement layer that gates every operation through the permission
// resolver.
package tracker

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"tracker-studio-api/internal/apperr"
)

// FieldType is the declared type of a tracker field.
type FieldType string

// Supported field types.
const (
	FieldText    FieldType = "text"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldRating  FieldType = "rating"
	FieldDate    FieldType = "date"
)

var fieldTypes = map[FieldType]bool{
	FieldText:    true,
	FieldNumber:  true,
	FieldBoolean: true,
	FieldRating:  true,
	FieldDate:    true,
}

// Rating values are always within [1,5]; declared bounds may only narrow that.
const (
	RatingMin = 1
	RatingMax = 5
)

const dateLayout = "2006-01-02"

// FieldValidation holds optional per-field constraints.
type FieldValidation struct {
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MinLength *int     `json:"min_length,omitempty"`
	MaxLength *int     `json:"max_length,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	MinRating *int     `json:"min_rating,omitempty"`
	MaxRating *int     `json:"max_rating,omitempty"`
}

// FieldDef is one field definition in a template's schema or a tracker's
// snapshot.
type FieldDef struct {
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Type       FieldType        `json:"type"`
	Required   bool             `json:"required,omitempty"`
	Default    any              `json:"default,omitempty"`
	Validation *FieldValidation `json:"validation,omitempty"`
}

// CloneSchema copies a field schema by value. Used when freezing a template's
// schema into a tracker snapshot so later template edits cannot leak through
// shared pointers.
func CloneSchema(schema []FieldDef) []FieldDef {
	if schema == nil {
		return nil
	}
	out := make([]FieldDef, len(schema))
	for i, f := range schema {
		out[i] = f
		if f.Validation != nil {
			v := *f.Validation
			out[i].Validation = &v
		}
	}
	return out
}

// ValidateFieldSchema checks a field-definition list for structural validity:
// non-empty, unique non-blank ids, non-blank labels, known types, internally
// consistent constraints, compilable patterns, and defaults that type-check
// against their own field.
func ValidateFieldSchema(schema []FieldDef) error {
	if len(schema) == 0 {
		return apperr.Validation("field schema must declare at least one field")
	}
	var errs []apperr.FieldError
	seen := map[string]bool{}
	for _, f := range schema {
		if f.ID == "" {
			errs = append(errs, apperr.FieldError{Field: f.ID, Label: f.Label, Message: "field id must not be blank"})
			continue
		}
		if seen[f.ID] {
			errs = append(errs, apperr.FieldError{Field: f.ID, Label: f.Label, Message: "duplicate field id"})
			continue
		}
		seen[f.ID] = true
		if f.Label == "" {
			errs = append(errs, apperr.FieldError{Field: f.ID, Message: "field label must not be blank"})
		}
		if !fieldTypes[f.Type] {
			errs = append(errs, apperr.FieldError{Field: f.ID, Label: f.Label, Type: string(f.Type), Message: "unknown field type"})
			continue
		}
		if err := validateRules(f); err != nil {
			errs = append(errs, *err)
			continue
		}
		if f.Default != nil {
			if msg := typeCheck(f, f.Default); msg != "" {
				errs = append(errs, apperr.FieldError{Field: f.ID, Label: f.Label, Type: string(f.Type), Value: f.Default, Message: "default value invalid: " + msg})
			}
		}
	}
	if len(errs) > 0 {
		return apperr.Validation("invalid field schema", errs...)
	}
	return nil
}

func validateRules(f FieldDef) *apperr.FieldError {
	v := f.Validation
	if v == nil {
		return nil
	}
	bad := func(msg string) *apperr.FieldError {
		return &apperr.FieldError{Field: f.ID, Label: f.Label, Type: string(f.Type), Message: msg}
	}
	if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
		return bad("min must not exceed max")
	}
	if v.MinLength != nil && v.MaxLength != nil && *v.MinLength > *v.MaxLength {
		return bad("min_length must not exceed max_length")
	}
	if v.MinRating != nil && (*v.MinRating < RatingMin || *v.MinRating > RatingMax) {
		return bad(fmt.Sprintf("min_rating must be within [%d,%d]", RatingMin, RatingMax))
	}
	if v.MaxRating != nil && (*v.MaxRating < RatingMin || *v.MaxRating > RatingMax) {
		return bad(fmt.Sprintf("max_rating must be within [%d,%d]", RatingMin, RatingMax))
	}
	if v.MinRating != nil && v.MaxRating != nil && *v.MinRating > *v.MaxRating {
		return bad("min_rating must not exceed max_rating")
	}
	if v.Pattern != "" {
		if _, err := regexp.Compile(v.Pattern); err != nil {
			return bad("pattern does not compile: " + err.Error())
		}
	}
	return nil
}

// ValidateEntryValues validates a candidate field-value map against a schema
// snapshot: required fields present and non-null, no unknown keys, every
// provided value type-checked and constraint-checked. Null is permitted only
// for non-required fields.
func ValidateEntryValues(schema []FieldDef, values map[string]any) error {
	byID := make(map[string]FieldDef, len(schema))
	known := make([]string, 0, len(schema))
	for _, f := range schema {
		byID[f.ID] = f
		known = append(known, f.ID)
	}

	var errs []apperr.FieldError
	for _, f := range schema {
		v, present := values[f.ID]
		if f.Required && (!present || v == nil) {
			errs = append(errs, apperr.FieldError{Field: f.ID, Label: f.Label, Type: string(f.Type), Message: "required field missing"})
		}
	}
	for key, v := range values {
		f, ok := byID[key]
		if !ok {
			errs = append(errs, apperr.FieldError{
				Field:   key,
				Value:   v,
				Message: fmt.Sprintf("unknown field (known fields: %v)", known),
			})
			continue
		}
		if v == nil {
			// required-null already reported above
			continue
		}
		if msg := typeCheck(f, v); msg != "" {
			errs = append(errs, apperr.FieldError{Field: f.ID, Label: f.Label, Type: string(f.Type), Value: v, Message: msg})
		}
	}
	if len(errs) > 0 {
		return apperr.Validation("invalid entry values", errs...)
	}
	return nil
}

// MergeValues shallow-merges update into base: new keys overwrite, keys absent
// from update are retained. The merged result must be revalidated against the
// schema snapshot before persisting, otherwise a partial update could leave a
// previously valid required field unsatisfied.
func MergeValues(base, update map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(update))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range update {
		out[k] = v
	}
	return out
}

// typeCheck validates a non-nil value against the field's type and declared
// constraints. Returns "" when valid.
func typeCheck(f FieldDef, v any) string {
	switch f.Type {
	case FieldText:
		s, ok := v.(string)
		if !ok {
			return "expected a string"
		}
		return checkTextRules(f.Validation, s)
	case FieldNumber:
		n, ok := asNumber(v)
		if !ok {
			return "expected a finite number"
		}
		return checkNumberRules(f.Validation, n)
	case FieldBoolean:
		if _, ok := v.(bool); !ok {
			return "expected a boolean"
		}
		return ""
	case FieldRating:
		n, ok := asNumber(v)
		if !ok {
			return "expected a rating number"
		}
		if n != math.Trunc(n) {
			return "rating must be a whole number"
		}
		lo, hi := float64(RatingMin), float64(RatingMax)
		if rv := f.Validation; rv != nil {
			if rv.MinRating != nil {
				lo = float64(*rv.MinRating)
			}
			if rv.MaxRating != nil {
				hi = float64(*rv.MaxRating)
			}
		}
		if n < lo || n > hi {
			return fmt.Sprintf("rating must be within [%g,%g]", lo, hi)
		}
		return ""
	case FieldDate:
		s, ok := v.(string)
		if !ok {
			return "expected a YYYY-MM-DD date string"
		}
		if _, err := time.Parse(dateLayout, s); err != nil {
			return "expected a valid YYYY-MM-DD date"
		}
		return ""
	default:
		return "unknown field type"
	}
}

func checkTextRules(v *FieldValidation, s string) string {
	if v == nil {
		return ""
	}
	if v.MinLength != nil && len(s) < *v.MinLength {
		return fmt.Sprintf("must be at least %d characters", *v.MinLength)
	}
	if v.MaxLength != nil && len(s) > *v.MaxLength {
		return fmt.Sprintf("must be at most %d characters", *v.MaxLength)
	}
	if v.Pattern != "" {
		re, err := regexp.Compile(v.Pattern)
		if err != nil {
			return "pattern does not compile"
		}
		if !re.MatchString(s) {
			return "does not match required pattern"
		}
	}
	return ""
}

func checkNumberRules(v *FieldValidation, n float64) string {
	if v == nil {
		return ""
	}
	if v.Min != nil && n < *v.Min {
		return fmt.Sprintf("must be at least %g", *v.Min)
	}
	if v.Max != nil && n > *v.Max {
		return fmt.Sprintf("must be at most %g", *v.Max)
	}
	return ""
}

// asNumber accepts the numeric shapes that survive JSON decoding and store
// round-trips.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// ValidDate reports whether s is a parseable YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

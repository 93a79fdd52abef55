// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContextEvent is the predicate function for contextevent builders.
type ContextEvent func(*sql.Selector)

// Grant is the predicate function for grant builders.
type Grant func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// Interpretation is the predicate function for interpretation builders.
type Interpretation func(*sql.Selector)

// ObservationLink is the predicate function for observationlink builders.
type ObservationLink func(*sql.Selector)

// Reminder is the predicate function for reminder builders.
type Reminder func(*sql.Selector)

// Template is the predicate function for template builders.
type Template func(*sql.Selector)

// TemplateShareLink is the predicate function for templatesharelink builders.
type TemplateShareLink func(*sql.Selector)

// Tracker is the predicate function for tracker builders.
type Tracker func(*sql.Selector)

// TrackerEntry is the predicate function for trackerentry builders.
type TrackerEntry func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

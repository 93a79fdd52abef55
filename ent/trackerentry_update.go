// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/predicate"
	"tracker-studio-api/ent/tracker"
	"tracker-studio-api/ent/trackerentry"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TrackerEntryUpdate is the builder for updating TrackerEntry entities.
type TrackerEntryUpdate struct {
	config
	hooks    []Hook
	mutation *TrackerEntryMutation
}

// Where appends a list predicates to the TrackerEntryUpdate builder.
func (_u *TrackerEntryUpdate) Where(ps ...predicate.TrackerEntry) *TrackerEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *TrackerEntryUpdate) SetOwnerID(v uuid.UUID) *TrackerEntryUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *TrackerEntryUpdate) SetNillableOwnerID(v *uuid.UUID) *TrackerEntryUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetEntryDate sets the "entry_date" field.
func (_u *TrackerEntryUpdate) SetEntryDate(v string) *TrackerEntryUpdate {
	_u.mutation.SetEntryDate(v)
	return _u
}

// SetNillableEntryDate sets the "entry_date" field if the given value is not nil.
func (_u *TrackerEntryUpdate) SetNillableEntryDate(v *string) *TrackerEntryUpdate {
	if v != nil {
		_u.SetEntryDate(*v)
	}
	return _u
}

// SetGranularity sets the "granularity" field.
func (_u *TrackerEntryUpdate) SetGranularity(v trackerentry.Granularity) *TrackerEntryUpdate {
	_u.mutation.SetGranularity(v)
	return _u
}

// SetNillableGranularity sets the "granularity" field if the given value is not nil.
func (_u *TrackerEntryUpdate) SetNillableGranularity(v *trackerentry.Granularity) *TrackerEntryUpdate {
	if v != nil {
		_u.SetGranularity(*v)
	}
	return _u
}

// SetSlot sets the "slot" field.
func (_u *TrackerEntryUpdate) SetSlot(v int) *TrackerEntryUpdate {
	_u.mutation.ResetSlot()
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *TrackerEntryUpdate) SetNillableSlot(v *int) *TrackerEntryUpdate {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// AddSlot adds value to the "slot" field.
func (_u *TrackerEntryUpdate) AddSlot(v int) *TrackerEntryUpdate {
	_u.mutation.AddSlot(v)
	return _u
}

// SetFieldValues sets the "field_values" field.
func (_u *TrackerEntryUpdate) SetFieldValues(v map[string]interface{}) *TrackerEntryUpdate {
	_u.mutation.SetFieldValues(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TrackerEntryUpdate) SetNotes(v string) *TrackerEntryUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TrackerEntryUpdate) SetNillableNotes(v *string) *TrackerEntryUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TrackerEntryUpdate) ClearNotes() *TrackerEntryUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrackerEntryUpdate) SetUpdatedAt(v time.Time) *TrackerEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_u *TrackerEntryUpdate) SetTrackerID(id uuid.UUID) *TrackerEntryUpdate {
	_u.mutation.SetTrackerID(id)
	return _u
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_u *TrackerEntryUpdate) SetTracker(v *Tracker) *TrackerEntryUpdate {
	return _u.SetTrackerID(v.ID)
}

// Mutation returns the TrackerEntryMutation object of the builder.
func (_u *TrackerEntryUpdate) Mutation() *TrackerEntryMutation {
	return _u.mutation
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (_u *TrackerEntryUpdate) ClearTracker() *TrackerEntryUpdate {
	_u.mutation.ClearTracker()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrackerEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackerEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrackerEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackerEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrackerEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := trackerentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackerEntryUpdate) check() error {
	if v, ok := _u.mutation.EntryDate(); ok {
		if err := trackerentry.EntryDateValidator(v); err != nil {
			return &ValidationError{Name: "entry_date", err: fmt.Errorf(`ent: validator failed for field "TrackerEntry.entry_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Granularity(); ok {
		if err := trackerentry.GranularityValidator(v); err != nil {
			return &ValidationError{Name: "granularity", err: fmt.Errorf(`ent: validator failed for field "TrackerEntry.granularity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := trackerentry.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`ent: validator failed for field "TrackerEntry.notes": %w`, err)}
		}
	}
	if _u.mutation.TrackerCleared() && len(_u.mutation.TrackerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackerEntry.tracker"`)
	}
	return nil
}

func (_u *TrackerEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackerentry.Table, trackerentry.Columns, sqlgraph.NewFieldSpec(trackerentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(trackerentry.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EntryDate(); ok {
		_spec.SetField(trackerentry.FieldEntryDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Granularity(); ok {
		_spec.SetField(trackerentry.FieldGranularity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(trackerentry.FieldSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlot(); ok {
		_spec.AddField(trackerentry.FieldSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FieldValues(); ok {
		_spec.SetField(trackerentry.FieldFieldValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(trackerentry.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(trackerentry.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trackerentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TrackerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   trackerentry.TrackerTable,
			Columns: []string{trackerentry.TrackerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tracker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   trackerentry.TrackerTable,
			Columns: []string{trackerentry.TrackerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tracker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrackerEntryUpdateOne is the builder for updating a single TrackerEntry entity.
type TrackerEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrackerEntryMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *TrackerEntryUpdateOne) SetOwnerID(v uuid.UUID) *TrackerEntryUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *TrackerEntryUpdateOne) SetNillableOwnerID(v *uuid.UUID) *TrackerEntryUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetEntryDate sets the "entry_date" field.
func (_u *TrackerEntryUpdateOne) SetEntryDate(v string) *TrackerEntryUpdateOne {
	_u.mutation.SetEntryDate(v)
	return _u
}

// SetNillableEntryDate sets the "entry_date" field if the given value is not nil.
func (_u *TrackerEntryUpdateOne) SetNillableEntryDate(v *string) *TrackerEntryUpdateOne {
	if v != nil {
		_u.SetEntryDate(*v)
	}
	return _u
}

// SetGranularity sets the "granularity" field.
func (_u *TrackerEntryUpdateOne) SetGranularity(v trackerentry.Granularity) *TrackerEntryUpdateOne {
	_u.mutation.SetGranularity(v)
	return _u
}

// SetNillableGranularity sets the "granularity" field if the given value is not nil.
func (_u *TrackerEntryUpdateOne) SetNillableGranularity(v *trackerentry.Granularity) *TrackerEntryUpdateOne {
	if v != nil {
		_u.SetGranularity(*v)
	}
	return _u
}

// SetSlot sets the "slot" field.
func (_u *TrackerEntryUpdateOne) SetSlot(v int) *TrackerEntryUpdateOne {
	_u.mutation.ResetSlot()
	_u.mutation.SetSlot(v)
	return _u
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_u *TrackerEntryUpdateOne) SetNillableSlot(v *int) *TrackerEntryUpdateOne {
	if v != nil {
		_u.SetSlot(*v)
	}
	return _u
}

// AddSlot adds value to the "slot" field.
func (_u *TrackerEntryUpdateOne) AddSlot(v int) *TrackerEntryUpdateOne {
	_u.mutation.AddSlot(v)
	return _u
}

// SetFieldValues sets the "field_values" field.
func (_u *TrackerEntryUpdateOne) SetFieldValues(v map[string]interface{}) *TrackerEntryUpdateOne {
	_u.mutation.SetFieldValues(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TrackerEntryUpdateOne) SetNotes(v string) *TrackerEntryUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TrackerEntryUpdateOne) SetNillableNotes(v *string) *TrackerEntryUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TrackerEntryUpdateOne) ClearNotes() *TrackerEntryUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrackerEntryUpdateOne) SetUpdatedAt(v time.Time) *TrackerEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_u *TrackerEntryUpdateOne) SetTrackerID(id uuid.UUID) *TrackerEntryUpdateOne {
	_u.mutation.SetTrackerID(id)
	return _u
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_u *TrackerEntryUpdateOne) SetTracker(v *Tracker) *TrackerEntryUpdateOne {
	return _u.SetTrackerID(v.ID)
}

// Mutation returns the TrackerEntryMutation object of the builder.
func (_u *TrackerEntryUpdateOne) Mutation() *TrackerEntryMutation {
	return _u.mutation
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (_u *TrackerEntryUpdateOne) ClearTracker() *TrackerEntryUpdateOne {
	_u.mutation.ClearTracker()
	return _u
}

// Where appends a list predicates to the TrackerEntryUpdate builder.
func (_u *TrackerEntryUpdateOne) Where(ps ...predicate.TrackerEntry) *TrackerEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrackerEntryUpdateOne) Select(field string, fields ...string) *TrackerEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrackerEntry entity.
func (_u *TrackerEntryUpdateOne) Save(ctx context.Context) (*TrackerEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackerEntryUpdateOne) SaveX(ctx context.Context) *TrackerEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrackerEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackerEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrackerEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := trackerentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackerEntryUpdateOne) check() error {
	if v, ok := _u.mutation.EntryDate(); ok {
		if err := trackerentry.EntryDateValidator(v); err != nil {
			return &ValidationError{Name: "entry_date", err: fmt.Errorf(`ent: validator failed for field "TrackerEntry.entry_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Granularity(); ok {
		if err := trackerentry.GranularityValidator(v); err != nil {
			return &ValidationError{Name: "granularity", err: fmt.Errorf(`ent: validator failed for field "TrackerEntry.granularity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Notes(); ok {
		if err := trackerentry.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`ent: validator failed for field "TrackerEntry.notes": %w`, err)}
		}
	}
	if _u.mutation.TrackerCleared() && len(_u.mutation.TrackerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackerEntry.tracker"`)
	}
	return nil
}

func (_u *TrackerEntryUpdateOne) sqlSave(ctx context.Context) (_node *TrackerEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackerentry.Table, trackerentry.Columns, sqlgraph.NewFieldSpec(trackerentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrackerEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trackerentry.FieldID)
		for _, f := range fields {
			if !trackerentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trackerentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(trackerentry.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EntryDate(); ok {
		_spec.SetField(trackerentry.FieldEntryDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Granularity(); ok {
		_spec.SetField(trackerentry.FieldGranularity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Slot(); ok {
		_spec.SetField(trackerentry.FieldSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlot(); ok {
		_spec.AddField(trackerentry.FieldSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FieldValues(); ok {
		_spec.SetField(trackerentry.FieldFieldValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(trackerentry.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(trackerentry.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trackerentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TrackerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   trackerentry.TrackerTable,
			Columns: []string{trackerentry.TrackerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tracker.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   trackerentry.TrackerTable,
			Columns: []string{trackerentry.TrackerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tracker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TrackerEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackerentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

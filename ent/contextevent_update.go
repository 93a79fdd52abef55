// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"tracker-studio-api/ent/contextevent"
	"tracker-studio-api/ent/predicate"
	"tracker-studio-api/ent/tracker"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ContextEventUpdate is the builder for updating ContextEvent entities.
type ContextEventUpdate struct {
	config
	hooks    []Hook
	mutation *ContextEventMutation
}

// Where appends a list predicates to the ContextEventUpdate builder.
func (_u *ContextEventUpdate) Where(ps ...predicate.ContextEvent) *ContextEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ContextEventUpdate) SetOwnerID(v uuid.UUID) *ContextEventUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ContextEventUpdate) SetNillableOwnerID(v *uuid.UUID) *ContextEventUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *ContextEventUpdate) SetLabel(v string) *ContextEventUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ContextEventUpdate) SetNillableLabel(v *string) *ContextEventUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContextEventUpdate) SetKind(v string) *ContextEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContextEventUpdate) SetNillableKind(v *string) *ContextEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// ClearKind clears the value of the "kind" field.
func (_u *ContextEventUpdate) ClearKind() *ContextEventUpdate {
	_u.mutation.ClearKind()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ContextEventUpdate) SetStartDate(v string) *ContextEventUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ContextEventUpdate) SetNillableStartDate(v *string) *ContextEventUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ContextEventUpdate) SetEndDate(v string) *ContextEventUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ContextEventUpdate) SetNillableEndDate(v *string) *ContextEventUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ContextEventUpdate) ClearEndDate() *ContextEventUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_u *ContextEventUpdate) SetTrackerID(id uuid.UUID) *ContextEventUpdate {
	_u.mutation.SetTrackerID(id)
	return _u
}

// SetNillableTrackerID sets the "tracker" edge to the Tracker entity by ID if the given value is not nil.
func (_u *ContextEventUpdate) SetNillableTrackerID(id *uuid.UUID) *ContextEventUpdate {
	if id != nil {
		_u = _u.SetTrackerID(*id)
	}
	return _u
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_u *ContextEventUpdate) SetTracker(v *Tracker) *ContextEventUpdate {
	return _u.SetTrackerID(v.ID)
}

// Mutation returns the ContextEventMutation object of the builder.
func (_u *ContextEventUpdate) Mutation() *ContextEventMutation {
	return _u.mutation
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (_u *ContextEventUpdate) ClearTracker() *ContextEventUpdate {
	_u.mutation.ClearTracker()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextEventUpdate) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := contextevent.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := contextevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartDate(); ok {
		if err := contextevent.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.start_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndDate(); ok {
		if err := contextevent.EndDateValidator(v); err != nil {
			return &ValidationError{Name: "end_date", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.end_date": %w`, err)}
		}
	}
	return nil
}

func (_u *ContextEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextevent.Table, contextevent.Columns, sqlgraph.NewFieldSpec(contextevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(contextevent.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(contextevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contextevent.FieldKind, field.TypeString, value)
	}
	if _u.mutation.KindCleared() {
		_spec.ClearField(contextevent.FieldKind, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(contextevent.FieldStartDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(contextevent.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(contextevent.FieldEndDate, field.TypeString)
	}
	if _u.mutation.TrackerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   contextevent.TrackerTable,
			Columns: []string{contextevent.TrackerColumn},
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
			Table:   contextevent.TrackerTable,
			Columns: []string{contextevent.TrackerColumn},
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
			err = &NotFoundError{contextevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextEventUpdateOne is the builder for updating a single ContextEvent entity.
type ContextEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextEventMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *ContextEventUpdateOne) SetOwnerID(v uuid.UUID) *ContextEventUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ContextEventUpdateOne) SetNillableOwnerID(v *uuid.UUID) *ContextEventUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *ContextEventUpdateOne) SetLabel(v string) *ContextEventUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ContextEventUpdateOne) SetNillableLabel(v *string) *ContextEventUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ContextEventUpdateOne) SetKind(v string) *ContextEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ContextEventUpdateOne) SetNillableKind(v *string) *ContextEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// ClearKind clears the value of the "kind" field.
func (_u *ContextEventUpdateOne) ClearKind() *ContextEventUpdateOne {
	_u.mutation.ClearKind()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ContextEventUpdateOne) SetStartDate(v string) *ContextEventUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ContextEventUpdateOne) SetNillableStartDate(v *string) *ContextEventUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ContextEventUpdateOne) SetEndDate(v string) *ContextEventUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ContextEventUpdateOne) SetNillableEndDate(v *string) *ContextEventUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ContextEventUpdateOne) ClearEndDate() *ContextEventUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_u *ContextEventUpdateOne) SetTrackerID(id uuid.UUID) *ContextEventUpdateOne {
	_u.mutation.SetTrackerID(id)
	return _u
}

// SetNillableTrackerID sets the "tracker" edge to the Tracker entity by ID if the given value is not nil.
func (_u *ContextEventUpdateOne) SetNillableTrackerID(id *uuid.UUID) *ContextEventUpdateOne {
	if id != nil {
		_u = _u.SetTrackerID(*id)
	}
	return _u
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_u *ContextEventUpdateOne) SetTracker(v *Tracker) *ContextEventUpdateOne {
	return _u.SetTrackerID(v.ID)
}

// Mutation returns the ContextEventMutation object of the builder.
func (_u *ContextEventUpdateOne) Mutation() *ContextEventMutation {
	return _u.mutation
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (_u *ContextEventUpdateOne) ClearTracker() *ContextEventUpdateOne {
	_u.mutation.ClearTracker()
	return _u
}

// Where appends a list predicates to the ContextEventUpdate builder.
func (_u *ContextEventUpdateOne) Where(ps ...predicate.ContextEvent) *ContextEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextEventUpdateOne) Select(field string, fields ...string) *ContextEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextEvent entity.
func (_u *ContextEventUpdateOne) Save(ctx context.Context) (*ContextEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextEventUpdateOne) SaveX(ctx context.Context) *ContextEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextEventUpdateOne) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := contextevent.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := contextevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartDate(); ok {
		if err := contextevent.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.start_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndDate(); ok {
		if err := contextevent.EndDateValidator(v); err != nil {
			return &ValidationError{Name: "end_date", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.end_date": %w`, err)}
		}
	}
	return nil
}

func (_u *ContextEventUpdateOne) sqlSave(ctx context.Context) (_node *ContextEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextevent.Table, contextevent.Columns, sqlgraph.NewFieldSpec(contextevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextevent.FieldID)
		for _, f := range fields {
			if !contextevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contextevent.FieldID {
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
		_spec.SetField(contextevent.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(contextevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(contextevent.FieldKind, field.TypeString, value)
	}
	if _u.mutation.KindCleared() {
		_spec.ClearField(contextevent.FieldKind, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(contextevent.FieldStartDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(contextevent.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(contextevent.FieldEndDate, field.TypeString)
	}
	if _u.mutation.TrackerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   contextevent.TrackerTable,
			Columns: []string{contextevent.TrackerColumn},
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
			Table:   contextevent.TrackerTable,
			Columns: []string{contextevent.TrackerColumn},
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
	_node = &ContextEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/predicate"
	"tracker-studio-api/ent/reminder"
	"tracker-studio-api/ent/tracker"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReminderUpdate is the builder for updating Reminder entities.
type ReminderUpdate struct {
	config
	hooks    []Hook
	mutation *ReminderMutation
}

// Where appends a list predicates to the ReminderUpdate builder.
func (_u *ReminderUpdate) Where(ps ...predicate.Reminder) *ReminderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ReminderUpdate) SetOwnerID(v uuid.UUID) *ReminderUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableOwnerID(v *uuid.UUID) *ReminderUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReminderUpdate) SetKind(v reminder.Kind) *ReminderUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableKind(v *reminder.Kind) *ReminderUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTimeOfDay sets the "time_of_day" field.
func (_u *ReminderUpdate) SetTimeOfDay(v int) *ReminderUpdate {
	_u.mutation.ResetTimeOfDay()
	_u.mutation.SetTimeOfDay(v)
	return _u
}

// SetNillableTimeOfDay sets the "time_of_day" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableTimeOfDay(v *int) *ReminderUpdate {
	if v != nil {
		_u.SetTimeOfDay(*v)
	}
	return _u
}

// AddTimeOfDay adds value to the "time_of_day" field.
func (_u *ReminderUpdate) AddTimeOfDay(v int) *ReminderUpdate {
	_u.mutation.AddTimeOfDay(v)
	return _u
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_u *ReminderUpdate) SetDaysOfWeek(v []int) *ReminderUpdate {
	_u.mutation.SetDaysOfWeek(v)
	return _u
}

// AppendDaysOfWeek appends value to the "days_of_week" field.
func (_u *ReminderUpdate) AppendDaysOfWeek(v []int) *ReminderUpdate {
	_u.mutation.AppendDaysOfWeek(v)
	return _u
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (_u *ReminderUpdate) ClearDaysOfWeek() *ReminderUpdate {
	_u.mutation.ClearDaysOfWeek()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ReminderUpdate) SetEnabled(v bool) *ReminderUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableEnabled(v *bool) *ReminderUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *ReminderUpdate) SetLastFiredAt(v time.Time) *ReminderUpdate {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableLastFiredAt(v *time.Time) *ReminderUpdate {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *ReminderUpdate) ClearLastFiredAt() *ReminderUpdate {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReminderUpdate) SetUpdatedAt(v time.Time) *ReminderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_u *ReminderUpdate) SetTrackerID(id uuid.UUID) *ReminderUpdate {
	_u.mutation.SetTrackerID(id)
	return _u
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_u *ReminderUpdate) SetTracker(v *Tracker) *ReminderUpdate {
	return _u.SetTrackerID(v.ID)
}

// Mutation returns the ReminderMutation object of the builder.
func (_u *ReminderUpdate) Mutation() *ReminderMutation {
	return _u.mutation
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (_u *ReminderUpdate) ClearTracker() *ReminderUpdate {
	_u.mutation.ClearTracker()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReminderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReminderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReminderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reminder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := reminder.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Reminder.kind": %w`, err)}
		}
	}
	if _u.mutation.TrackerCleared() && len(_u.mutation.TrackerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reminder.tracker"`)
	}
	return nil
}

func (_u *ReminderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(reminder.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reminder.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeOfDay(); ok {
		_spec.SetField(reminder.FieldTimeOfDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeOfDay(); ok {
		_spec.AddField(reminder.FieldTimeOfDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DaysOfWeek(); ok {
		_spec.SetField(reminder.FieldDaysOfWeek, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDaysOfWeek(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reminder.FieldDaysOfWeek, value)
		})
	}
	if _u.mutation.DaysOfWeekCleared() {
		_spec.ClearField(reminder.FieldDaysOfWeek, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(reminder.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(reminder.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(reminder.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reminder.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TrackerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   reminder.TrackerTable,
			Columns: []string{reminder.TrackerColumn},
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
			Table:   reminder.TrackerTable,
			Columns: []string{reminder.TrackerColumn},
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
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReminderUpdateOne is the builder for updating a single Reminder entity.
type ReminderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReminderMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *ReminderUpdateOne) SetOwnerID(v uuid.UUID) *ReminderUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableOwnerID(v *uuid.UUID) *ReminderUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReminderUpdateOne) SetKind(v reminder.Kind) *ReminderUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableKind(v *reminder.Kind) *ReminderUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTimeOfDay sets the "time_of_day" field.
func (_u *ReminderUpdateOne) SetTimeOfDay(v int) *ReminderUpdateOne {
	_u.mutation.ResetTimeOfDay()
	_u.mutation.SetTimeOfDay(v)
	return _u
}

// SetNillableTimeOfDay sets the "time_of_day" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableTimeOfDay(v *int) *ReminderUpdateOne {
	if v != nil {
		_u.SetTimeOfDay(*v)
	}
	return _u
}

// AddTimeOfDay adds value to the "time_of_day" field.
func (_u *ReminderUpdateOne) AddTimeOfDay(v int) *ReminderUpdateOne {
	_u.mutation.AddTimeOfDay(v)
	return _u
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_u *ReminderUpdateOne) SetDaysOfWeek(v []int) *ReminderUpdateOne {
	_u.mutation.SetDaysOfWeek(v)
	return _u
}

// AppendDaysOfWeek appends value to the "days_of_week" field.
func (_u *ReminderUpdateOne) AppendDaysOfWeek(v []int) *ReminderUpdateOne {
	_u.mutation.AppendDaysOfWeek(v)
	return _u
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (_u *ReminderUpdateOne) ClearDaysOfWeek() *ReminderUpdateOne {
	_u.mutation.ClearDaysOfWeek()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ReminderUpdateOne) SetEnabled(v bool) *ReminderUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableEnabled(v *bool) *ReminderUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *ReminderUpdateOne) SetLastFiredAt(v time.Time) *ReminderUpdateOne {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableLastFiredAt(v *time.Time) *ReminderUpdateOne {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *ReminderUpdateOne) ClearLastFiredAt() *ReminderUpdateOne {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReminderUpdateOne) SetUpdatedAt(v time.Time) *ReminderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_u *ReminderUpdateOne) SetTrackerID(id uuid.UUID) *ReminderUpdateOne {
	_u.mutation.SetTrackerID(id)
	return _u
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_u *ReminderUpdateOne) SetTracker(v *Tracker) *ReminderUpdateOne {
	return _u.SetTrackerID(v.ID)
}

// Mutation returns the ReminderMutation object of the builder.
func (_u *ReminderUpdateOne) Mutation() *ReminderMutation {
	return _u.mutation
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (_u *ReminderUpdateOne) ClearTracker() *ReminderUpdateOne {
	_u.mutation.ClearTracker()
	return _u
}

// Where appends a list predicates to the ReminderUpdate builder.
func (_u *ReminderUpdateOne) Where(ps ...predicate.Reminder) *ReminderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReminderUpdateOne) Select(field string, fields ...string) *ReminderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reminder entity.
func (_u *ReminderUpdateOne) Save(ctx context.Context) (*Reminder, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderUpdateOne) SaveX(ctx context.Context) *Reminder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReminderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReminderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reminder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := reminder.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Reminder.kind": %w`, err)}
		}
	}
	if _u.mutation.TrackerCleared() && len(_u.mutation.TrackerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Reminder.tracker"`)
	}
	return nil
}

func (_u *ReminderUpdateOne) sqlSave(ctx context.Context) (_node *Reminder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Reminder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reminder.FieldID)
		for _, f := range fields {
			if !reminder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reminder.FieldID {
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
		_spec.SetField(reminder.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reminder.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeOfDay(); ok {
		_spec.SetField(reminder.FieldTimeOfDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeOfDay(); ok {
		_spec.AddField(reminder.FieldTimeOfDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DaysOfWeek(); ok {
		_spec.SetField(reminder.FieldDaysOfWeek, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDaysOfWeek(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reminder.FieldDaysOfWeek, value)
		})
	}
	if _u.mutation.DaysOfWeekCleared() {
		_spec.ClearField(reminder.FieldDaysOfWeek, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(reminder.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(reminder.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(reminder.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reminder.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TrackerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   reminder.TrackerTable,
			Columns: []string{reminder.TrackerColumn},
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
			Table:   reminder.TrackerTable,
			Columns: []string{reminder.TrackerColumn},
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
	_node = &Reminder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

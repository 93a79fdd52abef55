// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/reminder"
	"tracker-studio-api/ent/tracker"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReminderCreate is the builder for creating a Reminder entity.
type ReminderCreate struct {
	config
	mutation *ReminderMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ReminderCreate) SetOwnerID(v uuid.UUID) *ReminderCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ReminderCreate) SetKind(v reminder.Kind) *ReminderCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableKind(v *reminder.Kind) *ReminderCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetTimeOfDay sets the "time_of_day" field.
func (_c *ReminderCreate) SetTimeOfDay(v int) *ReminderCreate {
	_c.mutation.SetTimeOfDay(v)
	return _c
}

// SetDaysOfWeek sets the "days_of_week" field.
func (_c *ReminderCreate) SetDaysOfWeek(v []int) *ReminderCreate {
	_c.mutation.SetDaysOfWeek(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ReminderCreate) SetEnabled(v bool) *ReminderCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableEnabled(v *bool) *ReminderCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_c *ReminderCreate) SetLastFiredAt(v time.Time) *ReminderCreate {
	_c.mutation.SetLastFiredAt(v)
	return _c
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableLastFiredAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetLastFiredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReminderCreate) SetCreatedAt(v time.Time) *ReminderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableCreatedAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReminderCreate) SetUpdatedAt(v time.Time) *ReminderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableUpdatedAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReminderCreate) SetID(v uuid.UUID) *ReminderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableID(v *uuid.UUID) *ReminderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_c *ReminderCreate) SetTrackerID(id uuid.UUID) *ReminderCreate {
	_c.mutation.SetTrackerID(id)
	return _c
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_c *ReminderCreate) SetTracker(v *Tracker) *ReminderCreate {
	return _c.SetTrackerID(v.ID)
}

// Mutation returns the ReminderMutation object of the builder.
func (_c *ReminderCreate) Mutation() *ReminderMutation {
	return _c.mutation
}

// Save creates the Reminder in the database.
func (_c *ReminderCreate) Save(ctx context.Context) (*Reminder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReminderCreate) SaveX(ctx context.Context) *Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReminderCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := reminder.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := reminder.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reminder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reminder.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reminder.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReminderCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Reminder.owner_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Reminder.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := reminder.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Reminder.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeOfDay(); !ok {
		return &ValidationError{Name: "time_of_day", err: errors.New(`ent: missing required field "Reminder.time_of_day"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Reminder.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Reminder.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Reminder.updated_at"`)}
	}
	if len(_c.mutation.TrackerIDs()) == 0 {
		return &ValidationError{Name: "tracker", err: errors.New(`ent: missing required edge "Reminder.tracker"`)}
	}
	return nil
}

func (_c *ReminderCreate) sqlSave(ctx context.Context) (*Reminder, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReminderCreate) createSpec() (*Reminder, *sqlgraph.CreateSpec) {
	var (
		_node = &Reminder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reminder.Table, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(reminder.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(reminder.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.TimeOfDay(); ok {
		_spec.SetField(reminder.FieldTimeOfDay, field.TypeInt, value)
		_node.TimeOfDay = value
	}
	if value, ok := _c.mutation.DaysOfWeek(); ok {
		_spec.SetField(reminder.FieldDaysOfWeek, field.TypeJSON, value)
		_node.DaysOfWeek = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(reminder.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.LastFiredAt(); ok {
		_spec.SetField(reminder.FieldLastFiredAt, field.TypeTime, value)
		_node.LastFiredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reminder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reminder.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TrackerIDs(); len(nodes) > 0 {
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
		_node.reminder_tracker = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReminderCreateBulk is the builder for creating many Reminder entities in bulk.
type ReminderCreateBulk struct {
	config
	err      error
	builders []*ReminderCreate
}

// Save creates the Reminder entities in the database.
func (_c *ReminderCreateBulk) Save(ctx context.Context) ([]*Reminder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reminder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReminderCreateBulk) SaveX(ctx context.Context) []*Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

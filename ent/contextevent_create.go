// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/contextevent"
	"tracker-studio-api/ent/tracker"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ContextEventCreate is the builder for creating a ContextEvent entity.
type ContextEventCreate struct {
	config
	mutation *ContextEventMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ContextEventCreate) SetOwnerID(v uuid.UUID) *ContextEventCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *ContextEventCreate) SetLabel(v string) *ContextEventCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ContextEventCreate) SetKind(v string) *ContextEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ContextEventCreate) SetNillableKind(v *string) *ContextEventCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ContextEventCreate) SetStartDate(v string) *ContextEventCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ContextEventCreate) SetEndDate(v string) *ContextEventCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *ContextEventCreate) SetNillableEndDate(v *string) *ContextEventCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContextEventCreate) SetCreatedAt(v time.Time) *ContextEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContextEventCreate) SetNillableCreatedAt(v *time.Time) *ContextEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContextEventCreate) SetID(v uuid.UUID) *ContextEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContextEventCreate) SetNillableID(v *uuid.UUID) *ContextEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_c *ContextEventCreate) SetTrackerID(id uuid.UUID) *ContextEventCreate {
	_c.mutation.SetTrackerID(id)
	return _c
}

// SetNillableTrackerID sets the "tracker" edge to the Tracker entity by ID if the given value is not nil.
func (_c *ContextEventCreate) SetNillableTrackerID(id *uuid.UUID) *ContextEventCreate {
	if id != nil {
		_c = _c.SetTrackerID(*id)
	}
	return _c
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_c *ContextEventCreate) SetTracker(v *Tracker) *ContextEventCreate {
	return _c.SetTrackerID(v.ID)
}

// Mutation returns the ContextEventMutation object of the builder.
func (_c *ContextEventCreate) Mutation() *ContextEventMutation {
	return _c.mutation
}

// Save creates the ContextEvent in the database.
func (_c *ContextEventCreate) Save(ctx context.Context) (*ContextEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextEventCreate) SaveX(ctx context.Context) *ContextEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contextevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contextevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextEventCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ContextEvent.owner_id"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "ContextEvent.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := contextevent.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.label": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := contextevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "ContextEvent.start_date"`)}
	}
	if v, ok := _c.mutation.StartDate(); ok {
		if err := contextevent.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.start_date": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EndDate(); ok {
		if err := contextevent.EndDateValidator(v); err != nil {
			return &ValidationError{Name: "end_date", err: fmt.Errorf(`ent: validator failed for field "ContextEvent.end_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContextEvent.created_at"`)}
	}
	return nil
}

func (_c *ContextEventCreate) sqlSave(ctx context.Context) (*ContextEvent, error) {
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

func (_c *ContextEventCreate) createSpec() (*ContextEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contextevent.Table, sqlgraph.NewFieldSpec(contextevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(contextevent.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(contextevent.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(contextevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(contextevent.FieldStartDate, field.TypeString, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(contextevent.FieldEndDate, field.TypeString, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contextevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TrackerIDs(); len(nodes) > 0 {
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
		_node.context_event_tracker = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContextEventCreateBulk is the builder for creating many ContextEvent entities in bulk.
type ContextEventCreateBulk struct {
	config
	err      error
	builders []*ContextEventCreate
}

// Save creates the ContextEvent entities in the database.
func (_c *ContextEventCreateBulk) Save(ctx context.Context) ([]*ContextEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextEventMutation)
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
func (_c *ContextEventCreateBulk) SaveX(ctx context.Context) []*ContextEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

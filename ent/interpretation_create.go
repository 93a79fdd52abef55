// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/interpretation"
	"tracker-studio-api/ent/tracker"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// InterpretationCreate is the builder for creating a Interpretation entity.
type InterpretationCreate struct {
	config
	mutation *InterpretationMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *InterpretationCreate) SetOwnerID(v uuid.UUID) *InterpretationCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *InterpretationCreate) SetStartDate(v string) *InterpretationCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *InterpretationCreate) SetEndDate(v string) *InterpretationCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *InterpretationCreate) SetNillableEndDate(v *string) *InterpretationCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *InterpretationCreate) SetBody(v string) *InterpretationCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterpretationCreate) SetCreatedAt(v time.Time) *InterpretationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterpretationCreate) SetNillableCreatedAt(v *time.Time) *InterpretationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InterpretationCreate) SetUpdatedAt(v time.Time) *InterpretationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InterpretationCreate) SetNillableUpdatedAt(v *time.Time) *InterpretationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterpretationCreate) SetID(v uuid.UUID) *InterpretationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InterpretationCreate) SetNillableID(v *uuid.UUID) *InterpretationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_c *InterpretationCreate) SetTrackerID(id uuid.UUID) *InterpretationCreate {
	_c.mutation.SetTrackerID(id)
	return _c
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_c *InterpretationCreate) SetTracker(v *Tracker) *InterpretationCreate {
	return _c.SetTrackerID(v.ID)
}

// Mutation returns the InterpretationMutation object of the builder.
func (_c *InterpretationCreate) Mutation() *InterpretationMutation {
	return _c.mutation
}

// Save creates the Interpretation in the database.
func (_c *InterpretationCreate) Save(ctx context.Context) (*Interpretation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterpretationCreate) SaveX(ctx context.Context) *Interpretation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterpretationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterpretationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterpretationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interpretation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interpretation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := interpretation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterpretationCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Interpretation.owner_id"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Interpretation.start_date"`)}
	}
	if v, ok := _c.mutation.StartDate(); ok {
		if err := interpretation.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "Interpretation.start_date": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EndDate(); ok {
		if err := interpretation.EndDateValidator(v); err != nil {
			return &ValidationError{Name: "end_date", err: fmt.Errorf(`ent: validator failed for field "Interpretation.end_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Interpretation.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := interpretation.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Interpretation.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Interpretation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Interpretation.updated_at"`)}
	}
	if len(_c.mutation.TrackerIDs()) == 0 {
		return &ValidationError{Name: "tracker", err: errors.New(`ent: missing required edge "Interpretation.tracker"`)}
	}
	return nil
}

func (_c *InterpretationCreate) sqlSave(ctx context.Context) (*Interpretation, error) {
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

func (_c *InterpretationCreate) createSpec() (*Interpretation, *sqlgraph.CreateSpec) {
	var (
		_node = &Interpretation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interpretation.Table, sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(interpretation.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(interpretation.FieldStartDate, field.TypeString, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(interpretation.FieldEndDate, field.TypeString, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(interpretation.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interpretation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interpretation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TrackerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   interpretation.TrackerTable,
			Columns: []string{interpretation.TrackerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tracker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.interpretation_tracker = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InterpretationCreateBulk is the builder for creating many Interpretation entities in bulk.
type InterpretationCreateBulk struct {
	config
	err      error
	builders []*InterpretationCreate
}

// Save creates the Interpretation entities in the database.
func (_c *InterpretationCreateBulk) Save(ctx context.Context) ([]*Interpretation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interpretation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterpretationMutation)
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
func (_c *InterpretationCreateBulk) SaveX(ctx context.Context) []*Interpretation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterpretationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterpretationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

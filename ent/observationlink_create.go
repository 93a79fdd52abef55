// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/observationlink"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ObservationLinkCreate is the builder for creating a ObservationLink entity.
type ObservationLinkCreate struct {
	config
	mutation *ObservationLinkMutation
	hooks    []Hook
}

// SetTrackerID sets the "tracker_id" field.
func (_c *ObservationLinkCreate) SetTrackerID(v uuid.UUID) *ObservationLinkCreate {
	_c.mutation.SetTrackerID(v)
	return _c
}

// SetObserverUserID sets the "observer_user_id" field.
func (_c *ObservationLinkCreate) SetObserverUserID(v uuid.UUID) *ObservationLinkCreate {
	_c.mutation.SetObserverUserID(v)
	return _c
}

// SetContextType sets the "context_type" field.
func (_c *ObservationLinkCreate) SetContextType(v observationlink.ContextType) *ObservationLinkCreate {
	_c.mutation.SetContextType(v)
	return _c
}

// SetContextID sets the "context_id" field.
func (_c *ObservationLinkCreate) SetContextID(v uuid.UUID) *ObservationLinkCreate {
	_c.mutation.SetContextID(v)
	return _c
}

// SetGrantedBy sets the "granted_by" field.
func (_c *ObservationLinkCreate) SetGrantedBy(v uuid.UUID) *ObservationLinkCreate {
	_c.mutation.SetGrantedBy(v)
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *ObservationLinkCreate) SetRevokedAt(v time.Time) *ObservationLinkCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *ObservationLinkCreate) SetNillableRevokedAt(v *time.Time) *ObservationLinkCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ObservationLinkCreate) SetCreatedAt(v time.Time) *ObservationLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ObservationLinkCreate) SetNillableCreatedAt(v *time.Time) *ObservationLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ObservationLinkCreate) SetID(v uuid.UUID) *ObservationLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ObservationLinkCreate) SetNillableID(v *uuid.UUID) *ObservationLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ObservationLinkMutation object of the builder.
func (_c *ObservationLinkCreate) Mutation() *ObservationLinkMutation {
	return _c.mutation
}

// Save creates the ObservationLink in the database.
func (_c *ObservationLinkCreate) Save(ctx context.Context) (*ObservationLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObservationLinkCreate) SaveX(ctx context.Context) *ObservationLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ObservationLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := observationlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := observationlink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObservationLinkCreate) check() error {
	if _, ok := _c.mutation.TrackerID(); !ok {
		return &ValidationError{Name: "tracker_id", err: errors.New(`ent: missing required field "ObservationLink.tracker_id"`)}
	}
	if _, ok := _c.mutation.ObserverUserID(); !ok {
		return &ValidationError{Name: "observer_user_id", err: errors.New(`ent: missing required field "ObservationLink.observer_user_id"`)}
	}
	if _, ok := _c.mutation.ContextType(); !ok {
		return &ValidationError{Name: "context_type", err: errors.New(`ent: missing required field "ObservationLink.context_type"`)}
	}
	if v, ok := _c.mutation.ContextType(); ok {
		if err := observationlink.ContextTypeValidator(v); err != nil {
			return &ValidationError{Name: "context_type", err: fmt.Errorf(`ent: validator failed for field "ObservationLink.context_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextID(); !ok {
		return &ValidationError{Name: "context_id", err: errors.New(`ent: missing required field "ObservationLink.context_id"`)}
	}
	if _, ok := _c.mutation.GrantedBy(); !ok {
		return &ValidationError{Name: "granted_by", err: errors.New(`ent: missing required field "ObservationLink.granted_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ObservationLink.created_at"`)}
	}
	return nil
}

func (_c *ObservationLinkCreate) sqlSave(ctx context.Context) (*ObservationLink, error) {
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

func (_c *ObservationLinkCreate) createSpec() (*ObservationLink, *sqlgraph.CreateSpec) {
	var (
		_node = &ObservationLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(observationlink.Table, sqlgraph.NewFieldSpec(observationlink.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TrackerID(); ok {
		_spec.SetField(observationlink.FieldTrackerID, field.TypeUUID, value)
		_node.TrackerID = value
	}
	if value, ok := _c.mutation.ObserverUserID(); ok {
		_spec.SetField(observationlink.FieldObserverUserID, field.TypeUUID, value)
		_node.ObserverUserID = value
	}
	if value, ok := _c.mutation.ContextType(); ok {
		_spec.SetField(observationlink.FieldContextType, field.TypeEnum, value)
		_node.ContextType = value
	}
	if value, ok := _c.mutation.ContextID(); ok {
		_spec.SetField(observationlink.FieldContextID, field.TypeUUID, value)
		_node.ContextID = value
	}
	if value, ok := _c.mutation.GrantedBy(); ok {
		_spec.SetField(observationlink.FieldGrantedBy, field.TypeUUID, value)
		_node.GrantedBy = value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(observationlink.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(observationlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ObservationLinkCreateBulk is the builder for creating many ObservationLink entities in bulk.
type ObservationLinkCreateBulk struct {
	config
	err      error
	builders []*ObservationLinkCreate
}

// Save creates the ObservationLink entities in the database.
func (_c *ObservationLinkCreateBulk) Save(ctx context.Context) ([]*ObservationLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ObservationLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObservationLinkMutation)
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
func (_c *ObservationLinkCreateBulk) SaveX(ctx context.Context) []*ObservationLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

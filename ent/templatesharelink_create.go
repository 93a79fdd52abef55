// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/template"
	"tracker-studio-api/ent/templatesharelink"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TemplateShareLinkCreate is the builder for creating a TemplateShareLink entity.
type TemplateShareLinkCreate struct {
	config
	mutation *TemplateShareLinkMutation
	hooks    []Hook
}

// SetToken sets the "token" field.
func (_c *TemplateShareLinkCreate) SetToken(v string) *TemplateShareLinkCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *TemplateShareLinkCreate) SetCreatedBy(v uuid.UUID) *TemplateShareLinkCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *TemplateShareLinkCreate) SetExpiresAt(v time.Time) *TemplateShareLinkCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *TemplateShareLinkCreate) SetNillableExpiresAt(v *time.Time) *TemplateShareLinkCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetMaxUses sets the "max_uses" field.
func (_c *TemplateShareLinkCreate) SetMaxUses(v int) *TemplateShareLinkCreate {
	_c.mutation.SetMaxUses(v)
	return _c
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_c *TemplateShareLinkCreate) SetNillableMaxUses(v *int) *TemplateShareLinkCreate {
	if v != nil {
		_c.SetMaxUses(*v)
	}
	return _c
}

// SetUseCount sets the "use_count" field.
func (_c *TemplateShareLinkCreate) SetUseCount(v int) *TemplateShareLinkCreate {
	_c.mutation.SetUseCount(v)
	return _c
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_c *TemplateShareLinkCreate) SetNillableUseCount(v *int) *TemplateShareLinkCreate {
	if v != nil {
		_c.SetUseCount(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *TemplateShareLinkCreate) SetRevokedAt(v time.Time) *TemplateShareLinkCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *TemplateShareLinkCreate) SetNillableRevokedAt(v *time.Time) *TemplateShareLinkCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TemplateShareLinkCreate) SetCreatedAt(v time.Time) *TemplateShareLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TemplateShareLinkCreate) SetNillableCreatedAt(v *time.Time) *TemplateShareLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TemplateShareLinkCreate) SetID(v uuid.UUID) *TemplateShareLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TemplateShareLinkCreate) SetNillableID(v *uuid.UUID) *TemplateShareLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTemplateID sets the "template" edge to the Template entity by ID.
func (_c *TemplateShareLinkCreate) SetTemplateID(id uuid.UUID) *TemplateShareLinkCreate {
	_c.mutation.SetTemplateID(id)
	return _c
}

// SetTemplate sets the "template" edge to the Template entity.
func (_c *TemplateShareLinkCreate) SetTemplate(v *Template) *TemplateShareLinkCreate {
	return _c.SetTemplateID(v.ID)
}

// Mutation returns the TemplateShareLinkMutation object of the builder.
func (_c *TemplateShareLinkCreate) Mutation() *TemplateShareLinkMutation {
	return _c.mutation
}

// Save creates the TemplateShareLink in the database.
func (_c *TemplateShareLinkCreate) Save(ctx context.Context) (*TemplateShareLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TemplateShareLinkCreate) SaveX(ctx context.Context) *TemplateShareLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TemplateShareLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TemplateShareLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TemplateShareLinkCreate) defaults() {
	if _, ok := _c.mutation.MaxUses(); !ok {
		v := templatesharelink.DefaultMaxUses
		_c.mutation.SetMaxUses(v)
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		v := templatesharelink.DefaultUseCount
		_c.mutation.SetUseCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := templatesharelink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := templatesharelink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TemplateShareLinkCreate) check() error {
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "TemplateShareLink.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := templatesharelink.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "TemplateShareLink.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "TemplateShareLink.created_by"`)}
	}
	if _, ok := _c.mutation.MaxUses(); !ok {
		return &ValidationError{Name: "max_uses", err: errors.New(`ent: missing required field "TemplateShareLink.max_uses"`)}
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		return &ValidationError{Name: "use_count", err: errors.New(`ent: missing required field "TemplateShareLink.use_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TemplateShareLink.created_at"`)}
	}
	if len(_c.mutation.TemplateIDs()) == 0 {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required edge "TemplateShareLink.template"`)}
	}
	return nil
}

func (_c *TemplateShareLinkCreate) sqlSave(ctx context.Context) (*TemplateShareLink, error) {
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

func (_c *TemplateShareLinkCreate) createSpec() (*TemplateShareLink, *sqlgraph.CreateSpec) {
	var (
		_node = &TemplateShareLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(templatesharelink.Table, sqlgraph.NewFieldSpec(templatesharelink.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(templatesharelink.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(templatesharelink.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(templatesharelink.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.MaxUses(); ok {
		_spec.SetField(templatesharelink.FieldMaxUses, field.TypeInt, value)
		_node.MaxUses = value
	}
	if value, ok := _c.mutation.UseCount(); ok {
		_spec.SetField(templatesharelink.FieldUseCount, field.TypeInt, value)
		_node.UseCount = value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(templatesharelink.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(templatesharelink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   templatesharelink.TemplateTable,
			Columns: []string{templatesharelink.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.template_share_link_template = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TemplateShareLinkCreateBulk is the builder for creating many TemplateShareLink entities in bulk.
type TemplateShareLinkCreateBulk struct {
	config
	err      error
	builders []*TemplateShareLinkCreate
}

// Save creates the TemplateShareLink entities in the database.
func (_c *TemplateShareLinkCreateBulk) Save(ctx context.Context) ([]*TemplateShareLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TemplateShareLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TemplateShareLinkMutation)
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
func (_c *TemplateShareLinkCreateBulk) SaveX(ctx context.Context) []*TemplateShareLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TemplateShareLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TemplateShareLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

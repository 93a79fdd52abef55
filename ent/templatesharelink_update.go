// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/predicate"
	"tracker-studio-api/ent/template"
	"tracker-studio-api/ent/templatesharelink"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TemplateShareLinkUpdate is the builder for updating TemplateShareLink entities.
type TemplateShareLinkUpdate struct {
	config
	hooks    []Hook
	mutation *TemplateShareLinkMutation
}

// Where appends a list predicates to the TemplateShareLinkUpdate builder.
func (_u *TemplateShareLinkUpdate) Where(ps ...predicate.TemplateShareLink) *TemplateShareLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToken sets the "token" field.
func (_u *TemplateShareLinkUpdate) SetToken(v string) *TemplateShareLinkUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *TemplateShareLinkUpdate) SetNillableToken(v *string) *TemplateShareLinkUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *TemplateShareLinkUpdate) SetCreatedBy(v uuid.UUID) *TemplateShareLinkUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *TemplateShareLinkUpdate) SetNillableCreatedBy(v *uuid.UUID) *TemplateShareLinkUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TemplateShareLinkUpdate) SetExpiresAt(v time.Time) *TemplateShareLinkUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TemplateShareLinkUpdate) SetNillableExpiresAt(v *time.Time) *TemplateShareLinkUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *TemplateShareLinkUpdate) ClearExpiresAt() *TemplateShareLinkUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *TemplateShareLinkUpdate) SetMaxUses(v int) *TemplateShareLinkUpdate {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *TemplateShareLinkUpdate) SetNillableMaxUses(v *int) *TemplateShareLinkUpdate {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *TemplateShareLinkUpdate) AddMaxUses(v int) *TemplateShareLinkUpdate {
	_u.mutation.AddMaxUses(v)
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *TemplateShareLinkUpdate) SetUseCount(v int) *TemplateShareLinkUpdate {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *TemplateShareLinkUpdate) SetNillableUseCount(v *int) *TemplateShareLinkUpdate {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *TemplateShareLinkUpdate) AddUseCount(v int) *TemplateShareLinkUpdate {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *TemplateShareLinkUpdate) SetRevokedAt(v time.Time) *TemplateShareLinkUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *TemplateShareLinkUpdate) SetNillableRevokedAt(v *time.Time) *TemplateShareLinkUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *TemplateShareLinkUpdate) ClearRevokedAt() *TemplateShareLinkUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// SetTemplateID sets the "template" edge to the Template entity by ID.
func (_u *TemplateShareLinkUpdate) SetTemplateID(id uuid.UUID) *TemplateShareLinkUpdate {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetTemplate sets the "template" edge to the Template entity.
func (_u *TemplateShareLinkUpdate) SetTemplate(v *Template) *TemplateShareLinkUpdate {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the TemplateShareLinkMutation object of the builder.
func (_u *TemplateShareLinkUpdate) Mutation() *TemplateShareLinkMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the Template entity.
func (_u *TemplateShareLinkUpdate) ClearTemplate() *TemplateShareLinkUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TemplateShareLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateShareLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TemplateShareLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateShareLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateShareLinkUpdate) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := templatesharelink.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "TemplateShareLink.token": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TemplateShareLink.template"`)
	}
	return nil
}

func (_u *TemplateShareLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(templatesharelink.Table, templatesharelink.Columns, sqlgraph.NewFieldSpec(templatesharelink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(templatesharelink.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(templatesharelink.FieldCreatedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(templatesharelink.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(templatesharelink.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(templatesharelink.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(templatesharelink.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(templatesharelink.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(templatesharelink.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(templatesharelink.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(templatesharelink.FieldRevokedAt, field.TypeTime)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{templatesharelink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TemplateShareLinkUpdateOne is the builder for updating a single TemplateShareLink entity.
type TemplateShareLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TemplateShareLinkMutation
}

// SetToken sets the "token" field.
func (_u *TemplateShareLinkUpdateOne) SetToken(v string) *TemplateShareLinkUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *TemplateShareLinkUpdateOne) SetNillableToken(v *string) *TemplateShareLinkUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *TemplateShareLinkUpdateOne) SetCreatedBy(v uuid.UUID) *TemplateShareLinkUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *TemplateShareLinkUpdateOne) SetNillableCreatedBy(v *uuid.UUID) *TemplateShareLinkUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TemplateShareLinkUpdateOne) SetExpiresAt(v time.Time) *TemplateShareLinkUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TemplateShareLinkUpdateOne) SetNillableExpiresAt(v *time.Time) *TemplateShareLinkUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *TemplateShareLinkUpdateOne) ClearExpiresAt() *TemplateShareLinkUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetMaxUses sets the "max_uses" field.
func (_u *TemplateShareLinkUpdateOne) SetMaxUses(v int) *TemplateShareLinkUpdateOne {
	_u.mutation.ResetMaxUses()
	_u.mutation.SetMaxUses(v)
	return _u
}

// SetNillableMaxUses sets the "max_uses" field if the given value is not nil.
func (_u *TemplateShareLinkUpdateOne) SetNillableMaxUses(v *int) *TemplateShareLinkUpdateOne {
	if v != nil {
		_u.SetMaxUses(*v)
	}
	return _u
}

// AddMaxUses adds value to the "max_uses" field.
func (_u *TemplateShareLinkUpdateOne) AddMaxUses(v int) *TemplateShareLinkUpdateOne {
	_u.mutation.AddMaxUses(v)
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *TemplateShareLinkUpdateOne) SetUseCount(v int) *TemplateShareLinkUpdateOne {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *TemplateShareLinkUpdateOne) SetNillableUseCount(v *int) *TemplateShareLinkUpdateOne {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *TemplateShareLinkUpdateOne) AddUseCount(v int) *TemplateShareLinkUpdateOne {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *TemplateShareLinkUpdateOne) SetRevokedAt(v time.Time) *TemplateShareLinkUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *TemplateShareLinkUpdateOne) SetNillableRevokedAt(v *time.Time) *TemplateShareLinkUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *TemplateShareLinkUpdateOne) ClearRevokedAt() *TemplateShareLinkUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// SetTemplateID sets the "template" edge to the Template entity by ID.
func (_u *TemplateShareLinkUpdateOne) SetTemplateID(id uuid.UUID) *TemplateShareLinkUpdateOne {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetTemplate sets the "template" edge to the Template entity.
func (_u *TemplateShareLinkUpdateOne) SetTemplate(v *Template) *TemplateShareLinkUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the TemplateShareLinkMutation object of the builder.
func (_u *TemplateShareLinkUpdateOne) Mutation() *TemplateShareLinkMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the Template entity.
func (_u *TemplateShareLinkUpdateOne) ClearTemplate() *TemplateShareLinkUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// Where appends a list predicates to the TemplateShareLinkUpdate builder.
func (_u *TemplateShareLinkUpdateOne) Where(ps ...predicate.TemplateShareLink) *TemplateShareLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TemplateShareLinkUpdateOne) Select(field string, fields ...string) *TemplateShareLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TemplateShareLink entity.
func (_u *TemplateShareLinkUpdateOne) Save(ctx context.Context) (*TemplateShareLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateShareLinkUpdateOne) SaveX(ctx context.Context) *TemplateShareLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TemplateShareLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateShareLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateShareLinkUpdateOne) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := templatesharelink.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "TemplateShareLink.token": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TemplateShareLink.template"`)
	}
	return nil
}

func (_u *TemplateShareLinkUpdateOne) sqlSave(ctx context.Context) (_node *TemplateShareLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(templatesharelink.Table, templatesharelink.Columns, sqlgraph.NewFieldSpec(templatesharelink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TemplateShareLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, templatesharelink.FieldID)
		for _, f := range fields {
			if !templatesharelink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != templatesharelink.FieldID {
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
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(templatesharelink.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(templatesharelink.FieldCreatedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(templatesharelink.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(templatesharelink.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxUses(); ok {
		_spec.SetField(templatesharelink.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxUses(); ok {
		_spec.AddField(templatesharelink.FieldMaxUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(templatesharelink.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(templatesharelink.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(templatesharelink.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(templatesharelink.FieldRevokedAt, field.TypeTime)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TemplateShareLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{templatesharelink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

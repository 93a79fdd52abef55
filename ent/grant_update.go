// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/grant"
	"tracker-studio-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// GrantUpdate is the builder for updating Grant entities.
type GrantUpdate struct {
	config
	hooks    []Hook
	mutation *GrantMutation
}

// Where appends a list predicates to the GrantUpdate builder.
func (_u *GrantUpdate) Where(ps ...predicate.Grant) *GrantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *GrantUpdate) SetEntityType(v grant.EntityType) *GrantUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableEntityType(v *grant.EntityType) *GrantUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *GrantUpdate) SetEntityID(v uuid.UUID) *GrantUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableEntityID(v *uuid.UUID) *GrantUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetSubjectType sets the "subject_type" field.
func (_u *GrantUpdate) SetSubjectType(v grant.SubjectType) *GrantUpdate {
	_u.mutation.SetSubjectType(v)
	return _u
}

// SetNillableSubjectType sets the "subject_type" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableSubjectType(v *grant.SubjectType) *GrantUpdate {
	if v != nil {
		_u.SetSubjectType(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *GrantUpdate) SetSubjectID(v uuid.UUID) *GrantUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableSubjectID(v *uuid.UUID) *GrantUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *GrantUpdate) SetRole(v grant.Role) *GrantUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableRole(v *grant.Role) *GrantUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetGrantedBy sets the "granted_by" field.
func (_u *GrantUpdate) SetGrantedBy(v uuid.UUID) *GrantUpdate {
	_u.mutation.SetGrantedBy(v)
	return _u
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableGrantedBy(v *uuid.UUID) *GrantUpdate {
	if v != nil {
		_u.SetGrantedBy(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *GrantUpdate) SetRevokedAt(v time.Time) *GrantUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableRevokedAt(v *time.Time) *GrantUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *GrantUpdate) ClearRevokedAt() *GrantUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the GrantMutation object of the builder.
func (_u *GrantUpdate) Mutation() *GrantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GrantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GrantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrantUpdate) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := grant.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Grant.entity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectType(); ok {
		if err := grant.SubjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "subject_type", err: fmt.Errorf(`ent: validator failed for field "Grant.subject_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := grant.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Grant.role": %w`, err)}
		}
	}
	return nil
}

func (_u *GrantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grant.Table, grant.Columns, sqlgraph.NewFieldSpec(grant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(grant.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(grant.FieldEntityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SubjectType(); ok {
		_spec.SetField(grant.FieldSubjectType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(grant.FieldSubjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(grant.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GrantedBy(); ok {
		_spec.SetField(grant.FieldGrantedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(grant.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(grant.FieldRevokedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GrantUpdateOne is the builder for updating a single Grant entity.
type GrantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GrantMutation
}

// SetEntityType sets the "entity_type" field.
func (_u *GrantUpdateOne) SetEntityType(v grant.EntityType) *GrantUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableEntityType(v *grant.EntityType) *GrantUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *GrantUpdateOne) SetEntityID(v uuid.UUID) *GrantUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableEntityID(v *uuid.UUID) *GrantUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetSubjectType sets the "subject_type" field.
func (_u *GrantUpdateOne) SetSubjectType(v grant.SubjectType) *GrantUpdateOne {
	_u.mutation.SetSubjectType(v)
	return _u
}

// SetNillableSubjectType sets the "subject_type" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableSubjectType(v *grant.SubjectType) *GrantUpdateOne {
	if v != nil {
		_u.SetSubjectType(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *GrantUpdateOne) SetSubjectID(v uuid.UUID) *GrantUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableSubjectID(v *uuid.UUID) *GrantUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *GrantUpdateOne) SetRole(v grant.Role) *GrantUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableRole(v *grant.Role) *GrantUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetGrantedBy sets the "granted_by" field.
func (_u *GrantUpdateOne) SetGrantedBy(v uuid.UUID) *GrantUpdateOne {
	_u.mutation.SetGrantedBy(v)
	return _u
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableGrantedBy(v *uuid.UUID) *GrantUpdateOne {
	if v != nil {
		_u.SetGrantedBy(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *GrantUpdateOne) SetRevokedAt(v time.Time) *GrantUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableRevokedAt(v *time.Time) *GrantUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *GrantUpdateOne) ClearRevokedAt() *GrantUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the GrantMutation object of the builder.
func (_u *GrantUpdateOne) Mutation() *GrantMutation {
	return _u.mutation
}

// Where appends a list predicates to the GrantUpdate builder.
func (_u *GrantUpdateOne) Where(ps ...predicate.Grant) *GrantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GrantUpdateOne) Select(field string, fields ...string) *GrantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Grant entity.
func (_u *GrantUpdateOne) Save(ctx context.Context) (*Grant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrantUpdateOne) SaveX(ctx context.Context) *Grant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GrantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrantUpdateOne) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := grant.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Grant.entity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectType(); ok {
		if err := grant.SubjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "subject_type", err: fmt.Errorf(`ent: validator failed for field "Grant.subject_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := grant.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Grant.role": %w`, err)}
		}
	}
	return nil
}

func (_u *GrantUpdateOne) sqlSave(ctx context.Context) (_node *Grant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grant.Table, grant.Columns, sqlgraph.NewFieldSpec(grant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Grant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grant.FieldID)
		for _, f := range fields {
			if !grant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grant.FieldID {
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
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(grant.FieldEntityType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(grant.FieldEntityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SubjectType(); ok {
		_spec.SetField(grant.FieldSubjectType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(grant.FieldSubjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(grant.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GrantedBy(); ok {
		_spec.SetField(grant.FieldGrantedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(grant.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(grant.FieldRevokedAt, field.TypeTime)
	}
	_node = &Grant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

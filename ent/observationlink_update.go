// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/observationlink"
	"tracker-studio-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ObservationLinkUpdate is the builder for updating ObservationLink entities.
type ObservationLinkUpdate struct {
	config
	hooks    []Hook
	mutation *ObservationLinkMutation
}

// Where appends a list predicates to the ObservationLinkUpdate builder.
func (_u *ObservationLinkUpdate) Where(ps ...predicate.ObservationLink) *ObservationLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTrackerID sets the "tracker_id" field.
func (_u *ObservationLinkUpdate) SetTrackerID(v uuid.UUID) *ObservationLinkUpdate {
	_u.mutation.SetTrackerID(v)
	return _u
}

// SetNillableTrackerID sets the "tracker_id" field if the given value is not nil.
func (_u *ObservationLinkUpdate) SetNillableTrackerID(v *uuid.UUID) *ObservationLinkUpdate {
	if v != nil {
		_u.SetTrackerID(*v)
	}
	return _u
}

// SetObserverUserID sets the "observer_user_id" field.
func (_u *ObservationLinkUpdate) SetObserverUserID(v uuid.UUID) *ObservationLinkUpdate {
	_u.mutation.SetObserverUserID(v)
	return _u
}

// SetNillableObserverUserID sets the "observer_user_id" field if the given value is not nil.
func (_u *ObservationLinkUpdate) SetNillableObserverUserID(v *uuid.UUID) *ObservationLinkUpdate {
	if v != nil {
		_u.SetObserverUserID(*v)
	}
	return _u
}

// SetContextType sets the "context_type" field.
func (_u *ObservationLinkUpdate) SetContextType(v observationlink.ContextType) *ObservationLinkUpdate {
	_u.mutation.SetContextType(v)
	return _u
}

// SetNillableContextType sets the "context_type" field if the given value is not nil.
func (_u *ObservationLinkUpdate) SetNillableContextType(v *observationlink.ContextType) *ObservationLinkUpdate {
	if v != nil {
		_u.SetContextType(*v)
	}
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *ObservationLinkUpdate) SetContextID(v uuid.UUID) *ObservationLinkUpdate {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *ObservationLinkUpdate) SetNillableContextID(v *uuid.UUID) *ObservationLinkUpdate {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// SetGrantedBy sets the "granted_by" field.
func (_u *ObservationLinkUpdate) SetGrantedBy(v uuid.UUID) *ObservationLinkUpdate {
	_u.mutation.SetGrantedBy(v)
	return _u
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_u *ObservationLinkUpdate) SetNillableGrantedBy(v *uuid.UUID) *ObservationLinkUpdate {
	if v != nil {
		_u.SetGrantedBy(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *ObservationLinkUpdate) SetRevokedAt(v time.Time) *ObservationLinkUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *ObservationLinkUpdate) SetNillableRevokedAt(v *time.Time) *ObservationLinkUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *ObservationLinkUpdate) ClearRevokedAt() *ObservationLinkUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the ObservationLinkMutation object of the builder.
func (_u *ObservationLinkUpdate) Mutation() *ObservationLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObservationLinkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObservationLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationLinkUpdate) check() error {
	if v, ok := _u.mutation.ContextType(); ok {
		if err := observationlink.ContextTypeValidator(v); err != nil {
			return &ValidationError{Name: "context_type", err: fmt.Errorf(`ent: validator failed for field "ObservationLink.context_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ObservationLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observationlink.Table, observationlink.Columns, sqlgraph.NewFieldSpec(observationlink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TrackerID(); ok {
		_spec.SetField(observationlink.FieldTrackerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ObserverUserID(); ok {
		_spec.SetField(observationlink.FieldObserverUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContextType(); ok {
		_spec.SetField(observationlink.FieldContextType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextID(); ok {
		_spec.SetField(observationlink.FieldContextID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GrantedBy(); ok {
		_spec.SetField(observationlink.FieldGrantedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(observationlink.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(observationlink.FieldRevokedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observationlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObservationLinkUpdateOne is the builder for updating a single ObservationLink entity.
type ObservationLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObservationLinkMutation
}

// SetTrackerID sets the "tracker_id" field.
func (_u *ObservationLinkUpdateOne) SetTrackerID(v uuid.UUID) *ObservationLinkUpdateOne {
	_u.mutation.SetTrackerID(v)
	return _u
}

// SetNillableTrackerID sets the "tracker_id" field if the given value is not nil.
func (_u *ObservationLinkUpdateOne) SetNillableTrackerID(v *uuid.UUID) *ObservationLinkUpdateOne {
	if v != nil {
		_u.SetTrackerID(*v)
	}
	return _u
}

// SetObserverUserID sets the "observer_user_id" field.
func (_u *ObservationLinkUpdateOne) SetObserverUserID(v uuid.UUID) *ObservationLinkUpdateOne {
	_u.mutation.SetObserverUserID(v)
	return _u
}

// SetNillableObserverUserID sets the "observer_user_id" field if the given value is not nil.
func (_u *ObservationLinkUpdateOne) SetNillableObserverUserID(v *uuid.UUID) *ObservationLinkUpdateOne {
	if v != nil {
		_u.SetObserverUserID(*v)
	}
	return _u
}

// SetContextType sets the "context_type" field.
func (_u *ObservationLinkUpdateOne) SetContextType(v observationlink.ContextType) *ObservationLinkUpdateOne {
	_u.mutation.SetContextType(v)
	return _u
}

// SetNillableContextType sets the "context_type" field if the given value is not nil.
func (_u *ObservationLinkUpdateOne) SetNillableContextType(v *observationlink.ContextType) *ObservationLinkUpdateOne {
	if v != nil {
		_u.SetContextType(*v)
	}
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *ObservationLinkUpdateOne) SetContextID(v uuid.UUID) *ObservationLinkUpdateOne {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *ObservationLinkUpdateOne) SetNillableContextID(v *uuid.UUID) *ObservationLinkUpdateOne {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// SetGrantedBy sets the "granted_by" field.
func (_u *ObservationLinkUpdateOne) SetGrantedBy(v uuid.UUID) *ObservationLinkUpdateOne {
	_u.mutation.SetGrantedBy(v)
	return _u
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_u *ObservationLinkUpdateOne) SetNillableGrantedBy(v *uuid.UUID) *ObservationLinkUpdateOne {
	if v != nil {
		_u.SetGrantedBy(*v)
	}
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *ObservationLinkUpdateOne) SetRevokedAt(v time.Time) *ObservationLinkUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *ObservationLinkUpdateOne) SetNillableRevokedAt(v *time.Time) *ObservationLinkUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *ObservationLinkUpdateOne) ClearRevokedAt() *ObservationLinkUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the ObservationLinkMutation object of the builder.
func (_u *ObservationLinkUpdateOne) Mutation() *ObservationLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ObservationLinkUpdate builder.
func (_u *ObservationLinkUpdateOne) Where(ps ...predicate.ObservationLink) *ObservationLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObservationLinkUpdateOne) Select(field string, fields ...string) *ObservationLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ObservationLink entity.
func (_u *ObservationLinkUpdateOne) Save(ctx context.Context) (*ObservationLink, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationLinkUpdateOne) SaveX(ctx context.Context) *ObservationLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObservationLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationLinkUpdateOne) check() error {
	if v, ok := _u.mutation.ContextType(); ok {
		if err := observationlink.ContextTypeValidator(v); err != nil {
			return &ValidationError{Name: "context_type", err: fmt.Errorf(`ent: validator failed for field "ObservationLink.context_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ObservationLinkUpdateOne) sqlSave(ctx context.Context) (_node *ObservationLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observationlink.Table, observationlink.Columns, sqlgraph.NewFieldSpec(observationlink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ObservationLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, observationlink.FieldID)
		for _, f := range fields {
			if !observationlink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != observationlink.FieldID {
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
	if value, ok := _u.mutation.TrackerID(); ok {
		_spec.SetField(observationlink.FieldTrackerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ObserverUserID(); ok {
		_spec.SetField(observationlink.FieldObserverUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContextType(); ok {
		_spec.SetField(observationlink.FieldContextType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContextID(); ok {
		_spec.SetField(observationlink.FieldContextID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.GrantedBy(); ok {
		_spec.SetField(observationlink.FieldGrantedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(observationlink.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(observationlink.FieldRevokedAt, field.TypeTime)
	}
	_node = &ObservationLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observationlink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

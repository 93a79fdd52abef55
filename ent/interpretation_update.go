// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/interpretation"
	"tracker-studio-api/ent/predicate"
	"tracker-studio-api/ent/tracker"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// InterpretationUpdate is the builder for updating Interpretation entities.
type InterpretationUpdate struct {
	config
	hooks    []Hook
	mutation *InterpretationMutation
}

// Where appends a list predicates to the InterpretationUpdate builder.
func (_u *InterpretationUpdate) Where(ps ...predicate.Interpretation) *InterpretationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *InterpretationUpdate) SetOwnerID(v uuid.UUID) *InterpretationUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *InterpretationUpdate) SetNillableOwnerID(v *uuid.UUID) *InterpretationUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *InterpretationUpdate) SetStartDate(v string) *InterpretationUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *InterpretationUpdate) SetNillableStartDate(v *string) *InterpretationUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *InterpretationUpdate) SetEndDate(v string) *InterpretationUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *InterpretationUpdate) SetNillableEndDate(v *string) *InterpretationUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *InterpretationUpdate) ClearEndDate() *InterpretationUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetBody sets the "body" field.
func (_u *InterpretationUpdate) SetBody(v string) *InterpretationUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *InterpretationUpdate) SetNillableBody(v *string) *InterpretationUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterpretationUpdate) SetUpdatedAt(v time.Time) *InterpretationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_u *InterpretationUpdate) SetTrackerID(id uuid.UUID) *InterpretationUpdate {
	_u.mutation.SetTrackerID(id)
	return _u
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_u *InterpretationUpdate) SetTracker(v *Tracker) *InterpretationUpdate {
	return _u.SetTrackerID(v.ID)
}

// Mutation returns the InterpretationMutation object of the builder.
func (_u *InterpretationUpdate) Mutation() *InterpretationMutation {
	return _u.mutation
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (_u *InterpretationUpdate) ClearTracker() *InterpretationUpdate {
	_u.mutation.ClearTracker()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterpretationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterpretationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterpretationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterpretationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterpretationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interpretation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterpretationUpdate) check() error {
	if v, ok := _u.mutation.StartDate(); ok {
		if err := interpretation.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "Interpretation.start_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndDate(); ok {
		if err := interpretation.EndDateValidator(v); err != nil {
			return &ValidationError{Name: "end_date", err: fmt.Errorf(`ent: validator failed for field "Interpretation.end_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := interpretation.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Interpretation.body": %w`, err)}
		}
	}
	if _u.mutation.TrackerCleared() && len(_u.mutation.TrackerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Interpretation.tracker"`)
	}
	return nil
}

func (_u *InterpretationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interpretation.Table, interpretation.Columns, sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(interpretation.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(interpretation.FieldStartDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(interpretation.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(interpretation.FieldEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(interpretation.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interpretation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TrackerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interpretation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterpretationUpdateOne is the builder for updating a single Interpretation entity.
type InterpretationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterpretationMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *InterpretationUpdateOne) SetOwnerID(v uuid.UUID) *InterpretationUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *InterpretationUpdateOne) SetNillableOwnerID(v *uuid.UUID) *InterpretationUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *InterpretationUpdateOne) SetStartDate(v string) *InterpretationUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *InterpretationUpdateOne) SetNillableStartDate(v *string) *InterpretationUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *InterpretationUpdateOne) SetEndDate(v string) *InterpretationUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *InterpretationUpdateOne) SetNillableEndDate(v *string) *InterpretationUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *InterpretationUpdateOne) ClearEndDate() *InterpretationUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetBody sets the "body" field.
func (_u *InterpretationUpdateOne) SetBody(v string) *InterpretationUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *InterpretationUpdateOne) SetNillableBody(v *string) *InterpretationUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterpretationUpdateOne) SetUpdatedAt(v time.Time) *InterpretationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_u *InterpretationUpdateOne) SetTrackerID(id uuid.UUID) *InterpretationUpdateOne {
	_u.mutation.SetTrackerID(id)
	return _u
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_u *InterpretationUpdateOne) SetTracker(v *Tracker) *InterpretationUpdateOne {
	return _u.SetTrackerID(v.ID)
}

// Mutation returns the InterpretationMutation object of the builder.
func (_u *InterpretationUpdateOne) Mutation() *InterpretationMutation {
	return _u.mutation
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (_u *InterpretationUpdateOne) ClearTracker() *InterpretationUpdateOne {
	_u.mutation.ClearTracker()
	return _u
}

// Where appends a list predicates to the InterpretationUpdate builder.
func (_u *InterpretationUpdateOne) Where(ps ...predicate.Interpretation) *InterpretationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterpretationUpdateOne) Select(field string, fields ...string) *InterpretationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Interpretation entity.
func (_u *InterpretationUpdateOne) Save(ctx context.Context) (*Interpretation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterpretationUpdateOne) SaveX(ctx context.Context) *Interpretation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterpretationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterpretationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterpretationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interpretation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterpretationUpdateOne) check() error {
	if v, ok := _u.mutation.StartDate(); ok {
		if err := interpretation.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "Interpretation.start_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndDate(); ok {
		if err := interpretation.EndDateValidator(v); err != nil {
			return &ValidationError{Name: "end_date", err: fmt.Errorf(`ent: validator failed for field "Interpretation.end_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := interpretation.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Interpretation.body": %w`, err)}
		}
	}
	if _u.mutation.TrackerCleared() && len(_u.mutation.TrackerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Interpretation.tracker"`)
	}
	return nil
}

func (_u *InterpretationUpdateOne) sqlSave(ctx context.Context) (_node *Interpretation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interpretation.Table, interpretation.Columns, sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Interpretation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interpretation.FieldID)
		for _, f := range fields {
			if !interpretation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interpretation.FieldID {
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
		_spec.SetField(interpretation.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(interpretation.FieldStartDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(interpretation.FieldEndDate, field.TypeString, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(interpretation.FieldEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(interpretation.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interpretation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TrackerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Interpretation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interpretation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

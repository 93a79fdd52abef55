// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"tracker-studio-api/ent/observationlink"
	"tracker-studio-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ObservationLinkDelete is the builder for deleting a ObservationLink entity.
type ObservationLinkDelete struct {
	config
	hooks    []Hook
	mutation *ObservationLinkMutation
}

// Where appends a list predicates to the ObservationLinkDelete builder.
func (_d *ObservationLinkDelete) Where(ps ...predicate.ObservationLink) *ObservationLinkDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ObservationLinkDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ObservationLinkDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ObservationLinkDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(observationlink.Table, sqlgraph.NewFieldSpec(observationlink.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ObservationLinkDeleteOne is the builder for deleting a single ObservationLink entity.
type ObservationLinkDeleteOne struct {
	_d *ObservationLinkDelete
}

// Where appends a list predicates to the ObservationLinkDelete builder.
func (_d *ObservationLinkDeleteOne) Where(ps ...predicate.ObservationLink) *ObservationLinkDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ObservationLinkDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{observationlink.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ObservationLinkDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

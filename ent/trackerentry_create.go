// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/tracker"
	"tracker-studio-api/ent/trackerentry"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TrackerEntryCreate is the builder for creating a TrackerEntry entity.
type TrackerEntryCreate struct {
	config
	mutation *TrackerEntryMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *TrackerEntryCreate) SetOwnerID(v uuid.UUID) *TrackerEntryCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetEntryDate sets the "entry_date" field.
func (_c *TrackerEntryCreate) SetEntryDate(v string) *TrackerEntryCreate {
	_c.mutation.SetEntryDate(v)
	return _c
}

// SetGranularity sets the "granularity" field.
func (_c *TrackerEntryCreate) SetGranularity(v trackerentry.Granularity) *TrackerEntryCreate {
	_c.mutation.SetGranularity(v)
	return _c
}

// SetNillableGranularity sets the "granularity" field if the given value is not nil.
func (_c *TrackerEntryCreate) SetNillableGranularity(v *trackerentry.Granularity) *TrackerEntryCreate {
	if v != nil {
		_c.SetGranularity(*v)
	}
	return _c
}

// SetSlot sets the "slot" field.
func (_c *TrackerEntryCreate) SetSlot(v int) *TrackerEntryCreate {
	_c.mutation.SetSlot(v)
	return _c
}

// SetNillableSlot sets the "slot" field if the given value is not nil.
func (_c *TrackerEntryCreate) SetNillableSlot(v *int) *TrackerEntryCreate {
	if v != nil {
		_c.SetSlot(*v)
	}
	return _c
}

// SetFieldValues sets the "field_values" field.
func (_c *TrackerEntryCreate) SetFieldValues(v map[string]interface{}) *TrackerEntryCreate {
	_c.mutation.SetFieldValues(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *TrackerEntryCreate) SetNotes(v string) *TrackerEntryCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *TrackerEntryCreate) SetNillableNotes(v *string) *TrackerEntryCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrackerEntryCreate) SetCreatedAt(v time.Time) *TrackerEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrackerEntryCreate) SetNillableCreatedAt(v *time.Time) *TrackerEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TrackerEntryCreate) SetUpdatedAt(v time.Time) *TrackerEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TrackerEntryCreate) SetNillableUpdatedAt(v *time.Time) *TrackerEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrackerEntryCreate) SetID(v uuid.UUID) *TrackerEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TrackerEntryCreate) SetNillableID(v *uuid.UUID) *TrackerEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by ID.
func (_c *TrackerEntryCreate) SetTrackerID(id uuid.UUID) *TrackerEntryCreate {
	_c.mutation.SetTrackerID(id)
	return _c
}

// SetTracker sets the "tracker" edge to the Tracker entity.
func (_c *TrackerEntryCreate) SetTracker(v *Tracker) *TrackerEntryCreate {
	return _c.SetTrackerID(v.ID)
}

// Mutation returns the TrackerEntryMutation object of the builder.
func (_c *TrackerEntryCreate) Mutation() *TrackerEntryMutation {
	return _c.mutation
}

// Save creates the TrackerEntry in the database.
func (_c *TrackerEntryCreate) Save(ctx context.Context) (*TrackerEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrackerEntryCreate) SaveX(ctx context.Context) *TrackerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackerEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackerEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrackerEntryCreate) defaults() {
	if _, ok := _c.mutation.Granularity(); !ok {
		v := trackerentry.DefaultGranularity
		_c.mutation.SetGranularity(v)
	}
	if _, ok := _c.mutation.Slot(); !ok {
		v := trackerentry.DefaultSlot
		_c.mutation.SetSlot(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trackerentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := trackerentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := trackerentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrackerEntryCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "TrackerEntry.owner_id"`)}
	}
	if _, ok := _c.mutation.EntryDate(); !ok {
		return &ValidationError{Name: "entry_date", err: errors.New(`ent: missing required field "TrackerEntry.entry_date"`)}
	}
	if v, ok := _c.mutation.EntryDate(); ok {
		if err := trackerentry.EntryDateValidator(v); err != nil {
			return &ValidationError{Name: "entry_date", err: fmt.Errorf(`ent: validator failed for field "TrackerEntry.entry_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Granularity(); !ok {
		return &ValidationError{Name: "granularity", err: errors.New(`ent: missing required field "TrackerEntry.granularity"`)}
	}
	if v, ok := _c.mutation.Granularity(); ok {
		if err := trackerentry.GranularityValidator(v); err != nil {
			return &ValidationError{Name: "granularity", err: fmt.Errorf(`ent: validator failed for field "TrackerEntry.granularity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slot(); !ok {
		return &ValidationError{Name: "slot", err: errors.New(`ent: missing required field "TrackerEntry.slot"`)}
	}
	if _, ok := _c.mutation.FieldValues(); !ok {
		return &ValidationError{Name: "field_values", err: errors.New(`ent: missing required field "TrackerEntry.field_values"`)}
	}
	if v, ok := _c.mutation.Notes(); ok {
		if err := trackerentry.NotesValidator(v); err != nil {
			return &ValidationError{Name: "notes", err: fmt.Errorf(`ent: validator failed for field "TrackerEntry.notes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrackerEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TrackerEntry.updated_at"`)}
	}
	if len(_c.mutation.TrackerIDs()) == 0 {
		return &ValidationError{Name: "tracker", err: errors.New(`ent: missing required edge "TrackerEntry.tracker"`)}
	}
	return nil
}

func (_c *TrackerEntryCreate) sqlSave(ctx context.Context) (*TrackerEntry, error) {
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

func (_c *TrackerEntryCreate) createSpec() (*TrackerEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &TrackerEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trackerentry.Table, sqlgraph.NewFieldSpec(trackerentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(trackerentry.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.EntryDate(); ok {
		_spec.SetField(trackerentry.FieldEntryDate, field.TypeString, value)
		_node.EntryDate = value
	}
	if value, ok := _c.mutation.Granularity(); ok {
		_spec.SetField(trackerentry.FieldGranularity, field.TypeEnum, value)
		_node.Granularity = value
	}
	if value, ok := _c.mutation.Slot(); ok {
		_spec.SetField(trackerentry.FieldSlot, field.TypeInt, value)
		_node.Slot = value
	}
	if value, ok := _c.mutation.FieldValues(); ok {
		_spec.SetField(trackerentry.FieldFieldValues, field.TypeJSON, value)
		_node.FieldValues = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(trackerentry.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trackerentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(trackerentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TrackerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   trackerentry.TrackerTable,
			Columns: []string{trackerentry.TrackerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tracker.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.tracker_entry_tracker = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrackerEntryCreateBulk is the builder for creating many TrackerEntry entities in bulk.
type TrackerEntryCreateBulk struct {
	config
	err      error
	builders []*TrackerEntryCreate
}

// Save creates the TrackerEntry entities in the database.
func (_c *TrackerEntryCreateBulk) Save(ctx context.Context) ([]*TrackerEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrackerEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrackerEntryMutation)
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
func (_c *TrackerEntryCreateBulk) SaveX(ctx context.Context) []*TrackerEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackerEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackerEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

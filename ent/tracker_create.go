// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/template"
	"tracker-studio-api/ent/tracker"
	"tracker-studio-api/ent/trackerentry"
	"tracker-studio-api/ent/user"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TrackerCreate is the builder for creating a Tracker entity.
type TrackerCreate struct {
	config
	mutation *TrackerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *TrackerCreate) SetName(v string) *TrackerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TrackerCreate) SetDescription(v string) *TrackerCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TrackerCreate) SetNillableDescription(v *string) *TrackerCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetGranularity sets the "granularity" field.
func (_c *TrackerCreate) SetGranularity(v tracker.Granularity) *TrackerCreate {
	_c.mutation.SetGranularity(v)
	return _c
}

// SetNillableGranularity sets the "granularity" field if the given value is not nil.
func (_c *TrackerCreate) SetNillableGranularity(v *tracker.Granularity) *TrackerCreate {
	if v != nil {
		_c.SetGranularity(*v)
	}
	return _c
}

// SetFieldSchemaSnapshot sets the "field_schema_snapshot" field.
func (_c *TrackerCreate) SetFieldSchemaSnapshot(v []map[string]interface{}) *TrackerCreate {
	_c.mutation.SetFieldSchemaSnapshot(v)
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *TrackerCreate) SetDisplayOrder(v int) *TrackerCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *TrackerCreate) SetNillableDisplayOrder(v *int) *TrackerCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetChartConfig sets the "chart_config" field.
func (_c *TrackerCreate) SetChartConfig(v map[string]interface{}) *TrackerCreate {
	_c.mutation.SetChartConfig(v)
	return _c
}

// SetIcon sets the "icon" field.
func (_c *TrackerCreate) SetIcon(v string) *TrackerCreate {
	_c.mutation.SetIcon(v)
	return _c
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_c *TrackerCreate) SetNillableIcon(v *string) *TrackerCreate {
	if v != nil {
		_c.SetIcon(*v)
	}
	return _c
}

// SetColor sets the "color" field.
func (_c *TrackerCreate) SetColor(v string) *TrackerCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *TrackerCreate) SetNillableColor(v *string) *TrackerCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *TrackerCreate) SetArchivedAt(v time.Time) *TrackerCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *TrackerCreate) SetNillableArchivedAt(v *time.Time) *TrackerCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrackerCreate) SetCreatedAt(v time.Time) *TrackerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrackerCreate) SetNillableCreatedAt(v *time.Time) *TrackerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TrackerCreate) SetUpdatedAt(v time.Time) *TrackerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TrackerCreate) SetNillableUpdatedAt(v *time.Time) *TrackerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrackerCreate) SetID(v uuid.UUID) *TrackerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TrackerCreate) SetNillableID(v *uuid.UUID) *TrackerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *TrackerCreate) SetOwnerID(id uuid.UUID) *TrackerCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *TrackerCreate) SetOwner(v *User) *TrackerCreate {
	return _c.SetOwnerID(v.ID)
}

// SetTemplateID sets the "template" edge to the Template entity by ID.
func (_c *TrackerCreate) SetTemplateID(id uuid.UUID) *TrackerCreate {
	_c.mutation.SetTemplateID(id)
	return _c
}

// SetNillableTemplateID sets the "template" edge to the Template entity by ID if the given value is not nil.
func (_c *TrackerCreate) SetNillableTemplateID(id *uuid.UUID) *TrackerCreate {
	if id != nil {
		_c = _c.SetTemplateID(*id)
	}
	return _c
}

// SetTemplate sets the "template" edge to the Template entity.
func (_c *TrackerCreate) SetTemplate(v *Template) *TrackerCreate {
	return _c.SetTemplateID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the TrackerEntry entity by IDs.
func (_c *TrackerCreate) AddEntryIDs(ids ...uuid.UUID) *TrackerCreate {
	_c.mutation.AddEntryIDs(ids...)
	return _c
}

// AddEntries adds the "entries" edges to the TrackerEntry entity.
func (_c *TrackerCreate) AddEntries(v ...*TrackerEntry) *TrackerCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntryIDs(ids...)
}

// Mutation returns the TrackerMutation object of the builder.
func (_c *TrackerCreate) Mutation() *TrackerMutation {
	return _c.mutation
}

// Save creates the Tracker in the database.
func (_c *TrackerCreate) Save(ctx context.Context) (*Tracker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrackerCreate) SaveX(ctx context.Context) *Tracker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrackerCreate) defaults() {
	if _, ok := _c.mutation.Granularity(); !ok {
		v := tracker.DefaultGranularity
		_c.mutation.SetGranularity(v)
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := tracker.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tracker.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tracker.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tracker.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrackerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Tracker.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := tracker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tracker.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := tracker.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Tracker.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Granularity(); !ok {
		return &ValidationError{Name: "granularity", err: errors.New(`ent: missing required field "Tracker.granularity"`)}
	}
	if v, ok := _c.mutation.Granularity(); ok {
		if err := tracker.GranularityValidator(v); err != nil {
			return &ValidationError{Name: "granularity", err: fmt.Errorf(`ent: validator failed for field "Tracker.granularity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldSchemaSnapshot(); !ok {
		return &ValidationError{Name: "field_schema_snapshot", err: errors.New(`ent: missing required field "Tracker.field_schema_snapshot"`)}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "Tracker.display_order"`)}
	}
	if v, ok := _c.mutation.Icon(); ok {
		if err := tracker.IconValidator(v); err != nil {
			return &ValidationError{Name: "icon", err: fmt.Errorf(`ent: validator failed for field "Tracker.icon": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Color(); ok {
		if err := tracker.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "Tracker.color": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Tracker.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Tracker.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Tracker.owner"`)}
	}
	return nil
}

func (_c *TrackerCreate) sqlSave(ctx context.Context) (*Tracker, error) {
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

func (_c *TrackerCreate) createSpec() (*Tracker, *sqlgraph.CreateSpec) {
	var (
		_node = &Tracker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tracker.Table, sqlgraph.NewFieldSpec(tracker.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tracker.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(tracker.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Granularity(); ok {
		_spec.SetField(tracker.FieldGranularity, field.TypeEnum, value)
		_node.Granularity = value
	}
	if value, ok := _c.mutation.FieldSchemaSnapshot(); ok {
		_spec.SetField(tracker.FieldFieldSchemaSnapshot, field.TypeJSON, value)
		_node.FieldSchemaSnapshot = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(tracker.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.ChartConfig(); ok {
		_spec.SetField(tracker.FieldChartConfig, field.TypeJSON, value)
		_node.ChartConfig = value
	}
	if value, ok := _c.mutation.Icon(); ok {
		_spec.SetField(tracker.FieldIcon, field.TypeString, value)
		_node.Icon = value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(tracker.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(tracker.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tracker.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tracker.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   tracker.OwnerTable,
			Columns: []string{tracker.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.tracker_owner = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   tracker.TemplateTable,
			Columns: []string{tracker.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.tracker_template = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   tracker.EntriesTable,
			Columns: []string{tracker.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackerentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrackerCreateBulk is the builder for creating many Tracker entities in bulk.
type TrackerCreateBulk struct {
	config
	err      error
	builders []*TrackerCreate
}

// Save creates the Tracker entities in the database.
func (_c *TrackerCreateBulk) Save(ctx context.Context) ([]*Tracker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Tracker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrackerMutation)
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
func (_c *TrackerCreateBulk) SaveX(ctx context.Context) []*Tracker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tracker-studio-api/ent/predicate"
	"tracker-studio-api/ent/template"
	"tracker-studio-api/ent/tracker"
	"tracker-studio-api/ent/trackerentry"
	"tracker-studio-api/ent/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TrackerUpdate is the builder for updating Tracker entities.
type TrackerUpdate struct {
	config
	hooks    []Hook
	mutation *TrackerMutation
}

// Where appends a list predicates to the TrackerUpdate builder.
func (_u *TrackerUpdate) Where(ps ...predicate.Tracker) *TrackerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TrackerUpdate) SetName(v string) *TrackerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TrackerUpdate) SetNillableName(v *string) *TrackerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TrackerUpdate) SetDescription(v string) *TrackerUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TrackerUpdate) SetNillableDescription(v *string) *TrackerUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TrackerUpdate) ClearDescription() *TrackerUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetGranularity sets the "granularity" field.
func (_u *TrackerUpdate) SetGranularity(v tracker.Granularity) *TrackerUpdate {
	_u.mutation.SetGranularity(v)
	return _u
}

// SetNillableGranularity sets the "granularity" field if the given value is not nil.
func (_u *TrackerUpdate) SetNillableGranularity(v *tracker.Granularity) *TrackerUpdate {
	if v != nil {
		_u.SetGranularity(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *TrackerUpdate) SetDisplayOrder(v int) *TrackerUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *TrackerUpdate) SetNillableDisplayOrder(v *int) *TrackerUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *TrackerUpdate) AddDisplayOrder(v int) *TrackerUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetChartConfig sets the "chart_config" field.
func (_u *TrackerUpdate) SetChartConfig(v map[string]interface{}) *TrackerUpdate {
	_u.mutation.SetChartConfig(v)
	return _u
}

// ClearChartConfig clears the value of the "chart_config" field.
func (_u *TrackerUpdate) ClearChartConfig() *TrackerUpdate {
	_u.mutation.ClearChartConfig()
	return _u
}

// SetIcon sets the "icon" field.
func (_u *TrackerUpdate) SetIcon(v string) *TrackerUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *TrackerUpdate) SetNillableIcon(v *string) *TrackerUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *TrackerUpdate) ClearIcon() *TrackerUpdate {
	_u.mutation.ClearIcon()
	return _u
}

// SetColor sets the "color" field.
func (_u *TrackerUpdate) SetColor(v string) *TrackerUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *TrackerUpdate) SetNillableColor(v *string) *TrackerUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *TrackerUpdate) ClearColor() *TrackerUpdate {
	_u.mutation.ClearColor()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *TrackerUpdate) SetArchivedAt(v time.Time) *TrackerUpdate {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *TrackerUpdate) SetNillableArchivedAt(v *time.Time) *TrackerUpdate {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *TrackerUpdate) ClearArchivedAt() *TrackerUpdate {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrackerUpdate) SetUpdatedAt(v time.Time) *TrackerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *TrackerUpdate) SetOwnerID(id uuid.UUID) *TrackerUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *TrackerUpdate) SetOwner(v *User) *TrackerUpdate {
	return _u.SetOwnerID(v.ID)
}

// SetTemplateID sets the "template" edge to the Template entity by ID.
func (_u *TrackerUpdate) SetTemplateID(id uuid.UUID) *TrackerUpdate {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetNillableTemplateID sets the "template" edge to the Template entity by ID if the given value is not nil.
func (_u *TrackerUpdate) SetNillableTemplateID(id *uuid.UUID) *TrackerUpdate {
	if id != nil {
		_u = _u.SetTemplateID(*id)
	}
	return _u
}

// SetTemplate sets the "template" edge to the Template entity.
func (_u *TrackerUpdate) SetTemplate(v *Template) *TrackerUpdate {
	return _u.SetTemplateID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the TrackerEntry entity by IDs.
func (_u *TrackerUpdate) AddEntryIDs(ids ...uuid.UUID) *TrackerUpdate {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the TrackerEntry entity.
func (_u *TrackerUpdate) AddEntries(v ...*TrackerEntry) *TrackerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the TrackerMutation object of the builder.
func (_u *TrackerUpdate) Mutation() *TrackerMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *TrackerUpdate) ClearOwner() *TrackerUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearTemplate clears the "template" edge to the Template entity.
func (_u *TrackerUpdate) ClearTemplate() *TrackerUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearEntries clears all "entries" edges to the TrackerEntry entity.
func (_u *TrackerUpdate) ClearEntries() *TrackerUpdate {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to TrackerEntry entities by IDs.
func (_u *TrackerUpdate) RemoveEntryIDs(ids ...uuid.UUID) *TrackerUpdate {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to TrackerEntry entities.
func (_u *TrackerUpdate) RemoveEntries(v ...*TrackerEntry) *TrackerUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrackerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrackerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrackerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tracker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tracker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tracker.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := tracker.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Tracker.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Granularity(); ok {
		if err := tracker.GranularityValidator(v); err != nil {
			return &ValidationError{Name: "granularity", err: fmt.Errorf(`ent: validator failed for field "Tracker.granularity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Icon(); ok {
		if err := tracker.IconValidator(v); err != nil {
			return &ValidationError{Name: "icon", err: fmt.Errorf(`ent: validator failed for field "Tracker.icon": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := tracker.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "Tracker.color": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tracker.owner"`)
	}
	return nil
}

func (_u *TrackerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tracker.Table, tracker.Columns, sqlgraph.NewFieldSpec(tracker.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tracker.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tracker.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tracker.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Granularity(); ok {
		_spec.SetField(tracker.FieldGranularity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(tracker.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(tracker.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChartConfig(); ok {
		_spec.SetField(tracker.FieldChartConfig, field.TypeJSON, value)
	}
	if _u.mutation.ChartConfigCleared() {
		_spec.ClearField(tracker.FieldChartConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(tracker.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(tracker.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(tracker.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(tracker.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(tracker.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(tracker.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tracker.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tracker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrackerUpdateOne is the builder for updating a single Tracker entity.
type TrackerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrackerMutation
}

// SetName sets the "name" field.
func (_u *TrackerUpdateOne) SetName(v string) *TrackerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TrackerUpdateOne) SetNillableName(v *string) *TrackerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TrackerUpdateOne) SetDescription(v string) *TrackerUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TrackerUpdateOne) SetNillableDescription(v *string) *TrackerUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TrackerUpdateOne) ClearDescription() *TrackerUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetGranularity sets the "granularity" field.
func (_u *TrackerUpdateOne) SetGranularity(v tracker.Granularity) *TrackerUpdateOne {
	_u.mutation.SetGranularity(v)
	return _u
}

// SetNillableGranularity sets the "granularity" field if the given value is not nil.
func (_u *TrackerUpdateOne) SetNillableGranularity(v *tracker.Granularity) *TrackerUpdateOne {
	if v != nil {
		_u.SetGranularity(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *TrackerUpdateOne) SetDisplayOrder(v int) *TrackerUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *TrackerUpdateOne) SetNillableDisplayOrder(v *int) *TrackerUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *TrackerUpdateOne) AddDisplayOrder(v int) *TrackerUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetChartConfig sets the "chart_config" field.
func (_u *TrackerUpdateOne) SetChartConfig(v map[string]interface{}) *TrackerUpdateOne {
	_u.mutation.SetChartConfig(v)
	return _u
}

// ClearChartConfig clears the value of the "chart_config" field.
func (_u *TrackerUpdateOne) ClearChartConfig() *TrackerUpdateOne {
	_u.mutation.ClearChartConfig()
	return _u
}

// SetIcon sets the "icon" field.
func (_u *TrackerUpdateOne) SetIcon(v string) *TrackerUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *TrackerUpdateOne) SetNillableIcon(v *string) *TrackerUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// ClearIcon clears the value of the "icon" field.
func (_u *TrackerUpdateOne) ClearIcon() *TrackerUpdateOne {
	_u.mutation.ClearIcon()
	return _u
}

// SetColor sets the "color" field.
func (_u *TrackerUpdateOne) SetColor(v string) *TrackerUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *TrackerUpdateOne) SetNillableColor(v *string) *TrackerUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// ClearColor clears the value of the "color" field.
func (_u *TrackerUpdateOne) ClearColor() *TrackerUpdateOne {
	_u.mutation.ClearColor()
	return _u
}

// SetArchivedAt sets the "archived_at" field.
func (_u *TrackerUpdateOne) SetArchivedAt(v time.Time) *TrackerUpdateOne {
	_u.mutation.SetArchivedAt(v)
	return _u
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_u *TrackerUpdateOne) SetNillableArchivedAt(v *time.Time) *TrackerUpdateOne {
	if v != nil {
		_u.SetArchivedAt(*v)
	}
	return _u
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (_u *TrackerUpdateOne) ClearArchivedAt() *TrackerUpdateOne {
	_u.mutation.ClearArchivedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrackerUpdateOne) SetUpdatedAt(v time.Time) *TrackerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *TrackerUpdateOne) SetOwnerID(id uuid.UUID) *TrackerUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *TrackerUpdateOne) SetOwner(v *User) *TrackerUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// SetTemplateID sets the "template" edge to the Template entity by ID.
func (_u *TrackerUpdateOne) SetTemplateID(id uuid.UUID) *TrackerUpdateOne {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetNillableTemplateID sets the "template" edge to the Template entity by ID if the given value is not nil.
func (_u *TrackerUpdateOne) SetNillableTemplateID(id *uuid.UUID) *TrackerUpdateOne {
	if id != nil {
		_u = _u.SetTemplateID(*id)
	}
	return _u
}

// SetTemplate sets the "template" edge to the Template entity.
func (_u *TrackerUpdateOne) SetTemplate(v *Template) *TrackerUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// AddEntryIDs adds the "entries" edge to the TrackerEntry entity by IDs.
func (_u *TrackerUpdateOne) AddEntryIDs(ids ...uuid.UUID) *TrackerUpdateOne {
	_u.mutation.AddEntryIDs(ids...)
	return _u
}

// AddEntries adds the "entries" edges to the TrackerEntry entity.
func (_u *TrackerUpdateOne) AddEntries(v ...*TrackerEntry) *TrackerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntryIDs(ids...)
}

// Mutation returns the TrackerMutation object of the builder.
func (_u *TrackerUpdateOne) Mutation() *TrackerMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *TrackerUpdateOne) ClearOwner() *TrackerUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearTemplate clears the "template" edge to the Template entity.
func (_u *TrackerUpdateOne) ClearTemplate() *TrackerUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearEntries clears all "entries" edges to the TrackerEntry entity.
func (_u *TrackerUpdateOne) ClearEntries() *TrackerUpdateOne {
	_u.mutation.ClearEntries()
	return _u
}

// RemoveEntryIDs removes the "entries" edge to TrackerEntry entities by IDs.
func (_u *TrackerUpdateOne) RemoveEntryIDs(ids ...uuid.UUID) *TrackerUpdateOne {
	_u.mutation.RemoveEntryIDs(ids...)
	return _u
}

// RemoveEntries removes "entries" edges to TrackerEntry entities.
func (_u *TrackerUpdateOne) RemoveEntries(v ...*TrackerEntry) *TrackerUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntryIDs(ids...)
}

// Where appends a list predicates to the TrackerUpdate builder.
func (_u *TrackerUpdateOne) Where(ps ...predicate.Tracker) *TrackerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrackerUpdateOne) Select(field string, fields ...string) *TrackerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tracker entity.
func (_u *TrackerUpdateOne) Save(ctx context.Context) (*Tracker, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackerUpdateOne) SaveX(ctx context.Context) *Tracker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrackerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrackerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tracker.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tracker.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tracker.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := tracker.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Tracker.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Granularity(); ok {
		if err := tracker.GranularityValidator(v); err != nil {
			return &ValidationError{Name: "granularity", err: fmt.Errorf(`ent: validator failed for field "Tracker.granularity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Icon(); ok {
		if err := tracker.IconValidator(v); err != nil {
			return &ValidationError{Name: "icon", err: fmt.Errorf(`ent: validator failed for field "Tracker.icon": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := tracker.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "Tracker.color": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tracker.owner"`)
	}
	return nil
}

func (_u *TrackerUpdateOne) sqlSave(ctx context.Context) (_node *Tracker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tracker.Table, tracker.Columns, sqlgraph.NewFieldSpec(tracker.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tracker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tracker.FieldID)
		for _, f := range fields {
			if !tracker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tracker.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tracker.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tracker.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tracker.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Granularity(); ok {
		_spec.SetField(tracker.FieldGranularity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(tracker.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(tracker.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChartConfig(); ok {
		_spec.SetField(tracker.FieldChartConfig, field.TypeJSON, value)
	}
	if _u.mutation.ChartConfigCleared() {
		_spec.ClearField(tracker.FieldChartConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(tracker.FieldIcon, field.TypeString, value)
	}
	if _u.mutation.IconCleared() {
		_spec.ClearField(tracker.FieldIcon, field.TypeString)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(tracker.FieldColor, field.TypeString, value)
	}
	if _u.mutation.ColorCleared() {
		_spec.ClearField(tracker.FieldColor, field.TypeString)
	}
	if value, ok := _u.mutation.ArchivedAt(); ok {
		_spec.SetField(tracker.FieldArchivedAt, field.TypeTime, value)
	}
	if _u.mutation.ArchivedAtCleared() {
		_spec.ClearField(tracker.FieldArchivedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tracker.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !_u.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tracker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tracker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

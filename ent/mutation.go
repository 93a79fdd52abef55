// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"tracker-studio-api/ent/contextevent"
	"tracker-studio-api/ent/grant"
	"tracker-studio-api/ent/group"
	"tracker-studio-api/ent/interpretation"
	"tracker-studio-api/ent/observationlink"
	"tracker-studio-api/ent/predicate"
	"tracker-studio-api/ent/reminder"
	"tracker-studio-api/ent/template"
	"tracker-studio-api/ent/templatesharelink"
	"tracker-studio-api/ent/tracker"
	"tracker-studio-api/ent/trackerentry"
	"tracker-studio-api/ent/user"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContextEvent      = "ContextEvent"
	TypeGrant             = "Grant"
	TypeGroup             = "Group"
	TypeInterpretation    = "Interpretation"
	TypeObservationLink   = "ObservationLink"
	TypeReminder          = "Reminder"
	TypeTemplate          = "Template"
	TypeTemplateShareLink = "TemplateShareLink"
	TypeTracker           = "Tracker"
	TypeTrackerEntry      = "TrackerEntry"
	TypeUser              = "User"
)

// ContextEventMutation represents an operation that mutates the ContextEvent nodes in the graph.
type ContextEventMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	owner_id       *uuid.UUID
	label          *string
	kind           *string
	start_date     *string
	end_date       *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	tracker        *uuid.UUID
	clearedtracker bool
	done           bool
	oldValue       func(context.Context) (*ContextEvent, error)
	predicates     []predicate.ContextEvent
}

var _ ent.Mutation = (*ContextEventMutation)(nil)

// contexteventOption allows management of the mutation configuration using functional options.
type contexteventOption func(*ContextEventMutation)

// newContextEventMutation creates new mutation for the ContextEvent entity.
func newContextEventMutation(c config, op Op, opts ...contexteventOption) *ContextEventMutation {
	m := &ContextEventMutation{
		config:        c,
		op:            op,
		typ:           TypeContextEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContextEventID sets the ID field of the mutation.
func withContextEventID(id uuid.UUID) contexteventOption {
	return func(m *ContextEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ContextEvent
		)
		m.oldValue = func(ctx context.Context) (*ContextEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContextEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContextEvent sets the old ContextEvent of the mutation.
func withContextEvent(node *ContextEvent) contexteventOption {
	return func(m *ContextEventMutation) {
		m.oldValue = func(context.Context) (*ContextEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContextEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContextEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContextEvent entities.
func (m *ContextEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContextEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContextEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContextEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ContextEventMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ContextEventMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ContextEvent entity.
// If the ContextEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEventMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ContextEventMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetLabel sets the "label" field.
func (m *ContextEventMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *ContextEventMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the ContextEvent entity.
// If the ContextEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEventMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *ContextEventMutation) ResetLabel() {
	m.label = nil
}

// SetKind sets the "kind" field.
func (m *ContextEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ContextEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ContextEvent entity.
// If the ContextEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ClearKind clears the value of the "kind" field.
func (m *ContextEventMutation) ClearKind() {
	m.kind = nil
	m.clearedFields[contextevent.FieldKind] = struct{}{}
}

// KindCleared returns if the "kind" field was cleared in this mutation.
func (m *ContextEventMutation) KindCleared() bool {
	_, ok := m.clearedFields[contextevent.FieldKind]
	return ok
}

// ResetKind resets all changes to the "kind" field.
func (m *ContextEventMutation) ResetKind() {
	m.kind = nil
	delete(m.clearedFields, contextevent.FieldKind)
}

// SetStartDate sets the "start_date" field.
func (m *ContextEventMutation) SetStartDate(s string) {
	m.start_date = &s
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *ContextEventMutation) StartDate() (r string, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the ContextEvent entity.
// If the ContextEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEventMutation) OldStartDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *ContextEventMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *ContextEventMutation) SetEndDate(s string) {
	m.end_date = &s
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *ContextEventMutation) EndDate() (r string, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the ContextEvent entity.
// If the ContextEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEventMutation) OldEndDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *ContextEventMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[contextevent.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *ContextEventMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[contextevent.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *ContextEventMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, contextevent.FieldEndDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContextEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContextEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContextEvent entity.
// If the ContextEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContextEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContextEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by id.
func (m *ContextEventMutation) SetTrackerID(id uuid.UUID) {
	m.tracker = &id
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (m *ContextEventMutation) ClearTracker() {
	m.clearedtracker = true
}

// TrackerCleared reports if the "tracker" edge to the Tracker entity was cleared.
func (m *ContextEventMutation) TrackerCleared() bool {
	return m.clearedtracker
}

// TrackerID returns the "tracker" edge ID in the mutation.
func (m *ContextEventMutation) TrackerID() (id uuid.UUID, exists bool) {
	if m.tracker != nil {
		return *m.tracker, true
	}
	return
}

// TrackerIDs returns the "tracker" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TrackerID instead. It exists only for internal usage by the builders.
func (m *ContextEventMutation) TrackerIDs() (ids []uuid.UUID) {
	if id := m.tracker; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTracker resets all changes to the "tracker" edge.
func (m *ContextEventMutation) ResetTracker() {
	m.tracker = nil
	m.clearedtracker = false
}

// Where appends a list predicates to the ContextEventMutation builder.
func (m *ContextEventMutation) Where(ps ...predicate.ContextEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContextEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContextEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContextEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContextEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContextEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContextEvent).
func (m *ContextEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContextEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, contextevent.FieldOwnerID)
	}
	if m.label != nil {
		fields = append(fields, contextevent.FieldLabel)
	}
	if m.kind != nil {
		fields = append(fields, contextevent.FieldKind)
	}
	if m.start_date != nil {
		fields = append(fields, contextevent.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, contextevent.FieldEndDate)
	}
	if m.created_at != nil {
		fields = append(fields, contextevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContextEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contextevent.FieldOwnerID:
		return m.OwnerID()
	case contextevent.FieldLabel:
		return m.Label()
	case contextevent.FieldKind:
		return m.Kind()
	case contextevent.FieldStartDate:
		return m.StartDate()
	case contextevent.FieldEndDate:
		return m.EndDate()
	case contextevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContextEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contextevent.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case contextevent.FieldLabel:
		return m.OldLabel(ctx)
	case contextevent.FieldKind:
		return m.OldKind(ctx)
	case contextevent.FieldStartDate:
		return m.OldStartDate(ctx)
	case contextevent.FieldEndDate:
		return m.OldEndDate(ctx)
	case contextevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContextEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contextevent.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case contextevent.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case contextevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case contextevent.FieldStartDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case contextevent.FieldEndDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case contextevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContextEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContextEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContextEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContextEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContextEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContextEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contextevent.FieldKind) {
		fields = append(fields, contextevent.FieldKind)
	}
	if m.FieldCleared(contextevent.FieldEndDate) {
		fields = append(fields, contextevent.FieldEndDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContextEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContextEventMutation) ClearField(name string) error {
	switch name {
	case contextevent.FieldKind:
		m.ClearKind()
		return nil
	case contextevent.FieldEndDate:
		m.ClearEndDate()
		return nil
	}
	return fmt.Errorf("unknown ContextEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContextEventMutation) ResetField(name string) error {
	switch name {
	case contextevent.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case contextevent.FieldLabel:
		m.ResetLabel()
		return nil
	case contextevent.FieldKind:
		m.ResetKind()
		return nil
	case contextevent.FieldStartDate:
		m.ResetStartDate()
		return nil
	case contextevent.FieldEndDate:
		m.ResetEndDate()
		return nil
	case contextevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContextEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContextEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tracker != nil {
		edges = append(edges, contextevent.EdgeTracker)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContextEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contextevent.EdgeTracker:
		if id := m.tracker; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContextEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContextEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContextEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtracker {
		edges = append(edges, contextevent.EdgeTracker)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContextEventMutation) EdgeCleared(name string) bool {
	switch name {
	case contextevent.EdgeTracker:
		return m.clearedtracker
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContextEventMutation) ClearEdge(name string) error {
	switch name {
	case contextevent.EdgeTracker:
		m.ClearTracker()
		return nil
	}
	return fmt.Errorf("unknown ContextEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContextEventMutation) ResetEdge(name string) error {
	switch name {
	case contextevent.EdgeTracker:
		m.ResetTracker()
		return nil
	}
	return fmt.Errorf("unknown ContextEvent edge %s", name)
}

// GrantMutation represents an operation that mutates the Grant nodes in the graph.
type GrantMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	entity_type   *grant.EntityType
	entity_id     *uuid.UUID
	subject_type  *grant.SubjectType
	subject_id    *uuid.UUID
	role          *grant.Role
	granted_by    *uuid.UUID
	revoked_at    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Grant, error)
	predicates    []predicate.Grant
}

var _ ent.Mutation = (*GrantMutation)(nil)

// grantOption allows management of the mutation configuration using functional options.
type grantOption func(*GrantMutation)

// newGrantMutation creates new mutation for the Grant entity.
func newGrantMutation(c config, op Op, opts ...grantOption) *GrantMutation {
	m := &GrantMutation{
		config:        c,
		op:            op,
		typ:           TypeGrant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGrantID sets the ID field of the mutation.
func withGrantID(id uuid.UUID) grantOption {
	return func(m *GrantMutation) {
		var (
			err   error
			once  sync.Once
			value *Grant
		)
		m.oldValue = func(ctx context.Context) (*Grant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Grant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGrant sets the old Grant of the mutation.
func withGrant(node *Grant) grantOption {
	return func(m *GrantMutation) {
		m.oldValue = func(context.Context) (*Grant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GrantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GrantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Grant entities.
func (m *GrantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GrantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GrantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Grant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityType sets the "entity_type" field.
func (m *GrantMutation) SetEntityType(gt grant.EntityType) {
	m.entity_type = &gt
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *GrantMutation) EntityType() (r grant.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldEntityType(ctx context.Context) (v grant.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *GrantMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *GrantMutation) SetEntityID(u uuid.UUID) {
	m.entity_id = &u
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *GrantMutation) EntityID() (r uuid.UUID, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *GrantMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetSubjectType sets the "subject_type" field.
func (m *GrantMutation) SetSubjectType(gt grant.SubjectType) {
	m.subject_type = &gt
}

// SubjectType returns the value of the "subject_type" field in the mutation.
func (m *GrantMutation) SubjectType() (r grant.SubjectType, exists bool) {
	v := m.subject_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectType returns the old "subject_type" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldSubjectType(ctx context.Context) (v grant.SubjectType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectType: %w", err)
	}
	return oldValue.SubjectType, nil
}

// ResetSubjectType resets all changes to the "subject_type" field.
func (m *GrantMutation) ResetSubjectType() {
	m.subject_type = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *GrantMutation) SetSubjectID(u uuid.UUID) {
	m.subject_id = &u
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *GrantMutation) SubjectID() (r uuid.UUID, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldSubjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *GrantMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetRole sets the "role" field.
func (m *GrantMutation) SetRole(gr grant.Role) {
	m.role = &gr
}

// Role returns the value of the "role" field in the mutation.
func (m *GrantMutation) Role() (r grant.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldRole(ctx context.Context) (v grant.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *GrantMutation) ResetRole() {
	m.role = nil
}

// SetGrantedBy sets the "granted_by" field.
func (m *GrantMutation) SetGrantedBy(u uuid.UUID) {
	m.granted_by = &u
}

// GrantedBy returns the value of the "granted_by" field in the mutation.
func (m *GrantMutation) GrantedBy() (r uuid.UUID, exists bool) {
	v := m.granted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldGrantedBy returns the old "granted_by" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldGrantedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrantedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrantedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrantedBy: %w", err)
	}
	return oldValue.GrantedBy, nil
}

// ResetGrantedBy resets all changes to the "granted_by" field.
func (m *GrantMutation) ResetGrantedBy() {
	m.granted_by = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *GrantMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *GrantMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *GrantMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[grant.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *GrantMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[grant.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *GrantMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, grant.FieldRevokedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *GrantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GrantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Grant entity.
// If the Grant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GrantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GrantMutation builder.
func (m *GrantMutation) Where(ps ...predicate.Grant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GrantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GrantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Grant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GrantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GrantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Grant).
func (m *GrantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GrantMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.entity_type != nil {
		fields = append(fields, grant.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, grant.FieldEntityID)
	}
	if m.subject_type != nil {
		fields = append(fields, grant.FieldSubjectType)
	}
	if m.subject_id != nil {
		fields = append(fields, grant.FieldSubjectID)
	}
	if m.role != nil {
		fields = append(fields, grant.FieldRole)
	}
	if m.granted_by != nil {
		fields = append(fields, grant.FieldGrantedBy)
	}
	if m.revoked_at != nil {
		fields = append(fields, grant.FieldRevokedAt)
	}
	if m.created_at != nil {
		fields = append(fields, grant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GrantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case grant.FieldEntityType:
		return m.EntityType()
	case grant.FieldEntityID:
		return m.EntityID()
	case grant.FieldSubjectType:
		return m.SubjectType()
	case grant.FieldSubjectID:
		return m.SubjectID()
	case grant.FieldRole:
		return m.Role()
	case grant.FieldGrantedBy:
		return m.GrantedBy()
	case grant.FieldRevokedAt:
		return m.RevokedAt()
	case grant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GrantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case grant.FieldEntityType:
		return m.OldEntityType(ctx)
	case grant.FieldEntityID:
		return m.OldEntityID(ctx)
	case grant.FieldSubjectType:
		return m.OldSubjectType(ctx)
	case grant.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case grant.FieldRole:
		return m.OldRole(ctx)
	case grant.FieldGrantedBy:
		return m.OldGrantedBy(ctx)
	case grant.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	case grant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Grant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case grant.FieldEntityType:
		v, ok := value.(grant.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case grant.FieldEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case grant.FieldSubjectType:
		v, ok := value.(grant.SubjectType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectType(v)
		return nil
	case grant.FieldSubjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case grant.FieldRole:
		v, ok := value.(grant.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case grant.FieldGrantedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrantedBy(v)
		return nil
	case grant.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	case grant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Grant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GrantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GrantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Grant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GrantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(grant.FieldRevokedAt) {
		fields = append(fields, grant.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GrantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GrantMutation) ClearField(name string) error {
	switch name {
	case grant.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown Grant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GrantMutation) ResetField(name string) error {
	switch name {
	case grant.FieldEntityType:
		m.ResetEntityType()
		return nil
	case grant.FieldEntityID:
		m.ResetEntityID()
		return nil
	case grant.FieldSubjectType:
		m.ResetSubjectType()
		return nil
	case grant.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case grant.FieldRole:
		m.ResetRole()
		return nil
	case grant.FieldGrantedBy:
		m.ResetGrantedBy()
		return nil
	case grant.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	case grant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Grant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GrantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GrantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GrantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GrantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GrantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GrantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GrantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Grant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GrantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Grant edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	members        map[uuid.UUID]struct{}
	removedmembers map[uuid.UUID]struct{}
	clearedmembers bool
	done           bool
	oldValue       func(context.Context) (*Group, error)
	predicates     []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id uuid.UUID) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Group entities.
func (m *GroupMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *GroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *GroupMutation) ClearName() {
	m.name = nil
	m.clearedFields[group.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *GroupMutation) NameCleared() bool {
	_, ok := m.clearedFields[group.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *GroupMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, group.FieldName)
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddMemberIDs adds the "members" edge to the User entity by ids.
func (m *GroupMutation) AddMemberIDs(ids ...uuid.UUID) {
	if m.members == nil {
		m.members = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the User entity.
func (m *GroupMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the User entity was cleared.
func (m *GroupMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the User entity by IDs.
func (m *GroupMutation) RemoveMemberIDs(ids ...uuid.UUID) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the User entity.
func (m *GroupMutation) RemovedMembersIDs() (ids []uuid.UUID) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *GroupMutation) MembersIDs() (ids []uuid.UUID) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *GroupMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, group.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, group.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldName:
		return m.Name()
	case group.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldName:
		return m.OldName(ctx)
	case group.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case group.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(group.FieldName) {
		fields = append(fields, group.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	switch name {
	case group.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldName:
		m.ResetName()
		return nil
	case group.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.members != nil {
		edges = append(edges, group.EdgeMembers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmembers != nil {
		edges = append(edges, group.EdgeMembers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmembers {
		edges = append(edges, group.EdgeMembers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	switch name {
	case group.EdgeMembers:
		return m.clearedmembers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	switch name {
	case group.EdgeMembers:
		m.ResetMembers()
		return nil
	}
	return fmt.Errorf("unknown Group edge %s", name)
}

// InterpretationMutation represents an operation that mutates the Interpretation nodes in the graph.
type InterpretationMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	owner_id       *uuid.UUID
	start_date     *string
	end_date       *string
	body           *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	tracker        *uuid.UUID
	clearedtracker bool
	done           bool
	oldValue       func(context.Context) (*Interpretation, error)
	predicates     []predicate.Interpretation
}

var _ ent.Mutation = (*InterpretationMutation)(nil)

// interpretationOption allows management of the mutation configuration using functional options.
type interpretationOption func(*InterpretationMutation)

// newInterpretationMutation creates new mutation for the Interpretation entity.
func newInterpretationMutation(c config, op Op, opts ...interpretationOption) *InterpretationMutation {
	m := &InterpretationMutation{
		config:        c,
		op:            op,
		typ:           TypeInterpretation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterpretationID sets the ID field of the mutation.
func withInterpretationID(id uuid.UUID) interpretationOption {
	return func(m *InterpretationMutation) {
		var (
			err   error
			once  sync.Once
			value *Interpretation
		)
		m.oldValue = func(ctx context.Context) (*Interpretation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Interpretation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterpretation sets the old Interpretation of the mutation.
func withInterpretation(node *Interpretation) interpretationOption {
	return func(m *InterpretationMutation) {
		m.oldValue = func(context.Context) (*Interpretation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterpretationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterpretationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Interpretation entities.
func (m *InterpretationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterpretationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterpretationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Interpretation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *InterpretationMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *InterpretationMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *InterpretationMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetStartDate sets the "start_date" field.
func (m *InterpretationMutation) SetStartDate(s string) {
	m.start_date = &s
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *InterpretationMutation) StartDate() (r string, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldStartDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *InterpretationMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *InterpretationMutation) SetEndDate(s string) {
	m.end_date = &s
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *InterpretationMutation) EndDate() (r string, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldEndDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *InterpretationMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[interpretation.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *InterpretationMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[interpretation.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *InterpretationMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, interpretation.FieldEndDate)
}

// SetBody sets the "body" field.
func (m *InterpretationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *InterpretationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *InterpretationMutation) ResetBody() {
	m.body = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InterpretationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InterpretationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InterpretationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InterpretationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InterpretationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InterpretationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by id.
func (m *InterpretationMutation) SetTrackerID(id uuid.UUID) {
	m.tracker = &id
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (m *InterpretationMutation) ClearTracker() {
	m.clearedtracker = true
}

// TrackerCleared reports if the "tracker" edge to the Tracker entity was cleared.
func (m *InterpretationMutation) TrackerCleared() bool {
	return m.clearedtracker
}

// TrackerID returns the "tracker" edge ID in the mutation.
func (m *InterpretationMutation) TrackerID() (id uuid.UUID, exists bool) {
	if m.tracker != nil {
		return *m.tracker, true
	}
	return
}

// TrackerIDs returns the "tracker" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TrackerID instead. It exists only for internal usage by the builders.
func (m *InterpretationMutation) TrackerIDs() (ids []uuid.UUID) {
	if id := m.tracker; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTracker resets all changes to the "tracker" edge.
func (m *InterpretationMutation) ResetTracker() {
	m.tracker = nil
	m.clearedtracker = false
}

// Where appends a list predicates to the InterpretationMutation builder.
func (m *InterpretationMutation) Where(ps ...predicate.Interpretation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterpretationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterpretationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Interpretation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterpretationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterpretationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Interpretation).
func (m *InterpretationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterpretationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, interpretation.FieldOwnerID)
	}
	if m.start_date != nil {
		fields = append(fields, interpretation.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, interpretation.FieldEndDate)
	}
	if m.body != nil {
		fields = append(fields, interpretation.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, interpretation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, interpretation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterpretationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interpretation.FieldOwnerID:
		return m.OwnerID()
	case interpretation.FieldStartDate:
		return m.StartDate()
	case interpretation.FieldEndDate:
		return m.EndDate()
	case interpretation.FieldBody:
		return m.Body()
	case interpretation.FieldCreatedAt:
		return m.CreatedAt()
	case interpretation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterpretationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interpretation.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case interpretation.FieldStartDate:
		return m.OldStartDate(ctx)
	case interpretation.FieldEndDate:
		return m.OldEndDate(ctx)
	case interpretation.FieldBody:
		return m.OldBody(ctx)
	case interpretation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case interpretation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Interpretation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterpretationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interpretation.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case interpretation.FieldStartDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case interpretation.FieldEndDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case interpretation.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case interpretation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case interpretation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Interpretation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterpretationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterpretationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterpretationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Interpretation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterpretationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interpretation.FieldEndDate) {
		fields = append(fields, interpretation.FieldEndDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterpretationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterpretationMutation) ClearField(name string) error {
	switch name {
	case interpretation.FieldEndDate:
		m.ClearEndDate()
		return nil
	}
	return fmt.Errorf("unknown Interpretation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterpretationMutation) ResetField(name string) error {
	switch name {
	case interpretation.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case interpretation.FieldStartDate:
		m.ResetStartDate()
		return nil
	case interpretation.FieldEndDate:
		m.ResetEndDate()
		return nil
	case interpretation.FieldBody:
		m.ResetBody()
		return nil
	case interpretation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case interpretation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Interpretation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterpretationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tracker != nil {
		edges = append(edges, interpretation.EdgeTracker)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterpretationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case interpretation.EdgeTracker:
		if id := m.tracker; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterpretationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterpretationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterpretationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtracker {
		edges = append(edges, interpretation.EdgeTracker)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterpretationMutation) EdgeCleared(name string) bool {
	switch name {
	case interpretation.EdgeTracker:
		return m.clearedtracker
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterpretationMutation) ClearEdge(name string) error {
	switch name {
	case interpretation.EdgeTracker:
		m.ClearTracker()
		return nil
	}
	return fmt.Errorf("unknown Interpretation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterpretationMutation) ResetEdge(name string) error {
	switch name {
	case interpretation.EdgeTracker:
		m.ResetTracker()
		return nil
	}
	return fmt.Errorf("unknown Interpretation edge %s", name)
}

// ObservationLinkMutation represents an operation that mutates the ObservationLink nodes in the graph.
type ObservationLinkMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	tracker_id       *uuid.UUID
	observer_user_id *uuid.UUID
	context_type     *observationlink.ContextType
	context_id       *uuid.UUID
	granted_by       *uuid.UUID
	revoked_at       *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ObservationLink, error)
	predicates       []predicate.ObservationLink
}

var _ ent.Mutation = (*ObservationLinkMutation)(nil)

// observationlinkOption allows management of the mutation configuration using functional options.
type observationlinkOption func(*ObservationLinkMutation)

// newObservationLinkMutation creates new mutation for the ObservationLink entity.
func newObservationLinkMutation(c config, op Op, opts ...observationlinkOption) *ObservationLinkMutation {
	m := &ObservationLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeObservationLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withObservationLinkID sets the ID field of the mutation.
func withObservationLinkID(id uuid.UUID) observationlinkOption {
	return func(m *ObservationLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *ObservationLink
		)
		m.oldValue = func(ctx context.Context) (*ObservationLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ObservationLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withObservationLink sets the old ObservationLink of the mutation.
func withObservationLink(node *ObservationLink) observationlinkOption {
	return func(m *ObservationLinkMutation) {
		m.oldValue = func(context.Context) (*ObservationLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ObservationLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ObservationLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ObservationLink entities.
func (m *ObservationLinkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ObservationLinkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ObservationLinkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ObservationLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrackerID sets the "tracker_id" field.
func (m *ObservationLinkMutation) SetTrackerID(u uuid.UUID) {
	m.tracker_id = &u
}

// TrackerID returns the value of the "tracker_id" field in the mutation.
func (m *ObservationLinkMutation) TrackerID() (r uuid.UUID, exists bool) {
	v := m.tracker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTrackerID returns the old "tracker_id" field's value of the ObservationLink entity.
// If the ObservationLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationLinkMutation) OldTrackerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrackerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrackerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrackerID: %w", err)
	}
	return oldValue.TrackerID, nil
}

// ResetTrackerID resets all changes to the "tracker_id" field.
func (m *ObservationLinkMutation) ResetTrackerID() {
	m.tracker_id = nil
}

// SetObserverUserID sets the "observer_user_id" field.
func (m *ObservationLinkMutation) SetObserverUserID(u uuid.UUID) {
	m.observer_user_id = &u
}

// ObserverUserID returns the value of the "observer_user_id" field in the mutation.
func (m *ObservationLinkMutation) ObserverUserID() (r uuid.UUID, exists bool) {
	v := m.observer_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObserverUserID returns the old "observer_user_id" field's value of the ObservationLink entity.
// If the ObservationLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationLinkMutation) OldObserverUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObserverUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObserverUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObserverUserID: %w", err)
	}
	return oldValue.ObserverUserID, nil
}

// ResetObserverUserID resets all changes to the "observer_user_id" field.
func (m *ObservationLinkMutation) ResetObserverUserID() {
	m.observer_user_id = nil
}

// SetContextType sets the "context_type" field.
func (m *ObservationLinkMutation) SetContextType(ot observationlink.ContextType) {
	m.context_type = &ot
}

// ContextType returns the value of the "context_type" field in the mutation.
func (m *ObservationLinkMutation) ContextType() (r observationlink.ContextType, exists bool) {
	v := m.context_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContextType returns the old "context_type" field's value of the ObservationLink entity.
// If the ObservationLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationLinkMutation) OldContextType(ctx context.Context) (v observationlink.ContextType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextType: %w", err)
	}
	return oldValue.ContextType, nil
}

// ResetContextType resets all changes to the "context_type" field.
func (m *ObservationLinkMutation) ResetContextType() {
	m.context_type = nil
}

// SetContextID sets the "context_id" field.
func (m *ObservationLinkMutation) SetContextID(u uuid.UUID) {
	m.context_id = &u
}

// ContextID returns the value of the "context_id" field in the mutation.
func (m *ObservationLinkMutation) ContextID() (r uuid.UUID, exists bool) {
	v := m.context_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContextID returns the old "context_id" field's value of the ObservationLink entity.
// If the ObservationLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationLinkMutation) OldContextID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextID: %w", err)
	}
	return oldValue.ContextID, nil
}

// ResetContextID resets all changes to the "context_id" field.
func (m *ObservationLinkMutation) ResetContextID() {
	m.context_id = nil
}

// SetGrantedBy sets the "granted_by" field.
func (m *ObservationLinkMutation) SetGrantedBy(u uuid.UUID) {
	m.granted_by = &u
}

// GrantedBy returns the value of the "granted_by" field in the mutation.
func (m *ObservationLinkMutation) GrantedBy() (r uuid.UUID, exists bool) {
	v := m.granted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldGrantedBy returns the old "granted_by" field's value of the ObservationLink entity.
// If the ObservationLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationLinkMutation) OldGrantedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrantedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrantedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrantedBy: %w", err)
	}
	return oldValue.GrantedBy, nil
}

// ResetGrantedBy resets all changes to the "granted_by" field.
func (m *ObservationLinkMutation) ResetGrantedBy() {
	m.granted_by = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *ObservationLinkMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *ObservationLinkMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the ObservationLink entity.
// If the ObservationLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationLinkMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *ObservationLinkMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[observationlink.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *ObservationLinkMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[observationlink.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *ObservationLinkMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, observationlink.FieldRevokedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ObservationLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ObservationLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ObservationLink entity.
// If the ObservationLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ObservationLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ObservationLinkMutation builder.
func (m *ObservationLinkMutation) Where(ps ...predicate.ObservationLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ObservationLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ObservationLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ObservationLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ObservationLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ObservationLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ObservationLink).
func (m *ObservationLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ObservationLinkMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tracker_id != nil {
		fields = append(fields, observationlink.FieldTrackerID)
	}
	if m.observer_user_id != nil {
		fields = append(fields, observationlink.FieldObserverUserID)
	}
	if m.context_type != nil {
		fields = append(fields, observationlink.FieldContextType)
	}
	if m.context_id != nil {
		fields = append(fields, observationlink.FieldContextID)
	}
	if m.granted_by != nil {
		fields = append(fields, observationlink.FieldGrantedBy)
	}
	if m.revoked_at != nil {
		fields = append(fields, observationlink.FieldRevokedAt)
	}
	if m.created_at != nil {
		fields = append(fields, observationlink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ObservationLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case observationlink.FieldTrackerID:
		return m.TrackerID()
	case observationlink.FieldObserverUserID:
		return m.ObserverUserID()
	case observationlink.FieldContextType:
		return m.ContextType()
	case observationlink.FieldContextID:
		return m.ContextID()
	case observationlink.FieldGrantedBy:
		return m.GrantedBy()
	case observationlink.FieldRevokedAt:
		return m.RevokedAt()
	case observationlink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ObservationLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case observationlink.FieldTrackerID:
		return m.OldTrackerID(ctx)
	case observationlink.FieldObserverUserID:
		return m.OldObserverUserID(ctx)
	case observationlink.FieldContextType:
		return m.OldContextType(ctx)
	case observationlink.FieldContextID:
		return m.OldContextID(ctx)
	case observationlink.FieldGrantedBy:
		return m.OldGrantedBy(ctx)
	case observationlink.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	case observationlink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ObservationLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservationLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case observationlink.FieldTrackerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrackerID(v)
		return nil
	case observationlink.FieldObserverUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObserverUserID(v)
		return nil
	case observationlink.FieldContextType:
		v, ok := value.(observationlink.ContextType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextType(v)
		return nil
	case observationlink.FieldContextID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextID(v)
		return nil
	case observationlink.FieldGrantedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrantedBy(v)
		return nil
	case observationlink.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	case observationlink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ObservationLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ObservationLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ObservationLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservationLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ObservationLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ObservationLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(observationlink.FieldRevokedAt) {
		fields = append(fields, observationlink.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ObservationLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ObservationLinkMutation) ClearField(name string) error {
	switch name {
	case observationlink.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown ObservationLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ObservationLinkMutation) ResetField(name string) error {
	switch name {
	case observationlink.FieldTrackerID:
		m.ResetTrackerID()
		return nil
	case observationlink.FieldObserverUserID:
		m.ResetObserverUserID()
		return nil
	case observationlink.FieldContextType:
		m.ResetContextType()
		return nil
	case observationlink.FieldContextID:
		m.ResetContextID()
		return nil
	case observationlink.FieldGrantedBy:
		m.ResetGrantedBy()
		return nil
	case observationlink.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	case observationlink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ObservationLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ObservationLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ObservationLinkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ObservationLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ObservationLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ObservationLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ObservationLinkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ObservationLinkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ObservationLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ObservationLinkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ObservationLink edge %s", name)
}

// ReminderMutation represents an operation that mutates the Reminder nodes in the graph.
type ReminderMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	owner_id           *uuid.UUID
	kind               *reminder.Kind
	time_of_day        *int
	addtime_of_day     *int
	days_of_week       *[]int
	appenddays_of_week []int
	enabled            *bool
	last_fired_at      *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	tracker            *uuid.UUID
	clearedtracker     bool
	done               bool
	oldValue           func(context.Context) (*Reminder, error)
	predicates         []predicate.Reminder
}

var _ ent.Mutation = (*ReminderMutation)(nil)

// reminderOption allows management of the mutation configuration using functional options.
type reminderOption func(*ReminderMutation)

// newReminderMutation creates new mutation for the Reminder entity.
func newReminderMutation(c config, op Op, opts ...reminderOption) *ReminderMutation {
	m := &ReminderMutation{
		config:        c,
		op:            op,
		typ:           TypeReminder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReminderID sets the ID field of the mutation.
func withReminderID(id uuid.UUID) reminderOption {
	return func(m *ReminderMutation) {
		var (
			err   error
			once  sync.Once
			value *Reminder
		)
		m.oldValue = func(ctx context.Context) (*Reminder, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reminder.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReminder sets the old Reminder of the mutation.
func withReminder(node *Reminder) reminderOption {
	return func(m *ReminderMutation) {
		m.oldValue = func(context.Context) (*Reminder, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReminderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReminderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Reminder entities.
func (m *ReminderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReminderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReminderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reminder.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ReminderMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ReminderMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ReminderMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetKind sets the "kind" field.
func (m *ReminderMutation) SetKind(r reminder.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ReminderMutation) Kind() (r reminder.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldKind(ctx context.Context) (v reminder.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ReminderMutation) ResetKind() {
	m.kind = nil
}

// SetTimeOfDay sets the "time_of_day" field.
func (m *ReminderMutation) SetTimeOfDay(i int) {
	m.time_of_day = &i
	m.addtime_of_day = nil
}

// TimeOfDay returns the value of the "time_of_day" field in the mutation.
func (m *ReminderMutation) TimeOfDay() (r int, exists bool) {
	v := m.time_of_day
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeOfDay returns the old "time_of_day" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldTimeOfDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeOfDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeOfDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeOfDay: %w", err)
	}
	return oldValue.TimeOfDay, nil
}

// AddTimeOfDay adds i to the "time_of_day" field.
func (m *ReminderMutation) AddTimeOfDay(i int) {
	if m.addtime_of_day != nil {
		*m.addtime_of_day += i
	} else {
		m.addtime_of_day = &i
	}
}

// AddedTimeOfDay returns the value that was added to the "time_of_day" field in this mutation.
func (m *ReminderMutation) AddedTimeOfDay() (r int, exists bool) {
	v := m.addtime_of_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeOfDay resets all changes to the "time_of_day" field.
func (m *ReminderMutation) ResetTimeOfDay() {
	m.time_of_day = nil
	m.addtime_of_day = nil
}

// SetDaysOfWeek sets the "days_of_week" field.
func (m *ReminderMutation) SetDaysOfWeek(i []int) {
	m.days_of_week = &i
	m.appenddays_of_week = nil
}

// DaysOfWeek returns the value of the "days_of_week" field in the mutation.
func (m *ReminderMutation) DaysOfWeek() (r []int, exists bool) {
	v := m.days_of_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysOfWeek returns the old "days_of_week" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldDaysOfWeek(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysOfWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysOfWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysOfWeek: %w", err)
	}
	return oldValue.DaysOfWeek, nil
}

// AppendDaysOfWeek adds i to the "days_of_week" field.
func (m *ReminderMutation) AppendDaysOfWeek(i []int) {
	m.appenddays_of_week = append(m.appenddays_of_week, i...)
}

// AppendedDaysOfWeek returns the list of values that were appended to the "days_of_week" field in this mutation.
func (m *ReminderMutation) AppendedDaysOfWeek() ([]int, bool) {
	if len(m.appenddays_of_week) == 0 {
		return nil, false
	}
	return m.appenddays_of_week, true
}

// ClearDaysOfWeek clears the value of the "days_of_week" field.
func (m *ReminderMutation) ClearDaysOfWeek() {
	m.days_of_week = nil
	m.appenddays_of_week = nil
	m.clearedFields[reminder.FieldDaysOfWeek] = struct{}{}
}

// DaysOfWeekCleared returns if the "days_of_week" field was cleared in this mutation.
func (m *ReminderMutation) DaysOfWeekCleared() bool {
	_, ok := m.clearedFields[reminder.FieldDaysOfWeek]
	return ok
}

// ResetDaysOfWeek resets all changes to the "days_of_week" field.
func (m *ReminderMutation) ResetDaysOfWeek() {
	m.days_of_week = nil
	m.appenddays_of_week = nil
	delete(m.clearedFields, reminder.FieldDaysOfWeek)
}

// SetEnabled sets the "enabled" field.
func (m *ReminderMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ReminderMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ReminderMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastFiredAt sets the "last_fired_at" field.
func (m *ReminderMutation) SetLastFiredAt(t time.Time) {
	m.last_fired_at = &t
}

// LastFiredAt returns the value of the "last_fired_at" field in the mutation.
func (m *ReminderMutation) LastFiredAt() (r time.Time, exists bool) {
	v := m.last_fired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFiredAt returns the old "last_fired_at" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldLastFiredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFiredAt: %w", err)
	}
	return oldValue.LastFiredAt, nil
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (m *ReminderMutation) ClearLastFiredAt() {
	m.last_fired_at = nil
	m.clearedFields[reminder.FieldLastFiredAt] = struct{}{}
}

// LastFiredAtCleared returns if the "last_fired_at" field was cleared in this mutation.
func (m *ReminderMutation) LastFiredAtCleared() bool {
	_, ok := m.clearedFields[reminder.FieldLastFiredAt]
	return ok
}

// ResetLastFiredAt resets all changes to the "last_fired_at" field.
func (m *ReminderMutation) ResetLastFiredAt() {
	m.last_fired_at = nil
	delete(m.clearedFields, reminder.FieldLastFiredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReminderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReminderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReminderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReminderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReminderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Reminder entity.
// If the Reminder object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReminderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReminderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by id.
func (m *ReminderMutation) SetTrackerID(id uuid.UUID) {
	m.tracker = &id
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (m *ReminderMutation) ClearTracker() {
	m.clearedtracker = true
}

// TrackerCleared reports if the "tracker" edge to the Tracker entity was cleared.
func (m *ReminderMutation) TrackerCleared() bool {
	return m.clearedtracker
}

// TrackerID returns the "tracker" edge ID in the mutation.
func (m *ReminderMutation) TrackerID() (id uuid.UUID, exists bool) {
	if m.tracker != nil {
		return *m.tracker, true
	}
	return
}

// TrackerIDs returns the "tracker" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TrackerID instead. It exists only for internal usage by the builders.
func (m *ReminderMutation) TrackerIDs() (ids []uuid.UUID) {
	if id := m.tracker; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTracker resets all changes to the "tracker" edge.
func (m *ReminderMutation) ResetTracker() {
	m.tracker = nil
	m.clearedtracker = false
}

// Where appends a list predicates to the ReminderMutation builder.
func (m *ReminderMutation) Where(ps ...predicate.Reminder) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReminderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReminderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reminder, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReminderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReminderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reminder).
func (m *ReminderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReminderMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner_id != nil {
		fields = append(fields, reminder.FieldOwnerID)
	}
	if m.kind != nil {
		fields = append(fields, reminder.FieldKind)
	}
	if m.time_of_day != nil {
		fields = append(fields, reminder.FieldTimeOfDay)
	}
	if m.days_of_week != nil {
		fields = append(fields, reminder.FieldDaysOfWeek)
	}
	if m.enabled != nil {
		fields = append(fields, reminder.FieldEnabled)
	}
	if m.last_fired_at != nil {
		fields = append(fields, reminder.FieldLastFiredAt)
	}
	if m.created_at != nil {
		fields = append(fields, reminder.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reminder.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReminderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reminder.FieldOwnerID:
		return m.OwnerID()
	case reminder.FieldKind:
		return m.Kind()
	case reminder.FieldTimeOfDay:
		return m.TimeOfDay()
	case reminder.FieldDaysOfWeek:
		return m.DaysOfWeek()
	case reminder.FieldEnabled:
		return m.Enabled()
	case reminder.FieldLastFiredAt:
		return m.LastFiredAt()
	case reminder.FieldCreatedAt:
		return m.CreatedAt()
	case reminder.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReminderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reminder.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case reminder.FieldKind:
		return m.OldKind(ctx)
	case reminder.FieldTimeOfDay:
		return m.OldTimeOfDay(ctx)
	case reminder.FieldDaysOfWeek:
		return m.OldDaysOfWeek(ctx)
	case reminder.FieldEnabled:
		return m.OldEnabled(ctx)
	case reminder.FieldLastFiredAt:
		return m.OldLastFiredAt(ctx)
	case reminder.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reminder.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Reminder field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReminderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reminder.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case reminder.FieldKind:
		v, ok := value.(reminder.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case reminder.FieldTimeOfDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeOfDay(v)
		return nil
	case reminder.FieldDaysOfWeek:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysOfWeek(v)
		return nil
	case reminder.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case reminder.FieldLastFiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFiredAt(v)
		return nil
	case reminder.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reminder.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Reminder field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReminderMutation) AddedFields() []string {
	var fields []string
	if m.addtime_of_day != nil {
		fields = append(fields, reminder.FieldTimeOfDay)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReminderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reminder.FieldTimeOfDay:
		return m.AddedTimeOfDay()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReminderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reminder.FieldTimeOfDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeOfDay(v)
		return nil
	}
	return fmt.Errorf("unknown Reminder numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReminderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reminder.FieldDaysOfWeek) {
		fields = append(fields, reminder.FieldDaysOfWeek)
	}
	if m.FieldCleared(reminder.FieldLastFiredAt) {
		fields = append(fields, reminder.FieldLastFiredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReminderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReminderMutation) ClearField(name string) error {
	switch name {
	case reminder.FieldDaysOfWeek:
		m.ClearDaysOfWeek()
		return nil
	case reminder.FieldLastFiredAt:
		m.ClearLastFiredAt()
		return nil
	}
	return fmt.Errorf("unknown Reminder nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReminderMutation) ResetField(name string) error {
	switch name {
	case reminder.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case reminder.FieldKind:
		m.ResetKind()
		return nil
	case reminder.FieldTimeOfDay:
		m.ResetTimeOfDay()
		return nil
	case reminder.FieldDaysOfWeek:
		m.ResetDaysOfWeek()
		return nil
	case reminder.FieldEnabled:
		m.ResetEnabled()
		return nil
	case reminder.FieldLastFiredAt:
		m.ResetLastFiredAt()
		return nil
	case reminder.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reminder.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Reminder field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReminderMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tracker != nil {
		edges = append(edges, reminder.EdgeTracker)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReminderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reminder.EdgeTracker:
		if id := m.tracker; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReminderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReminderMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReminderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtracker {
		edges = append(edges, reminder.EdgeTracker)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReminderMutation) EdgeCleared(name string) bool {
	switch name {
	case reminder.EdgeTracker:
		return m.clearedtracker
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReminderMutation) ClearEdge(name string) error {
	switch name {
	case reminder.EdgeTracker:
		m.ClearTracker()
		return nil
	}
	return fmt.Errorf("unknown Reminder unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReminderMutation) ResetEdge(name string) error {
	switch name {
	case reminder.EdgeTracker:
		m.ResetTracker()
		return nil
	}
	return fmt.Errorf("unknown Reminder edge %s", name)
}

// TemplateMutation represents an operation that mutates the Template nodes in the graph.
type TemplateMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	description        *string
	scope              *template.Scope
	locked             *bool
	field_schema       *[]map[string]interface{}
	appendfield_schema []map[string]interface{}
	archived_at        *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	owner              *uuid.UUID
	clearedowner       bool
	trackers           map[uuid.UUID]struct{}
	removedtrackers    map[uuid.UUID]struct{}
	clearedtrackers    bool
	done               bool
	oldValue           func(context.Context) (*Template, error)
	predicates         []predicate.Template
}

var _ ent.Mutation = (*TemplateMutation)(nil)

// templateOption allows management of the mutation configuration using functional options.
type templateOption func(*TemplateMutation)

// newTemplateMutation creates new mutation for the Template entity.
func newTemplateMutation(c config, op Op, opts ...templateOption) *TemplateMutation {
	m := &TemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemplateID sets the ID field of the mutation.
func withTemplateID(id uuid.UUID) templateOption {
	return func(m *TemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *Template
		)
		m.oldValue = func(ctx context.Context) (*Template, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Template.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemplate sets the old Template of the mutation.
func withTemplate(node *Template) templateOption {
	return func(m *TemplateMutation) {
		m.oldValue = func(context.Context) (*Template, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Template entities.
func (m *TemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Template.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TemplateMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TemplateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[template.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TemplateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[template.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TemplateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, template.FieldDescription)
}

// SetScope sets the "scope" field.
func (m *TemplateMutation) SetScope(t template.Scope) {
	m.scope = &t
}

// Scope returns the value of the "scope" field in the mutation.
func (m *TemplateMutation) Scope() (r template.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldScope(ctx context.Context) (v template.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *TemplateMutation) ResetScope() {
	m.scope = nil
}

// SetLocked sets the "locked" field.
func (m *TemplateMutation) SetLocked(b bool) {
	m.locked = &b
}

// Locked returns the value of the "locked" field in the mutation.
func (m *TemplateMutation) Locked() (r bool, exists bool) {
	v := m.locked
	if v == nil {
		return
	}
	return *v, true
}

// OldLocked returns the old "locked" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldLocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocked: %w", err)
	}
	return oldValue.Locked, nil
}

// ResetLocked resets all changes to the "locked" field.
func (m *TemplateMutation) ResetLocked() {
	m.locked = nil
}

// SetFieldSchema sets the "field_schema" field.
func (m *TemplateMutation) SetFieldSchema(value []map[string]interface{}) {
	m.field_schema = &value
	m.appendfield_schema = nil
}

// FieldSchema returns the value of the "field_schema" field in the mutation.
func (m *TemplateMutation) FieldSchema() (r []map[string]interface{}, exists bool) {
	v := m.field_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldSchema returns the old "field_schema" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldFieldSchema(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldSchema: %w", err)
	}
	return oldValue.FieldSchema, nil
}

// AppendFieldSchema adds value to the "field_schema" field.
func (m *TemplateMutation) AppendFieldSchema(value []map[string]interface{}) {
	m.appendfield_schema = append(m.appendfield_schema, value...)
}

// AppendedFieldSchema returns the list of values that were appended to the "field_schema" field in this mutation.
func (m *TemplateMutation) AppendedFieldSchema() ([]map[string]interface{}, bool) {
	if len(m.appendfield_schema) == 0 {
		return nil, false
	}
	return m.appendfield_schema, true
}

// ResetFieldSchema resets all changes to the "field_schema" field.
func (m *TemplateMutation) ResetFieldSchema() {
	m.field_schema = nil
	m.appendfield_schema = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *TemplateMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *TemplateMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *TemplateMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[template.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *TemplateMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[template.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *TemplateMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, template.FieldArchivedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *TemplateMutation) SetOwnerID(id uuid.UUID) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *TemplateMutation) ClearOwner() {
	m.clearedowner = true
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *TemplateMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *TemplateMutation) OwnerID() (id uuid.UUID, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *TemplateMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *TemplateMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddTrackerIDs adds the "trackers" edge to the Tracker entity by ids.
func (m *TemplateMutation) AddTrackerIDs(ids ...uuid.UUID) {
	if m.trackers == nil {
		m.trackers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.trackers[ids[i]] = struct{}{}
	}
}

// ClearTrackers clears the "trackers" edge to the Tracker entity.
func (m *TemplateMutation) ClearTrackers() {
	m.clearedtrackers = true
}

// TrackersCleared reports if the "trackers" edge to the Tracker entity was cleared.
func (m *TemplateMutation) TrackersCleared() bool {
	return m.clearedtrackers
}

// RemoveTrackerIDs removes the "trackers" edge to the Tracker entity by IDs.
func (m *TemplateMutation) RemoveTrackerIDs(ids ...uuid.UUID) {
	if m.removedtrackers == nil {
		m.removedtrackers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.trackers, ids[i])
		m.removedtrackers[ids[i]] = struct{}{}
	}
}

// RemovedTrackers returns the removed IDs of the "trackers" edge to the Tracker entity.
func (m *TemplateMutation) RemovedTrackersIDs() (ids []uuid.UUID) {
	for id := range m.removedtrackers {
		ids = append(ids, id)
	}
	return
}

// TrackersIDs returns the "trackers" edge IDs in the mutation.
func (m *TemplateMutation) TrackersIDs() (ids []uuid.UUID) {
	for id := range m.trackers {
		ids = append(ids, id)
	}
	return
}

// ResetTrackers resets all changes to the "trackers" edge.
func (m *TemplateMutation) ResetTrackers() {
	m.trackers = nil
	m.clearedtrackers = false
	m.removedtrackers = nil
}

// Where appends a list predicates to the TemplateMutation builder.
func (m *TemplateMutation) Where(ps ...predicate.Template) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Template, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Template).
func (m *TemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemplateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, template.FieldName)
	}
	if m.description != nil {
		fields = append(fields, template.FieldDescription)
	}
	if m.scope != nil {
		fields = append(fields, template.FieldScope)
	}
	if m.locked != nil {
		fields = append(fields, template.FieldLocked)
	}
	if m.field_schema != nil {
		fields = append(fields, template.FieldFieldSchema)
	}
	if m.archived_at != nil {
		fields = append(fields, template.FieldArchivedAt)
	}
	if m.created_at != nil {
		fields = append(fields, template.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, template.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case template.FieldName:
		return m.Name()
	case template.FieldDescription:
		return m.Description()
	case template.FieldScope:
		return m.Scope()
	case template.FieldLocked:
		return m.Locked()
	case template.FieldFieldSchema:
		return m.FieldSchema()
	case template.FieldArchivedAt:
		return m.ArchivedAt()
	case template.FieldCreatedAt:
		return m.CreatedAt()
	case template.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case template.FieldName:
		return m.OldName(ctx)
	case template.FieldDescription:
		return m.OldDescription(ctx)
	case template.FieldScope:
		return m.OldScope(ctx)
	case template.FieldLocked:
		return m.OldLocked(ctx)
	case template.FieldFieldSchema:
		return m.OldFieldSchema(ctx)
	case template.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case template.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case template.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Template field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case template.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case template.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case template.FieldScope:
		v, ok := value.(template.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case template.FieldLocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocked(v)
		return nil
	case template.FieldFieldSchema:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldSchema(v)
		return nil
	case template.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case template.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case template.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Template numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(template.FieldDescription) {
		fields = append(fields, template.FieldDescription)
	}
	if m.FieldCleared(template.FieldArchivedAt) {
		fields = append(fields, template.FieldArchivedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemplateMutation) ClearField(name string) error {
	switch name {
	case template.FieldDescription:
		m.ClearDescription()
		return nil
	case template.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Template nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemplateMutation) ResetField(name string) error {
	switch name {
	case template.FieldName:
		m.ResetName()
		return nil
	case template.FieldDescription:
		m.ResetDescription()
		return nil
	case template.FieldScope:
		m.ResetScope()
		return nil
	case template.FieldLocked:
		m.ResetLocked()
		return nil
	case template.FieldFieldSchema:
		m.ResetFieldSchema()
		return nil
	case template.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case template.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case template.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.owner != nil {
		edges = append(edges, template.EdgeOwner)
	}
	if m.trackers != nil {
		edges = append(edges, template.EdgeTrackers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case template.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case template.EdgeTrackers:
		ids := make([]ent.Value, 0, len(m.trackers))
		for id := range m.trackers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtrackers != nil {
		edges = append(edges, template.EdgeTrackers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case template.EdgeTrackers:
		ids := make([]ent.Value, 0, len(m.removedtrackers))
		for id := range m.removedtrackers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedowner {
		edges = append(edges, template.EdgeOwner)
	}
	if m.clearedtrackers {
		edges = append(edges, template.EdgeTrackers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case template.EdgeOwner:
		return m.clearedowner
	case template.EdgeTrackers:
		return m.clearedtrackers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemplateMutation) ClearEdge(name string) error {
	switch name {
	case template.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Template unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemplateMutation) ResetEdge(name string) error {
	switch name {
	case template.EdgeOwner:
		m.ResetOwner()
		return nil
	case template.EdgeTrackers:
		m.ResetTrackers()
		return nil
	}
	return fmt.Errorf("unknown Template edge %s", name)
}

// TemplateShareLinkMutation represents an operation that mutates the TemplateShareLink nodes in the graph.
type TemplateShareLinkMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	token           *string
	created_by      *uuid.UUID
	expires_at      *time.Time
	max_uses        *int
	addmax_uses     *int
	use_count       *int
	adduse_count    *int
	revoked_at      *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	template        *uuid.UUID
	clearedtemplate bool
	done            bool
	oldValue        func(context.Context) (*TemplateShareLink, error)
	predicates      []predicate.TemplateShareLink
}

var _ ent.Mutation = (*TemplateShareLinkMutation)(nil)

// templatesharelinkOption allows management of the mutation configuration using functional options.
type templatesharelinkOption func(*TemplateShareLinkMutation)

// newTemplateShareLinkMutation creates new mutation for the TemplateShareLink entity.
func newTemplateShareLinkMutation(c config, op Op, opts ...templatesharelinkOption) *TemplateShareLinkMutation {
	m := &TemplateShareLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeTemplateShareLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemplateShareLinkID sets the ID field of the mutation.
func withTemplateShareLinkID(id uuid.UUID) templatesharelinkOption {
	return func(m *TemplateShareLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *TemplateShareLink
		)
		m.oldValue = func(ctx context.Context) (*TemplateShareLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TemplateShareLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemplateShareLink sets the old TemplateShareLink of the mutation.
func withTemplateShareLink(node *TemplateShareLink) templatesharelinkOption {
	return func(m *TemplateShareLinkMutation) {
		m.oldValue = func(context.Context) (*TemplateShareLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemplateShareLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemplateShareLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TemplateShareLink entities.
func (m *TemplateShareLinkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemplateShareLinkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemplateShareLinkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TemplateShareLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetToken sets the "token" field.
func (m *TemplateShareLinkMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *TemplateShareLinkMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the TemplateShareLink entity.
// If the TemplateShareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateShareLinkMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *TemplateShareLinkMutation) ResetToken() {
	m.token = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *TemplateShareLinkMutation) SetCreatedBy(u uuid.UUID) {
	m.created_by = &u
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *TemplateShareLinkMutation) CreatedBy() (r uuid.UUID, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the TemplateShareLink entity.
// If the TemplateShareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateShareLinkMutation) OldCreatedBy(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *TemplateShareLinkMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *TemplateShareLinkMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *TemplateShareLinkMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the TemplateShareLink entity.
// If the TemplateShareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateShareLinkMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *TemplateShareLinkMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[templatesharelink.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *TemplateShareLinkMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[templatesharelink.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *TemplateShareLinkMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, templatesharelink.FieldExpiresAt)
}

// SetMaxUses sets the "max_uses" field.
func (m *TemplateShareLinkMutation) SetMaxUses(i int) {
	m.max_uses = &i
	m.addmax_uses = nil
}

// MaxUses returns the value of the "max_uses" field in the mutation.
func (m *TemplateShareLinkMutation) MaxUses() (r int, exists bool) {
	v := m.max_uses
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxUses returns the old "max_uses" field's value of the TemplateShareLink entity.
// If the TemplateShareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateShareLinkMutation) OldMaxUses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxUses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxUses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxUses: %w", err)
	}
	return oldValue.MaxUses, nil
}

// AddMaxUses adds i to the "max_uses" field.
func (m *TemplateShareLinkMutation) AddMaxUses(i int) {
	if m.addmax_uses != nil {
		*m.addmax_uses += i
	} else {
		m.addmax_uses = &i
	}
}

// AddedMaxUses returns the value that was added to the "max_uses" field in this mutation.
func (m *TemplateShareLinkMutation) AddedMaxUses() (r int, exists bool) {
	v := m.addmax_uses
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxUses resets all changes to the "max_uses" field.
func (m *TemplateShareLinkMutation) ResetMaxUses() {
	m.max_uses = nil
	m.addmax_uses = nil
}

// SetUseCount sets the "use_count" field.
func (m *TemplateShareLinkMutation) SetUseCount(i int) {
	m.use_count = &i
	m.adduse_count = nil
}

// UseCount returns the value of the "use_count" field in the mutation.
func (m *TemplateShareLinkMutation) UseCount() (r int, exists bool) {
	v := m.use_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUseCount returns the old "use_count" field's value of the TemplateShareLink entity.
// If the TemplateShareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateShareLinkMutation) OldUseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseCount: %w", err)
	}
	return oldValue.UseCount, nil
}

// AddUseCount adds i to the "use_count" field.
func (m *TemplateShareLinkMutation) AddUseCount(i int) {
	if m.adduse_count != nil {
		*m.adduse_count += i
	} else {
		m.adduse_count = &i
	}
}

// AddedUseCount returns the value that was added to the "use_count" field in this mutation.
func (m *TemplateShareLinkMutation) AddedUseCount() (r int, exists bool) {
	v := m.adduse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUseCount resets all changes to the "use_count" field.
func (m *TemplateShareLinkMutation) ResetUseCount() {
	m.use_count = nil
	m.adduse_count = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *TemplateShareLinkMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *TemplateShareLinkMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the TemplateShareLink entity.
// If the TemplateShareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateShareLinkMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *TemplateShareLinkMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[templatesharelink.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *TemplateShareLinkMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[templatesharelink.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *TemplateShareLinkMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, templatesharelink.FieldRevokedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TemplateShareLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TemplateShareLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TemplateShareLink entity.
// If the TemplateShareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateShareLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TemplateShareLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTemplateID sets the "template" edge to the Template entity by id.
func (m *TemplateShareLinkMutation) SetTemplateID(id uuid.UUID) {
	m.template = &id
}

// ClearTemplate clears the "template" edge to the Template entity.
func (m *TemplateShareLinkMutation) ClearTemplate() {
	m.clearedtemplate = true
}

// TemplateCleared reports if the "template" edge to the Template entity was cleared.
func (m *TemplateShareLinkMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateID returns the "template" edge ID in the mutation.
func (m *TemplateShareLinkMutation) TemplateID() (id uuid.UUID, exists bool) {
	if m.template != nil {
		return *m.template, true
	}
	return
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *TemplateShareLinkMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *TemplateShareLinkMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// Where appends a list predicates to the TemplateShareLinkMutation builder.
func (m *TemplateShareLinkMutation) Where(ps ...predicate.TemplateShareLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemplateShareLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemplateShareLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TemplateShareLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemplateShareLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemplateShareLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TemplateShareLink).
func (m *TemplateShareLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemplateShareLinkMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.token != nil {
		fields = append(fields, templatesharelink.FieldToken)
	}
	if m.created_by != nil {
		fields = append(fields, templatesharelink.FieldCreatedBy)
	}
	if m.expires_at != nil {
		fields = append(fields, templatesharelink.FieldExpiresAt)
	}
	if m.max_uses != nil {
		fields = append(fields, templatesharelink.FieldMaxUses)
	}
	if m.use_count != nil {
		fields = append(fields, templatesharelink.FieldUseCount)
	}
	if m.revoked_at != nil {
		fields = append(fields, templatesharelink.FieldRevokedAt)
	}
	if m.created_at != nil {
		fields = append(fields, templatesharelink.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemplateShareLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case templatesharelink.FieldToken:
		return m.Token()
	case templatesharelink.FieldCreatedBy:
		return m.CreatedBy()
	case templatesharelink.FieldExpiresAt:
		return m.ExpiresAt()
	case templatesharelink.FieldMaxUses:
		return m.MaxUses()
	case templatesharelink.FieldUseCount:
		return m.UseCount()
	case templatesharelink.FieldRevokedAt:
		return m.RevokedAt()
	case templatesharelink.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemplateShareLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case templatesharelink.FieldToken:
		return m.OldToken(ctx)
	case templatesharelink.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case templatesharelink.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case templatesharelink.FieldMaxUses:
		return m.OldMaxUses(ctx)
	case templatesharelink.FieldUseCount:
		return m.OldUseCount(ctx)
	case templatesharelink.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	case templatesharelink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TemplateShareLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateShareLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case templatesharelink.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case templatesharelink.FieldCreatedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case templatesharelink.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case templatesharelink.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxUses(v)
		return nil
	case templatesharelink.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseCount(v)
		return nil
	case templatesharelink.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	case templatesharelink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TemplateShareLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemplateShareLinkMutation) AddedFields() []string {
	var fields []string
	if m.addmax_uses != nil {
		fields = append(fields, templatesharelink.FieldMaxUses)
	}
	if m.adduse_count != nil {
		fields = append(fields, templatesharelink.FieldUseCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemplateShareLinkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case templatesharelink.FieldMaxUses:
		return m.AddedMaxUses()
	case templatesharelink.FieldUseCount:
		return m.AddedUseCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateShareLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case templatesharelink.FieldMaxUses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxUses(v)
		return nil
	case templatesharelink.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUseCount(v)
		return nil
	}
	return fmt.Errorf("unknown TemplateShareLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemplateShareLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(templatesharelink.FieldExpiresAt) {
		fields = append(fields, templatesharelink.FieldExpiresAt)
	}
	if m.FieldCleared(templatesharelink.FieldRevokedAt) {
		fields = append(fields, templatesharelink.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemplateShareLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemplateShareLinkMutation) ClearField(name string) error {
	switch name {
	case templatesharelink.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case templatesharelink.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown TemplateShareLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemplateShareLinkMutation) ResetField(name string) error {
	switch name {
	case templatesharelink.FieldToken:
		m.ResetToken()
		return nil
	case templatesharelink.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case templatesharelink.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case templatesharelink.FieldMaxUses:
		m.ResetMaxUses()
		return nil
	case templatesharelink.FieldUseCount:
		m.ResetUseCount()
		return nil
	case templatesharelink.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	case templatesharelink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TemplateShareLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemplateShareLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.template != nil {
		edges = append(edges, templatesharelink.EdgeTemplate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemplateShareLinkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case templatesharelink.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemplateShareLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemplateShareLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemplateShareLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtemplate {
		edges = append(edges, templatesharelink.EdgeTemplate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemplateShareLinkMutation) EdgeCleared(name string) bool {
	switch name {
	case templatesharelink.EdgeTemplate:
		return m.clearedtemplate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemplateShareLinkMutation) ClearEdge(name string) error {
	switch name {
	case templatesharelink.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown TemplateShareLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemplateShareLinkMutation) ResetEdge(name string) error {
	switch name {
	case templatesharelink.EdgeTemplate:
		m.ResetTemplate()
		return nil
	}
	return fmt.Errorf("unknown TemplateShareLink edge %s", name)
}

// TrackerMutation represents an operation that mutates the Tracker nodes in the graph.
type TrackerMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	name                        *string
	description                 *string
	granularity                 *tracker.Granularity
	field_schema_snapshot       *[]map[string]interface{}
	appendfield_schema_snapshot []map[string]interface{}
	display_order               *int
	adddisplay_order            *int
	chart_config                *map[string]interface{}
	icon                        *string
	color                       *string
	archived_at                 *time.Time
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	owner                       *uuid.UUID
	clearedowner                bool
	template                    *uuid.UUID
	clearedtemplate             bool
	entries                     map[uuid.UUID]struct{}
	removedentries              map[uuid.UUID]struct{}
	clearedentries              bool
	done                        bool
	oldValue                    func(context.Context) (*Tracker, error)
	predicates                  []predicate.Tracker
}

var _ ent.Mutation = (*TrackerMutation)(nil)

// trackerOption allows management of the mutation configuration using functional options.
type trackerOption func(*TrackerMutation)

// newTrackerMutation creates new mutation for the Tracker entity.
func newTrackerMutation(c config, op Op, opts ...trackerOption) *TrackerMutation {
	m := &TrackerMutation{
		config:        c,
		op:            op,
		typ:           TypeTracker,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrackerID sets the ID field of the mutation.
func withTrackerID(id uuid.UUID) trackerOption {
	return func(m *TrackerMutation) {
		var (
			err   error
			once  sync.Once
			value *Tracker
		)
		m.oldValue = func(ctx context.Context) (*Tracker, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tracker.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTracker sets the old Tracker of the mutation.
func withTracker(node *Tracker) trackerOption {
	return func(m *TrackerMutation) {
		m.oldValue = func(context.Context) (*Tracker, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrackerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrackerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tracker entities.
func (m *TrackerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrackerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrackerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tracker.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TrackerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TrackerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TrackerMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TrackerMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TrackerMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TrackerMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[tracker.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TrackerMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[tracker.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TrackerMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, tracker.FieldDescription)
}

// SetGranularity sets the "granularity" field.
func (m *TrackerMutation) SetGranularity(t tracker.Granularity) {
	m.granularity = &t
}

// Granularity returns the value of the "granularity" field in the mutation.
func (m *TrackerMutation) Granularity() (r tracker.Granularity, exists bool) {
	v := m.granularity
	if v == nil {
		return
	}
	return *v, true
}

// OldGranularity returns the old "granularity" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldGranularity(ctx context.Context) (v tracker.Granularity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGranularity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGranularity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGranularity: %w", err)
	}
	return oldValue.Granularity, nil
}

// ResetGranularity resets all changes to the "granularity" field.
func (m *TrackerMutation) ResetGranularity() {
	m.granularity = nil
}

// SetFieldSchemaSnapshot sets the "field_schema_snapshot" field.
func (m *TrackerMutation) SetFieldSchemaSnapshot(value []map[string]interface{}) {
	m.field_schema_snapshot = &value
	m.appendfield_schema_snapshot = nil
}

// FieldSchemaSnapshot returns the value of the "field_schema_snapshot" field in the mutation.
func (m *TrackerMutation) FieldSchemaSnapshot() (r []map[string]interface{}, exists bool) {
	v := m.field_schema_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldSchemaSnapshot returns the old "field_schema_snapshot" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldFieldSchemaSnapshot(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldSchemaSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldSchemaSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldSchemaSnapshot: %w", err)
	}
	return oldValue.FieldSchemaSnapshot, nil
}

// AppendFieldSchemaSnapshot adds value to the "field_schema_snapshot" field.
func (m *TrackerMutation) AppendFieldSchemaSnapshot(value []map[string]interface{}) {
	m.appendfield_schema_snapshot = append(m.appendfield_schema_snapshot, value...)
}

// AppendedFieldSchemaSnapshot returns the list of values that were appended to the "field_schema_snapshot" field in this mutation.
func (m *TrackerMutation) AppendedFieldSchemaSnapshot() ([]map[string]interface{}, bool) {
	if len(m.appendfield_schema_snapshot) == 0 {
		return nil, false
	}
	return m.appendfield_schema_snapshot, true
}

// ResetFieldSchemaSnapshot resets all changes to the "field_schema_snapshot" field.
func (m *TrackerMutation) ResetFieldSchemaSnapshot() {
	m.field_schema_snapshot = nil
	m.appendfield_schema_snapshot = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *TrackerMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *TrackerMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *TrackerMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *TrackerMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *TrackerMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetChartConfig sets the "chart_config" field.
func (m *TrackerMutation) SetChartConfig(value map[string]interface{}) {
	m.chart_config = &value
}

// ChartConfig returns the value of the "chart_config" field in the mutation.
func (m *TrackerMutation) ChartConfig() (r map[string]interface{}, exists bool) {
	v := m.chart_config
	if v == nil {
		return
	}
	return *v, true
}

// OldChartConfig returns the old "chart_config" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldChartConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartConfig: %w", err)
	}
	return oldValue.ChartConfig, nil
}

// ClearChartConfig clears the value of the "chart_config" field.
func (m *TrackerMutation) ClearChartConfig() {
	m.chart_config = nil
	m.clearedFields[tracker.FieldChartConfig] = struct{}{}
}

// ChartConfigCleared returns if the "chart_config" field was cleared in this mutation.
func (m *TrackerMutation) ChartConfigCleared() bool {
	_, ok := m.clearedFields[tracker.FieldChartConfig]
	return ok
}

// ResetChartConfig resets all changes to the "chart_config" field.
func (m *TrackerMutation) ResetChartConfig() {
	m.chart_config = nil
	delete(m.clearedFields, tracker.FieldChartConfig)
}

// SetIcon sets the "icon" field.
func (m *TrackerMutation) SetIcon(s string) {
	m.icon = &s
}

// Icon returns the value of the "icon" field in the mutation.
func (m *TrackerMutation) Icon() (r string, exists bool) {
	v := m.icon
	if v == nil {
		return
	}
	return *v, true
}

// OldIcon returns the old "icon" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldIcon(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIcon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIcon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIcon: %w", err)
	}
	return oldValue.Icon, nil
}

// ClearIcon clears the value of the "icon" field.
func (m *TrackerMutation) ClearIcon() {
	m.icon = nil
	m.clearedFields[tracker.FieldIcon] = struct{}{}
}

// IconCleared returns if the "icon" field was cleared in this mutation.
func (m *TrackerMutation) IconCleared() bool {
	_, ok := m.clearedFields[tracker.FieldIcon]
	return ok
}

// ResetIcon resets all changes to the "icon" field.
func (m *TrackerMutation) ResetIcon() {
	m.icon = nil
	delete(m.clearedFields, tracker.FieldIcon)
}

// SetColor sets the "color" field.
func (m *TrackerMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *TrackerMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *TrackerMutation) ClearColor() {
	m.color = nil
	m.clearedFields[tracker.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *TrackerMutation) ColorCleared() bool {
	_, ok := m.clearedFields[tracker.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *TrackerMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, tracker.FieldColor)
}

// SetArchivedAt sets the "archived_at" field.
func (m *TrackerMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *TrackerMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldArchivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ClearArchivedAt clears the value of the "archived_at" field.
func (m *TrackerMutation) ClearArchivedAt() {
	m.archived_at = nil
	m.clearedFields[tracker.FieldArchivedAt] = struct{}{}
}

// ArchivedAtCleared returns if the "archived_at" field was cleared in this mutation.
func (m *TrackerMutation) ArchivedAtCleared() bool {
	_, ok := m.clearedFields[tracker.FieldArchivedAt]
	return ok
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *TrackerMutation) ResetArchivedAt() {
	m.archived_at = nil
	delete(m.clearedFields, tracker.FieldArchivedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *TrackerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrackerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrackerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TrackerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TrackerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tracker entity.
// If the Tracker object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TrackerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *TrackerMutation) SetOwnerID(id uuid.UUID) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *TrackerMutation) ClearOwner() {
	m.clearedowner = true
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *TrackerMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *TrackerMutation) OwnerID() (id uuid.UUID, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *TrackerMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *TrackerMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// SetTemplateID sets the "template" edge to the Template entity by id.
func (m *TrackerMutation) SetTemplateID(id uuid.UUID) {
	m.template = &id
}

// ClearTemplate clears the "template" edge to the Template entity.
func (m *TrackerMutation) ClearTemplate() {
	m.clearedtemplate = true
}

// TemplateCleared reports if the "template" edge to the Template entity was cleared.
func (m *TrackerMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateID returns the "template" edge ID in the mutation.
func (m *TrackerMutation) TemplateID() (id uuid.UUID, exists bool) {
	if m.template != nil {
		return *m.template, true
	}
	return
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *TrackerMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *TrackerMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// AddEntryIDs adds the "entries" edge to the TrackerEntry entity by ids.
func (m *TrackerMutation) AddEntryIDs(ids ...uuid.UUID) {
	if m.entries == nil {
		m.entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the TrackerEntry entity.
func (m *TrackerMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the TrackerEntry entity was cleared.
func (m *TrackerMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the TrackerEntry entity by IDs.
func (m *TrackerMutation) RemoveEntryIDs(ids ...uuid.UUID) {
	if m.removedentries == nil {
		m.removedentries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the TrackerEntry entity.
func (m *TrackerMutation) RemovedEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *TrackerMutation) EntriesIDs() (ids []uuid.UUID) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *TrackerMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// Where appends a list predicates to the TrackerMutation builder.
func (m *TrackerMutation) Where(ps ...predicate.Tracker) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrackerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrackerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tracker, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrackerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrackerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tracker).
func (m *TrackerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrackerMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, tracker.FieldName)
	}
	if m.description != nil {
		fields = append(fields, tracker.FieldDescription)
	}
	if m.granularity != nil {
		fields = append(fields, tracker.FieldGranularity)
	}
	if m.field_schema_snapshot != nil {
		fields = append(fields, tracker.FieldFieldSchemaSnapshot)
	}
	if m.display_order != nil {
		fields = append(fields, tracker.FieldDisplayOrder)
	}
	if m.chart_config != nil {
		fields = append(fields, tracker.FieldChartConfig)
	}
	if m.icon != nil {
		fields = append(fields, tracker.FieldIcon)
	}
	if m.color != nil {
		fields = append(fields, tracker.FieldColor)
	}
	if m.archived_at != nil {
		fields = append(fields, tracker.FieldArchivedAt)
	}
	if m.created_at != nil {
		fields = append(fields, tracker.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tracker.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrackerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tracker.FieldName:
		return m.Name()
	case tracker.FieldDescription:
		return m.Description()
	case tracker.FieldGranularity:
		return m.Granularity()
	case tracker.FieldFieldSchemaSnapshot:
		return m.FieldSchemaSnapshot()
	case tracker.FieldDisplayOrder:
		return m.DisplayOrder()
	case tracker.FieldChartConfig:
		return m.ChartConfig()
	case tracker.FieldIcon:
		return m.Icon()
	case tracker.FieldColor:
		return m.Color()
	case tracker.FieldArchivedAt:
		return m.ArchivedAt()
	case tracker.FieldCreatedAt:
		return m.CreatedAt()
	case tracker.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrackerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tracker.FieldName:
		return m.OldName(ctx)
	case tracker.FieldDescription:
		return m.OldDescription(ctx)
	case tracker.FieldGranularity:
		return m.OldGranularity(ctx)
	case tracker.FieldFieldSchemaSnapshot:
		return m.OldFieldSchemaSnapshot(ctx)
	case tracker.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case tracker.FieldChartConfig:
		return m.OldChartConfig(ctx)
	case tracker.FieldIcon:
		return m.OldIcon(ctx)
	case tracker.FieldColor:
		return m.OldColor(ctx)
	case tracker.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	case tracker.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tracker.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tracker field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tracker.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tracker.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case tracker.FieldGranularity:
		v, ok := value.(tracker.Granularity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGranularity(v)
		return nil
	case tracker.FieldFieldSchemaSnapshot:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldSchemaSnapshot(v)
		return nil
	case tracker.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case tracker.FieldChartConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartConfig(v)
		return nil
	case tracker.FieldIcon:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIcon(v)
		return nil
	case tracker.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case tracker.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	case tracker.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tracker.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tracker field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrackerMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_order != nil {
		fields = append(fields, tracker.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrackerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tracker.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tracker.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Tracker numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrackerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tracker.FieldDescription) {
		fields = append(fields, tracker.FieldDescription)
	}
	if m.FieldCleared(tracker.FieldChartConfig) {
		fields = append(fields, tracker.FieldChartConfig)
	}
	if m.FieldCleared(tracker.FieldIcon) {
		fields = append(fields, tracker.FieldIcon)
	}
	if m.FieldCleared(tracker.FieldColor) {
		fields = append(fields, tracker.FieldColor)
	}
	if m.FieldCleared(tracker.FieldArchivedAt) {
		fields = append(fields, tracker.FieldArchivedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrackerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrackerMutation) ClearField(name string) error {
	switch name {
	case tracker.FieldDescription:
		m.ClearDescription()
		return nil
	case tracker.FieldChartConfig:
		m.ClearChartConfig()
		return nil
	case tracker.FieldIcon:
		m.ClearIcon()
		return nil
	case tracker.FieldColor:
		m.ClearColor()
		return nil
	case tracker.FieldArchivedAt:
		m.ClearArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown Tracker nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrackerMutation) ResetField(name string) error {
	switch name {
	case tracker.FieldName:
		m.ResetName()
		return nil
	case tracker.FieldDescription:
		m.ResetDescription()
		return nil
	case tracker.FieldGranularity:
		m.ResetGranularity()
		return nil
	case tracker.FieldFieldSchemaSnapshot:
		m.ResetFieldSchemaSnapshot()
		return nil
	case tracker.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case tracker.FieldChartConfig:
		m.ResetChartConfig()
		return nil
	case tracker.FieldIcon:
		m.ResetIcon()
		return nil
	case tracker.FieldColor:
		m.ResetColor()
		return nil
	case tracker.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	case tracker.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tracker.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tracker field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrackerMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.owner != nil {
		edges = append(edges, tracker.EdgeOwner)
	}
	if m.template != nil {
		edges = append(edges, tracker.EdgeTemplate)
	}
	if m.entries != nil {
		edges = append(edges, tracker.EdgeEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrackerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tracker.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case tracker.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	case tracker.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrackerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedentries != nil {
		edges = append(edges, tracker.EdgeEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrackerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tracker.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrackerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedowner {
		edges = append(edges, tracker.EdgeOwner)
	}
	if m.clearedtemplate {
		edges = append(edges, tracker.EdgeTemplate)
	}
	if m.clearedentries {
		edges = append(edges, tracker.EdgeEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrackerMutation) EdgeCleared(name string) bool {
	switch name {
	case tracker.EdgeOwner:
		return m.clearedowner
	case tracker.EdgeTemplate:
		return m.clearedtemplate
	case tracker.EdgeEntries:
		return m.clearedentries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrackerMutation) ClearEdge(name string) error {
	switch name {
	case tracker.EdgeOwner:
		m.ClearOwner()
		return nil
	case tracker.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown Tracker unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrackerMutation) ResetEdge(name string) error {
	switch name {
	case tracker.EdgeOwner:
		m.ResetOwner()
		return nil
	case tracker.EdgeTemplate:
		m.ResetTemplate()
		return nil
	case tracker.EdgeEntries:
		m.ResetEntries()
		return nil
	}
	return fmt.Errorf("unknown Tracker edge %s", name)
}

// TrackerEntryMutation represents an operation that mutates the TrackerEntry nodes in the graph.
type TrackerEntryMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	owner_id       *uuid.UUID
	entry_date     *string
	granularity    *trackerentry.Granularity
	slot           *int
	addslot        *int
	field_values   *map[string]interface{}
	notes          *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	tracker        *uuid.UUID
	clearedtracker bool
	done           bool
	oldValue       func(context.Context) (*TrackerEntry, error)
	predicates     []predicate.TrackerEntry
}

var _ ent.Mutation = (*TrackerEntryMutation)(nil)

// trackerentryOption allows management of the mutation configuration using functional options.
type trackerentryOption func(*TrackerEntryMutation)

// newTrackerEntryMutation creates new mutation for the TrackerEntry entity.
func newTrackerEntryMutation(c config, op Op, opts ...trackerentryOption) *TrackerEntryMutation {
	m := &TrackerEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeTrackerEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrackerEntryID sets the ID field of the mutation.
func withTrackerEntryID(id uuid.UUID) trackerentryOption {
	return func(m *TrackerEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *TrackerEntry
		)
		m.oldValue = func(ctx context.Context) (*TrackerEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrackerEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrackerEntry sets the old TrackerEntry of the mutation.
func withTrackerEntry(node *TrackerEntry) trackerentryOption {
	return func(m *TrackerEntryMutation) {
		m.oldValue = func(context.Context) (*TrackerEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrackerEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrackerEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrackerEntry entities.
func (m *TrackerEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrackerEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrackerEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrackerEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *TrackerEntryMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *TrackerEntryMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the TrackerEntry entity.
// If the TrackerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerEntryMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *TrackerEntryMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetEntryDate sets the "entry_date" field.
func (m *TrackerEntryMutation) SetEntryDate(s string) {
	m.entry_date = &s
}

// EntryDate returns the value of the "entry_date" field in the mutation.
func (m *TrackerEntryMutation) EntryDate() (r string, exists bool) {
	v := m.entry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryDate returns the old "entry_date" field's value of the TrackerEntry entity.
// If the TrackerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerEntryMutation) OldEntryDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryDate: %w", err)
	}
	return oldValue.EntryDate, nil
}

// ResetEntryDate resets all changes to the "entry_date" field.
func (m *TrackerEntryMutation) ResetEntryDate() {
	m.entry_date = nil
}

// SetGranularity sets the "granularity" field.
func (m *TrackerEntryMutation) SetGranularity(t trackerentry.Granularity) {
	m.granularity = &t
}

// Granularity returns the value of the "granularity" field in the mutation.
func (m *TrackerEntryMutation) Granularity() (r trackerentry.Granularity, exists bool) {
	v := m.granularity
	if v == nil {
		return
	}
	return *v, true
}

// OldGranularity returns the old "granularity" field's value of the TrackerEntry entity.
// If the TrackerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerEntryMutation) OldGranularity(ctx context.Context) (v trackerentry.Granularity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGranularity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGranularity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGranularity: %w", err)
	}
	return oldValue.Granularity, nil
}

// ResetGranularity resets all changes to the "granularity" field.
func (m *TrackerEntryMutation) ResetGranularity() {
	m.granularity = nil
}

// SetSlot sets the "slot" field.
func (m *TrackerEntryMutation) SetSlot(i int) {
	m.slot = &i
	m.addslot = nil
}

// Slot returns the value of the "slot" field in the mutation.
func (m *TrackerEntryMutation) Slot() (r int, exists bool) {
	v := m.slot
	if v == nil {
		return
	}
	return *v, true
}

// OldSlot returns the old "slot" field's value of the TrackerEntry entity.
// If the TrackerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerEntryMutation) OldSlot(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlot: %w", err)
	}
	return oldValue.Slot, nil
}

// AddSlot adds i to the "slot" field.
func (m *TrackerEntryMutation) AddSlot(i int) {
	if m.addslot != nil {
		*m.addslot += i
	} else {
		m.addslot = &i
	}
}

// AddedSlot returns the value that was added to the "slot" field in this mutation.
func (m *TrackerEntryMutation) AddedSlot() (r int, exists bool) {
	v := m.addslot
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlot resets all changes to the "slot" field.
func (m *TrackerEntryMutation) ResetSlot() {
	m.slot = nil
	m.addslot = nil
}

// SetFieldValues sets the "field_values" field.
func (m *TrackerEntryMutation) SetFieldValues(value map[string]interface{}) {
	m.field_values = &value
}

// FieldValues returns the value of the "field_values" field in the mutation.
func (m *TrackerEntryMutation) FieldValues() (r map[string]interface{}, exists bool) {
	v := m.field_values
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldValues returns the old "field_values" field's value of the TrackerEntry entity.
// If the TrackerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerEntryMutation) OldFieldValues(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldValues: %w", err)
	}
	return oldValue.FieldValues, nil
}

// ResetFieldValues resets all changes to the "field_values" field.
func (m *TrackerEntryMutation) ResetFieldValues() {
	m.field_values = nil
}

// SetNotes sets the "notes" field.
func (m *TrackerEntryMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *TrackerEntryMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the TrackerEntry entity.
// If the TrackerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerEntryMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *TrackerEntryMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[trackerentry.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *TrackerEntryMutation) NotesCleared() bool {
	_, ok := m.clearedFields[trackerentry.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *TrackerEntryMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, trackerentry.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *TrackerEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrackerEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrackerEntry entity.
// If the TrackerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrackerEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TrackerEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TrackerEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TrackerEntry entity.
// If the TrackerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackerEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TrackerEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTrackerID sets the "tracker" edge to the Tracker entity by id.
func (m *TrackerEntryMutation) SetTrackerID(id uuid.UUID) {
	m.tracker = &id
}

// ClearTracker clears the "tracker" edge to the Tracker entity.
func (m *TrackerEntryMutation) ClearTracker() {
	m.clearedtracker = true
}

// TrackerCleared reports if the "tracker" edge to the Tracker entity was cleared.
func (m *TrackerEntryMutation) TrackerCleared() bool {
	return m.clearedtracker
}

// TrackerID returns the "tracker" edge ID in the mutation.
func (m *TrackerEntryMutation) TrackerID() (id uuid.UUID, exists bool) {
	if m.tracker != nil {
		return *m.tracker, true
	}
	return
}

// TrackerIDs returns the "tracker" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TrackerID instead. It exists only for internal usage by the builders.
func (m *TrackerEntryMutation) TrackerIDs() (ids []uuid.UUID) {
	if id := m.tracker; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTracker resets all changes to the "tracker" edge.
func (m *TrackerEntryMutation) ResetTracker() {
	m.tracker = nil
	m.clearedtracker = false
}

// Where appends a list predicates to the TrackerEntryMutation builder.
func (m *TrackerEntryMutation) Where(ps ...predicate.TrackerEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrackerEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrackerEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrackerEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrackerEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrackerEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrackerEntry).
func (m *TrackerEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrackerEntryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner_id != nil {
		fields = append(fields, trackerentry.FieldOwnerID)
	}
	if m.entry_date != nil {
		fields = append(fields, trackerentry.FieldEntryDate)
	}
	if m.granularity != nil {
		fields = append(fields, trackerentry.FieldGranularity)
	}
	if m.slot != nil {
		fields = append(fields, trackerentry.FieldSlot)
	}
	if m.field_values != nil {
		fields = append(fields, trackerentry.FieldFieldValues)
	}
	if m.notes != nil {
		fields = append(fields, trackerentry.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, trackerentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, trackerentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrackerEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trackerentry.FieldOwnerID:
		return m.OwnerID()
	case trackerentry.FieldEntryDate:
		return m.EntryDate()
	case trackerentry.FieldGranularity:
		return m.Granularity()
	case trackerentry.FieldSlot:
		return m.Slot()
	case trackerentry.FieldFieldValues:
		return m.FieldValues()
	case trackerentry.FieldNotes:
		return m.Notes()
	case trackerentry.FieldCreatedAt:
		return m.CreatedAt()
	case trackerentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrackerEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trackerentry.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case trackerentry.FieldEntryDate:
		return m.OldEntryDate(ctx)
	case trackerentry.FieldGranularity:
		return m.OldGranularity(ctx)
	case trackerentry.FieldSlot:
		return m.OldSlot(ctx)
	case trackerentry.FieldFieldValues:
		return m.OldFieldValues(ctx)
	case trackerentry.FieldNotes:
		return m.OldNotes(ctx)
	case trackerentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case trackerentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrackerEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackerEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trackerentry.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case trackerentry.FieldEntryDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryDate(v)
		return nil
	case trackerentry.FieldGranularity:
		v, ok := value.(trackerentry.Granularity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGranularity(v)
		return nil
	case trackerentry.FieldSlot:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlot(v)
		return nil
	case trackerentry.FieldFieldValues:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldValues(v)
		return nil
	case trackerentry.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case trackerentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case trackerentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrackerEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrackerEntryMutation) AddedFields() []string {
	var fields []string
	if m.addslot != nil {
		fields = append(fields, trackerentry.FieldSlot)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrackerEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trackerentry.FieldSlot:
		return m.AddedSlot()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackerEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trackerentry.FieldSlot:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlot(v)
		return nil
	}
	return fmt.Errorf("unknown TrackerEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrackerEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trackerentry.FieldNotes) {
		fields = append(fields, trackerentry.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrackerEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrackerEntryMutation) ClearField(name string) error {
	switch name {
	case trackerentry.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown TrackerEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrackerEntryMutation) ResetField(name string) error {
	switch name {
	case trackerentry.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case trackerentry.FieldEntryDate:
		m.ResetEntryDate()
		return nil
	case trackerentry.FieldGranularity:
		m.ResetGranularity()
		return nil
	case trackerentry.FieldSlot:
		m.ResetSlot()
		return nil
	case trackerentry.FieldFieldValues:
		m.ResetFieldValues()
		return nil
	case trackerentry.FieldNotes:
		m.ResetNotes()
		return nil
	case trackerentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case trackerentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrackerEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrackerEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tracker != nil {
		edges = append(edges, trackerentry.EdgeTracker)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrackerEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trackerentry.EdgeTracker:
		if id := m.tracker; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrackerEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrackerEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrackerEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtracker {
		edges = append(edges, trackerentry.EdgeTracker)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrackerEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case trackerentry.EdgeTracker:
		return m.clearedtracker
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrackerEntryMutation) ClearEdge(name string) error {
	switch name {
	case trackerentry.EdgeTracker:
		m.ClearTracker()
		return nil
	}
	return fmt.Errorf("unknown TrackerEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrackerEntryMutation) ResetEdge(name string) error {
	switch name {
	case trackerentry.EdgeTracker:
		m.ResetTracker()
		return nil
	}
	return fmt.Errorf("unknown TrackerEntry edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	username         *string
	display_name     *string
	password_hash    *string
	is_admin         *bool
	is_active        *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	groups           map[uuid.UUID]struct{}
	removedgroups    map[uuid.UUID]struct{}
	clearedgroups    bool
	trackers         map[uuid.UUID]struct{}
	removedtrackers  map[uuid.UUID]struct{}
	clearedtrackers  bool
	templates        map[uuid.UUID]struct{}
	removedtemplates map[uuid.UUID]struct{}
	clearedtemplates bool
	done             bool
	oldValue         func(context.Context) (*User, error)
	predicates       []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *UserMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[user.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *UserMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[user.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, user.FieldDisplayName)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetIsAdmin sets the "is_admin" field.
func (m *UserMutation) SetIsAdmin(b bool) {
	m.is_admin = &b
}

// IsAdmin returns the value of the "is_admin" field in the mutation.
func (m *UserMutation) IsAdmin() (r bool, exists bool) {
	v := m.is_admin
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAdmin returns the old "is_admin" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsAdmin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAdmin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAdmin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAdmin: %w", err)
	}
	return oldValue.IsAdmin, nil
}

// ResetIsAdmin resets all changes to the "is_admin" field.
func (m *UserMutation) ResetIsAdmin() {
	m.is_admin = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddGroupIDs adds the "groups" edge to the Group entity by ids.
func (m *UserMutation) AddGroupIDs(ids ...uuid.UUID) {
	if m.groups == nil {
		m.groups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the Group entity.
func (m *UserMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the Group entity was cleared.
func (m *UserMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the Group entity by IDs.
func (m *UserMutation) RemoveGroupIDs(ids ...uuid.UUID) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the Group entity.
func (m *UserMutation) RemovedGroupsIDs() (ids []uuid.UUID) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *UserMutation) GroupsIDs() (ids []uuid.UUID) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *UserMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// AddTrackerIDs adds the "trackers" edge to the Tracker entity by ids.
func (m *UserMutation) AddTrackerIDs(ids ...uuid.UUID) {
	if m.trackers == nil {
		m.trackers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.trackers[ids[i]] = struct{}{}
	}
}

// ClearTrackers clears the "trackers" edge to the Tracker entity.
func (m *UserMutation) ClearTrackers() {
	m.clearedtrackers = true
}

// TrackersCleared reports if the "trackers" edge to the Tracker entity was cleared.
func (m *UserMutation) TrackersCleared() bool {
	return m.clearedtrackers
}

// RemoveTrackerIDs removes the "trackers" edge to the Tracker entity by IDs.
func (m *UserMutation) RemoveTrackerIDs(ids ...uuid.UUID) {
	if m.removedtrackers == nil {
		m.removedtrackers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.trackers, ids[i])
		m.removedtrackers[ids[i]] = struct{}{}
	}
}

// RemovedTrackers returns the removed IDs of the "trackers" edge to the Tracker entity.
func (m *UserMutation) RemovedTrackersIDs() (ids []uuid.UUID) {
	for id := range m.removedtrackers {
		ids = append(ids, id)
	}
	return
}

// TrackersIDs returns the "trackers" edge IDs in the mutation.
func (m *UserMutation) TrackersIDs() (ids []uuid.UUID) {
	for id := range m.trackers {
		ids = append(ids, id)
	}
	return
}

// ResetTrackers resets all changes to the "trackers" edge.
func (m *UserMutation) ResetTrackers() {
	m.trackers = nil
	m.clearedtrackers = false
	m.removedtrackers = nil
}

// AddTemplateIDs adds the "templates" edge to the Template entity by ids.
func (m *UserMutation) AddTemplateIDs(ids ...uuid.UUID) {
	if m.templates == nil {
		m.templates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.templates[ids[i]] = struct{}{}
	}
}

// ClearTemplates clears the "templates" edge to the Template entity.
func (m *UserMutation) ClearTemplates() {
	m.clearedtemplates = true
}

// TemplatesCleared reports if the "templates" edge to the Template entity was cleared.
func (m *UserMutation) TemplatesCleared() bool {
	return m.clearedtemplates
}

// RemoveTemplateIDs removes the "templates" edge to the Template entity by IDs.
func (m *UserMutation) RemoveTemplateIDs(ids ...uuid.UUID) {
	if m.removedtemplates == nil {
		m.removedtemplates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.templates, ids[i])
		m.removedtemplates[ids[i]] = struct{}{}
	}
}

// RemovedTemplates returns the removed IDs of the "templates" edge to the Template entity.
func (m *UserMutation) RemovedTemplatesIDs() (ids []uuid.UUID) {
	for id := range m.removedtemplates {
		ids = append(ids, id)
	}
	return
}

// TemplatesIDs returns the "templates" edge IDs in the mutation.
func (m *UserMutation) TemplatesIDs() (ids []uuid.UUID) {
	for id := range m.templates {
		ids = append(ids, id)
	}
	return
}

// ResetTemplates resets all changes to the "templates" edge.
func (m *UserMutation) ResetTemplates() {
	m.templates = nil
	m.clearedtemplates = false
	m.removedtemplates = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.is_admin != nil {
		fields = append(fields, user.FieldIsAdmin)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldIsAdmin:
		return m.IsAdmin()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldIsAdmin:
		return m.OldIsAdmin(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldIsAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAdmin(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDisplayName) {
		fields = append(fields, user.FieldDisplayName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldIsAdmin:
		m.ResetIsAdmin()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.groups != nil {
		edges = append(edges, user.EdgeGroups)
	}
	if m.trackers != nil {
		edges = append(edges, user.EdgeTrackers)
	}
	if m.templates != nil {
		edges = append(edges, user.EdgeTemplates)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTrackers:
		ids := make([]ent.Value, 0, len(m.trackers))
		for id := range m.trackers {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.templates))
		for id := range m.templates {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedgroups != nil {
		edges = append(edges, user.EdgeGroups)
	}
	if m.removedtrackers != nil {
		edges = append(edges, user.EdgeTrackers)
	}
	if m.removedtemplates != nil {
		edges = append(edges, user.EdgeTemplates)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTrackers:
		ids := make([]ent.Value, 0, len(m.removedtrackers))
		for id := range m.removedtrackers {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.removedtemplates))
		for id := range m.removedtemplates {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedgroups {
		edges = append(edges, user.EdgeGroups)
	}
	if m.clearedtrackers {
		edges = append(edges, user.EdgeTrackers)
	}
	if m.clearedtemplates {
		edges = append(edges, user.EdgeTemplates)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeGroups:
		return m.clearedgroups
	case user.EdgeTrackers:
		return m.clearedtrackers
	case user.EdgeTemplates:
		return m.clearedtemplates
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeGroups:
		m.ResetGroups()
		return nil
	case user.EdgeTrackers:
		m.ResetTrackers()
		return nil
	case user.EdgeTemplates:
		m.ResetTemplates()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"tracker-studio-api/ent/migrate"

	"tracker-studio-api/ent/contextevent"
	"tracker-studio-api/ent/grant"
	"tracker-studio-api/ent/group"
	"tracker-studio-api/ent/interpretation"
	"tracker-studio-api/ent/observationlink"
	"tracker-studio-api/ent/reminder"
	"tracker-studio-api/ent/template"
	"tracker-studio-api/ent/templatesharelink"
	"tracker-studio-api/ent/tracker"
	"tracker-studio-api/ent/trackerentry"
	"tracker-studio-api/ent/user"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ContextEvent is the client for interacting with the ContextEvent builders.
	ContextEvent *ContextEventClient
	// Grant is the client for interacting with the Grant builders.
	Grant *GrantClient
	// Group is the client for interacting with the Group builders.
	Group *GroupClient
	// Interpretation is the client for interacting with the Interpretation builders.
	Interpretation *InterpretationClient
	// ObservationLink is the client for interacting with the ObservationLink builders.
	ObservationLink *ObservationLinkClient
	// Reminder is the client for interacting with the Reminder builders.
	Reminder *ReminderClient
	// Template is the client for interacting with the Template builders.
	Template *TemplateClient
	// TemplateShareLink is the client for interacting with the TemplateShareLink builders.
	TemplateShareLink *TemplateShareLinkClient
	// Tracker is the client for interacting with the Tracker builders.
	Tracker *TrackerClient
	// TrackerEntry is the client for interacting with the TrackerEntry builders.
	TrackerEntry *TrackerEntryClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ContextEvent = NewContextEventClient(c.config)
	c.Grant = NewGrantClient(c.config)
	c.Group = NewGroupClient(c.config)
	c.Interpretation = NewInterpretationClient(c.config)
	c.ObservationLink = NewObservationLinkClient(c.config)
	c.Reminder = NewReminderClient(c.config)
	c.Template = NewTemplateClient(c.config)
	c.TemplateShareLink = NewTemplateShareLinkClient(c.config)
	c.Tracker = NewTrackerClient(c.config)
	c.TrackerEntry = NewTrackerEntryClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ContextEvent:      NewContextEventClient(cfg),
		Grant:             NewGrantClient(cfg),
		Group:             NewGroupClient(cfg),
		Interpretation:    NewInterpretationClient(cfg),
		ObservationLink:   NewObservationLinkClient(cfg),
		Reminder:          NewReminderClient(cfg),
		Template:          NewTemplateClient(cfg),
		TemplateShareLink: NewTemplateShareLinkClient(cfg),
		Tracker:           NewTrackerClient(cfg),
		TrackerEntry:      NewTrackerEntryClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ContextEvent:      NewContextEventClient(cfg),
		Grant:             NewGrantClient(cfg),
		Group:             NewGroupClient(cfg),
		Interpretation:    NewInterpretationClient(cfg),
		ObservationLink:   NewObservationLinkClient(cfg),
		Reminder:          NewReminderClient(cfg),
		Template:          NewTemplateClient(cfg),
		TemplateShareLink: NewTemplateShareLinkClient(cfg),
		Tracker:           NewTrackerClient(cfg),
		TrackerEntry:      NewTrackerEntryClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ContextEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ContextEvent, c.Grant, c.Group, c.Interpretation, c.ObservationLink,
		c.Reminder, c.Template, c.TemplateShareLink, c.Tracker, c.TrackerEntry, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ContextEvent, c.Grant, c.Group, c.Interpretation, c.ObservationLink,
		c.Reminder, c.Template, c.TemplateShareLink, c.Tracker, c.TrackerEntry, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContextEventMutation:
		return c.ContextEvent.mutate(ctx, m)
	case *GrantMutation:
		return c.Grant.mutate(ctx, m)
	case *GroupMutation:
		return c.Group.mutate(ctx, m)
	case *InterpretationMutation:
		return c.Interpretation.mutate(ctx, m)
	case *ObservationLinkMutation:
		return c.ObservationLink.mutate(ctx, m)
	case *ReminderMutation:
		return c.Reminder.mutate(ctx, m)
	case *TemplateMutation:
		return c.Template.mutate(ctx, m)
	case *TemplateShareLinkMutation:
		return c.TemplateShareLink.mutate(ctx, m)
	case *TrackerMutation:
		return c.Tracker.mutate(ctx, m)
	case *TrackerEntryMutation:
		return c.TrackerEntry.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContextEventClient is a client for the ContextEvent schema.
type ContextEventClient struct {
	config
}

// NewContextEventClient returns a client for the ContextEvent from the given config.
func NewContextEventClient(c config) *ContextEventClient {
	return &ContextEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextevent.Hooks(f(g(h())))`.
func (c *ContextEventClient) Use(hooks ...Hook) {
	c.hooks.ContextEvent = append(c.hooks.ContextEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextevent.Intercept(f(g(h())))`.
func (c *ContextEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextEvent = append(c.inters.ContextEvent, interceptors...)
}

// Create returns a builder for creating a ContextEvent entity.
func (c *ContextEventClient) Create() *ContextEventCreate {
	mutation := newContextEventMutation(c.config, OpCreate)
	return &ContextEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextEvent entities.
func (c *ContextEventClient) CreateBulk(builders ...*ContextEventCreate) *ContextEventCreateBulk {
	return &ContextEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextEventClient) MapCreateBulk(slice any, setFunc func(*ContextEventCreate, int)) *ContextEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextEventCreateBulk{err: fmt.Errorf("calling to ContextEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextEvent.
func (c *ContextEventClient) Update() *ContextEventUpdate {
	mutation := newContextEventMutation(c.config, OpUpdate)
	return &ContextEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextEventClient) UpdateOne(_m *ContextEvent) *ContextEventUpdateOne {
	mutation := newContextEventMutation(c.config, OpUpdateOne, withContextEvent(_m))
	return &ContextEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextEventClient) UpdateOneID(id uuid.UUID) *ContextEventUpdateOne {
	mutation := newContextEventMutation(c.config, OpUpdateOne, withContextEventID(id))
	return &ContextEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextEvent.
func (c *ContextEventClient) Delete() *ContextEventDelete {
	mutation := newContextEventMutation(c.config, OpDelete)
	return &ContextEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextEventClient) DeleteOne(_m *ContextEvent) *ContextEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextEventClient) DeleteOneID(id uuid.UUID) *ContextEventDeleteOne {
	builder := c.Delete().Where(contextevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextEventDeleteOne{builder}
}

// Query returns a query builder for ContextEvent.
func (c *ContextEventClient) Query() *ContextEventQuery {
	return &ContextEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextEvent entity by its id.
func (c *ContextEventClient) Get(ctx context.Context, id uuid.UUID) (*ContextEvent, error) {
	return c.Query().Where(contextevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextEventClient) GetX(ctx context.Context, id uuid.UUID) *ContextEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTracker queries the tracker edge of a ContextEvent.
func (c *ContextEventClient) QueryTracker(_m *ContextEvent) *TrackerQuery {
	query := (&TrackerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contextevent.Table, contextevent.FieldID, id),
			sqlgraph.To(tracker.Table, tracker.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, contextevent.TrackerTable, contextevent.TrackerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContextEventClient) Hooks() []Hook {
	return c.hooks.ContextEvent
}

// Interceptors returns the client interceptors.
func (c *ContextEventClient) Interceptors() []Interceptor {
	return c.inters.ContextEvent
}

func (c *ContextEventClient) mutate(ctx context.Context, m *ContextEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextEvent mutation op: %q", m.Op())
	}
}

// GrantClient is a client for the Grant schema.
type GrantClient struct {
	config
}

// NewGrantClient returns a client for the Grant from the given config.
func NewGrantClient(c config) *GrantClient {
	return &GrantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `grant.Hooks(f(g(h())))`.
func (c *GrantClient) Use(hooks ...Hook) {
	c.hooks.Grant = append(c.hooks.Grant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `grant.Intercept(f(g(h())))`.
func (c *GrantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Grant = append(c.inters.Grant, interceptors...)
}

// Create returns a builder for creating a Grant entity.
func (c *GrantClient) Create() *GrantCreate {
	mutation := newGrantMutation(c.config, OpCreate)
	return &GrantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Grant entities.
func (c *GrantClient) CreateBulk(builders ...*GrantCreate) *GrantCreateBulk {
	return &GrantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GrantClient) MapCreateBulk(slice any, setFunc func(*GrantCreate, int)) *GrantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GrantCreateBulk{err: fmt.Errorf("calling to GrantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GrantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GrantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Grant.
func (c *GrantClient) Update() *GrantUpdate {
	mutation := newGrantMutation(c.config, OpUpdate)
	return &GrantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GrantClient) UpdateOne(_m *Grant) *GrantUpdateOne {
	mutation := newGrantMutation(c.config, OpUpdateOne, withGrant(_m))
	return &GrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GrantClient) UpdateOneID(id uuid.UUID) *GrantUpdateOne {
	mutation := newGrantMutation(c.config, OpUpdateOne, withGrantID(id))
	return &GrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Grant.
func (c *GrantClient) Delete() *GrantDelete {
	mutation := newGrantMutation(c.config, OpDelete)
	return &GrantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GrantClient) DeleteOne(_m *Grant) *GrantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GrantClient) DeleteOneID(id uuid.UUID) *GrantDeleteOne {
	builder := c.Delete().Where(grant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GrantDeleteOne{builder}
}

// Query returns a query builder for Grant.
func (c *GrantClient) Query() *GrantQuery {
	return &GrantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGrant},
		inters: c.Interceptors(),
	}
}

// Get returns a Grant entity by its id.
func (c *GrantClient) Get(ctx context.Context, id uuid.UUID) (*Grant, error) {
	return c.Query().Where(grant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GrantClient) GetX(ctx context.Context, id uuid.UUID) *Grant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GrantClient) Hooks() []Hook {
	return c.hooks.Grant
}

// Interceptors returns the client interceptors.
func (c *GrantClient) Interceptors() []Interceptor {
	return c.inters.Grant
}

func (c *GrantClient) mutate(ctx context.Context, m *GrantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GrantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GrantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GrantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Grant mutation op: %q", m.Op())
	}
}

// GroupClient is a client for the Group schema.
type GroupClient struct {
	config
}

// NewGroupClient returns a client for the Group from the given config.
func NewGroupClient(c config) *GroupClient {
	return &GroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `group.Hooks(f(g(h())))`.
func (c *GroupClient) Use(hooks ...Hook) {
	c.hooks.Group = append(c.hooks.Group, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `group.Intercept(f(g(h())))`.
func (c *GroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.Group = append(c.inters.Group, interceptors...)
}

// Create returns a builder for creating a Group entity.
func (c *GroupClient) Create() *GroupCreate {
	mutation := newGroupMutation(c.config, OpCreate)
	return &GroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Group entities.
func (c *GroupClient) CreateBulk(builders ...*GroupCreate) *GroupCreateBulk {
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupClient) MapCreateBulk(slice any, setFunc func(*GroupCreate, int)) *GroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupCreateBulk{err: fmt.Errorf("calling to GroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Group.
func (c *GroupClient) Update() *GroupUpdate {
	mutation := newGroupMutation(c.config, OpUpdate)
	return &GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupClient) UpdateOne(_m *Group) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroup(_m))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupClient) UpdateOneID(id uuid.UUID) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroupID(id))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Group.
func (c *GroupClient) Delete() *GroupDelete {
	mutation := newGroupMutation(c.config, OpDelete)
	return &GroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupClient) DeleteOne(_m *Group) *GroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupClient) DeleteOneID(id uuid.UUID) *GroupDeleteOne {
	builder := c.Delete().Where(group.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupDeleteOne{builder}
}

// Query returns a query builder for Group.
func (c *GroupClient) Query() *GroupQuery {
	return &GroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a Group entity by its id.
func (c *GroupClient) Get(ctx context.Context, id uuid.UUID) (*Group, error) {
	return c.Query().Where(group.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupClient) GetX(ctx context.Context, id uuid.UUID) *Group {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembers queries the members edge of a Group.
func (c *GroupClient) QueryMembers(_m *Group) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, group.MembersTable, group.MembersPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupClient) Hooks() []Hook {
	return c.hooks.Group
}

// Interceptors returns the client interceptors.
func (c *GroupClient) Interceptors() []Interceptor {
	return c.inters.Group
}

func (c *GroupClient) mutate(ctx context.Context, m *GroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Group mutation op: %q", m.Op())
	}
}

// InterpretationClient is a client for the Interpretation schema.
type InterpretationClient struct {
	config
}

// NewInterpretationClient returns a client for the Interpretation from the given config.
func NewInterpretationClient(c config) *InterpretationClient {
	return &InterpretationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interpretation.Hooks(f(g(h())))`.
func (c *InterpretationClient) Use(hooks ...Hook) {
	c.hooks.Interpretation = append(c.hooks.Interpretation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interpretation.Intercept(f(g(h())))`.
func (c *InterpretationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Interpretation = append(c.inters.Interpretation, interceptors...)
}

// Create returns a builder for creating a Interpretation entity.
func (c *InterpretationClient) Create() *InterpretationCreate {
	mutation := newInterpretationMutation(c.config, OpCreate)
	return &InterpretationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Interpretation entities.
func (c *InterpretationClient) CreateBulk(builders ...*InterpretationCreate) *InterpretationCreateBulk {
	return &InterpretationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterpretationClient) MapCreateBulk(slice any, setFunc func(*InterpretationCreate, int)) *InterpretationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterpretationCreateBulk{err: fmt.Errorf("calling to InterpretationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterpretationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterpretationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Interpretation.
func (c *InterpretationClient) Update() *InterpretationUpdate {
	mutation := newInterpretationMutation(c.config, OpUpdate)
	return &InterpretationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterpretationClient) UpdateOne(_m *Interpretation) *InterpretationUpdateOne {
	mutation := newInterpretationMutation(c.config, OpUpdateOne, withInterpretation(_m))
	return &InterpretationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterpretationClient) UpdateOneID(id uuid.UUID) *InterpretationUpdateOne {
	mutation := newInterpretationMutation(c.config, OpUpdateOne, withInterpretationID(id))
	return &InterpretationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Interpretation.
func (c *InterpretationClient) Delete() *InterpretationDelete {
	mutation := newInterpretationMutation(c.config, OpDelete)
	return &InterpretationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterpretationClient) DeleteOne(_m *Interpretation) *InterpretationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterpretationClient) DeleteOneID(id uuid.UUID) *InterpretationDeleteOne {
	builder := c.Delete().Where(interpretation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterpretationDeleteOne{builder}
}

// Query returns a query builder for Interpretation.
func (c *InterpretationClient) Query() *InterpretationQuery {
	return &InterpretationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterpretation},
		inters: c.Interceptors(),
	}
}

// Get returns a Interpretation entity by its id.
func (c *InterpretationClient) Get(ctx context.Context, id uuid.UUID) (*Interpretation, error) {
	return c.Query().Where(interpretation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterpretationClient) GetX(ctx context.Context, id uuid.UUID) *Interpretation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTracker queries the tracker edge of a Interpretation.
func (c *InterpretationClient) QueryTracker(_m *Interpretation) *TrackerQuery {
	query := (&TrackerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(interpretation.Table, interpretation.FieldID, id),
			sqlgraph.To(tracker.Table, tracker.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, interpretation.TrackerTable, interpretation.TrackerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InterpretationClient) Hooks() []Hook {
	return c.hooks.Interpretation
}

// Interceptors returns the client interceptors.
func (c *InterpretationClient) Interceptors() []Interceptor {
	return c.inters.Interpretation
}

func (c *InterpretationClient) mutate(ctx context.Context, m *InterpretationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterpretationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterpretationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterpretationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterpretationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Interpretation mutation op: %q", m.Op())
	}
}

// ObservationLinkClient is a client for the ObservationLink schema.
type ObservationLinkClient struct {
	config
}

// NewObservationLinkClient returns a client for the ObservationLink from the given config.
func NewObservationLinkClient(c config) *ObservationLinkClient {
	return &ObservationLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `observationlink.Hooks(f(g(h())))`.
func (c *ObservationLinkClient) Use(hooks ...Hook) {
	c.hooks.ObservationLink = append(c.hooks.ObservationLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `observationlink.Intercept(f(g(h())))`.
func (c *ObservationLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.ObservationLink = append(c.inters.ObservationLink, interceptors...)
}

// Create returns a builder for creating a ObservationLink entity.
func (c *ObservationLinkClient) Create() *ObservationLinkCreate {
	mutation := newObservationLinkMutation(c.config, OpCreate)
	return &ObservationLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ObservationLink entities.
func (c *ObservationLinkClient) CreateBulk(builders ...*ObservationLinkCreate) *ObservationLinkCreateBulk {
	return &ObservationLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ObservationLinkClient) MapCreateBulk(slice any, setFunc func(*ObservationLinkCreate, int)) *ObservationLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ObservationLinkCreateBulk{err: fmt.Errorf("calling to ObservationLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ObservationLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ObservationLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ObservationLink.
func (c *ObservationLinkClient) Update() *ObservationLinkUpdate {
	mutation := newObservationLinkMutation(c.config, OpUpdate)
	return &ObservationLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ObservationLinkClient) UpdateOne(_m *ObservationLink) *ObservationLinkUpdateOne {
	mutation := newObservationLinkMutation(c.config, OpUpdateOne, withObservationLink(_m))
	return &ObservationLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ObservationLinkClient) UpdateOneID(id uuid.UUID) *ObservationLinkUpdateOne {
	mutation := newObservationLinkMutation(c.config, OpUpdateOne, withObservationLinkID(id))
	return &ObservationLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ObservationLink.
func (c *ObservationLinkClient) Delete() *ObservationLinkDelete {
	mutation := newObservationLinkMutation(c.config, OpDelete)
	return &ObservationLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ObservationLinkClient) DeleteOne(_m *ObservationLink) *ObservationLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ObservationLinkClient) DeleteOneID(id uuid.UUID) *ObservationLinkDeleteOne {
	builder := c.Delete().Where(observationlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ObservationLinkDeleteOne{builder}
}

// Query returns a query builder for ObservationLink.
func (c *ObservationLinkClient) Query() *ObservationLinkQuery {
	return &ObservationLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeObservationLink},
		inters: c.Interceptors(),
	}
}

// Get returns a ObservationLink entity by its id.
func (c *ObservationLinkClient) Get(ctx context.Context, id uuid.UUID) (*ObservationLink, error) {
	return c.Query().Where(observationlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ObservationLinkClient) GetX(ctx context.Context, id uuid.UUID) *ObservationLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ObservationLinkClient) Hooks() []Hook {
	return c.hooks.ObservationLink
}

// Interceptors returns the client interceptors.
func (c *ObservationLinkClient) Interceptors() []Interceptor {
	return c.inters.ObservationLink
}

func (c *ObservationLinkClient) mutate(ctx context.Context, m *ObservationLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ObservationLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ObservationLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ObservationLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ObservationLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ObservationLink mutation op: %q", m.Op())
	}
}

// ReminderClient is a client for the Reminder schema.
type ReminderClient struct {
	config
}

// NewReminderClient returns a client for the Reminder from the given config.
func NewReminderClient(c config) *ReminderClient {
	return &ReminderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reminder.Hooks(f(g(h())))`.
func (c *ReminderClient) Use(hooks ...Hook) {
	c.hooks.Reminder = append(c.hooks.Reminder, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reminder.Intercept(f(g(h())))`.
func (c *ReminderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Reminder = append(c.inters.Reminder, interceptors...)
}

// Create returns a builder for creating a Reminder entity.
func (c *ReminderClient) Create() *ReminderCreate {
	mutation := newReminderMutation(c.config, OpCreate)
	return &ReminderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Reminder entities.
func (c *ReminderClient) CreateBulk(builders ...*ReminderCreate) *ReminderCreateBulk {
	return &ReminderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReminderClient) MapCreateBulk(slice any, setFunc func(*ReminderCreate, int)) *ReminderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReminderCreateBulk{err: fmt.Errorf("calling to ReminderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReminderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReminderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Reminder.
func (c *ReminderClient) Update() *ReminderUpdate {
	mutation := newReminderMutation(c.config, OpUpdate)
	return &ReminderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReminderClient) UpdateOne(_m *Reminder) *ReminderUpdateOne {
	mutation := newReminderMutation(c.config, OpUpdateOne, withReminder(_m))
	return &ReminderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReminderClient) UpdateOneID(id uuid.UUID) *ReminderUpdateOne {
	mutation := newReminderMutation(c.config, OpUpdateOne, withReminderID(id))
	return &ReminderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Reminder.
func (c *ReminderClient) Delete() *ReminderDelete {
	mutation := newReminderMutation(c.config, OpDelete)
	return &ReminderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReminderClient) DeleteOne(_m *Reminder) *ReminderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReminderClient) DeleteOneID(id uuid.UUID) *ReminderDeleteOne {
	builder := c.Delete().Where(reminder.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReminderDeleteOne{builder}
}

// Query returns a query builder for Reminder.
func (c *ReminderClient) Query() *ReminderQuery {
	return &ReminderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReminder},
		inters: c.Interceptors(),
	}
}

// Get returns a Reminder entity by its id.
func (c *ReminderClient) Get(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	return c.Query().Where(reminder.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReminderClient) GetX(ctx context.Context, id uuid.UUID) *Reminder {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTracker queries the tracker edge of a Reminder.
func (c *ReminderClient) QueryTracker(_m *Reminder) *TrackerQuery {
	query := (&TrackerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reminder.Table, reminder.FieldID, id),
			sqlgraph.To(tracker.Table, tracker.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, reminder.TrackerTable, reminder.TrackerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReminderClient) Hooks() []Hook {
	return c.hooks.Reminder
}

// Interceptors returns the client interceptors.
func (c *ReminderClient) Interceptors() []Interceptor {
	return c.inters.Reminder
}

func (c *ReminderClient) mutate(ctx context.Context, m *ReminderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReminderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReminderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReminderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReminderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Reminder mutation op: %q", m.Op())
	}
}

// TemplateClient is a client for the Template schema.
type TemplateClient struct {
	config
}

// NewTemplateClient returns a client for the Template from the given config.
func NewTemplateClient(c config) *TemplateClient {
	return &TemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `template.Hooks(f(g(h())))`.
func (c *TemplateClient) Use(hooks ...Hook) {
	c.hooks.Template = append(c.hooks.Template, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `template.Intercept(f(g(h())))`.
func (c *TemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Template = append(c.inters.Template, interceptors...)
}

// Create returns a builder for creating a Template entity.
func (c *TemplateClient) Create() *TemplateCreate {
	mutation := newTemplateMutation(c.config, OpCreate)
	return &TemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Template entities.
func (c *TemplateClient) CreateBulk(builders ...*TemplateCreate) *TemplateCreateBulk {
	return &TemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TemplateClient) MapCreateBulk(slice any, setFunc func(*TemplateCreate, int)) *TemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TemplateCreateBulk{err: fmt.Errorf("calling to TemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Template.
func (c *TemplateClient) Update() *TemplateUpdate {
	mutation := newTemplateMutation(c.config, OpUpdate)
	return &TemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TemplateClient) UpdateOne(_m *Template) *TemplateUpdateOne {
	mutation := newTemplateMutation(c.config, OpUpdateOne, withTemplate(_m))
	return &TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TemplateClient) UpdateOneID(id uuid.UUID) *TemplateUpdateOne {
	mutation := newTemplateMutation(c.config, OpUpdateOne, withTemplateID(id))
	return &TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Template.
func (c *TemplateClient) Delete() *TemplateDelete {
	mutation := newTemplateMutation(c.config, OpDelete)
	return &TemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TemplateClient) DeleteOne(_m *Template) *TemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TemplateClient) DeleteOneID(id uuid.UUID) *TemplateDeleteOne {
	builder := c.Delete().Where(template.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TemplateDeleteOne{builder}
}

// Query returns a query builder for Template.
func (c *TemplateClient) Query() *TemplateQuery {
	return &TemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a Template entity by its id.
func (c *TemplateClient) Get(ctx context.Context, id uuid.UUID) (*Template, error) {
	return c.Query().Where(template.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TemplateClient) GetX(ctx context.Context, id uuid.UUID) *Template {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Template.
func (c *TemplateClient) QueryOwner(_m *Template) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(template.Table, template.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, template.OwnerTable, template.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrackers queries the trackers edge of a Template.
func (c *TemplateClient) QueryTrackers(_m *Template) *TrackerQuery {
	query := (&TrackerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(template.Table, template.FieldID, id),
			sqlgraph.To(tracker.Table, tracker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, template.TrackersTable, template.TrackersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TemplateClient) Hooks() []Hook {
	return c.hooks.Template
}

// Interceptors returns the client interceptors.
func (c *TemplateClient) Interceptors() []Interceptor {
	return c.inters.Template
}

func (c *TemplateClient) mutate(ctx context.Context, m *TemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Template mutation op: %q", m.Op())
	}
}

// TemplateShareLinkClient is a client for the TemplateShareLink schema.
type TemplateShareLinkClient struct {
	config
}

// NewTemplateShareLinkClient returns a client for the TemplateShareLink from the given config.
func NewTemplateShareLinkClient(c config) *TemplateShareLinkClient {
	return &TemplateShareLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `templatesharelink.Hooks(f(g(h())))`.
func (c *TemplateShareLinkClient) Use(hooks ...Hook) {
	c.hooks.TemplateShareLink = append(c.hooks.TemplateShareLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `templatesharelink.Intercept(f(g(h())))`.
func (c *TemplateShareLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.TemplateShareLink = append(c.inters.TemplateShareLink, interceptors...)
}

// Create returns a builder for creating a TemplateShareLink entity.
func (c *TemplateShareLinkClient) Create() *TemplateShareLinkCreate {
	mutation := newTemplateShareLinkMutation(c.config, OpCreate)
	return &TemplateShareLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TemplateShareLink entities.
func (c *TemplateShareLinkClient) CreateBulk(builders ...*TemplateShareLinkCreate) *TemplateShareLinkCreateBulk {
	return &TemplateShareLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TemplateShareLinkClient) MapCreateBulk(slice any, setFunc func(*TemplateShareLinkCreate, int)) *TemplateShareLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TemplateShareLinkCreateBulk{err: fmt.Errorf("calling to TemplateShareLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TemplateShareLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TemplateShareLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TemplateShareLink.
func (c *TemplateShareLinkClient) Update() *TemplateShareLinkUpdate {
	mutation := newTemplateShareLinkMutation(c.config, OpUpdate)
	return &TemplateShareLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TemplateShareLinkClient) UpdateOne(_m *TemplateShareLink) *TemplateShareLinkUpdateOne {
	mutation := newTemplateShareLinkMutation(c.config, OpUpdateOne, withTemplateShareLink(_m))
	return &TemplateShareLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TemplateShareLinkClient) UpdateOneID(id uuid.UUID) *TemplateShareLinkUpdateOne {
	mutation := newTemplateShareLinkMutation(c.config, OpUpdateOne, withTemplateShareLinkID(id))
	return &TemplateShareLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TemplateShareLink.
func (c *TemplateShareLinkClient) Delete() *TemplateShareLinkDelete {
	mutation := newTemplateShareLinkMutation(c.config, OpDelete)
	return &TemplateShareLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TemplateShareLinkClient) DeleteOne(_m *TemplateShareLink) *TemplateShareLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TemplateShareLinkClient) DeleteOneID(id uuid.UUID) *TemplateShareLinkDeleteOne {
	builder := c.Delete().Where(templatesharelink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TemplateShareLinkDeleteOne{builder}
}

// Query returns a query builder for TemplateShareLink.
func (c *TemplateShareLinkClient) Query() *TemplateShareLinkQuery {
	return &TemplateShareLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTemplateShareLink},
		inters: c.Interceptors(),
	}
}

// Get returns a TemplateShareLink entity by its id.
func (c *TemplateShareLinkClient) Get(ctx context.Context, id uuid.UUID) (*TemplateShareLink, error) {
	return c.Query().Where(templatesharelink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TemplateShareLinkClient) GetX(ctx context.Context, id uuid.UUID) *TemplateShareLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTemplate queries the template edge of a TemplateShareLink.
func (c *TemplateShareLinkClient) QueryTemplate(_m *TemplateShareLink) *TemplateQuery {
	query := (&TemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(templatesharelink.Table, templatesharelink.FieldID, id),
			sqlgraph.To(template.Table, template.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, templatesharelink.TemplateTable, templatesharelink.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TemplateShareLinkClient) Hooks() []Hook {
	return c.hooks.TemplateShareLink
}

// Interceptors returns the client interceptors.
func (c *TemplateShareLinkClient) Interceptors() []Interceptor {
	return c.inters.TemplateShareLink
}

func (c *TemplateShareLinkClient) mutate(ctx context.Context, m *TemplateShareLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TemplateShareLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TemplateShareLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TemplateShareLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TemplateShareLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TemplateShareLink mutation op: %q", m.Op())
	}
}

// TrackerClient is a client for the Tracker schema.
type TrackerClient struct {
	config
}

// NewTrackerClient returns a client for the Tracker from the given config.
func NewTrackerClient(c config) *TrackerClient {
	return &TrackerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tracker.Hooks(f(g(h())))`.
func (c *TrackerClient) Use(hooks ...Hook) {
	c.hooks.Tracker = append(c.hooks.Tracker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tracker.Intercept(f(g(h())))`.
func (c *TrackerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tracker = append(c.inters.Tracker, interceptors...)
}

// Create returns a builder for creating a Tracker entity.
func (c *TrackerClient) Create() *TrackerCreate {
	mutation := newTrackerMutation(c.config, OpCreate)
	return &TrackerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tracker entities.
func (c *TrackerClient) CreateBulk(builders ...*TrackerCreate) *TrackerCreateBulk {
	return &TrackerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrackerClient) MapCreateBulk(slice any, setFunc func(*TrackerCreate, int)) *TrackerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrackerCreateBulk{err: fmt.Errorf("calling to TrackerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrackerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrackerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tracker.
func (c *TrackerClient) Update() *TrackerUpdate {
	mutation := newTrackerMutation(c.config, OpUpdate)
	return &TrackerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrackerClient) UpdateOne(_m *Tracker) *TrackerUpdateOne {
	mutation := newTrackerMutation(c.config, OpUpdateOne, withTracker(_m))
	return &TrackerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrackerClient) UpdateOneID(id uuid.UUID) *TrackerUpdateOne {
	mutation := newTrackerMutation(c.config, OpUpdateOne, withTrackerID(id))
	return &TrackerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tracker.
func (c *TrackerClient) Delete() *TrackerDelete {
	mutation := newTrackerMutation(c.config, OpDelete)
	return &TrackerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrackerClient) DeleteOne(_m *Tracker) *TrackerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrackerClient) DeleteOneID(id uuid.UUID) *TrackerDeleteOne {
	builder := c.Delete().Where(tracker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrackerDeleteOne{builder}
}

// Query returns a query builder for Tracker.
func (c *TrackerClient) Query() *TrackerQuery {
	return &TrackerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTracker},
		inters: c.Interceptors(),
	}
}

// Get returns a Tracker entity by its id.
func (c *TrackerClient) Get(ctx context.Context, id uuid.UUID) (*Tracker, error) {
	return c.Query().Where(tracker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrackerClient) GetX(ctx context.Context, id uuid.UUID) *Tracker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Tracker.
func (c *TrackerClient) QueryOwner(_m *Tracker) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tracker.Table, tracker.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, tracker.OwnerTable, tracker.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplate queries the template edge of a Tracker.
func (c *TrackerClient) QueryTemplate(_m *Tracker) *TemplateQuery {
	query := (&TemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tracker.Table, tracker.FieldID, id),
			sqlgraph.To(template.Table, template.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, tracker.TemplateTable, tracker.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntries queries the entries edge of a Tracker.
func (c *TrackerClient) QueryEntries(_m *Tracker) *TrackerEntryQuery {
	query := (&TrackerEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tracker.Table, tracker.FieldID, id),
			sqlgraph.To(trackerentry.Table, trackerentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, tracker.EntriesTable, tracker.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrackerClient) Hooks() []Hook {
	return c.hooks.Tracker
}

// Interceptors returns the client interceptors.
func (c *TrackerClient) Interceptors() []Interceptor {
	return c.inters.Tracker
}

func (c *TrackerClient) mutate(ctx context.Context, m *TrackerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrackerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrackerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrackerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrackerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tracker mutation op: %q", m.Op())
	}
}

// TrackerEntryClient is a client for the TrackerEntry schema.
type TrackerEntryClient struct {
	config
}

// NewTrackerEntryClient returns a client for the TrackerEntry from the given config.
func NewTrackerEntryClient(c config) *TrackerEntryClient {
	return &TrackerEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trackerentry.Hooks(f(g(h())))`.
func (c *TrackerEntryClient) Use(hooks ...Hook) {
	c.hooks.TrackerEntry = append(c.hooks.TrackerEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trackerentry.Intercept(f(g(h())))`.
func (c *TrackerEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrackerEntry = append(c.inters.TrackerEntry, interceptors...)
}

// Create returns a builder for creating a TrackerEntry entity.
func (c *TrackerEntryClient) Create() *TrackerEntryCreate {
	mutation := newTrackerEntryMutation(c.config, OpCreate)
	return &TrackerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrackerEntry entities.
func (c *TrackerEntryClient) CreateBulk(builders ...*TrackerEntryCreate) *TrackerEntryCreateBulk {
	return &TrackerEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrackerEntryClient) MapCreateBulk(slice any, setFunc func(*TrackerEntryCreate, int)) *TrackerEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrackerEntryCreateBulk{err: fmt.Errorf("calling to TrackerEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrackerEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrackerEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrackerEntry.
func (c *TrackerEntryClient) Update() *TrackerEntryUpdate {
	mutation := newTrackerEntryMutation(c.config, OpUpdate)
	return &TrackerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrackerEntryClient) UpdateOne(_m *TrackerEntry) *TrackerEntryUpdateOne {
	mutation := newTrackerEntryMutation(c.config, OpUpdateOne, withTrackerEntry(_m))
	return &TrackerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrackerEntryClient) UpdateOneID(id uuid.UUID) *TrackerEntryUpdateOne {
	mutation := newTrackerEntryMutation(c.config, OpUpdateOne, withTrackerEntryID(id))
	return &TrackerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrackerEntry.
func (c *TrackerEntryClient) Delete() *TrackerEntryDelete {
	mutation := newTrackerEntryMutation(c.config, OpDelete)
	return &TrackerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrackerEntryClient) DeleteOne(_m *TrackerEntry) *TrackerEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrackerEntryClient) DeleteOneID(id uuid.UUID) *TrackerEntryDeleteOne {
	builder := c.Delete().Where(trackerentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrackerEntryDeleteOne{builder}
}

// Query returns a query builder for TrackerEntry.
func (c *TrackerEntryClient) Query() *TrackerEntryQuery {
	return &TrackerEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrackerEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a TrackerEntry entity by its id.
func (c *TrackerEntryClient) Get(ctx context.Context, id uuid.UUID) (*TrackerEntry, error) {
	return c.Query().Where(trackerentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrackerEntryClient) GetX(ctx context.Context, id uuid.UUID) *TrackerEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTracker queries the tracker edge of a TrackerEntry.
func (c *TrackerEntryClient) QueryTracker(_m *TrackerEntry) *TrackerQuery {
	query := (&TrackerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trackerentry.Table, trackerentry.FieldID, id),
			sqlgraph.To(tracker.Table, tracker.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, trackerentry.TrackerTable, trackerentry.TrackerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrackerEntryClient) Hooks() []Hook {
	return c.hooks.TrackerEntry
}

// Interceptors returns the client interceptors.
func (c *TrackerEntryClient) Interceptors() []Interceptor {
	return c.inters.TrackerEntry
}

func (c *TrackerEntryClient) mutate(ctx context.Context, m *TrackerEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrackerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrackerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrackerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrackerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrackerEntry mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroups queries the groups edge of a User.
func (c *UserClient) QueryGroups(_m *User) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, user.GroupsTable, user.GroupsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrackers queries the trackers edge of a User.
func (c *UserClient) QueryTrackers(_m *User) *TrackerQuery {
	query := (&TrackerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(tracker.Table, tracker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, user.TrackersTable, user.TrackersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplates queries the templates edge of a User.
func (c *UserClient) QueryTemplates(_m *User) *TemplateQuery {
	query := (&TemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(template.Table, template.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, user.TemplatesTable, user.TemplatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ContextEvent, Grant, Group, Interpretation, ObservationLink, Reminder, Template,
		TemplateShareLink, Tracker, TrackerEntry, User []ent.Hook
	}
	inters struct {
		ContextEvent, Grant, Group, Interpretation, ObservationLink, Reminder, Template,
		TemplateShareLink, Tracker, TrackerEntry, User []ent.Interceptor
	}
)

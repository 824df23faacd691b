// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/loresmith/loresmith/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loresmith/loresmith/ent/campaign"
	"github.com/loresmith/loresmith/ent/changelogentry"
	"github.com/loresmith/loresmith/ent/community"
	"github.com/loresmith/loresmith/ent/entity"
	"github.com/loresmith/loresmith/ent/entityimportance"
	"github.com/loresmith/loresmith/ent/entityrelationship"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/fileprocessingchunk"
	"github.com/loresmith/loresmith/ent/notification"
	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
	"github.com/loresmith/loresmith/ent/sessiondigest"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Campaign is the client for interacting with the Campaign builders.
	Campaign *CampaignClient
	// ChangelogEntry is the client for interacting with the ChangelogEntry builders.
	ChangelogEntry *ChangelogEntryClient
	// Community is the client for interacting with the Community builders.
	Community *CommunityClient
	// Entity is the client for interacting with the Entity builders.
	Entity *EntityClient
	// EntityImportance is the client for interacting with the EntityImportance builders.
	EntityImportance *EntityImportanceClient
	// EntityRelationship is the client for interacting with the EntityRelationship builders.
	EntityRelationship *EntityRelationshipClient
	// File is the client for interacting with the File builders.
	File *FileClient
	// FileProcessingChunk is the client for interacting with the FileProcessingChunk builders.
	FileProcessingChunk *FileProcessingChunkClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// QueueMessage is the client for interacting with the QueueMessage builders.
	QueueMessage *QueueMessageClient
	// RebuildStatus is the client for interacting with the RebuildStatus builders.
	RebuildStatus *RebuildStatusClient
	// SessionDigest is the client for interacting with the SessionDigest builders.
	SessionDigest *SessionDigestClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Campaign = NewCampaignClient(c.config)
	c.ChangelogEntry = NewChangelogEntryClient(c.config)
	c.Community = NewCommunityClient(c.config)
	c.Entity = NewEntityClient(c.config)
	c.EntityImportance = NewEntityImportanceClient(c.config)
	c.EntityRelationship = NewEntityRelationshipClient(c.config)
	c.File = NewFileClient(c.config)
	c.FileProcessingChunk = NewFileProcessingChunkClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.QueueMessage = NewQueueMessageClient(c.config)
	c.RebuildStatus = NewRebuildStatusClient(c.config)
	c.SessionDigest = NewSessionDigestClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		Campaign:            NewCampaignClient(cfg),
		ChangelogEntry:      NewChangelogEntryClient(cfg),
		Community:           NewCommunityClient(cfg),
		Entity:              NewEntityClient(cfg),
		EntityImportance:    NewEntityImportanceClient(cfg),
		EntityRelationship:  NewEntityRelationshipClient(cfg),
		File:                NewFileClient(cfg),
		FileProcessingChunk: NewFileProcessingChunkClient(cfg),
		Notification:        NewNotificationClient(cfg),
		QueueMessage:        NewQueueMessageClient(cfg),
		RebuildStatus:       NewRebuildStatusClient(cfg),
		SessionDigest:       NewSessionDigestClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		Campaign:            NewCampaignClient(cfg),
		ChangelogEntry:      NewChangelogEntryClient(cfg),
		Community:           NewCommunityClient(cfg),
		Entity:              NewEntityClient(cfg),
		EntityImportance:    NewEntityImportanceClient(cfg),
		EntityRelationship:  NewEntityRelationshipClient(cfg),
		File:                NewFileClient(cfg),
		FileProcessingChunk: NewFileProcessingChunkClient(cfg),
		Notification:        NewNotificationClient(cfg),
		QueueMessage:        NewQueueMessageClient(cfg),
		RebuildStatus:       NewRebuildStatusClient(cfg),
		SessionDigest:       NewSessionDigestClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Campaign.
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
		c.Campaign, c.ChangelogEntry, c.Community, c.Entity, c.EntityImportance,
		c.EntityRelationship, c.File, c.FileProcessingChunk, c.Notification,
		c.QueueMessage, c.RebuildStatus, c.SessionDigest,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Campaign, c.ChangelogEntry, c.Community, c.Entity, c.EntityImportance,
		c.EntityRelationship, c.File, c.FileProcessingChunk, c.Notification,
		c.QueueMessage, c.RebuildStatus, c.SessionDigest,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CampaignMutation:
		return c.Campaign.mutate(ctx, m)
	case *ChangelogEntryMutation:
		return c.ChangelogEntry.mutate(ctx, m)
	case *CommunityMutation:
		return c.Community.mutate(ctx, m)
	case *EntityMutation:
		return c.Entity.mutate(ctx, m)
	case *EntityImportanceMutation:
		return c.EntityImportance.mutate(ctx, m)
	case *EntityRelationshipMutation:
		return c.EntityRelationship.mutate(ctx, m)
	case *FileMutation:
		return c.File.mutate(ctx, m)
	case *FileProcessingChunkMutation:
		return c.FileProcessingChunk.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *QueueMessageMutation:
		return c.QueueMessage.mutate(ctx, m)
	case *RebuildStatusMutation:
		return c.RebuildStatus.mutate(ctx, m)
	case *SessionDigestMutation:
		return c.SessionDigest.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CampaignClient is a client for the Campaign schema.
type CampaignClient struct {
	config
}

// NewCampaignClient returns a client for the Campaign from the given config.
func NewCampaignClient(c config) *CampaignClient {
	return &CampaignClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `campaign.Hooks(f(g(h())))`.
func (c *CampaignClient) Use(hooks ...Hook) {
	c.hooks.Campaign = append(c.hooks.Campaign, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `campaign.Intercept(f(g(h())))`.
func (c *CampaignClient) Intercept(interceptors ...Interceptor) {
	c.inters.Campaign = append(c.inters.Campaign, interceptors...)
}

// Create returns a builder for creating a Campaign entity.
func (c *CampaignClient) Create() *CampaignCreate {
	mutation := newCampaignMutation(c.config, OpCreate)
	return &CampaignCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Campaign entities.
func (c *CampaignClient) CreateBulk(builders ...*CampaignCreate) *CampaignCreateBulk {
	return &CampaignCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CampaignClient) MapCreateBulk(slice any, setFunc func(*CampaignCreate, int)) *CampaignCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CampaignCreateBulk{err: fmt.Errorf("calling to CampaignClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CampaignCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CampaignCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Campaign.
func (c *CampaignClient) Update() *CampaignUpdate {
	mutation := newCampaignMutation(c.config, OpUpdate)
	return &CampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CampaignClient) UpdateOne(_m *Campaign) *CampaignUpdateOne {
	mutation := newCampaignMutation(c.config, OpUpdateOne, withCampaign(_m))
	return &CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CampaignClient) UpdateOneID(id string) *CampaignUpdateOne {
	mutation := newCampaignMutation(c.config, OpUpdateOne, withCampaignID(id))
	return &CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Campaign.
func (c *CampaignClient) Delete() *CampaignDelete {
	mutation := newCampaignMutation(c.config, OpDelete)
	return &CampaignDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CampaignClient) DeleteOne(_m *Campaign) *CampaignDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CampaignClient) DeleteOneID(id string) *CampaignDeleteOne {
	builder := c.Delete().Where(campaign.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CampaignDeleteOne{builder}
}

// Query returns a query builder for Campaign.
func (c *CampaignClient) Query() *CampaignQuery {
	return &CampaignQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCampaign},
		inters: c.Interceptors(),
	}
}

// Get returns a Campaign entity by its id.
func (c *CampaignClient) Get(ctx context.Context, id string) (*Campaign, error) {
	return c.Query().Where(campaign.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CampaignClient) GetX(ctx context.Context, id string) *Campaign {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntities queries the entities edge of a Campaign.
func (c *CampaignClient) QueryEntities(_m *Campaign) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.EntitiesTable, campaign.EntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRelationships queries the relationships edge of a Campaign.
func (c *CampaignClient) QueryRelationships(_m *Campaign) *EntityRelationshipQuery {
	query := (&EntityRelationshipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(entityrelationship.Table, entityrelationship.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.RelationshipsTable, campaign.RelationshipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCommunities queries the communities edge of a Campaign.
func (c *CampaignClient) QueryCommunities(_m *Campaign) *CommunityQuery {
	query := (&CommunityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(community.Table, community.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.CommunitiesTable, campaign.CommunitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImportances queries the importances edge of a Campaign.
func (c *CampaignClient) QueryImportances(_m *Campaign) *EntityImportanceQuery {
	query := (&EntityImportanceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(entityimportance.Table, entityimportance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.ImportancesTable, campaign.ImportancesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDigests queries the digests edge of a Campaign.
func (c *CampaignClient) QueryDigests(_m *Campaign) *SessionDigestQuery {
	query := (&SessionDigestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(sessiondigest.Table, sessiondigest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.DigestsTable, campaign.DigestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChangelogEntries queries the changelog_entries edge of a Campaign.
func (c *CampaignClient) QueryChangelogEntries(_m *Campaign) *ChangelogEntryQuery {
	query := (&ChangelogEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(changelogentry.Table, changelogentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.ChangelogEntriesTable, campaign.ChangelogEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRebuilds queries the rebuilds edge of a Campaign.
func (c *CampaignClient) QueryRebuilds(_m *Campaign) *RebuildStatusQuery {
	query := (&RebuildStatusClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(rebuildstatus.Table, rebuildstatus.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.RebuildsTable, campaign.RebuildsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CampaignClient) Hooks() []Hook {
	return c.hooks.Campaign
}

// Interceptors returns the client interceptors.
func (c *CampaignClient) Interceptors() []Interceptor {
	return c.inters.Campaign
}

func (c *CampaignClient) mutate(ctx context.Context, m *CampaignMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CampaignCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CampaignDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Campaign mutation op: %q", m.Op())
	}
}

// ChangelogEntryClient is a client for the ChangelogEntry schema.
type ChangelogEntryClient struct {
	config
}

// NewChangelogEntryClient returns a client for the ChangelogEntry from the given config.
func NewChangelogEntryClient(c config) *ChangelogEntryClient {
	return &ChangelogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `changelogentry.Hooks(f(g(h())))`.
func (c *ChangelogEntryClient) Use(hooks ...Hook) {
	c.hooks.ChangelogEntry = append(c.hooks.ChangelogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `changelogentry.Intercept(f(g(h())))`.
func (c *ChangelogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChangelogEntry = append(c.inters.ChangelogEntry, interceptors...)
}

// Create returns a builder for creating a ChangelogEntry entity.
func (c *ChangelogEntryClient) Create() *ChangelogEntryCreate {
	mutation := newChangelogEntryMutation(c.config, OpCreate)
	return &ChangelogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChangelogEntry entities.
func (c *ChangelogEntryClient) CreateBulk(builders ...*ChangelogEntryCreate) *ChangelogEntryCreateBulk {
	return &ChangelogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChangelogEntryClient) MapCreateBulk(slice any, setFunc func(*ChangelogEntryCreate, int)) *ChangelogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChangelogEntryCreateBulk{err: fmt.Errorf("calling to ChangelogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChangelogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChangelogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChangelogEntry.
func (c *ChangelogEntryClient) Update() *ChangelogEntryUpdate {
	mutation := newChangelogEntryMutation(c.config, OpUpdate)
	return &ChangelogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChangelogEntryClient) UpdateOne(_m *ChangelogEntry) *ChangelogEntryUpdateOne {
	mutation := newChangelogEntryMutation(c.config, OpUpdateOne, withChangelogEntry(_m))
	return &ChangelogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChangelogEntryClient) UpdateOneID(id string) *ChangelogEntryUpdateOne {
	mutation := newChangelogEntryMutation(c.config, OpUpdateOne, withChangelogEntryID(id))
	return &ChangelogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChangelogEntry.
func (c *ChangelogEntryClient) Delete() *ChangelogEntryDelete {
	mutation := newChangelogEntryMutation(c.config, OpDelete)
	return &ChangelogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChangelogEntryClient) DeleteOne(_m *ChangelogEntry) *ChangelogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChangelogEntryClient) DeleteOneID(id string) *ChangelogEntryDeleteOne {
	builder := c.Delete().Where(changelogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChangelogEntryDeleteOne{builder}
}

// Query returns a query builder for ChangelogEntry.
func (c *ChangelogEntryClient) Query() *ChangelogEntryQuery {
	return &ChangelogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChangelogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ChangelogEntry entity by its id.
func (c *ChangelogEntryClient) Get(ctx context.Context, id string) (*ChangelogEntry, error) {
	return c.Query().Where(changelogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChangelogEntryClient) GetX(ctx context.Context, id string) *ChangelogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a ChangelogEntry.
func (c *ChangelogEntryClient) QueryCampaign(_m *ChangelogEntry) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(changelogentry.Table, changelogentry.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, changelogentry.CampaignTable, changelogentry.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChangelogEntryClient) Hooks() []Hook {
	return c.hooks.ChangelogEntry
}

// Interceptors returns the client interceptors.
func (c *ChangelogEntryClient) Interceptors() []Interceptor {
	return c.inters.ChangelogEntry
}

func (c *ChangelogEntryClient) mutate(ctx context.Context, m *ChangelogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChangelogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChangelogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChangelogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChangelogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChangelogEntry mutation op: %q", m.Op())
	}
}

// CommunityClient is a client for the Community schema.
type CommunityClient struct {
	config
}

// NewCommunityClient returns a client for the Community from the given config.
func NewCommunityClient(c config) *CommunityClient {
	return &CommunityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `community.Hooks(f(g(h())))`.
func (c *CommunityClient) Use(hooks ...Hook) {
	c.hooks.Community = append(c.hooks.Community, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `community.Intercept(f(g(h())))`.
func (c *CommunityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Community = append(c.inters.Community, interceptors...)
}

// Create returns a builder for creating a Community entity.
func (c *CommunityClient) Create() *CommunityCreate {
	mutation := newCommunityMutation(c.config, OpCreate)
	return &CommunityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Community entities.
func (c *CommunityClient) CreateBulk(builders ...*CommunityCreate) *CommunityCreateBulk {
	return &CommunityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommunityClient) MapCreateBulk(slice any, setFunc func(*CommunityCreate, int)) *CommunityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommunityCreateBulk{err: fmt.Errorf("calling to CommunityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommunityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommunityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Community.
func (c *CommunityClient) Update() *CommunityUpdate {
	mutation := newCommunityMutation(c.config, OpUpdate)
	return &CommunityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommunityClient) UpdateOne(_m *Community) *CommunityUpdateOne {
	mutation := newCommunityMutation(c.config, OpUpdateOne, withCommunity(_m))
	return &CommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommunityClient) UpdateOneID(id string) *CommunityUpdateOne {
	mutation := newCommunityMutation(c.config, OpUpdateOne, withCommunityID(id))
	return &CommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Community.
func (c *CommunityClient) Delete() *CommunityDelete {
	mutation := newCommunityMutation(c.config, OpDelete)
	return &CommunityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommunityClient) DeleteOne(_m *Community) *CommunityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommunityClient) DeleteOneID(id string) *CommunityDeleteOne {
	builder := c.Delete().Where(community.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommunityDeleteOne{builder}
}

// Query returns a query builder for Community.
func (c *CommunityClient) Query() *CommunityQuery {
	return &CommunityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommunity},
		inters: c.Interceptors(),
	}
}

// Get returns a Community entity by its id.
func (c *CommunityClient) Get(ctx context.Context, id string) (*Community, error) {
	return c.Query().Where(community.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommunityClient) GetX(ctx context.Context, id string) *Community {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a Community.
func (c *CommunityClient) QueryCampaign(_m *Community) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(community.Table, community.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, community.CampaignTable, community.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommunityClient) Hooks() []Hook {
	return c.hooks.Community
}

// Interceptors returns the client interceptors.
func (c *CommunityClient) Interceptors() []Interceptor {
	return c.inters.Community
}

func (c *CommunityClient) mutate(ctx context.Context, m *CommunityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommunityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommunityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommunityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Community mutation op: %q", m.Op())
	}
}

// EntityClient is a client for the Entity schema.
type EntityClient struct {
	config
}

// NewEntityClient returns a client for the Entity from the given config.
func NewEntityClient(c config) *EntityClient {
	return &EntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entity.Hooks(f(g(h())))`.
func (c *EntityClient) Use(hooks ...Hook) {
	c.hooks.Entity = append(c.hooks.Entity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entity.Intercept(f(g(h())))`.
func (c *EntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entity = append(c.inters.Entity, interceptors...)
}

// Create returns a builder for creating a Entity entity.
func (c *EntityClient) Create() *EntityCreate {
	mutation := newEntityMutation(c.config, OpCreate)
	return &EntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entity entities.
func (c *EntityClient) CreateBulk(builders ...*EntityCreate) *EntityCreateBulk {
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityClient) MapCreateBulk(slice any, setFunc func(*EntityCreate, int)) *EntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCreateBulk{err: fmt.Errorf("calling to EntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entity.
func (c *EntityClient) Update() *EntityUpdate {
	mutation := newEntityMutation(c.config, OpUpdate)
	return &EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityClient) UpdateOne(_m *Entity) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntity(_m))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityClient) UpdateOneID(id string) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntityID(id))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entity.
func (c *EntityClient) Delete() *EntityDelete {
	mutation := newEntityMutation(c.config, OpDelete)
	return &EntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityClient) DeleteOne(_m *Entity) *EntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityClient) DeleteOneID(id string) *EntityDeleteOne {
	builder := c.Delete().Where(entity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityDeleteOne{builder}
}

// Query returns a query builder for Entity.
func (c *EntityClient) Query() *EntityQuery {
	return &EntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a Entity entity by its id.
func (c *EntityClient) Get(ctx context.Context, id string) (*Entity, error) {
	return c.Query().Where(entity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityClient) GetX(ctx context.Context, id string) *Entity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a Entity.
func (c *EntityClient) QueryCampaign(_m *Entity) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entity.CampaignTable, entity.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityClient) Hooks() []Hook {
	return c.hooks.Entity
}

// Interceptors returns the client interceptors.
func (c *EntityClient) Interceptors() []Interceptor {
	return c.inters.Entity
}

func (c *EntityClient) mutate(ctx context.Context, m *EntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entity mutation op: %q", m.Op())
	}
}

// EntityImportanceClient is a client for the EntityImportance schema.
type EntityImportanceClient struct {
	config
}

// NewEntityImportanceClient returns a client for the EntityImportance from the given config.
func NewEntityImportanceClient(c config) *EntityImportanceClient {
	return &EntityImportanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entityimportance.Hooks(f(g(h())))`.
func (c *EntityImportanceClient) Use(hooks ...Hook) {
	c.hooks.EntityImportance = append(c.hooks.EntityImportance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entityimportance.Intercept(f(g(h())))`.
func (c *EntityImportanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityImportance = append(c.inters.EntityImportance, interceptors...)
}

// Create returns a builder for creating a EntityImportance entity.
func (c *EntityImportanceClient) Create() *EntityImportanceCreate {
	mutation := newEntityImportanceMutation(c.config, OpCreate)
	return &EntityImportanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityImportance entities.
func (c *EntityImportanceClient) CreateBulk(builders ...*EntityImportanceCreate) *EntityImportanceCreateBulk {
	return &EntityImportanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityImportanceClient) MapCreateBulk(slice any, setFunc func(*EntityImportanceCreate, int)) *EntityImportanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityImportanceCreateBulk{err: fmt.Errorf("calling to EntityImportanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityImportanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityImportanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityImportance.
func (c *EntityImportanceClient) Update() *EntityImportanceUpdate {
	mutation := newEntityImportanceMutation(c.config, OpUpdate)
	return &EntityImportanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityImportanceClient) UpdateOne(_m *EntityImportance) *EntityImportanceUpdateOne {
	mutation := newEntityImportanceMutation(c.config, OpUpdateOne, withEntityImportance(_m))
	return &EntityImportanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityImportanceClient) UpdateOneID(id string) *EntityImportanceUpdateOne {
	mutation := newEntityImportanceMutation(c.config, OpUpdateOne, withEntityImportanceID(id))
	return &EntityImportanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityImportance.
func (c *EntityImportanceClient) Delete() *EntityImportanceDelete {
	mutation := newEntityImportanceMutation(c.config, OpDelete)
	return &EntityImportanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityImportanceClient) DeleteOne(_m *EntityImportance) *EntityImportanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityImportanceClient) DeleteOneID(id string) *EntityImportanceDeleteOne {
	builder := c.Delete().Where(entityimportance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityImportanceDeleteOne{builder}
}

// Query returns a query builder for EntityImportance.
func (c *EntityImportanceClient) Query() *EntityImportanceQuery {
	return &EntityImportanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityImportance},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityImportance entity by its id.
func (c *EntityImportanceClient) Get(ctx context.Context, id string) (*EntityImportance, error) {
	return c.Query().Where(entityimportance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityImportanceClient) GetX(ctx context.Context, id string) *EntityImportance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a EntityImportance.
func (c *EntityImportanceClient) QueryCampaign(_m *EntityImportance) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entityimportance.Table, entityimportance.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entityimportance.CampaignTable, entityimportance.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityImportanceClient) Hooks() []Hook {
	return c.hooks.EntityImportance
}

// Interceptors returns the client interceptors.
func (c *EntityImportanceClient) Interceptors() []Interceptor {
	return c.inters.EntityImportance
}

func (c *EntityImportanceClient) mutate(ctx context.Context, m *EntityImportanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityImportanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityImportanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityImportanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityImportanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityImportance mutation op: %q", m.Op())
	}
}

// EntityRelationshipClient is a client for the EntityRelationship schema.
type EntityRelationshipClient struct {
	config
}

// NewEntityRelationshipClient returns a client for the EntityRelationship from the given config.
func NewEntityRelationshipClient(c config) *EntityRelationshipClient {
	return &EntityRelationshipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entityrelationship.Hooks(f(g(h())))`.
func (c *EntityRelationshipClient) Use(hooks ...Hook) {
	c.hooks.EntityRelationship = append(c.hooks.EntityRelationship, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entityrelationship.Intercept(f(g(h())))`.
func (c *EntityRelationshipClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityRelationship = append(c.inters.EntityRelationship, interceptors...)
}

// Create returns a builder for creating a EntityRelationship entity.
func (c *EntityRelationshipClient) Create() *EntityRelationshipCreate {
	mutation := newEntityRelationshipMutation(c.config, OpCreate)
	return &EntityRelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityRelationship entities.
func (c *EntityRelationshipClient) CreateBulk(builders ...*EntityRelationshipCreate) *EntityRelationshipCreateBulk {
	return &EntityRelationshipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityRelationshipClient) MapCreateBulk(slice any, setFunc func(*EntityRelationshipCreate, int)) *EntityRelationshipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityRelationshipCreateBulk{err: fmt.Errorf("calling to EntityRelationshipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityRelationshipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityRelationshipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityRelationship.
func (c *EntityRelationshipClient) Update() *EntityRelationshipUpdate {
	mutation := newEntityRelationshipMutation(c.config, OpUpdate)
	return &EntityRelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityRelationshipClient) UpdateOne(_m *EntityRelationship) *EntityRelationshipUpdateOne {
	mutation := newEntityRelationshipMutation(c.config, OpUpdateOne, withEntityRelationship(_m))
	return &EntityRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityRelationshipClient) UpdateOneID(id string) *EntityRelationshipUpdateOne {
	mutation := newEntityRelationshipMutation(c.config, OpUpdateOne, withEntityRelationshipID(id))
	return &EntityRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityRelationship.
func (c *EntityRelationshipClient) Delete() *EntityRelationshipDelete {
	mutation := newEntityRelationshipMutation(c.config, OpDelete)
	return &EntityRelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityRelationshipClient) DeleteOne(_m *EntityRelationship) *EntityRelationshipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityRelationshipClient) DeleteOneID(id string) *EntityRelationshipDeleteOne {
	builder := c.Delete().Where(entityrelationship.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityRelationshipDeleteOne{builder}
}

// Query returns a query builder for EntityRelationship.
func (c *EntityRelationshipClient) Query() *EntityRelationshipQuery {
	return &EntityRelationshipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityRelationship},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityRelationship entity by its id.
func (c *EntityRelationshipClient) Get(ctx context.Context, id string) (*EntityRelationship, error) {
	return c.Query().Where(entityrelationship.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityRelationshipClient) GetX(ctx context.Context, id string) *EntityRelationship {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a EntityRelationship.
func (c *EntityRelationshipClient) QueryCampaign(_m *EntityRelationship) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entityrelationship.Table, entityrelationship.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entityrelationship.CampaignTable, entityrelationship.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityRelationshipClient) Hooks() []Hook {
	return c.hooks.EntityRelationship
}

// Interceptors returns the client interceptors.
func (c *EntityRelationshipClient) Interceptors() []Interceptor {
	return c.inters.EntityRelationship
}

func (c *EntityRelationshipClient) mutate(ctx context.Context, m *EntityRelationshipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityRelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityRelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityRelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityRelationship mutation op: %q", m.Op())
	}
}

// FileClient is a client for the File schema.
type FileClient struct {
	config
}

// NewFileClient returns a client for the File from the given config.
func NewFileClient(c config) *FileClient {
	return &FileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `file.Hooks(f(g(h())))`.
func (c *FileClient) Use(hooks ...Hook) {
	c.hooks.File = append(c.hooks.File, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `file.Intercept(f(g(h())))`.
func (c *FileClient) Intercept(interceptors ...Interceptor) {
	c.inters.File = append(c.inters.File, interceptors...)
}

// Create returns a builder for creating a File entity.
func (c *FileClient) Create() *FileCreate {
	mutation := newFileMutation(c.config, OpCreate)
	return &FileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of File entities.
func (c *FileClient) CreateBulk(builders ...*FileCreate) *FileCreateBulk {
	return &FileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FileClient) MapCreateBulk(slice any, setFunc func(*FileCreate, int)) *FileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FileCreateBulk{err: fmt.Errorf("calling to FileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for File.
func (c *FileClient) Update() *FileUpdate {
	mutation := newFileMutation(c.config, OpUpdate)
	return &FileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FileClient) UpdateOne(_m *File) *FileUpdateOne {
	mutation := newFileMutation(c.config, OpUpdateOne, withFile(_m))
	return &FileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FileClient) UpdateOneID(id string) *FileUpdateOne {
	mutation := newFileMutation(c.config, OpUpdateOne, withFileID(id))
	return &FileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for File.
func (c *FileClient) Delete() *FileDelete {
	mutation := newFileMutation(c.config, OpDelete)
	return &FileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FileClient) DeleteOne(_m *File) *FileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FileClient) DeleteOneID(id string) *FileDeleteOne {
	builder := c.Delete().Where(file.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FileDeleteOne{builder}
}

// Query returns a query builder for File.
func (c *FileClient) Query() *FileQuery {
	return &FileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFile},
		inters: c.Interceptors(),
	}
}

// Get returns a File entity by its id.
func (c *FileClient) Get(ctx context.Context, id string) (*File, error) {
	return c.Query().Where(file.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FileClient) GetX(ctx context.Context, id string) *File {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChunks queries the chunks edge of a File.
func (c *FileClient) QueryChunks(_m *File) *FileProcessingChunkQuery {
	query := (&FileProcessingChunkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(file.Table, file.FieldID, id),
			sqlgraph.To(fileprocessingchunk.Table, fileprocessingchunk.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, file.ChunksTable, file.ChunksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FileClient) Hooks() []Hook {
	return c.hooks.File
}

// Interceptors returns the client interceptors.
func (c *FileClient) Interceptors() []Interceptor {
	return c.inters.File
}

func (c *FileClient) mutate(ctx context.Context, m *FileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown File mutation op: %q", m.Op())
	}
}

// FileProcessingChunkClient is a client for the FileProcessingChunk schema.
type FileProcessingChunkClient struct {
	config
}

// NewFileProcessingChunkClient returns a client for the FileProcessingChunk from the given config.
func NewFileProcessingChunkClient(c config) *FileProcessingChunkClient {
	return &FileProcessingChunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fileprocessingchunk.Hooks(f(g(h())))`.
func (c *FileProcessingChunkClient) Use(hooks ...Hook) {
	c.hooks.FileProcessingChunk = append(c.hooks.FileProcessingChunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fileprocessingchunk.Intercept(f(g(h())))`.
func (c *FileProcessingChunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.FileProcessingChunk = append(c.inters.FileProcessingChunk, interceptors...)
}

// Create returns a builder for creating a FileProcessingChunk entity.
func (c *FileProcessingChunkClient) Create() *FileProcessingChunkCreate {
	mutation := newFileProcessingChunkMutation(c.config, OpCreate)
	return &FileProcessingChunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FileProcessingChunk entities.
func (c *FileProcessingChunkClient) CreateBulk(builders ...*FileProcessingChunkCreate) *FileProcessingChunkCreateBulk {
	return &FileProcessingChunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FileProcessingChunkClient) MapCreateBulk(slice any, setFunc func(*FileProcessingChunkCreate, int)) *FileProcessingChunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FileProcessingChunkCreateBulk{err: fmt.Errorf("calling to FileProcessingChunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FileProcessingChunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FileProcessingChunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FileProcessingChunk.
func (c *FileProcessingChunkClient) Update() *FileProcessingChunkUpdate {
	mutation := newFileProcessingChunkMutation(c.config, OpUpdate)
	return &FileProcessingChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FileProcessingChunkClient) UpdateOne(_m *FileProcessingChunk) *FileProcessingChunkUpdateOne {
	mutation := newFileProcessingChunkMutation(c.config, OpUpdateOne, withFileProcessingChunk(_m))
	return &FileProcessingChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FileProcessingChunkClient) UpdateOneID(id string) *FileProcessingChunkUpdateOne {
	mutation := newFileProcessingChunkMutation(c.config, OpUpdateOne, withFileProcessingChunkID(id))
	return &FileProcessingChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FileProcessingChunk.
func (c *FileProcessingChunkClient) Delete() *FileProcessingChunkDelete {
	mutation := newFileProcessingChunkMutation(c.config, OpDelete)
	return &FileProcessingChunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FileProcessingChunkClient) DeleteOne(_m *FileProcessingChunk) *FileProcessingChunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FileProcessingChunkClient) DeleteOneID(id string) *FileProcessingChunkDeleteOne {
	builder := c.Delete().Where(fileprocessingchunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FileProcessingChunkDeleteOne{builder}
}

// Query returns a query builder for FileProcessingChunk.
func (c *FileProcessingChunkClient) Query() *FileProcessingChunkQuery {
	return &FileProcessingChunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFileProcessingChunk},
		inters: c.Interceptors(),
	}
}

// Get returns a FileProcessingChunk entity by its id.
func (c *FileProcessingChunkClient) Get(ctx context.Context, id string) (*FileProcessingChunk, error) {
	return c.Query().Where(fileprocessingchunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FileProcessingChunkClient) GetX(ctx context.Context, id string) *FileProcessingChunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a FileProcessingChunk.
func (c *FileProcessingChunkClient) QueryFile(_m *FileProcessingChunk) *FileQuery {
	query := (&FileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fileprocessingchunk.Table, fileprocessingchunk.FieldID, id),
			sqlgraph.To(file.Table, file.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fileprocessingchunk.FileTable, fileprocessingchunk.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FileProcessingChunkClient) Hooks() []Hook {
	return c.hooks.FileProcessingChunk
}

// Interceptors returns the client interceptors.
func (c *FileProcessingChunkClient) Interceptors() []Interceptor {
	return c.inters.FileProcessingChunk
}

func (c *FileProcessingChunkClient) mutate(ctx context.Context, m *FileProcessingChunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FileProcessingChunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FileProcessingChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FileProcessingChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FileProcessingChunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FileProcessingChunk mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// QueueMessageClient is a client for the QueueMessage schema.
type QueueMessageClient struct {
	config
}

// NewQueueMessageClient returns a client for the QueueMessage from the given config.
func NewQueueMessageClient(c config) *QueueMessageClient {
	return &QueueMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuemessage.Hooks(f(g(h())))`.
func (c *QueueMessageClient) Use(hooks ...Hook) {
	c.hooks.QueueMessage = append(c.hooks.QueueMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuemessage.Intercept(f(g(h())))`.
func (c *QueueMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueMessage = append(c.inters.QueueMessage, interceptors...)
}

// Create returns a builder for creating a QueueMessage entity.
func (c *QueueMessageClient) Create() *QueueMessageCreate {
	mutation := newQueueMessageMutation(c.config, OpCreate)
	return &QueueMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueMessage entities.
func (c *QueueMessageClient) CreateBulk(builders ...*QueueMessageCreate) *QueueMessageCreateBulk {
	return &QueueMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueMessageClient) MapCreateBulk(slice any, setFunc func(*QueueMessageCreate, int)) *QueueMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueMessageCreateBulk{err: fmt.Errorf("calling to QueueMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueMessage.
func (c *QueueMessageClient) Update() *QueueMessageUpdate {
	mutation := newQueueMessageMutation(c.config, OpUpdate)
	return &QueueMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueMessageClient) UpdateOne(_m *QueueMessage) *QueueMessageUpdateOne {
	mutation := newQueueMessageMutation(c.config, OpUpdateOne, withQueueMessage(_m))
	return &QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueMessageClient) UpdateOneID(id string) *QueueMessageUpdateOne {
	mutation := newQueueMessageMutation(c.config, OpUpdateOne, withQueueMessageID(id))
	return &QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueMessage.
func (c *QueueMessageClient) Delete() *QueueMessageDelete {
	mutation := newQueueMessageMutation(c.config, OpDelete)
	return &QueueMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueMessageClient) DeleteOne(_m *QueueMessage) *QueueMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueMessageClient) DeleteOneID(id string) *QueueMessageDeleteOne {
	builder := c.Delete().Where(queuemessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueMessageDeleteOne{builder}
}

// Query returns a query builder for QueueMessage.
func (c *QueueMessageClient) Query() *QueueMessageQuery {
	return &QueueMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueMessage entity by its id.
func (c *QueueMessageClient) Get(ctx context.Context, id string) (*QueueMessage, error) {
	return c.Query().Where(queuemessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueMessageClient) GetX(ctx context.Context, id string) *QueueMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueMessageClient) Hooks() []Hook {
	return c.hooks.QueueMessage
}

// Interceptors returns the client interceptors.
func (c *QueueMessageClient) Interceptors() []Interceptor {
	return c.inters.QueueMessage
}

func (c *QueueMessageClient) mutate(ctx context.Context, m *QueueMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueMessage mutation op: %q", m.Op())
	}
}

// RebuildStatusClient is a client for the RebuildStatus schema.
type RebuildStatusClient struct {
	config
}

// NewRebuildStatusClient returns a client for the RebuildStatus from the given config.
func NewRebuildStatusClient(c config) *RebuildStatusClient {
	return &RebuildStatusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rebuildstatus.Hooks(f(g(h())))`.
func (c *RebuildStatusClient) Use(hooks ...Hook) {
	c.hooks.RebuildStatus = append(c.hooks.RebuildStatus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rebuildstatus.Intercept(f(g(h())))`.
func (c *RebuildStatusClient) Intercept(interceptors ...Interceptor) {
	c.inters.RebuildStatus = append(c.inters.RebuildStatus, interceptors...)
}

// Create returns a builder for creating a RebuildStatus entity.
func (c *RebuildStatusClient) Create() *RebuildStatusCreate {
	mutation := newRebuildStatusMutation(c.config, OpCreate)
	return &RebuildStatusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RebuildStatus entities.
func (c *RebuildStatusClient) CreateBulk(builders ...*RebuildStatusCreate) *RebuildStatusCreateBulk {
	return &RebuildStatusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RebuildStatusClient) MapCreateBulk(slice any, setFunc func(*RebuildStatusCreate, int)) *RebuildStatusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RebuildStatusCreateBulk{err: fmt.Errorf("calling to RebuildStatusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RebuildStatusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RebuildStatusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RebuildStatus.
func (c *RebuildStatusClient) Update() *RebuildStatusUpdate {
	mutation := newRebuildStatusMutation(c.config, OpUpdate)
	return &RebuildStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RebuildStatusClient) UpdateOne(_m *RebuildStatus) *RebuildStatusUpdateOne {
	mutation := newRebuildStatusMutation(c.config, OpUpdateOne, withRebuildStatus(_m))
	return &RebuildStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RebuildStatusClient) UpdateOneID(id string) *RebuildStatusUpdateOne {
	mutation := newRebuildStatusMutation(c.config, OpUpdateOne, withRebuildStatusID(id))
	return &RebuildStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RebuildStatus.
func (c *RebuildStatusClient) Delete() *RebuildStatusDelete {
	mutation := newRebuildStatusMutation(c.config, OpDelete)
	return &RebuildStatusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RebuildStatusClient) DeleteOne(_m *RebuildStatus) *RebuildStatusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RebuildStatusClient) DeleteOneID(id string) *RebuildStatusDeleteOne {
	builder := c.Delete().Where(rebuildstatus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RebuildStatusDeleteOne{builder}
}

// Query returns a query builder for RebuildStatus.
func (c *RebuildStatusClient) Query() *RebuildStatusQuery {
	return &RebuildStatusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRebuildStatus},
		inters: c.Interceptors(),
	}
}

// Get returns a RebuildStatus entity by its id.
func (c *RebuildStatusClient) Get(ctx context.Context, id string) (*RebuildStatus, error) {
	return c.Query().Where(rebuildstatus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RebuildStatusClient) GetX(ctx context.Context, id string) *RebuildStatus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a RebuildStatus.
func (c *RebuildStatusClient) QueryCampaign(_m *RebuildStatus) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rebuildstatus.Table, rebuildstatus.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rebuildstatus.CampaignTable, rebuildstatus.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RebuildStatusClient) Hooks() []Hook {
	return c.hooks.RebuildStatus
}

// Interceptors returns the client interceptors.
func (c *RebuildStatusClient) Interceptors() []Interceptor {
	return c.inters.RebuildStatus
}

func (c *RebuildStatusClient) mutate(ctx context.Context, m *RebuildStatusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RebuildStatusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RebuildStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RebuildStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RebuildStatusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RebuildStatus mutation op: %q", m.Op())
	}
}

// SessionDigestClient is a client for the SessionDigest schema.
type SessionDigestClient struct {
	config
}

// NewSessionDigestClient returns a client for the SessionDigest from the given config.
func NewSessionDigestClient(c config) *SessionDigestClient {
	return &SessionDigestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessiondigest.Hooks(f(g(h())))`.
func (c *SessionDigestClient) Use(hooks ...Hook) {
	c.hooks.SessionDigest = append(c.hooks.SessionDigest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessiondigest.Intercept(f(g(h())))`.
func (c *SessionDigestClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionDigest = append(c.inters.SessionDigest, interceptors...)
}

// Create returns a builder for creating a SessionDigest entity.
func (c *SessionDigestClient) Create() *SessionDigestCreate {
	mutation := newSessionDigestMutation(c.config, OpCreate)
	return &SessionDigestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionDigest entities.
func (c *SessionDigestClient) CreateBulk(builders ...*SessionDigestCreate) *SessionDigestCreateBulk {
	return &SessionDigestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionDigestClient) MapCreateBulk(slice any, setFunc func(*SessionDigestCreate, int)) *SessionDigestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionDigestCreateBulk{err: fmt.Errorf("calling to SessionDigestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionDigestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionDigestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionDigest.
func (c *SessionDigestClient) Update() *SessionDigestUpdate {
	mutation := newSessionDigestMutation(c.config, OpUpdate)
	return &SessionDigestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionDigestClient) UpdateOne(_m *SessionDigest) *SessionDigestUpdateOne {
	mutation := newSessionDigestMutation(c.config, OpUpdateOne, withSessionDigest(_m))
	return &SessionDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionDigestClient) UpdateOneID(id string) *SessionDigestUpdateOne {
	mutation := newSessionDigestMutation(c.config, OpUpdateOne, withSessionDigestID(id))
	return &SessionDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionDigest.
func (c *SessionDigestClient) Delete() *SessionDigestDelete {
	mutation := newSessionDigestMutation(c.config, OpDelete)
	return &SessionDigestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionDigestClient) DeleteOne(_m *SessionDigest) *SessionDigestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionDigestClient) DeleteOneID(id string) *SessionDigestDeleteOne {
	builder := c.Delete().Where(sessiondigest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDigestDeleteOne{builder}
}

// Query returns a query builder for SessionDigest.
func (c *SessionDigestClient) Query() *SessionDigestQuery {
	return &SessionDigestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionDigest},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionDigest entity by its id.
func (c *SessionDigestClient) Get(ctx context.Context, id string) (*SessionDigest, error) {
	return c.Query().Where(sessiondigest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionDigestClient) GetX(ctx context.Context, id string) *SessionDigest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a SessionDigest.
func (c *SessionDigestClient) QueryCampaign(_m *SessionDigest) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessiondigest.Table, sessiondigest.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessiondigest.CampaignTable, sessiondigest.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionDigestClient) Hooks() []Hook {
	return c.hooks.SessionDigest
}

// Interceptors returns the client interceptors.
func (c *SessionDigestClient) Interceptors() []Interceptor {
	return c.inters.SessionDigest
}

func (c *SessionDigestClient) mutate(ctx context.Context, m *SessionDigestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionDigestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionDigestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDigestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionDigest mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Campaign, ChangelogEntry, Community, Entity, EntityImportance,
		EntityRelationship, File, FileProcessingChunk, Notification, QueueMessage,
		RebuildStatus, SessionDigest []ent.Hook
	}
	inters struct {
		Campaign, ChangelogEntry, Community, Entity, EntityImportance,
		EntityRelationship, File, FileProcessingChunk, Notification, QueueMessage,
		RebuildStatus, SessionDigest []ent.Interceptor
	}
)

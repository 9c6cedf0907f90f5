// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/hasc-tools/ndaa-intake/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/hasc-tools/ndaa-intake/gen/ent/fundingrequest"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FundingRequest is the client for interacting with the FundingRequest builders.
	FundingRequest *FundingRequestClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FundingRequest = NewFundingRequestClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		FundingRequest: NewFundingRequestClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		FundingRequest: NewFundingRequestClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FundingRequest.
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
	c.FundingRequest.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.FundingRequest.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FundingRequestMutation:
		return c.FundingRequest.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FundingRequestClient is a client for the FundingRequest schema.
type FundingRequestClient struct {
	config
}

// NewFundingRequestClient returns a client for the FundingRequest from the given config.
func NewFundingRequestClient(c config) *FundingRequestClient {
	return &FundingRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fundingrequest.Hooks(f(g(h())))`.
func (c *FundingRequestClient) Use(hooks ...Hook) {
	c.hooks.FundingRequest = append(c.hooks.FundingRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fundingrequest.Intercept(f(g(h())))`.
func (c *FundingRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.FundingRequest = append(c.inters.FundingRequest, interceptors...)
}

// Create returns a builder for creating a FundingRequest entity.
func (c *FundingRequestClient) Create() *FundingRequestCreate {
	mutation := newFundingRequestMutation(c.config, OpCreate)
	return &FundingRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FundingRequest entities.
func (c *FundingRequestClient) CreateBulk(builders ...*FundingRequestCreate) *FundingRequestCreateBulk {
	return &FundingRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FundingRequestClient) MapCreateBulk(slice any, setFunc func(*FundingRequestCreate, int)) *FundingRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FundingRequestCreateBulk{err: fmt.Errorf("calling to FundingRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FundingRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FundingRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FundingRequest.
func (c *FundingRequestClient) Update() *FundingRequestUpdate {
	mutation := newFundingRequestMutation(c.config, OpUpdate)
	return &FundingRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FundingRequestClient) UpdateOne(_m *FundingRequest) *FundingRequestUpdateOne {
	mutation := newFundingRequestMutation(c.config, OpUpdateOne, withFundingRequest(_m))
	return &FundingRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FundingRequestClient) UpdateOneID(id uuid.UUID) *FundingRequestUpdateOne {
	mutation := newFundingRequestMutation(c.config, OpUpdateOne, withFundingRequestID(id))
	return &FundingRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FundingRequest.
func (c *FundingRequestClient) Delete() *FundingRequestDelete {
	mutation := newFundingRequestMutation(c.config, OpDelete)
	return &FundingRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FundingRequestClient) DeleteOne(_m *FundingRequest) *FundingRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FundingRequestClient) DeleteOneID(id uuid.UUID) *FundingRequestDeleteOne {
	builder := c.Delete().Where(fundingrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FundingRequestDeleteOne{builder}
}

// Query returns a query builder for FundingRequest.
func (c *FundingRequestClient) Query() *FundingRequestQuery {
	return &FundingRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFundingRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a FundingRequest entity by its id.
func (c *FundingRequestClient) Get(ctx context.Context, id uuid.UUID) (*FundingRequest, error) {
	return c.Query().Where(fundingrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FundingRequestClient) GetX(ctx context.Context, id uuid.UUID) *FundingRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FundingRequestClient) Hooks() []Hook {
	return c.hooks.FundingRequest
}

// Interceptors returns the client interceptors.
func (c *FundingRequestClient) Interceptors() []Interceptor {
	return c.inters.FundingRequest
}

func (c *FundingRequestClient) mutate(ctx context.Context, m *FundingRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FundingRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FundingRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FundingRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FundingRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FundingRequest mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FundingRequest []ent.Hook
	}
	inters struct {
		FundingRequest []ent.Interceptor
	}
)

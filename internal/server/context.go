package server

import (
	"context"
	"sync"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/auth"
	"github.com/teemow/daybook/internal/collection"
	"github.com/teemow/daybook/internal/events"
	"github.com/teemow/daybook/internal/instrumentation"
	"github.com/teemow/daybook/internal/notes"
	"github.com/teemow/daybook/internal/reminders"
	"github.com/teemow/daybook/internal/session"
	"github.com/teemow/daybook/internal/todos"
)

// ServerContext holds the shared state for the MCP server: the session
// store, the backend client and one editing controller per collection.
type ServerContext struct {
	ctx     context.Context
	cancel  context.CancelFunc
	store   *session.Store
	client  *api.Client
	gateway *auth.Gateway
	metrics *instrumentation.Metrics

	todos     *collection.Controller[todos.Todo]
	notes     *collection.Controller[notes.Note]
	events    *collection.Controller[events.Event]
	reminders *collection.Controller[reminders.Reminder]

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context around the given
// session store and backend client.
func NewServerContext(ctx context.Context, store *session.Store, client *api.Client) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:       shutdownCtx,
		cancel:    cancel,
		store:     store,
		client:    client,
		gateway:   auth.NewGateway(client, store),
		todos:     todos.NewController(client),
		notes:     notes.NewController(client),
		events:    events.NewController(client),
		reminders: reminders.NewController(client),
	}, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// SessionStore returns the persisted session store.
func (sc *ServerContext) SessionStore() *session.Store {
	return sc.store
}

// Client returns the shared backend client.
func (sc *ServerContext) Client() *api.Client {
	return sc.client
}

// Gateway returns the auth gateway.
func (sc *ServerContext) Gateway() *auth.Gateway {
	return sc.gateway
}

// Todos returns the todos editing controller.
func (sc *ServerContext) Todos() *collection.Controller[todos.Todo] {
	return sc.todos
}

// Notes returns the notes editing controller.
func (sc *ServerContext) Notes() *collection.Controller[notes.Note] {
	return sc.notes
}

// Events returns the events editing controller.
func (sc *ServerContext) Events() *collection.Controller[events.Event] {
	return sc.events
}

// Reminders returns the reminders editing controller.
func (sc *ServerContext) Reminders() *collection.Controller[reminders.Reminder] {
	return sc.reminders
}

// SetMetrics attaches a metrics recorder for tool instrumentation.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the attached metrics recorder, or nil when
// instrumentation is disabled.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}

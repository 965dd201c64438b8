package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/logging"
)

// State is the editing phase of a controller.
type State int

const (
	// StateIdle means no draft is open.
	StateIdle State = iota
	// StateEditing means a draft is open and mutable.
	StateEditing
	// StateSubmitting means a submit is in flight; the draft is frozen.
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrNoDraft is returned when a draft operation runs without an open draft.
	ErrNoDraft = errors.New("no draft open")
	// ErrSubmitInFlight is returned when an operation would interrupt a
	// submit that is already running.
	ErrSubmitInFlight = errors.New("submit already in flight")
)

// Resource is any record the backend identifies by a string id.
// A zero id marks a record that has not been created yet.
type Resource interface {
	ResourceID() string
}

// Kind describes how a resource type behaves inside a controller:
// how a fresh draft looks, how missing fields are defaulted, and what
// makes a record invalid.
type Kind[T Resource] struct {
	// Name is the collection name, e.g. "todos".
	Name string
	// NewDraft returns a fresh draft with the collection's defaults.
	NewDraft func(now time.Time) T
	// Normalize fills missing fields right before submit. It runs
	// exactly once per submit, on the outgoing record only.
	Normalize func(item T, now time.Time) T
	// Validate rejects records that must not reach the backend.
	// Nil means every normalized record is acceptable.
	Validate func(item T) error
}

// Adapter is the network surface a controller drives. *api.Adapter[T]
// satisfies it.
type Adapter[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Controller holds one collection's items and its single draft, and
// sequences edits through Idle, Editing and Submitting. Every
// successful write is followed by a refetch so the items always mirror
// the backend.
type Controller[T Resource] struct {
	kind    Kind[T]
	adapter Adapter[T]
	logger  *slog.Logger
	clock   func() time.Time

	mu        sync.Mutex
	state     State
	items     []T
	draft     T
	editingID string
}

// Option configures a Controller.
type Option[T Resource] func(*Controller[T])

// WithLogger sets the controller's logger.
func WithLogger[T Resource](logger *slog.Logger) Option[T] {
	return func(c *Controller[T]) {
		c.logger = logger
	}
}

// WithClock overrides the time source used for draft defaults.
func WithClock[T Resource](clock func() time.Time) Option[T] {
	return func(c *Controller[T]) {
		c.clock = clock
	}
}

// NewController creates a controller for one collection. The controller
// starts Idle with no items; call Refresh to load the collection.
func NewController[T Resource](kind Kind[T], adapter Adapter[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		kind:    kind,
		adapter: adapter,
		logger:  slog.Default(),
		clock:   time.Now,
		items:   []T{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.WithCollection(c.logger, kind.Name)
	return c
}

// State returns the current editing phase.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns a copy of the last fetched collection.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Draft returns the open draft, or false when no draft is open.
func (c *Controller[T]) Draft() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle {
		var zero T
		return zero, false
	}
	return c.draft, true
}

// Refresh refetches the collection from the backend. A malformed
// response resets the items to empty so stale records never survive a
// decode failure; any other error leaves the previous items in place.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	items, err := c.adapter.List(ctx)
	if err != nil {
		var malformed *api.MalformedResponseError
		if errors.As(err, &malformed) {
			c.mu.Lock()
			c.items = []T{}
			c.mu.Unlock()
		}
		c.logger.Warn("refresh failed", logging.Err(err))
		return err
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	c.logger.Debug("collection refreshed", slog.Int("count", len(items)))
	return nil
}

// OpenCreate opens a fresh draft with the collection's defaults.
// Reopening while Editing replaces the current draft.
func (c *Controller[T]) OpenCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	c.draft = c.kind.NewDraft(c.clock())
	c.editingID = ""
	c.state = StateEditing
	return nil
}

// OpenEdit opens a draft seeded from the fetched item with the given
// id. The item must be present in the last fetched collection.
func (c *Controller[T]) OpenEdit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	for _, item := range c.items {
		if item.ResourceID() == id {
			c.draft = item
			c.editingID = id
			c.state = StateEditing
			return nil
		}
	}
	return fmt.Errorf("no %s with id %q in collection", c.kind.Name, id)
}

// MutateDraft applies fn to the open draft.
func (c *Controller[T]) MutateDraft(fn func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateIdle:
		return ErrNoDraft
	case StateSubmitting:
		return ErrSubmitInFlight
	}
	fn(&c.draft)
	return nil
}

// Cancel discards the open draft without any network traffic.
func (c *Controller[T]) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	var zero T
	c.draft = zero
	c.editingID = ""
	c.state = StateIdle
	return nil
}

// Submit normalizes and validates the draft, sends it to the backend
// (create for a fresh draft, full-replace update for an edit), and on
// success discards the draft and refetches the collection. On failure
// the draft stays open for correction.
func (c *Controller[T]) Submit(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateIdle:
		c.mu.Unlock()
		return ErrNoDraft
	case StateSubmitting:
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	outgoing := c.kind.Normalize(c.draft, c.clock())
	if c.kind.Validate != nil {
		if err := c.kind.Validate(outgoing); err != nil {
			c.mu.Unlock()
			return err
		}
	}
	id := c.editingID
	c.state = StateSubmitting
	c.mu.Unlock()

	var err error
	operation := "create"
	if id == "" {
		_, err = c.adapter.Create(ctx, outgoing)
	} else {
		operation = "update"
		_, err = c.adapter.Update(ctx, id, outgoing)
	}

	c.mu.Lock()
	if err != nil {
		// The draft survives so the user can retry.
		c.state = StateEditing
		c.mu.Unlock()
		c.logger.Warn("submit failed", logging.Operation(operation), logging.Err(err))
		return err
	}
	var zero T
	c.draft = zero
	c.editingID = ""
	c.state = StateIdle
	c.mu.Unlock()

	c.logger.Info("submit succeeded", logging.Operation(operation))
	return c.Refresh(ctx)
}

// Remove deletes the item with the given id and refetches the
// collection. On failure the items are left untouched.
func (c *Controller[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.mu.Unlock()

	if err := c.adapter.Delete(ctx, id); err != nil {
		c.logger.Warn("remove failed", logging.Operation("delete"), logging.Err(err))
		return err
	}
	c.logger.Info("item removed", logging.Operation("delete"))
	return c.Refresh(ctx)
}

// Replace sends a full-replace update for an already-fetched item
// without opening a draft, then refetches. It backs quick in-place
// mutations such as toggling a reminder's completed flag.
func (c *Controller[T]) Replace(ctx context.Context, id string, item T) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.mu.Unlock()

	outgoing := c.kind.Normalize(item, c.clock())
	if c.kind.Validate != nil {
		if err := c.kind.Validate(outgoing); err != nil {
			return err
		}
	}
	if _, err := c.adapter.Update(ctx, id, outgoing); err != nil {
		c.logger.Warn("replace failed", logging.Operation("update"), logging.Err(err))
		return err
	}
	return c.Refresh(ctx)
}

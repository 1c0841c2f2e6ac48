package processor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/simonkvalheim/bankify/internal/model"
	"github.com/simonkvalheim/bankify/internal/queue"
	"github.com/simonkvalheim/bankify/internal/repository"
	"github.com/simonkvalheim/bankify/internal/view"
)

// EventPublisher receives movement events after an action is applied
type EventPublisher interface {
	PublishMovement(ctx context.Context, event queue.MovementEvent) error
}

// Result is the outcome of a user action.
// Reason explains a rejection for logs; it is never shown to the user.
type Result struct {
	Applied bool
	Reason  string
	View    *view.View
}

// Option configures a Controller
type Option func(*Controller)

// WithPublisher sends movement events to p
func WithPublisher(p EventPublisher) Option {
	return func(c *Controller) {
		c.publisher = p
	}
}

// WithClock overrides the time source used to date movements
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// Controller owns the single session and dispatches user actions against the store.
// Actions are serialised; each one either applies completely or changes nothing.
type Controller struct {
	mu        sync.Mutex
	store     *repository.AccountStore
	publisher EventPublisher
	now       func() time.Time

	current   *model.Account // nil when logged out
	sessionID uuid.UUID
	sorted    bool
}

// NewController creates a logged-out controller over store
func NewController(store *repository.AccountStore, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoggedIn reports whether a session is active
func (c *Controller) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// SessionID returns the ID issued at the last successful login, or uuid.Nil
func (c *Controller) SessionID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Session returns the active session ID and whether anyone is logged in,
// read under one lock
func (c *Controller) Session() (uuid.UUID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return uuid.Nil, false
	}
	return c.sessionID, true
}

// View renders the current account
func (c *Controller) View() (view.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return view.View{}, model.ErrNotLoggedIn
	}
	return view.Render(c.current, c.sorted), nil
}

// Login starts a session when username exists and pin matches.
// A failed attempt leaves any existing session untouched.
func (c *Controller) Login(ctx context.Context, username, pin string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	acc, _ := c.store.Find(username)
	if !acc.CheckPIN(pin) {
		return c.reject("login", model.ErrInvalidCredentials)
	}

	c.current = acc
	c.sessionID = uuid.New()
	c.sorted = false
	log.Printf("Session %s: %s logged in", c.sessionID, acc.Username)

	return c.applied()
}

// Logout ends the session, if any
func (c *Controller) Logout(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return c.reject("logout", model.ErrNotLoggedIn)
	}

	log.Printf("Session %s: %s logged out", c.sessionID, c.current.Username)
	c.endSession()
	return Result{Applied: true}
}

// ToggleSort flips between chronological and amount order.
// Only the rendered list changes.
func (c *Controller) ToggleSort(ctx context.Context) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Result{}, model.ErrNotLoggedIn
	}

	c.sorted = !c.sorted
	return c.applied(), nil
}

// CloseAccount removes the current account when username and pin match it.
// On success the session ends.
func (c *Controller) CloseAccount(ctx context.Context, username, pin string) (Result, error) {
	c.mu.Lock()

	if c.current == nil {
		c.mu.Unlock()
		return Result{}, model.ErrNotLoggedIn
	}

	if username != c.current.Username || !c.current.CheckPIN(pin) {
		res := c.reject("close", model.ErrInvalidCredentials)
		c.mu.Unlock()
		return res, nil
	}

	index, ok := c.store.FindIndex(c.current.Username)
	if !ok {
		res := c.reject("close", model.ErrAccountNotFound)
		c.mu.Unlock()
		return res, nil
	}
	if err := c.store.Remove(index); err != nil {
		res := c.reject("close", err)
		c.mu.Unlock()
		return res, nil
	}

	closed := c.current
	log.Printf("Session %s: closed account %s", c.sessionID, closed.Username)
	c.endSession()
	event := queue.NewMovementEvent(queue.EventKindClosure, closed.Username, closed.Balance(), c.now())
	c.mu.Unlock()

	c.publish(ctx, event)
	return Result{Applied: true}, nil
}

func (c *Controller) endSession() {
	c.current = nil
	c.sessionID = uuid.Nil
	c.sorted = false
}

// applied returns a successful result carrying a fresh render. Caller holds mu.
func (c *Controller) applied() Result {
	v := view.Render(c.current, c.sorted)
	return Result{Applied: true, View: &v}
}

func (c *Controller) reject(action string, reason error) Result {
	log.Printf("Rejected %s: %v", action, reason)
	return Result{Applied: false, Reason: reason.Error()}
}

// publish sends events best-effort; failures never undo a movement
func (c *Controller) publish(ctx context.Context, events ...queue.MovementEvent) {
	if c.publisher == nil {
		return
	}
	for _, event := range events {
		if err := c.publisher.PublishMovement(ctx, event); err != nil {
			log.Printf("Failed to publish movement %s: %v", event.ID, err)
		}
	}
}

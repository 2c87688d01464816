package fetch

import (
	"context"
	"sync"

	"github.com/kbukum/fetchkit/component"
)

// Component wraps a Session with lifecycle management, for callers that
// prefer an explicit initialize/teardown surface over constructing the
// session directly. Start and Stop are both idempotent.
type Component struct {
	mu      sync.Mutex
	session *Session
	config  Config
	opts    []Option
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a fetch session component. The session is created
// lazily in Start().
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	name := c.config.Name
	if name == "" {
		name = "fetch"
	}
	return name
}

// Start initializes the session. Calling Start on an already-started
// component is a no-op.
func (c *Component) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return nil
	}
	s, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.session = s
	return nil
}

// Stop closes the session and releases resources. Calling Stop on a
// stopped (or never-started) component is a no-op.
func (c *Component) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	err := c.session.Close(ctx)
	c.session = nil
	return err
}

// Health returns the session health status.
func (c *Component) Health(_ context.Context) component.Health {
	c.mu.Lock()
	defer c.mu.Unlock()
	status := component.StatusHealthy
	if c.session == nil || c.session.closed.Load() {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns component description for startup summaries.
func (c *Component) Describe() component.Description {
	details := ""
	if c.config.EnableH2C {
		details = "h2c"
	}
	return component.Description{
		Name:    c.Name(),
		Type:    "fetch-session",
		Details: details,
	}
}

// Session returns the underlying session. Must be called after Start().
func (c *Component) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

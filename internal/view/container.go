package view

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-directory/internal/core/ports"
	"github.com/99minutos/user-directory/internal/core/service"
	"github.com/99minutos/user-directory/internal/core/store"
	"github.com/99minutos/user-directory/internal/pkg/metrics"
)

const usersPath = "/users.json"

// FetchStatus is the phase of the container's single users fetch.
type FetchStatus string

const (
	StatusIdle      FetchStatus = "idle"
	StatusPending   FetchStatus = "pending"
	StatusLoaded    FetchStatus = "loaded"
	StatusFailed    FetchStatus = "failed"
	StatusCancelled FetchStatus = "cancelled"
)

// Container binds the users store to the user list. It fetches users once on
// Mount and renders whatever the store holds at Render time.
type Container struct {
	store *store.Store
	fetch service.Thunk
	uri   string
	log   zerolog.Logger

	mountOnce   sync.Once
	unmountOnce sync.Once
	cancel      context.CancelFunc
	done        chan struct{}

	// gate orders store dispatches against Unmount. Status takes only mu,
	// so store subscribers may call it during a dispatch.
	gate sync.Mutex

	mu        sync.Mutex
	unmounted bool
	status    FetchStatus
	lastErr   error
}

// NewContainer returns an unmounted Container fetching {baseURL}/users.json.
func NewContainer(st *store.Store, src ports.UsersSource, baseURL string, log zerolog.Logger) *Container {
	uri := UsersURI(baseURL)
	return &Container{
		store:  st,
		fetch:  service.FetchUsers(src, uri, log),
		uri:    uri,
		log:    log,
		done:   make(chan struct{}),
		status: StatusIdle,
	}
}

// UsersURI joins the configured base URL with the users.json path.
func UsersURI(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + usersPath
}

// URI is the endpoint the container fetches.
func (c *Container) URI() string {
	return c.uri
}

// Mount starts the users fetch. Only the first call has any effect; the
// request is cancelled by Unmount or by ctx.
func (c *Container) Mount(ctx context.Context) {
	c.mountOnce.Do(func() {
		c.mu.Lock()
		if c.unmounted {
			c.mu.Unlock()
			close(c.done)
			return
		}
		c.status = StatusPending
		c.mu.Unlock()

		fetchCtx, cancel := context.WithCancel(ctx)
		c.cancel = cancel
		go c.run(fetchCtx)
	})
}

func (c *Container) run(ctx context.Context) {
	defer close(c.done)

	err := c.fetch(ctx, c.dispatch)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.unmounted || errors.Is(err, context.Canceled):
		c.status = StatusCancelled
	case err != nil:
		c.status = StatusFailed
		c.lastErr = err
	default:
		c.status = StatusLoaded
	}
}

// dispatch drops completions that arrive after Unmount.
func (c *Container) dispatch(action store.Action) {
	c.gate.Lock()
	defer c.gate.Unlock()

	c.mu.Lock()
	unmounted := c.unmounted
	c.mu.Unlock()
	if unmounted {
		c.log.Debug().Str("action", string(action.Type)).Msg("container unmounted, dropping late action")
		return
	}
	c.store.Dispatch(action)
}

// Unmount cancels the in-flight fetch, if any, and waits for it to finish.
// It is safe to call more than once and before Mount.
func (c *Container) Unmount() {
	c.unmountOnce.Do(func() {
		c.gate.Lock()
		c.mu.Lock()
		c.unmounted = true
		c.mu.Unlock()
		c.gate.Unlock()

		// Claim the mount slot so a later Mount is a no-op.
		c.mountOnce.Do(func() { close(c.done) })

		if c.cancel != nil {
			c.cancel()
		}
		<-c.done
	})
}

// Done is closed once the fetch has settled.
func (c *Container) Done() <-chan struct{} {
	return c.done
}

// Status reports the fetch phase and the error of a failed fetch.
func (c *Container) Status() (FetchStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, c.lastErr
}

// Render writes the user list when the store holds users and the
// "No Users!" placeholder otherwise.
func (c *Container) Render(w io.Writer) error {
	users := c.store.State().Users
	if len(users) > 0 {
		metrics.RendersTotal.WithLabelValues("user_list").Inc()
		return RenderUserList(w, users)
	}
	metrics.RendersTotal.WithLabelValues("placeholder").Inc()
	return renderPlaceholder(w)
}

// Package carousel provides a paginated view that advances on its own.
//
// A Carousel owns one recurring ticker. Mount starts it, Unmount (or
// cancelling the context passed to Mount) stops it and waits for the ticking
// goroutine to exit. Once unmounted the carousel is disposed: every later
// state change fails with ErrDisposed instead of mutating a view nobody owns.
package carousel

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"lumakin.dev/internal/pagination"
)

// DefaultInterval is how long each page stays up before the carousel advances.
const DefaultInterval = 6 * time.Second

var (
	// ErrDisposed is returned by state changes after the carousel was unmounted.
	ErrDisposed = errors.New("carousel: update after dispose")
	// ErrAlreadyMounted is returned by a second call to Mount.
	ErrAlreadyMounted = errors.New("carousel: already mounted")
	// ErrInvalidInterval is returned for a non-positive advance interval.
	ErrInvalidInterval = errors.New("carousel: interval must be positive")
)

// Ticker is the subset of *time.Ticker the carousel depends on.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

type options struct {
	interval  time.Duration
	newTicker func(time.Duration) Ticker
	logger    *zap.Logger
}

// Option configures a Carousel.
type Option func(*options)

// WithInterval overrides DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithTicker replaces the ticker factory; tests use it to drive ticks by hand.
func WithTicker(f func(time.Duration) Ticker) Option {
	return func(o *options) { o.newTicker = f }
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Carousel is a pagination.Pager with a timer that calls Next on a fixed
// interval. Manual navigation does not reset the timer: the next automatic
// advance still fires on the original schedule.
//
// All methods are safe for concurrent use.
type Carousel[T any] struct {
	opts options

	mu       sync.Mutex
	pager    *pagination.Pager[T]
	mounted  bool
	disposed bool
	cancel   context.CancelFunc
	done     chan struct{}
	subs     map[int]func(pagination.Snapshot[T])
	nextSub  int
}

// New creates an unmounted carousel over items.
func New[T any](items []T, perPage int, opts ...Option) (*Carousel[T], error) {
	o := options{
		interval:  DefaultInterval,
		newTicker: newTimeTicker,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.interval <= 0 {
		return nil, ErrInvalidInterval
	}

	pager, err := pagination.New(items, perPage)
	if err != nil {
		return nil, err
	}

	return &Carousel[T]{
		opts:  o,
		pager: pager,
		subs:  make(map[int]func(pagination.Snapshot[T])),
	}, nil
}

// Mount starts the auto-advance timer. It does nothing beyond marking the
// carousel mounted when there are no pages to rotate through.
func (c *Carousel[T]) Mount(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return ErrDisposed
	}
	if c.mounted {
		return ErrAlreadyMounted
	}
	c.mounted = true

	if c.pager.TotalPages() == 0 {
		c.opts.logger.Debug("carousel mounted without pages, timer not started")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	ticker := c.opts.newTicker(c.opts.interval)
	go c.run(ctx, ticker, c.done)

	c.opts.logger.Debug("carousel mounted",
		zap.Duration("interval", c.opts.interval),
		zap.Int("pages", c.pager.TotalPages()))
	return nil
}

// Unmount stops the timer and waits for it to exit. It is idempotent.
func (c *Carousel[T]) Unmount() {
	c.mu.Lock()
	c.disposed = true
	cancel, done := c.cancel, c.done
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
		c.opts.logger.Debug("carousel unmounted")
	}
}

// Running reports whether the auto-advance timer is active. It stays false
// after Mount when there are no pages to rotate through.
func (c *Carousel[T]) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil && !c.disposed
}

// isDisposed reports whether the carousel has been unmounted.
func (c *Carousel[T]) isDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

func (c *Carousel[T]) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			c.disposed = true
			c.mu.Unlock()
			return
		case <-ticker.C():
			// A tick racing with Unmount loses: update checks disposal under the lock.
			if err := c.update(c.pager.Next); err != nil {
				return
			}
		}
	}
}

// Next advances one page, wrapping to the first.
func (c *Carousel[T]) Next() error {
	return c.update(c.pager.Next)
}

// Prev moves back one page, wrapping to the last.
func (c *Carousel[T]) Prev() error {
	return c.update(c.pager.Prev)
}

// GoTo jumps to page n, clamped to the valid range.
func (c *Carousel[T]) GoTo(n int) error {
	return c.update(func() { c.pager.GoTo(n) })
}

// Snapshot returns the current page and paging metadata.
func (c *Carousel[T]) Snapshot() pagination.Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Snapshot()
}

// Subscribe registers fn to be called with the new state after every page
// change. The returned function removes the subscription.
func (c *Carousel[T]) Subscribe(fn func(pagination.Snapshot[T])) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

func (c *Carousel[T]) update(change func()) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrDisposed
	}
	change()
	snap := c.pager.Snapshot()
	subs := make([]func(pagination.Snapshot[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return nil
}

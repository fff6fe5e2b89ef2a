package table

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/pkg/logger"
)

// DefaultPageSizes are the sizes a pager offers.
var DefaultPageSizes = []int{10, 20, 50}

type (
	// Source produces one page for a descriptor.
	Source[T any] interface {
		Fetch(ctx context.Context, query model.Query) (model.Page[T], error)
	}

	Options struct {
		PageSize     int
		PageSizes    []int
		FetchTimeout time.Duration
	}

	Option func(*Options)

	// Ticket identifies the fetch a transition issued. Done closes once that
	// fetch has settled or been discarded; it is already closed when no fetch was needed.
	Ticket struct {
		Sequence uint64
		Done     <-chan struct{}
	}

	// Controller serializes transitions for one table and runs fetches in the
	// background. Responses from superseded fetches are dropped.
	Controller[T any] struct {
		schema  *model.Schema[T]
		source  Source[T]
		options Options
		logger  logger.Logger

		mu       sync.Mutex
		state    State
		result   model.Page[T]
		issued   uint64
		settled  uint64
		loading  bool
		fetchErr error
		inflight <-chan struct{}

		wg     sync.WaitGroup
		ctx    context.Context
		cancel context.CancelFunc
	}
)

func WithPageSizes(sizes ...int) Option {
	return func(o *Options) {
		o.PageSizes = slices.Clone(sizes)
	}
}

func WithInitialPageSize(size int) Option {
	return func(o *Options) {
		o.PageSize = size
	}
}

func WithFetchTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.FetchTimeout = timeout
	}
}

func NewController[T any](schema *model.Schema[T], source Source[T], log logger.Logger, opts ...Option) *Controller[T] {
	options := Options{
		PageSize:  model.DefaultPageSize,
		PageSizes: slices.Clone(DefaultPageSizes),
	}

	for _, opt := range opts {
		opt(&options)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Controller[T]{
		schema:  schema,
		source:  source,
		options: options,
		logger:  log,
		state:   NewState(options.PageSize),
		result:  model.Page[T]{Items: []T{}},
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start issues the initial fetch.
func (c *Controller[T]) Start(ctx context.Context) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.issueLocked(ctx)
}

// Refresh refetches the current state, e.g. after a failure.
func (c *Controller[T]) Refresh(ctx context.Context) Ticket {
	return c.Start(ctx)
}

func (c *Controller[T]) Sort(ctx context.Context, field string) (Ticket, error) {
	f, ok := c.schema.Field(field)
	if !ok {
		return Ticket{}, fmt.Errorf("%w: %q", model.ErrUnknownField, field)
	}

	if !f.Sortable {
		return Ticket{}, fmt.Errorf("%w: %q", model.ErrFieldNotSortable, field)
	}

	return c.transition(ctx, func(s State) State { return s.Sort(field) }), nil
}

// EditFilter only touches pending filters and never fetches.
func (c *Controller[T]) EditFilter(field string, clause model.FilterClause) error {
	if _, ok := c.schema.Field(field); !ok {
		return fmt.Errorf("%w: %q", model.ErrUnknownField, field)
	}

	if problems := clause.Normalized().Check(field); len(problems) > 0 {
		return &model.ValidationErrors{Errors: problems}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = c.state.EditFilter(field, clause)

	return nil
}

func (c *Controller[T]) ApplyFilter(ctx context.Context, field string) (Ticket, error) {
	if _, ok := c.schema.Field(field); !ok {
		return Ticket{}, fmt.Errorf("%w: %q", model.ErrUnknownField, field)
	}

	return c.transition(ctx, func(s State) State { return s.ApplyFilter(field) }), nil
}

func (c *Controller[T]) ClearFilter(ctx context.Context, field string) (Ticket, error) {
	if _, ok := c.schema.Field(field); !ok {
		return Ticket{}, fmt.Errorf("%w: %q", model.ErrUnknownField, field)
	}

	return c.transition(ctx, func(s State) State { return s.ClearFilter(field) }), nil
}

func (c *Controller[T]) ChangePage(ctx context.Context, page int) Ticket {
	return c.transition(ctx, func(s State) State { return s.ChangePage(page) })
}

func (c *Controller[T]) ChangePageSize(ctx context.Context, size int) (Ticket, error) {
	if size <= 0 || (len(c.options.PageSizes) > 0 && !slices.Contains(c.options.PageSizes, size)) {
		return Ticket{}, fmt.Errorf("%w: %d not in %v", model.ErrInvalidPageSize, size, c.options.PageSizes)
	}

	return c.transition(ctx, func(s State) State { return s.ChangePageSize(size) }), nil
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.clone()
}

func (c *Controller[T]) View() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.viewLocked()
}

// Wait blocks until t settles or ctx ends and returns the view at that point.
// A ctx error is not fatal: the view then still reports Loading.
func (c *Controller[T]) Wait(ctx context.Context, t Ticket) (View[T], error) {
	if t.Done != nil {
		select {
		case <-t.Done:
		case <-ctx.Done():
			return c.View(), ctx.Err()
		}
	}

	return c.View(), nil
}

// Current returns a ticket for the latest issued fetch.
func (c *Controller[T]) Current() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.currentTicketLocked()
}

// Close cancels outstanding fetches and waits for their goroutines. Once it
// holds the lock no transition can register another goroutine.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.cancel()
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Controller[T]) transition(ctx context.Context, apply func(State) State) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := apply(c.state)
	changed := c.state.RequiresFetch(next)
	c.state = next

	if !changed {
		return c.currentTicketLocked()
	}

	return c.issueLocked(ctx)
}

func (c *Controller[T]) issueLocked(ctx context.Context) Ticket {
	if c.ctx.Err() != nil {
		return c.currentTicketLocked()
	}

	c.issued++
	seq := c.issued
	query := c.state.Query()
	c.loading = true

	done := make(chan struct{})
	c.inflight = done

	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(c.ctx, cancel)

	if c.options.FetchTimeout > 0 {
		fetchCtx, cancel = withTimeout(fetchCtx, cancel, c.options.FetchTimeout)
	}

	c.wg.Add(1)

	go func() {
		defer c.wg.Done()
		defer close(done)
		defer stop()
		defer cancel()

		page, err := c.source.Fetch(fetchCtx, query)
		c.settle(fetchCtx, seq, page, err)
	}()

	return Ticket{Sequence: seq, Done: done}
}

func (c *Controller[T]) settle(ctx context.Context, seq uint64, page model.Page[T], err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.logger.WithContext(ctx)

	if seq < c.issued {
		log.Debug().Uint64("sequence", seq).Uint64("latest", c.issued).Msg("discarding superseded fetch result")

		return
	}

	c.loading = false

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Uint64("sequence", seq).Msg("table fetch failed")
		}

		c.fetchErr = err

		return
	}

	c.settled = seq
	c.fetchErr = nil
	c.result = page

	if c.result.Items == nil {
		c.result.Items = []T{}
	}
}

func (c *Controller[T]) viewLocked() View[T] {
	v := View[T]{
		State:       c.state.clone(),
		Items:       slices.Clone(c.result.Items),
		Total:       c.result.Total,
		HasMore:     c.result.HasMore,
		TotalPages:  model.TotalPages(c.result.Total, c.state.PageSize),
		Loading:     c.loading,
		Failed:      c.fetchErr != nil,
		CanPrevious: c.state.Page > 1,
		Sequence:    c.issued,
		Settled:     c.settled,
	}

	v.CanNext = v.HasMore && !v.Loading && !v.Failed

	if v.Failed {
		v.Error = ErrFetchFailed.Error()
	}

	return v
}

func withTimeout(ctx context.Context, cancel context.CancelFunc, timeout time.Duration) (context.Context, context.CancelFunc) {
	timed, cancelTimed := context.WithTimeout(ctx, timeout)

	return timed, func() {
		cancelTimed()
		cancel()
	}
}

// currentTicketLocked points at the latest issued fetch, which may still be running.
func (c *Controller[T]) currentTicketLocked() Ticket {
	if c.inflight == nil {
		done := make(chan struct{})
		close(done)

		return Ticket{Sequence: c.issued, Done: done}
	}

	return Ticket{Sequence: c.issued, Done: c.inflight}
}

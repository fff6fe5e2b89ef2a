package table_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/domain/pipeline"
	"github.com/architeacher/datatable/internal/domain/table"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/stretchr/testify/require"
)

type fetchResult struct {
	page model.Page[model.Post]
	err  error
}

type fetchCall struct {
	query   model.Query
	respond chan fetchResult
}

// gatedSource hands every Fetch to the test, which decides when and how it returns.
type gatedSource struct {
	calls chan fetchCall
}

func newGatedSource() *gatedSource {
	return &gatedSource{calls: make(chan fetchCall, 16)}
}

func (s *gatedSource) Fetch(ctx context.Context, query model.Query) (model.Page[model.Post], error) {
	call := fetchCall{query: query, respond: make(chan fetchResult, 1)}
	s.calls <- call

	select {
	case r := <-call.respond:
		return r.page, r.err
	case <-ctx.Done():
		return model.Page[model.Post]{}, ctx.Err()
	}
}

func (s *gatedSource) next(t *testing.T) fetchCall {
	t.Helper()

	select {
	case call := <-s.calls:
		return call
	case <-time.After(time.Second):
		t.Fatal("expected a fetch")

		return fetchCall{}
	}
}

type pipelineSource struct {
	records []model.Post
}

func (s pipelineSource) Fetch(_ context.Context, query model.Query) (model.Page[model.Post], error) {
	return pipeline.Execute(s.records, model.PostSchema(), query), nil
}

func posts(n int) []model.Post {
	out := make([]model.Post, 0, n)
	for i := 1; i <= n; i++ {
		title := fmt.Sprintf("post %d", i)
		if i%5 == 0 {
			title = fmt.Sprintf("qui post %d", i)
		}

		out = append(out, model.Post{ID: i, UserID: 1, Title: title, Body: "body"})
	}

	return out
}

func pageOf(ids ...int) model.Page[model.Post] {
	items := make([]model.Post, 0, len(ids))
	for _, id := range ids {
		items = append(items, model.Post{ID: id})
	}

	return model.Page[model.Post]{Items: items, Total: 100, HasMore: true}
}

func newController(t *testing.T, source table.Source[model.Post]) *table.Controller[model.Post] {
	t.Helper()

	c := table.NewController[model.Post](model.PostSchema(), source, logger.NewTestLogger())
	t.Cleanup(c.Close)

	return c
}

func wait(t *testing.T, c *table.Controller[model.Post], ticket table.Ticket) table.View[model.Post] {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()

	view, err := c.Wait(ctx, ticket)
	require.NoError(t, err)

	return view
}

func TestController_InitialFetch(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := newController(t, source)

	ticket := c.Start(t.Context())
	require.True(t, c.View().Loading)
	require.Empty(t, c.View().Items)

	call := source.next(t)
	require.Equal(t, 1, call.query.Page)
	require.Equal(t, 10, call.query.PageSize)
	call.respond <- fetchResult{page: pageOf(1, 2, 3)}

	view := wait(t, c, ticket)
	require.False(t, view.Loading)
	require.Len(t, view.Items, 3)
	require.Equal(t, 10, view.TotalPages)
	require.Equal(t, "Page 1 of 10", view.Caption())
	require.True(t, view.CanNext)
	require.False(t, view.CanPrevious)
	require.Equal(t, uint64(1), view.Settled)
}

func TestController_KeepsLastResultWhileLoading(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := newController(t, source)

	first := c.Start(t.Context())
	source.next(t).respond <- fetchResult{page: pageOf(1, 2)}
	wait(t, c, first)

	ticket, err := c.Sort(t.Context(), "title")
	require.NoError(t, err)

	call := source.next(t)
	require.Equal(t, "title", call.query.SortField)

	during := c.View()
	require.True(t, during.Loading)
	require.False(t, during.CanNext, "next is disabled while fetching")
	require.Equal(t, []int{1, 2}, []int{during.Items[0].ID, during.Items[1].ID})
	require.Equal(t, "title", during.State.SortField)

	call.respond <- fetchResult{page: pageOf(9)}

	after := wait(t, c, ticket)
	require.False(t, after.Loading)
	require.Equal(t, 9, after.Items[0].ID)
}

func TestController_DiscardsSupersededResponses(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := newController(t, source)

	initial := c.Start(t.Context())
	source.next(t).respond <- fetchResult{page: pageOf(1)}
	wait(t, c, initial)

	older := c.ChangePage(t.Context(), 2)
	olderCall := source.next(t)

	newer := c.ChangePage(t.Context(), 3)
	newerCall := source.next(t)
	require.Greater(t, newer.Sequence, older.Sequence)

	newerCall.respond <- fetchResult{page: pageOf(30)}
	view := wait(t, c, newer)
	require.Equal(t, 30, view.Items[0].ID)

	olderCall.respond <- fetchResult{page: pageOf(20)}
	wait(t, c, older)

	view = c.View()
	require.Equal(t, 30, view.Items[0].ID, "stale response must not overwrite the newer one")
	require.Equal(t, 3, view.State.Page)
	require.Equal(t, newer.Sequence, view.Settled)
	require.False(t, view.Loading)
}

func TestController_StaleResponseDoesNotEndLoading(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := newController(t, source)

	older := c.Start(t.Context())
	olderCall := source.next(t)

	newer, err := c.ChangePageSize(t.Context(), 20)
	require.NoError(t, err)
	newerCall := source.next(t)

	olderCall.respond <- fetchResult{page: pageOf(1)}
	wait(t, c, older)
	require.True(t, c.View().Loading)
	require.Empty(t, c.View().Items)

	newerCall.respond <- fetchResult{page: pageOf(2)}
	require.False(t, wait(t, c, newer).Loading)
}

func TestController_FailureIsNotRetried(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := newController(t, source)

	ticket := c.Start(t.Context())
	source.next(t).respond <- fetchResult{err: errors.New("connection refused")}

	view := wait(t, c, ticket)
	require.True(t, view.Failed)
	require.Equal(t, "error fetching data", view.Error)
	require.False(t, view.CanNext)
	require.False(t, view.Loading)

	select {
	case <-source.calls:
		t.Fatal("a failed fetch must not be retried automatically")
	case <-time.After(20 * time.Millisecond):
	}

	retry := c.Refresh(t.Context())
	require.Greater(t, retry.Sequence, ticket.Sequence)

	call := source.next(t)
	require.Equal(t, 1, call.query.Page)
	call.respond <- fetchResult{page: pageOf(11)}

	view = wait(t, c, retry)
	require.False(t, view.Failed)
	require.Empty(t, view.Error)
	require.Equal(t, 11, view.Items[0].ID)
}

func TestController_FailureKeepsPreviousItems(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := newController(t, source)

	first := c.Start(t.Context())
	source.next(t).respond <- fetchResult{page: pageOf(1, 2)}
	wait(t, c, first)

	ticket := c.ChangePage(t.Context(), 2)
	source.next(t).respond <- fetchResult{err: errors.New("boom")}

	view := wait(t, c, ticket)
	require.True(t, view.Failed)
	require.Equal(t, 2, view.State.Page)
	require.Len(t, view.Items, 2)
	require.Equal(t, first.Sequence, view.Settled, "items still come from the first fetch")
	require.Equal(t, ticket.Sequence, view.Sequence)

	next := c.ChangePage(t.Context(), 3)
	source.next(t).respond <- fetchResult{page: pageOf(31)}

	view = wait(t, c, next)
	require.False(t, view.Failed)
	require.Equal(t, 31, view.Items[0].ID)
	require.Equal(t, next.Sequence, view.Settled)
}

func TestController_TransitionsWithoutFetch(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := newController(t, source)

	ticket := c.Start(t.Context())
	source.next(t).respond <- fetchResult{page: pageOf(1)}
	wait(t, c, ticket)

	clause := model.FilterClause{Type1: model.Contains, Value1: "x", Operator: model.And, Type2: model.Contains}
	require.NoError(t, c.EditFilter("title", clause))

	same := c.ChangePage(t.Context(), 1)
	require.Equal(t, ticket.Sequence, same.Sequence)

	cleared, err := c.ClearFilter(t.Context(), "body")
	require.NoError(t, err)
	require.Equal(t, ticket.Sequence, cleared.Sequence)

	select {
	case <-source.calls:
		t.Fatal("no fetch expected")
	case <-time.After(20 * time.Millisecond):
	}

	require.Equal(t, "x", c.State().Pending["title"].Value1)
	require.Empty(t, c.State().Applied)
}

func TestController_Validation(t *testing.T) {
	t.Parallel()

	c := newController(t, newGatedSource())

	_, err := c.Sort(t.Context(), "missing")
	require.ErrorIs(t, err, model.ErrUnknownField)

	require.ErrorIs(t, c.EditFilter("missing", model.DefaultFilterClause()), model.ErrUnknownField)

	var validationErrs *model.ValidationErrors
	require.ErrorAs(t, c.EditFilter("title", model.FilterClause{Type1: "like", Operator: "xor"}), &validationErrs)
	require.Len(t, validationErrs.Errors, 2)
	require.Empty(t, c.State().Pending)

	_, err = c.ApplyFilter(t.Context(), "missing")
	require.ErrorIs(t, err, model.ErrUnknownField)

	_, err = c.ClearFilter(t.Context(), "missing")
	require.ErrorIs(t, err, model.ErrUnknownField)

	_, err = c.ChangePageSize(t.Context(), 15)
	require.ErrorIs(t, err, model.ErrInvalidPageSize)

	_, err = c.ChangePageSize(t.Context(), 0)
	require.ErrorIs(t, err, model.ErrInvalidPageSize)
}

func TestController_NotSortable(t *testing.T) {
	t.Parallel()

	schema := model.MustSchema("posts",
		model.Field[model.Post]{Name: "body", Accessor: func(p model.Post) model.Value { return model.String(p.Body) }},
	)

	c := table.NewController[model.Post](schema, newGatedSource(), logger.NewTestLogger())
	t.Cleanup(c.Close)

	_, err := c.Sort(t.Context(), "body")
	require.ErrorIs(t, err, model.ErrFieldNotSortable)
}

func TestController_CloseCancelsInflightFetch(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := table.NewController[model.Post](model.PostSchema(), source, logger.NewTestLogger())

	ticket := c.Start(t.Context())
	source.next(t)

	c.Close()

	select {
	case <-ticket.Done:
	default:
		t.Fatal("close must wait for the fetch goroutine")
	}

	after := c.Start(t.Context())
	require.Equal(t, ticket.Sequence, after.Sequence, "closed controller issues no fetch")
}

func TestController_CloseDuringTransitions(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := table.NewController[model.Post](model.PostSchema(), source, logger.NewTestLogger())

	go func() {
		for range source.calls {
		}
	}()

	var wg sync.WaitGroup

	for worker := range 8 {
		wg.Go(func() {
			for page := 1; page <= 50; page++ {
				c.ChangePage(t.Context(), worker*100+page)
			}
		})
	}

	c.Close()
	closed := c.Current()

	wg.Wait()
	close(source.calls)

	after := c.Current()
	require.Equal(t, closed.Sequence, after.Sequence, "no fetch is issued after close")

	select {
	case <-after.Done:
	default:
		t.Fatal("close must wait for every fetch goroutine")
	}
}

func TestController_HugePage(t *testing.T) {
	t.Parallel()

	c := newController(t, pipelineSource{records: posts(25)})
	wait(t, c, c.Start(t.Context()))

	const page = 1_000_000_000_000_000_000

	var ticket table.Ticket

	require.NotPanics(t, func() { ticket = c.ChangePage(t.Context(), page) })

	view := wait(t, c, ticket)
	require.False(t, view.Failed)
	require.Empty(t, view.Items)
	require.Equal(t, 25, view.Total)
	require.False(t, view.HasMore)
	require.False(t, view.CanNext)
	require.Equal(t, page, view.State.Page)
}

func TestController_FetchTimeout(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := table.NewController[model.Post](model.PostSchema(), source, logger.NewTestLogger(), table.WithFetchTimeout(10*time.Millisecond))
	t.Cleanup(c.Close)

	ticket := c.Start(t.Context())
	source.next(t)

	view := wait(t, c, ticket)
	require.True(t, view.Failed)
}

func TestController_WaitHonoursContext(t *testing.T) {
	t.Parallel()

	source := newGatedSource()
	c := newController(t, source)

	ticket := c.Start(t.Context())
	call := source.next(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	view, err := c.Wait(ctx, ticket)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, view.Loading)

	call.respond <- fetchResult{page: pageOf(1)}
	wait(t, c, ticket)
}

func TestController_EndToEndWithPipeline(t *testing.T) {
	t.Parallel()

	c := newController(t, pipelineSource{records: posts(25)})

	view := wait(t, c, c.Start(t.Context()))
	require.Equal(t, 25, view.Total)
	require.Len(t, view.Items, 10)
	require.True(t, view.HasMore)

	view = wait(t, c, c.ChangePage(t.Context(), 3))
	require.Len(t, view.Items, 5)
	require.False(t, view.CanNext)
	require.True(t, view.CanPrevious)

	require.NoError(t, c.EditFilter("title", model.FilterClause{Type1: model.Contains, Value1: "QUI", Operator: model.And, Type2: model.Contains}))
	require.Equal(t, 25, c.View().Total, "pending edits do not change results")

	ticket, err := c.ApplyFilter(t.Context(), "title")
	require.NoError(t, err)

	view = wait(t, c, ticket)
	require.Equal(t, 1, view.State.Page)
	require.Equal(t, 5, view.Total)
	require.Equal(t, "Page 1 of 1", view.Caption())

	ticket, err = c.Sort(t.Context(), "id")
	require.NoError(t, err)
	ticket, err = c.Sort(t.Context(), "id")
	require.NoError(t, err)

	view = wait(t, c, ticket)
	require.Equal(t, model.SortDesc, view.State.SortDirection)
	require.Equal(t, 25, view.Items[0].ID)

	require.NoError(t, c.EditFilter("title", model.DefaultFilterClause()))
	ticket, err = c.ApplyFilter(t.Context(), "title")
	require.NoError(t, err)

	view = wait(t, c, ticket)
	require.Equal(t, 25, view.Total)
	require.Empty(t, view.State.Applied)

	view = wait(t, c, c.ChangePage(t.Context(), 3))
	require.Equal(t, 3, view.State.Page)

	ticket, err = c.ChangePageSize(t.Context(), 20)
	require.NoError(t, err)

	view = wait(t, c, ticket)
	require.Equal(t, 1, view.State.Page)
	require.Equal(t, 20, view.State.PageSize)
	require.Len(t, view.Items, 20)
	require.Equal(t, 2, view.TotalPages)
}

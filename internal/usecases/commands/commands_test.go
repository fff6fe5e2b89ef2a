package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/mocks"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/internal/usecases/commands"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics/noop"
	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

var ref = ports.SessionRef{Table: model.PostsTable, ID: "9b2f"}

func view() *ports.SessionView {
	return &ports.SessionView{ID: ref.ID, Table: ref.Table}
}

func TestCreateSessionCommandHandler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		cmd         commands.CreateSessionCommand
		svcErr      error
		expectedErr error
	}{
		{
			name: "creates and waits",
			cmd:  commands.CreateSessionCommand{Table: model.PostsTable, PageSize: 20, Wait: true},
		},
		{
			name:        "unknown table",
			cmd:         commands.CreateSessionCommand{Table: "users"},
			svcErr:      model.ErrUnknownTable,
			expectedErr: model.ErrUnknownTable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.FakeSessionService{}
			if tc.svcErr != nil {
				svc.CreateSessionReturns(nil, tc.svcErr)
			} else {
				svc.CreateSessionReturns(view(), nil)
			}

			handler := commands.NewCreateSessionCommandHandler(svc, logger.NewTestLogger(), noop.NewMetricsClient(), otelNoop.NewTracerProvider())

			result, err := handler.Handle(t.Context(), tc.cmd)

			_, table, size, wait := svc.CreateSessionArgsForCall(0)
			require.Equal(t, tc.cmd.Table, table)
			require.Equal(t, tc.cmd.PageSize, size)
			require.Equal(t, tc.cmd.Wait, wait)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.Equal(t, ref.ID, result.ID)
		})
	}
}

func TestSessionTransitionCommandHandlers(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	mc := noop.NewMetricsClient()
	tp := otelNoop.NewTracerProvider()

	svc := &mocks.FakeSessionService{}
	svc.SortReturns(view(), nil)
	svc.EditFilterReturns(view(), nil)
	svc.ApplyFilterReturns(view(), nil)
	svc.ClearFilterReturns(view(), nil)
	svc.ChangePageReturns(view(), nil)
	svc.ChangePageSizeReturns(nil, model.ErrInvalidPageSize)
	svc.RefreshReturns(view(), nil)

	ctx := t.Context()

	_, err := commands.NewSortSessionCommandHandler(svc, log, mc, tp).
		Handle(ctx, commands.SortSessionCommand{Ref: ref, Field: "title", Wait: true})
	require.NoError(t, err)

	_, gotRef, field, wait := svc.SortArgsForCall(0)
	require.Equal(t, ref, gotRef)
	require.Equal(t, "title", field)
	require.True(t, wait)

	clause := model.FilterClause{Type1: model.Contains, Value1: "qui", Operator: model.And, Type2: model.Blank}

	_, err = commands.NewEditSessionFilterCommandHandler(svc, log, mc, tp).
		Handle(ctx, commands.EditSessionFilterCommand{Ref: ref, Field: "title", Clause: clause})
	require.NoError(t, err)

	_, _, field, gotClause := svc.EditFilterArgsForCall(0)
	require.Equal(t, "title", field)
	require.Equal(t, clause, gotClause)

	_, err = commands.NewApplySessionFilterCommandHandler(svc, log, mc, tp).
		Handle(ctx, commands.ApplySessionFilterCommand{Ref: ref, Field: "title"})
	require.NoError(t, err)
	require.Equal(t, 1, svc.ApplyFilterCallCount())

	_, err = commands.NewClearSessionFilterCommandHandler(svc, log, mc, tp).
		Handle(ctx, commands.ClearSessionFilterCommand{Ref: ref, Field: "title"})
	require.NoError(t, err)
	require.Equal(t, 1, svc.ClearFilterCallCount())

	_, err = commands.NewChangeSessionPageCommandHandler(svc, log, mc, tp).
		Handle(ctx, commands.ChangeSessionPageCommand{Ref: ref, Page: 3})
	require.NoError(t, err)

	_, _, page, _ := svc.ChangePageArgsForCall(0)
	require.Equal(t, 3, page)

	_, err = commands.NewChangeSessionPageSizeCommandHandler(svc, log, mc, tp).
		Handle(ctx, commands.ChangeSessionPageSizeCommand{Ref: ref, Size: 15})
	require.ErrorIs(t, err, model.ErrInvalidPageSize)

	_, err = commands.NewRefreshSessionCommandHandler(svc, log, mc, tp).
		Handle(ctx, commands.RefreshSessionCommand{Ref: ref, Wait: true})
	require.NoError(t, err)
	require.Equal(t, 1, svc.RefreshCallCount())
}

func TestDeleteSessionCommandHandler(t *testing.T) {
	t.Parallel()

	svc := &mocks.FakeSessionService{}
	svc.DeleteSessionStub = func(_ context.Context, r ports.SessionRef) error {
		if r.ID != ref.ID {
			return model.ErrSessionNotFound
		}

		return nil
	}

	handler := commands.NewDeleteSessionCommandHandler(svc, logger.NewTestLogger(), noop.NewMetricsClient(), otelNoop.NewTracerProvider())

	result, err := handler.Handle(t.Context(), commands.DeleteSessionCommand{Ref: ref})
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = handler.Handle(t.Context(), commands.DeleteSessionCommand{Ref: ports.SessionRef{Table: model.PostsTable, ID: "other"}})
	require.ErrorIs(t, err, model.ErrSessionNotFound)
	require.False(t, result.Success)
}

func TestInvalidateRecordsCommandHandler(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	mc := noop.NewMetricsClient()
	tp := otelNoop.NewTracerProvider()

	cache := &mocks.FakeRecordsCache{}
	cache.InvalidateTableReturnsOnCall(0, 4, nil)
	cache.InvalidateTableReturnsOnCall(1, 0, errors.New("connection reset"))

	handler := commands.NewInvalidateRecordsCommandHandler(cache, log, mc, tp)

	result, err := handler.Handle(t.Context(), commands.InvalidateRecordsCommand{Table: model.PostsTable})
	require.NoError(t, err)
	require.Equal(t, int64(4), result.Removed)

	_, err = handler.Handle(t.Context(), commands.InvalidateRecordsCommand{Table: model.PostsTable})
	require.ErrorContains(t, err, "connection reset")

	disabled := commands.NewInvalidateRecordsCommandHandler(nil, log, mc, tp)

	result, err = disabled.Handle(t.Context(), commands.InvalidateRecordsCommand{Table: model.PostsTable})
	require.NoError(t, err)
	require.Zero(t, result.Removed)
}

package commands

import (
	"context"
	"fmt"

	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/decorator"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/architeacher/datatable/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	// InvalidateRecordsCommand drops every cached page of a table after its
	// records changed underneath the cache.
	InvalidateRecordsCommand struct {
		Table string
	}

	InvalidateRecordsResult struct {
		Removed int64
	}

	InvalidateRecordsCommandHandler = decorator.CommandHandler[InvalidateRecordsCommand, InvalidateRecordsResult]

	invalidateRecordsCommandHandler struct {
		cache ports.RecordsCache
	}
)

func NewInvalidateRecordsCommandHandler(
	cache ports.RecordsCache,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) InvalidateRecordsCommandHandler {
	return decorator.ApplyCommandDecorators[InvalidateRecordsCommand, InvalidateRecordsResult](
		invalidateRecordsCommandHandler{cache: cache},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h invalidateRecordsCommandHandler) Handle(ctx context.Context, cmd InvalidateRecordsCommand) (InvalidateRecordsResult, error) {
	if h.cache == nil {
		return InvalidateRecordsResult{}, nil
	}

	removed, err := h.cache.InvalidateTable(ctx, cmd.Table)
	if err != nil {
		return InvalidateRecordsResult{}, fmt.Errorf("invalidating cached pages of %s: %w", cmd.Table, err)
	}

	return InvalidateRecordsResult{Removed: removed}, nil
}

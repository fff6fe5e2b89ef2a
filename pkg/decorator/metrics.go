package decorator

import (
	"context"
	"time"

	"github.com/architeacher/datatable/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
)

const (
	MetricHandlerTotal    = "handler_executions_total"
	MetricHandlerDuration = "handler_duration_seconds"

	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

type (
	commandMetricsDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		client metrics.Client
	}

	queryMetricsDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		client metrics.Client
	}
)

// Descriptors lists the instruments the handler decorators report to.
func Descriptors() []metrics.Descriptor {
	labels := []string{"kind", "action", "outcome"}

	return []metrics.Descriptor{
		{
			Name:        MetricHandlerTotal,
			Description: "Number of executed command and query handlers.",
			Labels:      labels,
		},
		{
			Name:        MetricHandlerDuration,
			Description: "Duration of command and query handlers.",
			Kind:        metrics.KindHistogram,
			Labels:      labels,
		},
	}
}

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	start := time.Now()

	defer func() {
		record(ctx, d.client, "command", generateActionName(cmd), time.Since(start), err)
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	start := time.Now()

	defer func() {
		record(ctx, d.client, "query", generateActionName(query), time.Since(start), err)
	}()

	return d.base.Execute(ctx, query)
}

func record(ctx context.Context, client metrics.Client, kind, action string, elapsed time.Duration, err error) {
	if client == nil {
		return
	}

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}

	attrs := []attribute.KeyValue{
		attribute.String("kind", kind),
		attribute.String("action", action),
		attribute.String("outcome", outcome),
	}

	client.Inc(ctx, MetricHandlerTotal, 1, attrs...)
	client.Inc(ctx, MetricHandlerDuration, elapsed.Seconds(), attrs...)
}

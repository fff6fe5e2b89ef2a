// Package prom implements metrics.Client on top of a dedicated prometheus registry.
package prom

import (
	"context"
	"fmt"
	"net/http"

	"github.com/architeacher/datatable/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
)

type (
	Client struct {
		registry   *prometheus.Registry
		counters   map[string]*prometheus.CounterVec
		histograms map[string]*prometheus.HistogramVec
		labels     map[string][]string
	}
)

// New registers every descriptor under namespace. Unknown keys passed to Inc are ignored.
func New(namespace string, descriptors ...metrics.Descriptor) (*Client, error) {
	c := &Client{
		registry:   prometheus.NewRegistry(),
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
		labels:     make(map[string][]string),
	}

	if err := c.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("registering go collector: %w", err)
	}

	for _, d := range descriptors {
		if err := c.register(namespace, d); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Client) register(namespace string, d metrics.Descriptor) error {
	var collector prometheus.Collector

	switch d.Kind {
	case metrics.KindHistogram:
		buckets := d.Buckets
		if len(buckets) == 0 {
			buckets = prometheus.DefBuckets
		}

		vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      d.Name,
			Help:      d.Description,
			Buckets:   buckets,
		}, d.Labels)
		c.histograms[d.Name] = vec
		collector = vec
	default:
		vec := prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      d.Name,
			Help:      d.Description,
		}, d.Labels)
		c.counters[d.Name] = vec
		collector = vec
	}

	if err := c.registry.Register(collector); err != nil {
		return fmt.Errorf("registering %s: %w", d.Name, err)
	}

	c.labels[d.Name] = d.Labels

	return nil
}

func (c *Client) Inc(_ context.Context, key string, value any, attributes ...attribute.KeyValue) {
	v, ok := metrics.Float(value)
	if !ok {
		return
	}

	values := c.labelValues(key, attributes)

	if vec, found := c.counters[key]; found {
		if v < 0 {
			return
		}

		if counter, err := vec.GetMetricWithLabelValues(values...); err == nil {
			counter.Add(v)
		}

		return
	}

	if vec, found := c.histograms[key]; found {
		if observer, err := vec.GetMetricWithLabelValues(values...); err == nil {
			observer.Observe(v)
		}
	}
}

func (c *Client) labelValues(key string, attributes []attribute.KeyValue) []string {
	names := c.labels[key]
	values := make([]string, len(names))

	for _, attr := range attributes {
		name := metrics.LabelName(attr.Key)

		for i := range names {
			if names[i] == name {
				values[i] = attr.Value.Emit()
			}
		}
	}

	return values
}

func (c *Client) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Client) Shutdown(_ context.Context) error {
	return nil
}

// Registry exposes the underlying registry for tests and extra collectors.
func (c *Client) Registry() *prometheus.Registry {
	return c.registry
}

package metrics

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

const (
	KindCounter Kind = iota
	KindHistogram
)

type (
	Client interface {
		Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue)
		Handler() http.Handler
		Shutdown(ctx context.Context) error
	}

	Kind uint8

	// Descriptor declares an instrument up front so its label set is fixed.
	Descriptor struct {
		Name        string
		Description string
		Kind        Kind
		Labels      []string
		Buckets     []float64
	}
)

// LabelName maps an attribute key such as "http.method" to a valid label name.
func LabelName(key attribute.Key) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(string(key))
}

// Float converts the numeric values accepted by Inc; ok is false for anything else.
func Float(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

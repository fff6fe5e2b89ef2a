package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const (
	JSONLoggingFormat = "json"

	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"

	ContextKeyRequestID contextKey = "requestID"
	ContextKeySessionID contextKey = "sessionID"
	ContextKeyTable     contextKey = "table"
)

type Logger struct {
	zerolog.Logger
}

func New(level, format string) Logger {
	return NewWithWriter(level, format, os.Stderr)
}

// NewWithWriter builds a console logger unless format is json.
func NewWithWriter(level, format string, w io.Writer) Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))

	var base zerolog.Logger
	if format == JSONLoggingFormat {
		base = zerolog.New(w)
	} else {
		base = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	return Logger{
		Logger: base.With().Timestamp().Logger(),
	}
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case LogLevelDebug:
		return zerolog.DebugLevel
	case LogLevelWarn, LogLevelWarning:
		return zerolog.WarnLevel
	case LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Component returns a child logger tagged with the component name.
func (l Logger) Component(name string) Logger {
	return Logger{Logger: l.With().Str("component", name).Logger()}
}

func (l Logger) WithContext(ctx context.Context) zerolog.Logger {
	fields := l.With()

	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok && requestID != "" {
		fields = fields.Str("request_id", requestID)
	}

	if table, ok := ctx.Value(ContextKeyTable).(string); ok && table != "" {
		fields = fields.Str("table", table)
	}

	if sessionID, ok := ctx.Value(ContextKeySessionID).(string); ok && sessionID != "" {
		fields = fields.Str("session_id", sessionID)
	}

	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		fields = fields.
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String())
	}

	return fields.Logger()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, sessionID)
}

func WithTable(ctx context.Context, table string) context.Context {
	return context.WithValue(ctx, ContextKeyTable, table)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(ContextKeyRequestID).(string)

	return requestID
}

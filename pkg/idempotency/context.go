package idempotency

import "context"

type contextKey string

const ContextKeyIdempotency contextKey = "idempotencyKey"

func FromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(ContextKeyIdempotency).(string)

	return key, ok && key != ""
}

func WithKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, ContextKeyIdempotency, key)
}

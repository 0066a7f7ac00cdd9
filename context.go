package chainbind

import (
	"context"
)

type ctxKey string

// requestIDKey
var requestIDKey ctxKey = "REQUEST_ID"

// RequestIDFromContext returns the id of the compile request being handled,
// or fallback when ctx does not carry one.
func RequestIDFromContext(ctx context.Context, fallback string) string {
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return fallback
	}
	return requestID
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

package service

import "context"

type originKey struct{}

type requestIDKey struct{}

// WithOrigin tags the context with the identifier of the view performing the
// mutation, so that view can recognize its own events on the bus.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey{}, origin)
}

// OriginFromContext returns the originating view identifier, if any.
func OriginFromContext(ctx context.Context) string {
	if origin, ok := ctx.Value(originKey{}).(string); ok {
		return origin
	}

	return ""
}

// WithRequestID tags the context with the request identifier carried through
// to emitted events.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request identifier, if any.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}

	return ""
}

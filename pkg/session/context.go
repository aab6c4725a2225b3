package session

import "context"

type (
	sessionContextKey     struct{}
	sessionCodeContextKey struct{}
)

// WithSession adds a session record to the context
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// FromContext retrieves a session record from the context
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(*Session)
	return s, ok && s != nil
}

// WithSessionCode adds the resolved session code to the context
func WithSessionCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, sessionCodeContextKey{}, code)
}

// CodeFromContext retrieves the resolved session code from the context
func CodeFromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(sessionCodeContextKey{}).(string)
	return code, ok && code != ""
}

// MustCodeFromContext retrieves the session code or panics
func MustCodeFromContext(ctx context.Context) string {
	code, ok := CodeFromContext(ctx)
	if !ok {
		panic("session: code not found in context")
	}
	return code
}

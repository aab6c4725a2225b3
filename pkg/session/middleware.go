package session

import (
	"net/http"

	"github.com/dmitrymomot/dfcsession/pkg/logger"
)

// Middleware resolves the session code and stores it in the request context
func (c *Client) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code, ok := c.FindSessionCode(r.Context(), r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSessionCode(r.Context(), code)))
	})
}

// EnsureSession is a middleware that mints a session when the request carries none
func (c *Client) EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code, ok := c.FindSessionCode(r.Context(), r); ok {
			next.ServeHTTP(w, r.WithContext(WithSessionCode(r.Context(), code)))
			return
		}

		s, err := c.NewSession()
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		if err := c.CreateCookie(w, s, false); err != nil {
			c.logger.ErrorContext(r.Context(), "failed to write session cookie",
				logger.Component("session"),
				logger.Error(err),
			)
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		ctx := WithSession(r.Context(), s)
		ctx = WithSessionCode(ctx, s.Carrier())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

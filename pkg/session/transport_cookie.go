package session

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/dfcsession/pkg/cookie"
)

// CookieTransport implements Transport and TokenWriter using cookies
type CookieTransport struct {
	cookieMgr  *cookie.Manager
	cookieName string
	options    []cookie.Option
}

// NewCookieTransport creates a new cookie-based transport.
// The cookie is Secure, HttpOnly and SameSite=Strict unless opts say otherwise.
func NewCookieTransport(cookieMgr *cookie.Manager, cookieName string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookieMgr:  cookieMgr,
		cookieName: cookieName,
		options:    opts,
	}
}

func (t *CookieTransport) Source() string { return "cookie" }

// GetToken extracts the session identifier from the cookie
func (t *CookieTransport) GetToken(_ context.Context, r *http.Request) (string, error) {
	value, err := t.cookieMgr.Get(r, t.cookieName)
	if err != nil {
		return "", ErrSessionNotFound
	}
	return value, nil
}

// SetToken stores the carrier value in the session cookie
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string) error {
	opts := []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithSecure(true),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
	}
	opts = append(opts, t.options...)

	return t.cookieMgr.Set(w, t.cookieName, token, opts...)
}

// ClearToken removes the session cookie
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookieMgr.Delete(w, t.cookieName)
	return nil
}

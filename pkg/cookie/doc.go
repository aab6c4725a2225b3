// Package cookie provides a small HTTP cookie manager with secure defaults.
//
// It wraps net/http's http.Cookie with helpers for writing, reading and
// expiring cookies, applying a set of default Options that individual calls
// may override.
//
// # Usage
//
//	import "github.com/dmitrymomot/dfcsession/pkg/cookie"
//
//	man := cookie.New(cookie.WithSameSite(http.SameSiteStrictMode))
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//	    _ = man.Set(w, ".dfc-session", "myapp7-k7m2x")
//	})
//
//	http.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
//	    v, err := man.Get(r, ".dfc-session")
//	    if errors.Is(err, cookie.ErrCookieNotFound) {
//	        // no cookie
//	    }
//	    _ = v
//	})
//
// # Configuration
//
// Config can be populated from the environment with github.com/caarlos0/env
// (see pkg/config). Only non-zero fields are applied by NewFromConfig.
//
// # Defaults
//
// Cookies are Secure, HttpOnly, SameSite=Strict and scoped to "/" unless
// overridden.
package cookie

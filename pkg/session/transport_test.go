package session_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dfcsession/pkg/cookie"
	"github.com/dmitrymomot/dfcsession/pkg/session"
)

func TestCookieTransport(t *testing.T) {
	t.Parallel()

	tr := session.NewCookieTransport(cookie.New(), ".dfc-session")
	assert.Equal(t, "cookie", tr.Source())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := tr.GetToken(r.Context(), r)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	w := httptest.NewRecorder()
	require.NoError(t, tr.SetToken(w, "myapp1-abcd"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	r.AddCookie(cookies[0])
	token, err := tr.GetToken(r.Context(), r)
	require.NoError(t, err)
	assert.Equal(t, "myapp1-abcd", token)
}

func TestCookieTransport_OptionsOverrideDefaults(t *testing.T) {
	t.Parallel()

	mgr := cookie.New(cookie.WithSecure(false), cookie.WithSameSite(http.SameSiteLaxMode))
	tr := session.NewCookieTransport(mgr, "sid", cookie.WithDomain("example.com"))

	w := httptest.NewRecorder()
	require.NoError(t, tr.SetToken(w, "v"))
	c := w.Result().Cookies()[0]

	// session cookies are hardened regardless of manager defaults
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, "example.com", c.Domain)
}

func TestQueryTransport(t *testing.T) {
	t.Parallel()

	tr := session.NewQueryTransport("dfc-session")
	assert.Equal(t, "query", tr.Source())

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{"present", "dfc-session=abc", "abc", false},
		{"first of many", "dfc-session=abc&dfc-session=def", "abc", false},
		{"present but empty", "dfc-session=", "", false},
		{"absent", "other=1", "", true},
		{"malformed pair skipped", "bad=%zz&dfc-session=abc", "abc", false},
		{"no query", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/p", nil)
			r.URL.RawQuery = tt.query

			got, err := tr.GetToken(r.Context(), r)
			if tt.wantErr {
				assert.ErrorIs(t, err, session.ErrSessionNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormTransport_URLEncoded(t *testing.T) {
	t.Parallel()

	tr := session.NewFormTransport("dfc-session", 0)
	assert.Equal(t, "form", tr.Source())

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("dfc-session=abc&name=x"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	got, err := tr.GetToken(r.Context(), r)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	// parsed form stays available to later handlers
	assert.Equal(t, "x", r.PostFormValue("name"))
}

func TestFormTransport_Multipart(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("dfc-session", "multi"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	got, err := session.NewFormTransport("dfc-session", 1<<20).GetToken(r.Context(), r)
	require.NoError(t, err)
	assert.Equal(t, "multi", got)
}

func TestFormTransport_NotFound(t *testing.T) {
	t.Parallel()

	tr := session.NewFormTransport("dfc-session", 0)

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"dfc-session":"abc"}`))
		r.Header.Set("Content-Type", "application/json")
		_, err := tr.GetToken(r.Context(), r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("no content type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("dfc-session=abc"))
		_, err := tr.GetToken(r.Context(), r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("unparseable body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("dfc-session=%zz"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, err := tr.GetToken(r.Context(), r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("field absent", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("other=1"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, err := tr.GetToken(r.Context(), r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("dfc-session=abc"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, err := tr.GetToken(ctx, r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestHasFormContentType(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"application/x-www-form-urlencoded": true,
		"multipart/form-data; boundary=xyz": true,
		"Application/X-WWW-Form-Urlencoded": true,
		"application/json":                  false,
		"text/plain":                        false,
		"":                                  false,
	}

	for ct, want := range tests {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("Content-Type", ct)
		assert.Equal(t, want, session.HasFormContentType(r), ct)
	}
}

type staticTransport struct {
	source string
	value  string
	found  bool
}

func (s staticTransport) Source() string { return s.source }

func (s staticTransport) GetToken(context.Context, *http.Request) (string, error) {
	if !s.found {
		return "", session.ErrSessionNotFound
	}
	return s.value, nil
}

func TestOrderedTransport(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)

	tr := session.NewOrderedTransport(
		staticTransport{source: "cookie", value: "A", found: true},
		staticTransport{source: "query", value: " ", found: true},
		staticTransport{source: "form"},
	)
	got, err := tr.GetToken(r.Context(), r)
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	empty := session.NewOrderedTransport(staticTransport{source: "cookie"})
	_, err = empty.GetToken(r.Context(), r)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

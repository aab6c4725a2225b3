package session_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dfcsession/pkg/session"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t)

	var (
		gotCode string
		gotOK   bool
	)
	handler := client.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCode, gotOK = session.CodeFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/page", nil)
	r.AddCookie(&http.Cookie{Name: ".dfc-session", Value: "myapp1-abcd"})
	handler.ServeHTTP(httptest.NewRecorder(), r)
	assert.True(t, gotOK)
	assert.Equal(t, "myapp1-abcd", gotCode)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, gotOK)
	assert.Empty(t, gotCode)
}

func TestEnsureSession(t *testing.T) {
	t.Parallel()

	t.Run("mints when missing", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		var (
			sess *session.Session
			code string
		)
		handler := client.EnsureSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			sess, ok = session.FromContext(r.Context())
			require.True(t, ok)
			code = session.MustCodeFromContext(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotNil(t, sess)
		assert.True(t, client.ValidateSession(sess))
		assert.Equal(t, sess.Carrier(), code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sess.Carrier(), cookies[0].Value)
	})

	t.Run("keeps existing", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t)

		var hasSession bool
		var code string
		handler := client.EnsureSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasSession = session.FromContext(r.Context())
			code = session.MustCodeFromContext(r.Context())
		}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/page?dfc-session=myapp2-efgh", nil)
		handler.ServeHTTP(w, r)

		assert.False(t, hasSession)
		assert.Equal(t, "myapp2-efgh", code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("generation failure", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t, session.WithIDGenerator(failingGenerator{err: errors.New("boom")}))

		called := false
		handler := client.EnsureSession(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, called)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestMustCodeFromContext_Panics(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Panics(t, func() { session.MustCodeFromContext(r.Context()) })
}

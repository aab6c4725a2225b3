package session

import (
	"context"
	"mime"
	"net/http"
	"net/url"
)

// FormTransport implements Transport using a form body field.
// Only url-encoded and multipart bodies are read.
type FormTransport struct {
	key       string
	maxMemory int64
}

// NewFormTransport creates a transport reading the identifier from form field key
func NewFormTransport(key string, maxMemory int64) *FormTransport {
	if maxMemory <= 0 {
		maxMemory = DefaultFormMaxMemory
	}
	return &FormTransport{key: key, maxMemory: maxMemory}
}

func (t *FormTransport) Source() string { return "form" }

// GetToken extracts the identifier from the request body.
// A cancelled ctx, an unreadable body or a missing field all report
// ErrSessionNotFound; cancellation is never surfaced as its own error.
func (t *FormTransport) GetToken(ctx context.Context, r *http.Request) (string, error) {
	if !HasFormContentType(r) {
		return "", ErrSessionNotFound
	}

	form, err := t.readForm(ctx, r)
	if err != nil || form == nil {
		return "", ErrSessionNotFound
	}

	values, ok := form[t.key]
	if !ok || len(values) == 0 {
		return "", ErrSessionNotFound
	}
	return values[0], nil
}

// readForm parses the body on a shallow clone so an abandoned parse never
// writes to r. On success the parsed form is copied back to r for later handlers.
func (t *FormTransport) readForm(ctx context.Context, r *http.Request) (url.Values, error) {
	if r.PostForm != nil {
		return r.PostForm, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clone := r.Clone(ctx)
	done := make(chan error, 1)
	go func() {
		done <- t.parse(clone)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-done:
		if err != nil {
			return nil, err
		}
		r.Form = clone.Form
		r.PostForm = clone.PostForm
		r.MultipartForm = clone.MultipartForm
		return r.PostForm, nil
	}
}

func (t *FormTransport) parse(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(t.maxMemory)
	}
	return r.ParseForm()
}

// HasFormContentType reports whether the request body is a url-encoded or multipart form.
func HasFormContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

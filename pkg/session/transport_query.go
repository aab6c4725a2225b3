package session

import (
	"context"
	"net/http"
	"net/url"
)

// QueryTransport implements Transport using a query string parameter
type QueryTransport struct {
	key string
}

// NewQueryTransport creates a transport reading the identifier from key
func NewQueryTransport(key string) *QueryTransport {
	return &QueryTransport{key: key}
}

func (t *QueryTransport) Source() string { return "query" }

// GetToken extracts the identifier from the raw query string.
// The query is parsed leniently: malformed pairs are skipped and the rest are still used.
func (t *QueryTransport) GetToken(_ context.Context, r *http.Request) (string, error) {
	values, _ := url.ParseQuery(r.URL.RawQuery)
	if !values.Has(t.key) {
		return "", ErrSessionNotFound
	}
	return values.Get(t.key), nil
}

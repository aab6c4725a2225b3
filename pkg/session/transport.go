package session

import (
	"context"
	"net/http"
)

// Transport reads a session identifier from one request-carried source
type Transport interface {
	// Source names the carrier, e.g. "cookie"
	Source() string

	// GetToken extracts the identifier or returns ErrSessionNotFound
	GetToken(ctx context.Context, r *http.Request) (string, error)
}

// TokenWriter sends the identifier back to the client
type TokenWriter interface {
	SetToken(w http.ResponseWriter, token string) error
	ClearToken(w http.ResponseWriter) error
}

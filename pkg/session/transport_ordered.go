package session

import (
	"context"
	"net/http"
)

// OrderedTransport asks every transport in ascending priority order and
// resolves the answers with Resolve: the last non-blank value wins.
type OrderedTransport struct {
	transports []Transport
}

// NewOrderedTransport creates an ordered transport, lowest priority first
func NewOrderedTransport(transports ...Transport) *OrderedTransport {
	return &OrderedTransport{transports: transports}
}

func (t *OrderedTransport) Source() string { return "ordered" }

// GetToken collects a candidate from every transport and resolves them
func (t *OrderedTransport) GetToken(ctx context.Context, r *http.Request) (string, error) {
	candidates := make([]Candidate, 0, len(t.transports))
	for _, transport := range t.transports {
		value, err := transport.GetToken(ctx, r)
		candidates = append(candidates, Candidate{
			Source: transport.Source(),
			Value:  value,
			Found:  err == nil,
		})
	}

	if value, ok := Resolve(candidates...); ok {
		return value, nil
	}
	return "", ErrSessionNotFound
}

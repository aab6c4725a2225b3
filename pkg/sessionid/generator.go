package sessionid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SaltSeparator separates the salt from the issuance sequence in a stored salt.
const SaltSeparator = "|"

// Result is the outcome of an issuance. It is not meant to be stored as is:
// callers fold it into their own session record.
type Result struct {
	Counter          int
	EncodedSessionID string
}

// Option configures a Generator.
type Option func(*Generator)

// WithCounter replaces the process-wide sequence counter.
func WithCounter(c Counter) Option {
	return func(g *Generator) {
		if c != nil {
			g.counter = c
		}
	}
}

// Generator mints and validates session ids. Safe for concurrent use.
type Generator struct {
	counter Counter
}

// New creates a generator backed by DefaultCounter unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{counter: DefaultCounter()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateSession mints an id for salt at t.
// The id is decoded again before returning; a mismatch yields ErrSelfCheckFailed
// and no id, since such an id could never validate later.
func (g *Generator) CreateSession(salt string, t time.Time) (Result, error) {
	codec, err := NewCodec(salt)
	if err != nil {
		return Result{}, err
	}

	seq := g.counter.Next()
	payload, err := Payload(t, seq)
	if err != nil {
		return Result{}, err
	}

	encoded, err := codec.Encode(payload)
	if err != nil {
		return Result{}, err
	}

	decoded, ok := codec.Decode(encoded)
	if !ok || decoded != payload {
		return Result{}, fmt.Errorf("%w: payload %d encoded as %q", ErrSelfCheckFailed, payload, encoded)
	}

	return Result{Counter: seq, EncodedSessionID: encoded}, nil
}

// ValidateSessionID reports whether sessionID is the id minted for the stored
// salt ("salt|sequence") at createdAt. It never panics on malformed input.
func (g *Generator) ValidateSessionID(storedSalt string, createdAt time.Time, sessionID string) bool {
	salt, seq, ok := SplitSalt(storedSalt)
	if !ok {
		return false
	}

	codec, err := NewCodec(salt)
	if err != nil {
		return false
	}

	payload, err := Payload(createdAt, seq)
	if err != nil {
		return false
	}

	expected, err := codec.Encode(payload)
	if err != nil {
		return false
	}

	return expected == sessionID
}

// JoinSalt builds the stored salt for an issuance.
func JoinSalt(salt string, seq int) string {
	return salt + SaltSeparator + strconv.Itoa(seq)
}

// SplitSalt splits a stored salt into the original salt and the sequence.
// The last separator wins, so salts may contain the separator themselves.
func SplitSalt(stored string) (salt string, seq int, ok bool) {
	idx := strings.LastIndex(stored, SaltSeparator)
	if idx < 0 {
		return "", 0, false
	}

	seq, err := strconv.Atoi(stored[idx+len(SaltSeparator):])
	if err != nil || seq < 0 {
		return "", 0, false
	}

	return stored[:idx], seq, true
}

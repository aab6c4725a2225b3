package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/dfcsession/pkg/cookie"
	"github.com/dmitrymomot/dfcsession/pkg/logger"
	"github.com/dmitrymomot/dfcsession/pkg/partition"
	"github.com/dmitrymomot/dfcsession/pkg/sessionid"
)

// IDGenerator mints and validates session identifiers.
type IDGenerator interface {
	CreateSession(salt string, t time.Time) (sessionid.Result, error)
	ValidateSessionID(storedSalt string, createdAt time.Time, sessionID string) bool
}

// PartitionKeyGenerator derives a partition key from a session identifier.
type PartitionKeyGenerator interface {
	GeneratePartitionKey(applicationName, sessionID string) string
}

// Client issues, validates and locates sessions. Safe for concurrent use.
type Client struct {
	config        Config
	generator     IDGenerator
	partitioner   PartitionKeyGenerator
	transport     Transport
	writer        TokenWriter
	cookieManager *cookie.Manager
	cookieOptions []cookie.Option
	logger        *slog.Logger
	now           func() time.Time
}

// New creates a client with the given options.
// Panics when no salt is configured, since every identifier would be unusable.
func New(opts ...Option) *Client {
	c := &Client{
		config: DefaultConfig(),
		logger: logger.Discard(),
		now:    func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.config.Salt == "" {
		panic("session: salt is required")
	}
	if c.config.FormMaxMemory <= 0 {
		c.config.FormMaxMemory = DefaultFormMaxMemory
	}

	if c.generator == nil {
		c.generator = sessionid.New()
	}
	if c.partitioner == nil {
		c.partitioner = partition.New()
	}
	if c.cookieManager == nil {
		c.cookieManager = cookie.New()
	}

	var cookies *CookieTransport
	if c.transport == nil || c.writer == nil {
		cookies = NewCookieTransport(c.cookieManager, c.config.CookieName, c.cookieOptions...)
	}
	if c.transport == nil {
		key := c.config.CarrierKey()
		c.transport = NewOrderedTransport(
			cookies,
			NewQueryTransport(key),
			NewFormTransport(key, c.config.FormMaxMemory),
		)
	}
	if c.writer == nil {
		c.writer = cookies
	}

	return c
}

// NewSession mints a new session for the configured application.
// A codec self-check failure is returned as ErrTokenGeneration; the record is
// never handed out in that case.
func (c *Client) NewSession() (*Session, error) {
	now := c.now()

	res, err := c.generator.CreateSession(c.config.Salt, now)
	if err != nil {
		c.logger.Error("session id generation failed",
			logger.Component("session"),
			logger.Error(err),
		)
		return nil, errors.Join(ErrTokenGeneration, err)
	}

	return &Session{
		PartitionKey: c.partitioner.GeneratePartitionKey(c.config.ApplicationName, res.EncodedSessionID),
		SessionID:    res.EncodedSessionID,
		Salt:         sessionid.JoinSalt(c.config.Salt, res.Counter),
		CreatedAt:    now,
	}, nil
}

// ValidateSession reports whether the record's identifier matches its salt
// and creation time.
func (c *Client) ValidateSession(s *Session) bool {
	if s == nil {
		return false
	}
	return c.generator.ValidateSessionID(s.Salt, s.CreatedAt, s.SessionID)
}

// CreateCookie writes the session carrier to the response.
// With validate set, records failing validation are rejected with
// ErrInvalidSession. Skip validation only for records minted in this process.
func (c *Client) CreateCookie(w http.ResponseWriter, s *Session, validate bool) error {
	if s == nil {
		return fmt.Errorf("%w: nil session", ErrInvalidSession)
	}

	if validate && !c.ValidateSession(s) {
		c.logger.Warn("session id not valid",
			logger.Component("session"),
			logger.SessionID(s.SessionID),
		)
		return fmt.Errorf("%w: session invalid for id %q", ErrInvalidSession, s.SessionID)
	}

	return c.writer.SetToken(w, s.Carrier())
}

// ClearCookie expires the session carrier cookie.
func (c *Client) ClearCookie(w http.ResponseWriter) error {
	return c.writer.ClearToken(w)
}

// FindSessionCode returns the session code carried by the request.
// A miss is not an error; it is logged unless the request targets the root path,
// which is expected to be session-less.
func (c *Client) FindSessionCode(ctx context.Context, r *http.Request) (string, bool) {
	code, err := c.transport.GetToken(ctx, r)
	if err == nil && code != "" {
		return code, true
	}

	if r.URL.Path != "/" {
		c.logger.WarnContext(ctx, "unable to get session id",
			logger.Component("session"),
			logger.URL(displayURL(r)),
		)
	}
	return "", false
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config
}

func displayURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/dfcsession/pkg/cookie"
)

// Option is a functional option for configuring the Client
type Option func(*Client)

// WithConfig sets the configuration
func WithConfig(config Config) Option {
	return func(c *Client) {
		c.config = config
	}
}

// WithCookieName sets the carrier name
func WithCookieName(name string) Option {
	return func(c *Client) {
		c.config.CookieName = name
	}
}

// WithIDGenerator replaces the identifier generator
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Client) {
		c.generator = g
	}
}

// WithPartitionKeyGenerator replaces the partition key generator
func WithPartitionKeyGenerator(p PartitionKeyGenerator) Option {
	return func(c *Client) {
		c.partitioner = p
	}
}

// WithTransport replaces the default cookie, query and form transport chain
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithTokenWriter replaces the default cookie writer
func WithTokenWriter(w TokenWriter) Option {
	return func(c *Client) {
		c.writer = w
	}
}

// WithCookieManager sets the cookie manager used by the default cookie transport
func WithCookieManager(cookieMgr *cookie.Manager, opts ...cookie.Option) Option {
	return func(c *Client) {
		c.cookieManager = cookieMgr
		c.cookieOptions = opts
	}
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the time source used for issuance
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

package session

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/dfcsession/pkg/partition"
)

// DefaultFormMaxMemory is the in-memory limit for multipart form parsing (10MB).
const DefaultFormMaxMemory = 10 << 20

// Config holds session configuration
type Config struct {
	// Salt keys identifier encoding. Changing it invalidates every issued session.
	Salt string `env:"SESSION_SALT,required"`

	// ApplicationName prefixes partition keys
	ApplicationName string `env:"SESSION_APPLICATION_NAME,required"`

	// CookieName is the carrier name (default: ".dfc-session")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:".dfc-session"`

	FormMaxMemory int64 `env:"SESSION_FORM_MAX_MEMORY" envDefault:"10485760"`

	// PartitionHash selects the partition hash: "md5" or "murmur3"
	PartitionHash string `env:"SESSION_PARTITION_HASH" envDefault:"md5"`
}

// DefaultConfig returns default session configuration.
// Salt and ApplicationName have no sensible default and are left empty.
func DefaultConfig() Config {
	return Config{
		CookieName:    ".dfc-session",
		FormMaxMemory: DefaultFormMaxMemory,
		PartitionHash: "md5",
	}
}

// CarrierKey is the query string and form field name: the cookie name
// without its leading dots.
func (c Config) CarrierKey() string {
	return strings.TrimLeft(c.CookieName, ".")
}

// Validate reports settings that cannot produce a working client.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Salt) == "":
		return fmt.Errorf("%w: salt is required", ErrInvalidConfig)
	case c.ApplicationName == "":
		return fmt.Errorf("%w: application name is required", ErrInvalidConfig)
	case c.CarrierKey() == "":
		return fmt.Errorf("%w: cookie name %q has no usable key", ErrInvalidConfig, c.CookieName)
	}
	if _, ok := partition.HashByName(c.PartitionHash); !ok {
		return fmt.Errorf("%w: unknown partition hash %q", ErrInvalidConfig, c.PartitionHash)
	}
	return nil
}

// NewFromConfig validates cfg and creates a Client from it.
// Options are applied after the config, so they take precedence.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hash, _ := partition.HashByName(cfg.PartitionHash)

	configOpts := []Option{
		WithConfig(cfg),
		WithPartitionKeyGenerator(partition.New(partition.WithHash(hash))),
	}
	configOpts = append(configOpts, opts...)

	return New(configOpts...), nil
}

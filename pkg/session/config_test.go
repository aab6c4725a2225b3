package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dfcsession/pkg/session"
)

func validConfig() session.Config {
	cfg := session.DefaultConfig()
	cfg.Salt = "test-salt"
	cfg.ApplicationName = "myapp"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	assert.Equal(t, ".dfc-session", cfg.CookieName)
	assert.Equal(t, "dfc-session", cfg.CarrierKey())
	assert.Equal(t, int64(session.DefaultFormMaxMemory), cfg.FormMaxMemory)
	assert.Equal(t, "md5", cfg.PartitionHash)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*session.Config)
		ok     bool
	}{
		{"valid", func(*session.Config) {}, true},
		{"murmur3", func(c *session.Config) { c.PartitionHash = "murmur3" }, true},
		{"empty hash means md5", func(c *session.Config) { c.PartitionHash = "" }, true},
		{"blank salt", func(c *session.Config) { c.Salt = "  " }, false},
		{"no application", func(c *session.Config) { c.ApplicationName = "" }, false},
		{"dots only cookie", func(c *session.Config) { c.CookieName = "..." }, false},
		{"unknown hash", func(c *session.Config) { c.PartitionHash = "sha1" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, session.ErrInvalidConfig)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.PartitionHash = "murmur3"

		client, err := session.NewFromConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg, client.Config())

		s, err := client.NewSession()
		require.NoError(t, err)
		assert.True(t, client.ValidateSession(s))
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		client, err := session.NewFromConfig(session.DefaultConfig())
		assert.ErrorIs(t, err, session.ErrInvalidConfig)
		assert.Nil(t, client)
	})
}

func TestNew_PanicsWithoutSalt(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { session.New() })
}

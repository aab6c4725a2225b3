// Package config loads typed configuration structs from environment variables.
//
// Fields are described with github.com/caarlos0/env struct tags. A ".env"
// file in the working directory is read once (through github.com/joho/godotenv)
// before the first Load; variables already present in the environment win.
//
//	type SessionConfig struct {
//	    Salt string `env:"SESSION_SALT,required"`
//	    Name string `env:"SESSION_COOKIE_NAME" envDefault:".dfc-session"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load caches the first successful result per type, so every package asking
// for the same struct sees the same values. Parse skips the cache.
//
// # Error Handling
//
//   - ErrNilPointer     – Load was given a nil pointer
//   - ErrParsingConfig  – the environment does not satisfy the struct tags
package config

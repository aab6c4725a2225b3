package session

import "errors"

var (
	// ErrInvalidSession indicates the session record failed validation
	ErrInvalidSession = errors.New("session.invalid")

	// ErrSessionNotFound indicates no session identifier was found
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrTokenGeneration indicates identifier generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrInvalidConfig indicates the configuration cannot build a client
	ErrInvalidConfig = errors.New("session.invalid_config")
)

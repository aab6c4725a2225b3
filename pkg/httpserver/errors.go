package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("httpserver.start_failed")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("httpserver.shutdown_failed")
	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("httpserver.already_running")
)

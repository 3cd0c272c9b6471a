package domain

import "errors"

// Domain errors returned by the public API; check with errors.Is.
var (
	// ErrAlreadyRunning is returned when Start() is called on a running handler.
	ErrAlreadyRunning = errors.New("tgship: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped handler.
	ErrNotRunning = errors.New("tgship: not running")

	// ErrShutdownTimeout is returned when graceful shutdown times out.
	ErrShutdownTimeout = errors.New("tgship: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("tgship: invalid configuration")
)

package tgship

import (
	"fmt"
	"time"

	"github.com/bft-labs/tgship/internal/domain"
)

// maxTextChars is the per-message cap on log content; pending-logs must
// leave room for at least one full text chunk.
const maxTextChars = 4050

// Config holds the configuration for a Handler.
// Use DefaultConfig() for sensible defaults; at minimum Token and ChatID
// must be set. Configuration is validated once at construction and never
// changes afterwards.
type Config struct {
	// Token authenticates against the Bot API.
	Token string

	// ChatID is the destination chat identifier.
	ChatID int64

	// ThreadID optionally routes messages into a forum topic.
	// Zero means the standard chat.
	ThreadID int64

	// Title is rendered as the first line of every message.
	Title string

	// IgnoreMatch lists substrings; a log line containing any of them is
	// dropped silently.
	IgnoreMatch []string

	// UpdateInterval is the minimum time between two flushes. Low values
	// invite flood waits; above 2s is recommended.
	UpdateInterval time.Duration

	// MinimumLines is the minimum number of buffered lines required to
	// permit a flush.
	MinimumLines int

	// PendingLogs is the buffered character count above which logs are
	// shipped as a document instead of text.
	PendingLogs int

	// HTTPTimeout bounds each Bot API request.
	HTTPTimeout time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Title:          "tgship",
		UpdateInterval: 5 * time.Second,
		MinimumLines:   1,
		PendingLogs:    200000,
		HTTPTimeout:    15 * time.Second,
	}
}

// SetDefaults fills zero-valued optional fields with defaults.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.UpdateInterval == 0 {
		c.UpdateInterval = d.UpdateInterval
	}
	if c.MinimumLines == 0 {
		c.MinimumLines = d.MinimumLines
	}
	if c.PendingLogs == 0 {
		c.PendingLogs = d.PendingLogs
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = d.HTTPTimeout
	}
}

// Validate checks the configuration for errors.
// Returned errors match domain.ErrInvalidConfig with errors.Is.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("%w: token is required", domain.ErrInvalidConfig)
	}
	if c.ChatID == 0 {
		return fmt.Errorf("%w: chat-id is required", domain.ErrInvalidConfig)
	}
	if c.ThreadID < 0 {
		return fmt.Errorf("%w: thread-id must not be negative", domain.ErrInvalidConfig)
	}
	if c.UpdateInterval <= 0 {
		return fmt.Errorf("%w: update-interval must be positive", domain.ErrInvalidConfig)
	}
	if c.MinimumLines < 1 {
		return fmt.Errorf("%w: minimum-lines must be at least 1", domain.ErrInvalidConfig)
	}
	if c.PendingLogs <= maxTextChars {
		return fmt.Errorf("%w: pending-logs must exceed %d", domain.ErrInvalidConfig, maxTextChars)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http-timeout must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

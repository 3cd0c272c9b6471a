package cliconfig

import (
	"fmt"
	"time"
)

// Config holds CLI configuration for tgship.
type Config struct {
	Token    string
	ChatID   int64
	ThreadID int64
	Title    string

	IgnoreMatch []string

	UpdateInterval time.Duration
	MinimumLines   int
	PendingLogs    int
	HTTPTimeout    time.Duration

	// Follow is a log file to tail; empty means read stdin.
	Follow    string
	FromStart bool
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

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("token is required")
	}
	if c.ChatID == 0 {
		return fmt.Errorf("chat-id is required")
	}
	if c.ThreadID < 0 {
		return fmt.Errorf("thread-id must not be negative")
	}
	if c.UpdateInterval <= 0 {
		return fmt.Errorf("update interval must be positive")
	}
	if c.MinimumLines < 1 {
		return fmt.Errorf("minimum lines must be at least 1")
	}
	if c.FromStart && c.Follow == "" {
		return fmt.Errorf("from-start requires a follow path")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. A value is only applied if the corresponding flag has not been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a string-slice value if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt64 sets an int64 value if non-zero and flag not changed.
func (s *configSetter) setInt64(flag string, value int64, dst *int64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration sets a duration if positive and flag not changed.
func (s *configSetter) setDuration(flag string, value time.Duration, dst *time.Duration) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDurationString parses and sets a duration from string if valid and
// flag not changed.
func (s *configSetter) setDurationString(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

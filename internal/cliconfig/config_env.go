package cliconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for TGSHIP_* environment variables.
type envConfig struct {
	Token          string        `env:"TGSHIP_TOKEN"`
	ChatID         int64         `env:"TGSHIP_CHAT_ID"`
	ThreadID       int64         `env:"TGSHIP_THREAD_ID"`
	Title          string        `env:"TGSHIP_TITLE"`
	IgnoreMatch    []string      `env:"TGSHIP_IGNORE_MATCH" envSeparator:","`
	UpdateInterval time.Duration `env:"TGSHIP_UPDATE_INTERVAL"`
	MinimumLines   int           `env:"TGSHIP_MINIMUM_LINES"`
	PendingLogs    int           `env:"TGSHIP_PENDING_LOGS"`
	HTTPTimeout    time.Duration `env:"TGSHIP_HTTP_TIMEOUT"`
	Follow         string        `env:"TGSHIP_FOLLOW"`
	FromStart      *bool         `env:"TGSHIP_FROM_START"`
}

// ApplyEnvConfig applies configuration from environment variables (TGSHIP_*).
// It respects flags that have been explicitly set (changed map): env values
// override file config but lose to flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return err
	}

	s := newConfigSetter(changed)

	s.setString("token", ec.Token, &cfg.Token)
	s.setInt64("chat-id", ec.ChatID, &cfg.ChatID)
	s.setInt64("thread-id", ec.ThreadID, &cfg.ThreadID)
	s.setString("title", ec.Title, &cfg.Title)
	s.setStrings("ignore", ec.IgnoreMatch, &cfg.IgnoreMatch)
	s.setDuration("update-interval", ec.UpdateInterval, &cfg.UpdateInterval)
	s.setInt("minimum-lines", ec.MinimumLines, &cfg.MinimumLines)
	s.setInt("pending-logs", ec.PendingLogs, &cfg.PendingLogs)
	s.setDuration("http-timeout", ec.HTTPTimeout, &cfg.HTTPTimeout)
	s.setString("follow", ec.Follow, &cfg.Follow)
	s.setBool("from-start", ec.FromStart, &cfg.FromStart)

	return nil
}
